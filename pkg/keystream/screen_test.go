package keystream

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRC4ScreenNeg(t *testing.T) {
	_, err := newRC4Screen(nil)
	assert.ErrorIs(t, err, ErrKeySize)
	_, err = newRC4Screen(make([]byte, MaxKeyLen+1))
	assert.ErrorIs(t, err, ErrKeySize)
}

func TestCrypt(t *testing.T) {
	tests := map[string]struct {
		key, plain, cipher string
	}{
		"Key":    {"Key", "Plaintext", "bbf316e8d940af0ad3"},
		"Wiki":   {"Wiki", "pedia", "1021bf0420"},
		"Secret": {"Secret", "Attack at dawn", "45a01f645fc35b383552544b9bf5"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := Crypt([]byte(tc.key), []byte(tc.plain))
			require.NoError(t, err)
			assert.Equal(t, tc.cipher, hex.EncodeToString(out))

			back, err := Crypt([]byte(tc.key), out)
			require.NoError(t, err)
			assert.Equal(t, tc.plain, string(back))
		})
	}
}

func TestCrypt_DoesNotModifyInput(t *testing.T) {
	in := []byte("123.1.2.3:1234")
	_, err := Crypt([]byte("key"), in)
	require.NoError(t, err)
	assert.Equal(t, "123.1.2.3:1234", string(in))
}

func TestCrypt_Empty(t *testing.T) {
	out, err := Crypt([]byte("key"), nil)
	assert.NoError(t, err)
	assert.Empty(t, out)

	_, err = Crypt(nil, []byte("data"))
	assert.ErrorIs(t, err, ErrKeySize)
}
