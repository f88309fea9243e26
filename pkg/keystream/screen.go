package keystream

import (
	"crypto/rc4"
	"errors"
	"fmt"
)

const (
	MinKeyLen = 1
	MaxKeyLen = 256
)

var (
	ErrKeySize = errors.New("invalid keystream key size")
)

type rc4Screen struct {
	key    []byte
	cipher *rc4.Cipher
}

func newRC4Screen(key []byte) (*rc4Screen, error) {
	if len(key) < MinKeyLen || len(key) > MaxKeyLen {
		return nil, fmt.Errorf("%w: key length %d must be in the range [%d, %d]", ErrKeySize, len(key), MinKeyLen, MaxKeyLen)
	}
	s := &rc4Screen{
		key: append([]byte(nil), key...),
	}
	s.reset()
	return s, nil
}

func (s *rc4Screen) screen(dst, src []byte) {
	s.cipher.XORKeyStream(dst, src)
}

func (s *rc4Screen) reset() {
	// Key length was checked in newRC4Screen.
	s.cipher, _ = rc4.NewCipher(s.key)
}

// Crypt applies the keystream for key to data, returning a new slice.
// Calling Crypt again with the same key on the output recovers the original data.
func Crypt(key, data []byte) ([]byte, error) {
	scr, err := newRC4Screen(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	scr.screen(out, data)
	return out, nil
}
