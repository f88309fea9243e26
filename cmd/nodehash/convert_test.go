package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/saylorsolutions/nodehash/pkg/nodehash"
	"github.com/saylorsolutions/nodehash/pkg/sealed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConverter(t *testing.T) {
	enc, err := newConverter("encode", convertConfig{})
	require.NoError(t, err)
	tok, err := enc("123.1.2.3:1234")
	assert.NoError(t, err)
	assert.Equal(t, "@ba9582a383c7d6e79cd5d8c71f7347", tok)

	dec, err := newConverter("decode", convertConfig{})
	require.NoError(t, err)
	addr, err := dec(tok)
	assert.NoError(t, err)
	assert.Equal(t, "123.1.2.3:1234", addr)

	_, err = dec("@ba95")
	assert.ErrorIs(t, err, nodehash.ErrTooShort)
}

func TestNewConverter_Sealed(t *testing.T) {
	gen, err := sealed.NewKeyGenerator(sealed.SetIterations(1 << 4))
	require.NoError(t, err)
	conf := convertConfig{
		sealed: true,
		pass:   sealed.Passphrase("s3cre+"),
		gen:    gen,
	}
	enc, err := newConverter("encode", conf)
	require.NoError(t, err)
	dec, err := newConverter("decode", conf)
	require.NoError(t, err)

	tok, err := enc("10.0.0.1:80")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tok, "!"))
	addr, err := dec(tok)
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.1:80", addr)
}

func TestNewConverter_Neg(t *testing.T) {
	_, err := newConverter("frobnicate", convertConfig{})
	assert.ErrorIs(t, err, errUnknownCommand)
	_, err = newConverter("encode", convertConfig{sealed: true})
	assert.ErrorIs(t, err, errMissingPass)
}

func TestProcess(t *testing.T) {
	var out, errOut bytes.Buffer
	conv, err := newConverter("decode", convertConfig{})
	require.NoError(t, err)

	input := strings.Join([]string{
		"@ba9582a383c7d6e79cd5d8c71f7347",
		"",
		"  @b4110366f0907c33d72c  ",
		"garbage",
		"@1eabfc1114a544785a36b7f3",
	}, "\n")

	failed, err := process(strings.NewReader(input), &out, &errOut, conv, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Equal(t, "123.1.2.3:1234\n0.0.0.0:0\n10.0.0.1:80\n", out.String())
	assert.Contains(t, errOut.String(), "Line 4:")

	out.Reset()
	errOut.Reset()
	failed, err = process(strings.NewReader(input), &out, &errOut, conv, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Equal(t, "123.1.2.3:1234\n0.0.0.0:0\n", out.String(), "Should stop at the first failure")
}

func TestFailureFields(t *testing.T) {
	fields := failureFields(4)
	assert.Equal(t, 4, fields["line"])
	assert.Len(t, fields, 1, "Only the line number should be logged")
}

func TestUsage(t *testing.T) {
	text := usage("  -p, --pass string\n")
	assert.Contains(t, text, "--pass string")
	assert.Contains(t, text, "process listings")
	assert.Contains(t, text, "Prefer setting "+passEnv)
	assert.Contains(t, text, passEnv+"=s3cre+ nodehash -s encode")
}
