package sealed

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/saylorsolutions/nodehash/pkg/nodehash"
)

const (
	// Tag is the first character of every sealed Token.
	Tag = '!'
)

var (
	ErrBadTag    = errors.New("not a sealed token")
	ErrWrongPass = errors.New("unable to open sealed token")
)

// Token is a "!" tagged sealed address.
type Token string

func (t Token) String() string {
	return string(t)
}

// Seal hides addr with a key generated from pass.
func Seal(gen *KeyGenerator, pass Passphrase, addr nodehash.Address) (Token, error) {
	if err := gen.validate(); err != nil {
		return "", err
	}
	var header bytes.Buffer
	if err := gen.mapper().Write(&header, binary.BigEndian); err != nil {
		return "", err
	}
	key, salt, err := gen.GenerateKey(pass)
	if err != nil {
		return "", err
	}
	body, err := lock(key, salt, header.Bytes(), []byte(addr))
	if err != nil {
		return "", err
	}
	return Token(string(Tag) + hex.EncodeToString(append(header.Bytes(), body...))), nil
}

// Open recovers the address from a sealed Token with the passphrase it was sealed with.
// A wrong passphrase and a tampered Token both result in ErrWrongPass.
func Open(pass Passphrase, tok Token) (nodehash.Address, error) {
	if len(pass) == 0 {
		return "", ErrEmptyPassPhrase
	}
	if len(tok) == 0 || tok[0] != Tag {
		return "", ErrBadTag
	}
	data, err := hex.DecodeString(string(tok[1:]))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if len(data) < headerLen {
		return "", fmt.Errorf("%w: sealed token is too short", ErrInvalidData)
	}
	header, body := data[:headerLen], data[headerLen:]

	gen := new(KeyGenerator)
	if err := gen.mapper().Read(bytes.NewReader(header), binary.BigEndian); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if err := gen.validate(); err != nil {
		return "", err
	}
	key, _, err := gen.DeriveKeySalt(pass, body)
	if err != nil {
		return "", err
	}
	plain, err := unlock(key, header, body)
	if err != nil {
		if errors.Is(err, ErrInvalidData) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrWrongPass, err)
	}
	return nodehash.Address(plain), nil
}
