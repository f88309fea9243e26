package nodehash

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/nodehash/pkg/keystream"
)

const (
	// Tag is the first character of every Token.
	Tag = '@'
	// MinTokenLen is the shortest string Decode will accept.
	// Existing peers use len("@^") + len("0.0.0.0:0")*2.
	MinTokenLen = 20
)

// Address is a plain "A.B.C.D:P" peer address.
// It's never parsed, so any string may be encoded, but addresses shorter than "0.0.0.0:0" produce tokens that Decode rejects.
type Address string

func (a Address) String() string {
	return string(a)
}

// Encode is shorthand for Encode(a).
func (a Address) Encode() Token {
	return Encode(a)
}

// MarshalText encodes the Address as its Token, so addresses never appear in the clear when serialized.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(Encode(a)), nil
}

// UnmarshalText decodes a Token into the Address.
func (a *Address) UnmarshalText(text []byte) error {
	addr, err := Decode(Token(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Token is an "@" tagged node hash string.
type Token string

func (t Token) String() string {
	return string(t)
}

// Decode is shorthand for Decode(t).
func (t Token) Decode() (Address, error) {
	return Decode(t)
}

func checksumMapper(sum *byte) bin.Mapper {
	return bin.Byte(sum)
}

// Encode converts the Address to a Token.
// The result is always the same for the same Address.
func Encode(addr Address) Token {
	var buf strings.Builder
	// A strings.Builder never fails to write.
	_ = EncodeTo(&buf, addr)
	return Token(buf.String())
}

// EncodeTo writes the Token for addr to w.
func EncodeTo(w io.Writer, addr Address) error {
	var (
		plain = []byte(addr)
		sum   = Checksum(plain)
		key   = DeriveKey(sum)
	)
	if _, err := w.Write([]byte{Tag}); err != nil {
		return err
	}
	hw := hex.NewEncoder(w)
	if err := checksumMapper(&sum).Write(hw, binary.BigEndian); err != nil {
		return err
	}
	kw, err := keystream.NewWriter(hw, key.Bytes())
	if err != nil {
		return err
	}
	if _, err := kw.Write(plain); err != nil {
		return err
	}
	return nil
}

// Decode recovers the Address from a Token.
// Hex digits may be upper or lower case.
func Decode(tok Token) (Address, error) {
	if len(tok) < MinTokenLen {
		return "", formatError(TooShort, fmt.Errorf("got %d characters, need at least %d", len(tok), MinTokenLen))
	}
	if tok[0] != Tag {
		return "", formatError(BadTag, fmt.Errorf("expected leading '%c', got '%c'", Tag, tok[0]))
	}

	var sum byte
	hr := hex.NewDecoder(strings.NewReader(string(tok[1:])))
	if err := checksumMapper(&sum).Read(hr, binary.BigEndian); err != nil {
		return "", formatError(BadEncoding, err)
	}
	key := DeriveKey(sum)
	kr, err := keystream.NewReader(hr, key.Bytes())
	if err != nil {
		return "", err
	}
	plain, err := io.ReadAll(kr)
	if err != nil {
		return "", formatError(BadEncoding, err)
	}
	if got := Checksum(plain); got != sum {
		return "", formatError(ChecksumMismatch, fmt.Errorf("token carries 0x%02x, address sums to 0x%02x", sum, got))
	}
	return Address(plain), nil
}

// DecodeFrom reads a whole Token from r and decodes it.
// Surrounding whitespace is ignored.
func DecodeFrom(r io.Reader) (Address, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return Decode(Token(strings.TrimSpace(string(data))))
}
