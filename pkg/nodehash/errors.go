package nodehash

import (
	"errors"
)

var (
	ErrTooShort    = errors.New("hash string is too short")
	ErrBadTag      = errors.New("not a node hash string")
	ErrBadEncoding = errors.New("hash string payload is not valid hex")
	ErrChecksum    = errors.New("sum check error")
)

// FormatKind identifies why a Token could not be decoded.
type FormatKind uint8

const (
	TooShort FormatKind = iota + 1
	BadTag
	BadEncoding
	ChecksumMismatch
)

func (k FormatKind) sentinel() error {
	switch k {
	case TooShort:
		return ErrTooShort
	case BadTag:
		return ErrBadTag
	case BadEncoding:
		return ErrBadEncoding
	case ChecksumMismatch:
		return ErrChecksum
	default:
		return nil
	}
}

func (k FormatKind) String() string {
	switch k {
	case TooShort:
		return "TooShort"
	case BadTag:
		return "BadTag"
	case BadEncoding:
		return "BadEncoding"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	default:
		return "Unknown"
	}
}

// NodeFormatError is returned for any Token that can't be decoded.
// It matches the sentinel error for its Kind with errors.Is.
type NodeFormatError struct {
	Kind FormatKind
	// Err is the underlying cause, if there is one.
	Err error
}

func formatError(kind FormatKind, cause error) *NodeFormatError {
	return &NodeFormatError{
		Kind: kind,
		Err:  cause,
	}
}

func (e *NodeFormatError) Error() string {
	msg := "node format error"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NodeFormatError) Unwrap() []error {
	var errs []error
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
