package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ExitFailure = 1
	ExitUsage   = 2
)

// Fatal will Echo the message and os.Exit with ExitFailure.
func Fatal(msg string, args ...any) {
	FatalCode(ExitFailure, msg, args...)
}

// FatalCode will Echo the message and os.Exit with the given code.
func FatalCode(code int, msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(code)
}

// Echo will emit the given message to stderr without any logging formatting.
// Stdout is reserved for converted values.
func Echo(msg string, args ...any) {
	EchoTo(os.Stderr, msg, args...)
}

// EchoTo is Echo with a different target.
func EchoTo(w io.Writer, msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, msg, args...)
}
