package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/saylorsolutions/nodehash/cmd/internal"
	"github.com/saylorsolutions/nodehash/pkg/nodehash"
	"github.com/saylorsolutions/nodehash/pkg/sealed"
)

var log = logger.GetGoI2PLogger()

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingPass    = errors.New("a passphrase is required for sealed tokens")
)

// converter turns one input value into one output value.
type converter = func(value string) (string, error)

type convertConfig struct {
	sealed bool
	pass   sealed.Passphrase
	gen    *sealed.KeyGenerator
}

func newConverter(command string, conf convertConfig) (converter, error) {
	if conf.sealed && len(conf.pass) == 0 {
		return nil, errMissingPass
	}
	switch {
	case command == "encode" && conf.sealed:
		return func(value string) (string, error) {
			tok, err := sealed.Seal(conf.gen, conf.pass, nodehash.Address(value))
			return tok.String(), err
		}, nil
	case command == "encode":
		return func(value string) (string, error) {
			return nodehash.Encode(nodehash.Address(value)).String(), nil
		}, nil
	case command == "decode" && conf.sealed:
		return func(value string) (string, error) {
			addr, err := sealed.Open(conf.pass, sealed.Token(value))
			return addr.String(), err
		}, nil
	case command == "decode":
		return func(value string) (string, error) {
			addr, err := nodehash.Decode(nodehash.Token(value))
			return addr.String(), err
		}, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", errUnknownCommand, command)
	}
}

// failureFields never includes the value itself, since it may be an address that's meant to stay hidden.
func failureFields(line int) logger.Fields {
	return logger.Fields{
		"line": line,
	}
}

// process converts every non-blank line of r, writing results to out and problems to errOut.
// Processing stops at the first failure unless keepGoing is set.
func process(r io.Reader, out, errOut io.Writer, conv converter, keepGoing bool) (failed int, err error) {
	var (
		scanner = bufio.NewScanner(r)
		line    int
	)
	for scanner.Scan() {
		line++
		value := strings.TrimSpace(scanner.Text())
		if len(value) == 0 {
			continue
		}
		result, err := conv(value)
		if err != nil {
			failed++
			log.WithError(err).WithFields(failureFields(line)).Debug("conversion failed")
			internal.EchoTo(errOut, "Line %d: %v", line, err)
			if !keepGoing {
				return failed, nil
			}
			continue
		}
		if _, err := fmt.Fprintln(out, result); err != nil {
			return failed, err
		}
	}
	return failed, scanner.Err()
}
