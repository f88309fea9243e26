package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/nodehash/cmd/internal"
	"github.com/saylorsolutions/nodehash/pkg/sealed"
	flag "github.com/spf13/pflag"
)

const (
	passEnv = "NODEHASH_PASSPHRASE"
)

var (
	version = "dev"
)

func usage(flagUsages string) string {
	return fmt.Sprintf(`
nodehash converts peer addresses to and from the "@" node hash strings used by Winny-compatible peers.

USAGE:  nodehash [FLAGS] COMMAND [VALUE...]

ARGS:
    COMMAND is either encode or decode.
    VALUE is an address (for encode) or a token (for decode). If no values are given, one value per line is read from stdin.

EXAMPLES:
    nodehash encode 123.1.2.3:1234
    nodehash decode @ba9582a383c7d6e79cd5d8c71f7347
    %[2]s=s3cre+ nodehash -s encode < peers.txt

FLAGS:
%[1]s
SECURITY:
    Node hash strings are obfuscation, not encryption! Anyone can decode them without a key.
Sealed tokens use a key derived from a passphrase, but are not understood by other Winny-compatible software.
A passphrase given with --pass is visible to other users in process listings and may be kept in shell history.
Prefer setting %[2]s in the environment instead.
`, flagUsages, passEnv)
}

func main() {
	var (
		helpFlag      bool
		versionFlag   bool
		sealedFlag    bool
		fastFlag      bool
		keepGoingFlag bool
		passFlag      string
	)
	flags := flag.NewFlagSet("nodehash", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version of nodehash.")
	flags.BoolVarP(&sealedFlag, "sealed", "s", false, "Use passphrase sealed '!' tokens instead of '@' node hash strings.")
	flags.StringVarP(&passFlag, "pass", "p", "", fmt.Sprintf("Passphrase for sealed tokens. Visible in process listings, prefer setting %s.", passEnv))
	flags.BoolVarP(&fastFlag, "fast", "f", false, "Seal with short delay key generation. Useful for large peer lists.")
	flags.BoolVarP(&keepGoingFlag, "keep-going", "k", false, "Keep converting after a value fails, and exit with an error at the end.")
	flags.Usage = func() {
		fmt.Print(usage(flags.FlagUsages()))
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.FatalCode(internal.ExitUsage, "Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		internal.EchoTo(os.Stdout, version)
		return
	}
	if flags.NArg() == 0 {
		internal.FatalCode(internal.ExitUsage, "Missing required COMMAND argument")
	}

	conf := convertConfig{
		sealed: sealedFlag,
	}
	if sealedFlag {
		if len(passFlag) == 0 {
			passFlag = os.Getenv(passEnv)
		}
		conf.pass = sealed.Passphrase(passFlag)
		delay := sealed.SetLongDelayIterations()
		if fastFlag {
			delay = sealed.SetShortDelayIterations()
		}
		gen, err := sealed.NewKeyGenerator(delay)
		if err != nil {
			internal.Fatal("Failed to set up key generation: %v", err)
		}
		conf.gen = gen
	}
	conv, err := newConverter(flags.Arg(0), conf)
	if err != nil {
		internal.FatalCode(internal.ExitUsage, "%v", err)
	}

	var src io.Reader = os.Stdin
	if flags.NArg() > 1 {
		src = strings.NewReader(strings.Join(flags.Args()[1:], "\n"))
	}
	failed, err := process(src, os.Stdout, os.Stderr, conv, keepGoingFlag)
	if err != nil {
		internal.Fatal("Failed to process input: %v", err)
	}
	if failed > 0 {
		os.Exit(internal.ExitFailure)
	}
}
