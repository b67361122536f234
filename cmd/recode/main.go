// Command recode transcodes a file (or stdin) from one character encoding
// to another, per spec §6.3.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	textenc "github.com/textcodec/encoding"
	"github.com/textcodec/encoding/label"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	from := fs.String("f", "utf-8", "input encoding label")
	to := fs.String("t", "utf-8", "output encoding label")
	policy := fs.String("e", "strict", "error policy: strict, ignore, replace, ncr-escape")
	ignoreAlias := fs.Bool("c", false, "alias for -e ignore")
	outPath := fs.String("o", "-", "output file, - for stdout")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *ignoreAlias {
		*policy = "ignore"
	}

	fromEnc, ok := label.Resolve(*from)
	if !ok {
		fmt.Fprintf(stderr, "recode: unknown input encoding label %q\n", *from)
		return 1
	}
	toEnc, ok := label.Resolve(*to)
	if !ok {
		fmt.Fprintf(stderr, "recode: unknown output encoding label %q\n", *to)
		return 1
	}

	decTrap, encTrap, ok := trapsForPolicy(*policy)
	if !ok {
		fmt.Fprintf(stderr, "recode: unknown error policy %q\n", *policy)
		return 1
	}

	var input io.Reader = stdin
	args = fs.Args()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "recode: %v\n", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintf(stderr, "recode: %v\n", err)
		return 1
	}

	text, err := fromEnc.Decode(raw, decTrap)
	if err != nil {
		fmt.Fprintf(stderr, "recode: decode: %v\n", err)
		return 1
	}
	out, err := toEnc.Encode(text, encTrap)
	if err != nil {
		fmt.Fprintf(stderr, "recode: encode: %v\n", err)
		return 1
	}

	var w io.Writer = stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(stderr, "recode: %v\n", err)
			return 1
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(out); err != nil {
		fmt.Fprintf(stderr, "recode: %v\n", err)
		return 1
	}
	return 0
}

func trapsForPolicy(policy string) (textenc.DecoderTrap, textenc.EncoderTrap, bool) {
	switch policy {
	case "strict":
		return textenc.DecoderTrapStrict{}, textenc.EncoderTrapStrict{}, true
	case "ignore":
		return textenc.DecoderTrapIgnore{}, textenc.EncoderTrapIgnore{}, true
	case "replace":
		return textenc.DecoderTrapReplace{}, textenc.EncoderTrapReplace{}, true
	case "ncr-escape":
		return textenc.DecoderTrapReplace{}, textenc.EncoderTrapNcrEscape{}, true
	default:
		return nil, nil, false
	}
}
