// Command blswire inspects compressed BLS12-381 encodings.
//
// Usage:
//
//	blswire [flags] [hex...]
//
// Each argument is a hex string (with or without 0x prefix) holding a
// compressed group element. The element kind is inferred from the
// length: 48 bytes for G1, 96 bytes for G2, 576 bytes for GT. Each
// input is decoded with full validity checks and a one-line report is
// printed: kind, validity, infinity status and fingerprint.
//
// Flags:
//
//	--gen      Print the canonical generator and identity encodings and exit
//	--version  Print version and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/blswire/blswire/bls"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0"
var version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) and output writers so it can be
// tested in isolation.
func run(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)
	showGen := fs.Bool("gen", false, "print generator and identity encodings and exit")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "blswire %s\n", version)
		return 0
	}

	if *showGen {
		printReference(stdout)
		return 0
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "blswire: no encodings given (try --gen)")
		return 2
	}

	code := 0
	for _, arg := range fs.Args() {
		if err := inspect(stdout, arg); err != nil {
			fmt.Fprintf(stderr, "blswire: %s: %v\n", arg, err)
			code = 1
		}
	}
	return code
}

// newFlagSet creates the blswire flag.FlagSet. It uses ContinueOnError
// so callers control the error handling behavior.
func newFlagSet(stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("blswire", flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// printReference writes the canonical generator and identity encodings
// for both source groups.
func printReference(w io.Writer) {
	fmt.Fprintf(w, "g1 generator  %s\n", hexutil.Encode(bls.G1GeneratorCompressed))
	fmt.Fprintf(w, "g1 identity   %s\n", hexutil.Encode(bls.G1InfinityCompressed))
	fmt.Fprintf(w, "g2 generator  %s\n", hexutil.Encode(bls.G2GeneratorCompressed))
	fmt.Fprintf(w, "g2 identity   %s\n", hexutil.Encode(bls.G2InfinityCompressed))
}

// inspect decodes one hex argument and prints a report line on success.
func inspect(w io.Writer, arg string) error {
	s := arg
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return err
	}

	switch len(raw) {
	case bls.G1Size:
		p, err := bls.G1FromBytes(raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "g1 valid infinity=%v fingerprint=%#08x\n", p.IsInfinity(), p.Fingerprint())
	case bls.G2Size:
		q, err := bls.G2FromBytes(raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "g2 valid infinity=%v fingerprint=%#08x\n", q.IsInfinity(), bls.Fingerprint4(q.Serialize()))
	case bls.GTSize:
		r, err := bls.GTFromBytes(raw)
		if err != nil {
			return err
		}
		unity := r.Equal(bls.GTUnity())
		fmt.Fprintf(w, "gt valid unity=%v fingerprint=%#08x\n", unity, bls.Fingerprint4(r.Serialize()))
	default:
		return fmt.Errorf("length %d is not a known encoding size (want %d, %d or %d)",
			len(raw), bls.G1Size, bls.G2Size, bls.GTSize)
	}
	return nil
}
