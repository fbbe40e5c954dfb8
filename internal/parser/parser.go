// Package parser puts os.Args and the environment into a GrepParam structure and validates it for any issues
package parser

import (
	"errors"
	"flag"
	"os"

	"github.com/UnendingLoop/gremp/internal/model"
)

// CaseInsensitiveEnv switches the default comparison mode: when the variable
// is present in the environment, with any value, search ignores case.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// Build resolves args (os.Args without the program name) into search
// parameters. The environment is consulted here exactly once; nothing below
// the parser ever reads it. No file I/O happens here either.
func Build(args []string) (*model.GrepParam, error) {
	flagParser := flag.NewFlagSet("gremp", flag.ContinueOnError)

	a := flagParser.Int("A", 0, "print N lines after each matching line")
	b := flagParser.Int("B", 0, "print N lines before each matching line")
	c := flagParser.Int("C", 0, "print N lines before and after each matching line(same as '-A N' and '-B N')")
	d := flagParser.Bool("c", false, "print only the total number of matching lines(A/B/C are ignored)")
	e := flagParser.Bool("i", false, "all input lines will be lower-cased for search as well as the pattern itself")
	f := flagParser.Bool("v", false, "print only lines that DON'T contain the specified pattern")

	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	if *a < 0 || *b < 0 || *c < 0 {
		return nil, errors.New("context length must not be negative")
	}

	gp := model.GrepParam{
		CtxAfter:     *a,
		CtxBefore:    *b,
		CountFound:   *d,
		InvertResult: *f,
	}

	// -C fills whichever of A/B was not given explicitly
	if *c > 0 {
		if gp.CtxAfter == 0 {
			gp.CtxAfter = *c
		}
		if gp.CtxBefore == 0 {
			gp.CtxBefore = *c
		}
	}

	// case sensitivity is the default; the -i flag or the mere presence of
	// CASE_INSENSITIVE in the environment flips it
	_, envSet := os.LookupEnv(CaseInsensitiveEnv)
	gp.IgnoreCase = *e || envSet

	// pattern and filename are positional; anything past them is ignored
	switch len(flagParser.Args()) {
	case 0:
		return nil, errors.New("missing pattern")
	case 1:
		return nil, errors.New("missing filename")
	default:
		gp.Pattern = flagParser.Args()[0]
		gp.FileName = flagParser.Args()[1]
	}

	return &gp, nil
}
