// cmd_expect.go -- implements the "expect" command
//
// (c) 2024 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/opencoff/go-entropy"
	flag "github.com/opencoff/pflag"
)

type expectCmd struct {
	*flag.FlagSet

	siz      SizeValue
	differ   bool
	consumed bool
	nonzero  bool
}

func (t *expectCmd) Name() string {
	return "expect"
}

func (t *expectCmd) Reset() {
	fs := flag.NewFlagSet("expect", flag.ContinueOnError)
	t.siz = SizeValue(0)
	fs.VarP(&t.siz, "size", "n", "Expect each file to be `N` bytes long")
	fs.BoolVarP(&t.differ, "differ", "d", false, "Expect the two files to have different contents")
	fs.BoolVarP(&t.consumed, "consumed", "c", false, "Expect each seed file to be marked consumed")
	fs.BoolVarP(&t.nonzero, "nonzero", "z", false, "Expect each file to have at least one non-zero byte")
	t.FlagSet = fs
}

// expect [-n size] [-d] [-c] [-z] file...
func (t *expectCmd) Run(env *TestEnv, args []string) error {
	err := t.Parse(args)
	if err != nil {
		return fmt.Errorf("expect: %w", err)
	}

	args = t.Args()
	if len(args) < 1 {
		return fmt.Errorf("expect: missing file(s)")
	}

	for _, fn := range args {
		st, err := os.Stat(fn)
		if err != nil {
			return fmt.Errorf("expect: %w", err)
		}

		if n := int64(t.siz.Value()); n > 0 && st.Size() != n {
			return fmt.Errorf("expect: %s: size %d, want %d", fn, st.Size(), n)
		}

		if t.consumed && !entropy.SeedConsumed(fn) {
			return fmt.Errorf("expect: %s: seed not marked consumed", fn)
		}

		if t.nonzero {
			b, err := os.ReadFile(fn)
			if err != nil {
				return fmt.Errorf("expect: %w", err)
			}
			if !hasNonZero(b) {
				return fmt.Errorf("expect: %s: all %d bytes are zero", fn, len(b))
			}
		}
	}

	if t.differ {
		if len(args) != 2 {
			return fmt.Errorf("expect: -d needs exactly two files")
		}

		a, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("expect: %w", err)
		}
		b, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("expect: %w", err)
		}

		if bytes.Equal(a, b) {
			return fmt.Errorf("expect: %s and %s have identical contents", args[0], args[1])
		}
	}

	env.log.Debug("expect: ok: %v", args)
	return nil
}

func hasNonZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return true
		}
	}
	return false
}

func newExpectCmd() *expectCmd {
	c := &expectCmd{}
	c.Reset()
	return c
}

func init() {
	RegisterCommand(newExpectCmd())
}
