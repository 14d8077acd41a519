// cmd_fill.go -- implements the "fill" command
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
	"fmt"
	"os"

	flag "github.com/opencoff/pflag"
)

type fillCmd struct {
	*flag.FlagSet

	siz SizeValue
}

func (t *fillCmd) Name() string {
	return "fill"
}

func (t *fillCmd) Reset() {
	fs := flag.NewFlagSet("fill", flag.ContinueOnError)
	t.siz = SizeValue(32)
	fs.VarP(&t.siz, "size", "n", "Draw `N` random bytes [32]")
	t.FlagSet = fs
}

// fill [-n size] file...
func (t *fillCmd) Run(env *TestEnv, args []string) error {
	err := t.Parse(args)
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}

	args = t.Args()
	if len(args) < 1 {
		return fmt.Errorf("fill: missing output file")
	}

	n := int(t.siz.Value())
	for _, fn := range args {
		buf := make([]byte, n)
		if _, err = env.rd.Read(buf); err != nil {
			return fmt.Errorf("fill: %s: %w", env.src.Method(), err)
		}

		env.log.Debug("fill: %d bytes via %s -> %s", n, env.src.Method(), fn)
		if err = os.WriteFile(fn, buf, 0600); err != nil {
			return fmt.Errorf("fill: %s: %w", fn, err)
		}
	}
	return nil
}

func newFillCmd() *fillCmd {
	c := &fillCmd{}
	c.Reset()
	return c
}

func init() {
	RegisterCommand(newFillCmd())
}
