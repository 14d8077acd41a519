// cmd_seed.go -- implements the "seed" and "reseed" commands
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
	"errors"
	"fmt"

	"github.com/opencoff/go-entropy"
	flag "github.com/opencoff/pflag"
)

type seedCmd struct {
	*flag.FlagSet

	siz SizeValue
}

func (t *seedCmd) Name() string {
	return "seed"
}

func (t *seedCmd) Reset() {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	t.siz = SizeValue(512)
	fs.VarP(&t.siz, "size", "n", "Save a seed of `N` bytes [512]")
	t.FlagSet = fs
}

// seed [-n size] file
func (t *seedCmd) Run(env *TestEnv, args []string) error {
	err := t.Parse(args)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	args = t.Args()
	if len(args) != 1 {
		return fmt.Errorf("seed: need exactly one seed file")
	}

	fn := args[0]
	env.log.Debug("seed: %s bytes -> %s", t.siz.String(), fn)
	if err = entropy.SaveSeed(fn, env.src, int(t.siz.Value())); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func newSeedCmd() *seedCmd {
	c := &seedCmd{}
	c.Reset()
	return c
}

type reseedCmd struct{}

func (t *reseedCmd) Name() string {
	return "reseed"
}

func (t *reseedCmd) Reset() {
}

// reseed file -- load a saved seed and feed it to the kernel pool
func (t *reseedCmd) Run(env *TestEnv, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("reseed: need exactly one seed file")
	}

	fn := args[0]
	seed, err := entropy.LoadSeed(fn)
	if err != nil {
		return fmt.Errorf("reseed: %w", err)
	}

	err = entropy.FeedKernel(seed)
	if err != nil {
		var e *entropy.Error
		if errors.As(err, &e) && e.Kind == entropy.Unsupported {
			env.log.Info("reseed: %s; skipping feed", err)
			return nil
		}
		return fmt.Errorf("reseed: %w", err)
	}

	env.log.Debug("reseed: fed %d bytes from %s", len(seed), fn)
	return nil
}

func init() {
	RegisterCommand(newSeedCmd())
	RegisterCommand(&reseedCmd{})
}
