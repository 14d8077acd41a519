// cmd_selftest.go -- implements the "selftest" command
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

	"github.com/opencoff/go-entropy"
)

type selftestCmd struct{}

func (t *selftestCmd) Name() string {
	return "selftest"
}

func (t *selftestCmd) Reset() {
}

// selftest -- sanity check the platform backend
func (t *selftestCmd) Run(env *TestEnv, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("selftest: takes no arguments")
	}

	if err := entropy.SelfTest(env.src); err != nil {
		return fmt.Errorf("selftest: %w", err)
	}

	env.log.Debug("selftest: %s ok", env.src.Method())
	return nil
}

func init() {
	RegisterCommand(&selftestCmd{})
}
