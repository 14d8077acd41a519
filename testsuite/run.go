// run.go -- run a single test suite
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
	"path"

	"github.com/opencoff/go-entropy"
	"github.com/opencoff/go-logger"
)

// TestEnv captures the runtime environment of the current testsuite
type TestEnv struct {
	// scratch dir for this test's files
	Root     string
	TestName string

	// the platform backend under test and a chunking reader over it
	src entropy.Source
	rd  *entropy.Reader

	log logger.Logger
}

func RunTest(tname string, cfg *config, ts []TestSuite) (err error) {
	if len(ts) < 1 {
		return fmt.Errorf("no commands in test suite")
	}

	// setup test env
	env, err := makeEnv(tname, cfg)
	if err != nil {
		return err
	}

	defer func(e *error) {
		if *e != nil {
			env.log.Info("test complete: error:\n%s", *e)
		} else {
			env.log.Info("test complete; no errors")
		}
		env.log.Close()
	}(&err)

	// substitute environment vars in each arg
	lookup := map[string]string{
		"ROOT":  env.Root,
		"TNAME": env.TestName,
	}

	env.log.Info("testroot %s; backend %s; starting test %s ..",
		env.Root, env.src.Method(), env.TestName)
	for _, t := range ts {
		cmd := t.Cmd

		args := make([]string, 0, len(t.Args))
		for _, s := range t.Args[1:] {
			d := os.Expand(s, func(key string) string {
				v, ok := lookup[key]
				if !ok {
					Die("%s: can't expand env %s", cmd.Name(), key)
				}
				return v
			})
			args = append(args, d)
		}

		cmd.Reset()
		if err = cmd.Run(env, args); err != nil {
			return fmt.Errorf("%s: %s: %w", tname, cmd.Name(), err)
		}
	}

	// cleanup as we go - so we don't accumulate cruft
	if err = os.RemoveAll(env.Root); err != nil {
		Die("%s: cleanup %s: %s", env.TestName, env.Root, err)
	}

	return nil
}

// make the test environment that's common to each individual test.
func makeEnv(tname string, cfg *config) (*TestEnv, error) {
	tmpdir := path.Join(cfg.tempdir, tname)
	logfile := path.Join(tmpdir, "entropy.log")
	if cfg.logStdout {
		logfile = "STDOUT"
	}

	if err := os.MkdirAll(tmpdir, 0700); err != nil {
		return nil, fmt.Errorf("%s: root: %w", tname, err)
	}

	src, err := entropy.New()
	if err != nil {
		return nil, fmt.Errorf("%s: backend: %w", tname, err)
	}

	log, err := logger.NewLogger(logfile, logger.LOG_DEBUG, tname, logger.Ldate|logger.Ltime|logger.Lmicroseconds|logger.Lfileloc)
	if err != nil {
		return nil, fmt.Errorf("%s: logfile: %w", tname, err)
	}

	e := &TestEnv{
		Root:     tmpdir,
		TestName: tname,
		src:      src,
		rd:       entropy.NewReader(src),
		log:      log,
	}

	return e, nil
}

func (t *TestEnv) String() string {
	s := fmt.Sprintf("TestEnv: name %s: Root: %s; backend %s\n",
		t.TestName, t.Root, t.src.Method())
	return s
}
