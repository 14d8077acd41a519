// main.go - main test runner for the entropy testsuite
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
	flag "github.com/opencoff/pflag"
)

var Z = path.Base(os.Args[0])

type config struct {
	tempdir string

	logStdout bool
}

func main() {
	var help, stdout bool
	var tmpdir string

	fs := flag.NewFlagSet(Z, flag.ExitOnError)

	fs.BoolVarP(&help, "help", "h", false, "Show help and exit [False]")
	fs.StringVarP(&tmpdir, "workdir", "d", "", "Use `D` as the test root directory [OS Tempdir]")
	fs.BoolVarP(&stdout, "log-stdout", "", false, "Put log output to STDOUT [False]")

	fs.SetOutput(os.Stdout)

	err := fs.Parse(os.Args[1:])
	if err != nil {
		Die("%s", err)
	}

	if help {
		usage(fs)
	}

	args := fs.Args()
	if len(args) == 0 {
		Die("Usage: %s test.t [test.t...]", Z)
	}

	tempdir := os.TempDir()
	if len(tmpdir) > 0 {
		tempdir = tmpdir
	}

	tempdir = path.Join(tempdir, "entropy", randstr(5))
	cfg := &config{
		tempdir:   tempdir,
		logStdout: stdout,
	}

	for _, fn := range args {
		err = runTest(cfg, fn)
		if err != nil {
			break
		}
	}

	if err != nil {
		Die("%s", err)
	}

	// only cleanup tempdir iff no errors
	// Each test will cleanup its own dir if no-error
	err = os.RemoveAll(tempdir)
	if err != nil {
		Die("can't remove tempdir %s: %s", tempdir, err)
	}
}

// Run a single test in file 'fn'
func runTest(cfg *config, fn string) error {
	ts, err := ReadTest(fn)
	if err != nil {
		return err
	}

	tname := path.Base(fn)
	if err = RunTest(tname, cfg, ts); err != nil {
		return err
	}

	return nil
}

func usage(fs *flag.FlagSet) {
	fmt.Printf(usageStr, Z, Z)
	fs.PrintDefaults()
	os.Exit(1)
}

func randstr(n int) string {
	b, err := entropy.Bytes(n)
	if err != nil {
		panic("can't read random bytes from OS")
	}
	return fmt.Sprintf("%x", b)
}

var usageStr = `%s - entropy test runner.

Tests are described in a DSL. Each test must be in a file with a '.t' suffix.

Usage: %s [options] test.t [test.t...]

Options:
`
