// die.go -- exit with a message
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
)

// Die prints a message to stderr and exits
func Die(s string, v ...interface{}) {
	Warn(s, v...)
	os.Exit(1)
}

// Warn prints a message to stderr
func Warn(s string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", Z, s)
	m := fmt.Sprintf(z, v...)
	if n := len(m); m[n-1] != '\n' {
		m += "\n"
	}
	os.Stderr.WriteString(m)
}
