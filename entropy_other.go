// entropy_other.go - crypto/rand fallback for everything else
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

//go:build !unix && !windows && !js

package entropy

import (
	"crypto/rand"
	"io"
	"math"
)

// Platforms without a directly reachable kernel facility (plan9,
// wasip1) go through the Go runtime's own entropy plumbing.
type stdSource struct{}

func newSource() (Source, error) {
	return &stdSource{}, nil
}

func (s *stdSource) Fill(dest []byte) error {
	_, err := io.ReadFull(rand.Reader, dest)
	return err
}

func (s *stdSource) MaxChunkSize() int {
	return math.MaxInt
}

func (s *stdSource) Method() string {
	return "crypto/rand"
}
