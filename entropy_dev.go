// entropy_dev.go - /dev/urandom backend for darwin and the remaining unixes
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

//go:build unix && !linux && !openbsd

package entropy

import (
	"io"
	"math"
	"os"
)

const devRandom = "/dev/urandom"

// devSource reads the kernel character device. The fd is held for the
// lifetime of the source and shared by all Fill calls; interleaved
// reads are harmless since ordering of random bytes carries no
// meaning.
type devSource struct {
	fd *os.File
}

func newSource() (Source, error) {
	fd, err := os.Open(devRandom)
	if err != nil {
		return nil, &Error{Kind: Unavailable, Msg: devRandom + " is not usable", Err: err}
	}
	return &devSource{fd: fd}, nil
}

func (s *devSource) Fill(dest []byte) error {
	_, err := io.ReadFull(s.fd, dest)
	return err
}

func (s *devSource) MaxChunkSize() int {
	return math.MaxInt
}

func (s *devSource) Method() string {
	return devRandom
}
