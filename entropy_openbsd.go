// entropy_openbsd.go - OpenBSD getentropy(2) backend
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

//go:build openbsd

package entropy

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// getentropy(2) rejects requests over 256 bytes with EIO.
const getentropyMax = 256

type getentropySource struct{}

func newSource() (Source, error) {
	return &getentropySource{}, nil
}

func (s *getentropySource) Fill(dest []byte) error {
	if len(dest) == 0 {
		return nil
	}

	_, _, errno := unix.Syscall(unix.SYS_GETENTROPY,
		uintptr(unsafe.Pointer(&dest[0])),
		uintptr(len(dest)), 0)
	if errno != 0 {
		return errno
	}
	return nil
}

func (s *getentropySource) MaxChunkSize() int {
	return getentropyMax
}

func (s *getentropySource) Method() string {
	return "getentropy(2)"
}
