// entropy_linux.go - Linux getrandom(2) backend
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

//go:build linux

package entropy

import (
	"golang.org/x/sys/unix"
)

// getrandom(2) transfers at most 2^25-1 bytes in one call.
const getrandomMax = 1<<25 - 1

type getrandomSource struct{}

func newSource() (Source, error) {
	// A zero length call still reaches the kernel; ENOSYS means a
	// pre-3.17 kernel without getrandom(2). No bytes are drawn here.
	if _, err := unix.Getrandom(nil, unix.GRND_NONBLOCK); err == unix.ENOSYS {
		return nil, &Error{Kind: Unavailable, Msg: "getrandom(2) is not implemented", Err: err}
	}
	return &getrandomSource{}, nil
}

// Fill overwrites dest via getrandom(2); reads over 256 bytes may be
// interrupted by signals, so short reads are resumed.
func (s *getrandomSource) Fill(dest []byte) error {
	for len(dest) > 0 {
		n, err := unix.Getrandom(dest, 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}
		dest = dest[n:]
	}
	return nil
}

func (s *getrandomSource) MaxChunkSize() int {
	return getrandomMax
}

func (s *getrandomSource) Method() string {
	return "getrandom(2)"
}
