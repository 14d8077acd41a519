// feed_unix.go - feed seed bytes back into the kernel pool
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

//go:build unix

package entropy

import (
	"fmt"
	"os"
)

// FeedKernel mixes 'seed' into the kernel entropy pool by writing it
// to /dev/urandom. Writes mix without crediting entropy, so no
// privileges are needed and a bad seed can not hurt the pool.
func FeedKernel(seed []byte) error {
	if len(seed) == 0 {
		return fmt.Errorf("feed: empty seed")
	}

	fd, err := os.OpenFile("/dev/urandom", os.O_WRONLY, 0)
	if err != nil {
		return &Error{Kind: Unavailable, Msg: "/dev/urandom is not writable", Err: err}
	}
	defer fd.Close()

	if _, err = fd.Write(seed); err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	return nil
}
