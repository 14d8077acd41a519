// seed.go - entropy seed files
//
// A seed file carries entropy across restarts: bytes drawn from a
// Source are stashed on disk at shutdown and fed back into the kernel
// pool early at the next boot (see FeedKernel). A seed must never be
// replayed - feeding the same bytes twice makes the pool state
// partially predictable to anyone who read the file in between. Each
// successful LoadSeed therefore stamps the file as consumed.
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

//go:build unix || windows

package entropy

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/opencoff/go-mmap"
	"github.com/pkg/xattr"
)

// xattr stamped on a seed file once its contents were handed out.
const seedAttr = "user.entropy.consumed"

// SaveSeed draws 'n' fresh bytes from 'src' and writes them to 'path'
// atomically (temp file + rename, mode 0600). A previously consumed
// seed at the same path is replaced and becomes valid again.
func SaveSeed(path string, src Source, n int) error {
	if n <= 0 {
		return fmt.Errorf("seed: invalid size %d", n)
	}

	buf := make([]byte, n)
	if err := fillFull(src, buf); err != nil {
		return fmt.Errorf("seed: %s: %w", src.Method(), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".seed-*")
	if err != nil {
		return fmt.Errorf("seed: tempfile: %w", err)
	}

	tmpnm := tmp.Name()
	if err = writeSeed(tmp, buf); err != nil {
		tmp.Close()
		os.Remove(tmpnm)
		return fmt.Errorf("seed: %s: %w", tmpnm, err)
	}

	if err = os.Rename(tmpnm, path); err != nil {
		os.Remove(tmpnm)
		return fmt.Errorf("seed: rename: %w", err)
	}
	return nil
}

func writeSeed(fd *os.File, buf []byte) error {
	if err := fd.Chmod(0600); err != nil {
		return err
	}
	if _, err := fd.Write(buf); err != nil {
		return err
	}
	if err := fd.Sync(); err != nil {
		return err
	}
	return fd.Close()
}

// LoadSeed reads the seed file at 'path' and marks it consumed. A seed
// that was already consumed is refused with ErrSeedConsumed. The
// consumed stamp is an extended attribute; on filesystems without
// xattr support the stamp silently degrades and reuse goes
// undetected.
func LoadSeed(path string) ([]byte, error) {
	if _, err := xattr.Get(path, seedAttr); err == nil {
		return nil, ErrSeedConsumed
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	defer fd.Close()

	var buf []byte
	_, err = mmap.Reader(fd, func(b []byte) error {
		buf = append(buf, b...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}

	if len(buf) == 0 {
		return nil, fmt.Errorf("seed: %s: empty file", path)
	}

	// stamp before returning the bytes; best effort.
	now := strconv.FormatInt(time.Now().Unix(), 10)
	xattr.Set(path, seedAttr, []byte(now))

	return buf, nil
}

// SeedConsumed reports whether the seed at 'path' was already handed
// out once. It errs on the side of "consumed" only if the stamp is
// present; a missing file or missing xattr support reads as fresh.
func SeedConsumed(path string) bool {
	_, err := xattr.Get(path, seedAttr)
	return err == nil
}
