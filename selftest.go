// selftest.go - concurrent sanity check of an entropy backend
//
// Workers draw fixed size chunks from the source in parallel; a
// collector goroutine harvests the chunks and errors. The check fails
// on any Fill error, any all-zero chunk, or any two identical chunks:
// a repeated 32-byte chunk from a real entropy source means the
// backend is broken, not that we got unlucky.
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

package entropy

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

const (
	// bytes per drawn chunk
	selftestChunk = 32

	// chunks drawn by each worker
	selftestDraws = 16
)

// SelfTest exercises 'src' from several goroutines and reports
// whether it behaves like an entropy source. It consumes a few KB of
// entropy; intended for startup health checks, not per-request use.
func SelfTest(src Source) error {
	nworkers := min(runtime.NumCPU(), 4)

	var wg sync.WaitGroup
	ch := make(chan []byte, nworkers)
	ech := make(chan error, nworkers)

	wg.Add(nworkers)
	for i := 0; i < nworkers; i++ {
		go func() {
			defer wg.Done()
			for d := 0; d < selftestDraws; d++ {
				buf := make([]byte, selftestChunk)
				if err := fillFull(src, buf); err != nil {
					ech <- fmt.Errorf("selftest: %s: %w", src.Method(), err)
					return
				}
				if allZero(buf) {
					ech <- fmt.Errorf("selftest: %s: all-zero chunk", src.Method())
					return
				}
				ch <- buf
			}
		}()
	}

	// harvest chunks and look for repeats
	var ewg sync.WaitGroup
	var errs []error

	ewg.Add(1)
	go func() {
		defer ewg.Done()
		seen := make(map[string]bool, nworkers*selftestDraws)
		for buf := range ch {
			k := string(buf)
			if seen[k] {
				errs = append(errs, fmt.Errorf("selftest: %s: duplicate %d byte chunk",
					src.Method(), len(buf)))
				continue
			}
			seen[k] = true
		}
	}()

	wg.Wait()
	close(ch)
	close(ech)
	ewg.Wait()

	for e := range ech {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
