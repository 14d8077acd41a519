// reader.go - io.Reader front over an entropy Source
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
	"io"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// Reader adapts a Source to io.Reader. It splits requests larger than
// the backend's MaxChunkSize() into multiple Fill calls and serializes
// concurrent Reads, so one Reader can back many goroutines.
type Reader struct {
	src Source

	mu    sync.Mutex
	total *xsync.Counter
}

var _ io.Reader = &Reader{}

// NewReader wraps 'src' in a chunking, concurrency safe Reader.
func NewReader(src Source) *Reader {
	return &Reader{
		src:   src,
		total: xsync.NewCounter(),
	}
}

// Read fills all of p with random bytes. It never returns a short
// read: the result is (len(p), nil) or (0, err).
func (r *Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	err := fillFull(r.src, p)
	r.mu.Unlock()

	if err != nil {
		return 0, err
	}

	r.total.Add(int64(len(p)))
	return len(p), nil
}

// Source returns the backend this Reader draws from.
func (r *Reader) Source() Source {
	return r.src
}

// Total returns the number of bytes delivered by this Reader so far;
// purely diagnostic.
func (r *Reader) Total() int64 {
	return r.total.Value()
}

// package-wide default reader; the backend is detected on first use
// and reused afterwards.
var defaultReader = sync.OnceValues(func() (*Reader, error) {
	src, err := New()
	if err != nil {
		return nil, err
	}
	return NewReader(src), nil
})

// Default returns the process wide Reader over the platform backend.
func Default() (*Reader, error) {
	return defaultReader()
}

// Fill overwrites all of b with random bytes from the platform
// backend.
func Fill(b []byte) error {
	rd, err := Default()
	if err != nil {
		return err
	}
	_, err = rd.Read(b)
	return err
}

// Bytes returns n freshly drawn random bytes.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := Fill(b); err != nil {
		return nil, err
	}
	return b, nil
}
