// reader_test.go - chunking reader tests
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
	"io"
	"sync"
	"testing"
)

func TestReaderChunking(t *testing.T) {
	assert := newAsserter(t)

	src := &patSource{max: 8, pat: 0xA5}
	rd := NewReader(src)

	buf := make([]byte, 100)
	n, err := rd.Read(buf)
	assert(err == nil, "read: %s", err)
	assert(n == 100, "read: short read %d", n)

	// 12 full chunks and one 4 byte tail
	assert(len(src.calls) == 13, "fill calls: %d", len(src.calls))
	total := 0
	for i, c := range src.calls {
		assert(c <= src.max, "fill %d: chunk %d over limit %d", i, c, src.max)
		total += c
	}
	assert(total == 100, "fill total: %d", total)
	assert(src.calls[len(src.calls)-1] == 4, "tail chunk: %d", src.calls[len(src.calls)-1])

	for i, v := range buf {
		assert(v == 0xA5, "byte %d not overwritten: %#x", i, v)
	}

	assert(rd.Total() == 100, "total: %d", rd.Total())
	assert(rd.Source() == Source(src), "source identity lost")
}

func TestReaderSmallRequest(t *testing.T) {
	assert := newAsserter(t)

	src := &patSource{max: 4096, pat: 0x42}
	rd := NewReader(src)

	buf := make([]byte, 5)
	_, err := io.ReadFull(rd, buf)
	assert(err == nil, "read: %s", err)
	assert(len(src.calls) == 1, "fill calls: %d", len(src.calls))

	// zero length reads are harmless
	n, err := rd.Read(nil)
	assert(err == nil, "read nil: %s", err)
	assert(n == 0, "read nil: n %d", n)
	assert(rd.Total() == 5, "total: %d", rd.Total())
}

func TestReaderError(t *testing.T) {
	assert := newAsserter(t)

	boom := errors.New("backend gone")
	rd := NewReader(&errSource{err: boom})

	buf := make([]byte, 16)
	n, err := rd.Read(buf)
	assert(n == 0, "read: n %d on error", n)
	assert(errors.Is(err, boom), "read: wrong error %v", err)
}

func TestReaderConcurrent(t *testing.T) {
	assert := newAsserter(t)

	src := &seqSource{max: 64}
	rd := NewReader(src)

	const nread = 50
	var wg sync.WaitGroup

	wg.Add(4)
	for i := 0; i < 4; i++ {
		go func() {
			defer wg.Done()
			buf := make([]byte, 160)
			for j := 0; j < nread; j++ {
				if _, err := rd.Read(buf); err != nil {
					panic(err)
				}
			}
		}()
	}
	wg.Wait()

	assert(rd.Total() == 4*nread*160, "total: %d", rd.Total())
}
