// utils_test.go - test helpers
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
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("\n%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// patSource fills every byte with a fixed pattern and records the
// request sizes it sees.
type patSource struct {
	max int
	pat byte

	mu    sync.Mutex
	calls []int
}

func (s *patSource) Fill(dest []byte) error {
	s.mu.Lock()
	s.calls = append(s.calls, len(dest))
	s.mu.Unlock()

	for i := range dest {
		dest[i] = s.pat
	}
	return nil
}

func (s *patSource) MaxChunkSize() int {
	return s.max
}

func (s *patSource) Method() string {
	return "test-pattern"
}

// seqSource emits a strictly increasing counter so no two chunks can
// ever collide; safe for concurrent Fill calls.
type seqSource struct {
	max int

	mu sync.Mutex
	n  uint64
}

func (s *seqSource) Fill(dest []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var w [8]byte

	for i := range dest {
		if i%8 == 0 {
			s.n++
			binary.BigEndian.PutUint64(w[:], s.n)
		}
		dest[i] = w[i%8]
	}
	return nil
}

func (s *seqSource) MaxChunkSize() int {
	return s.max
}

func (s *seqSource) Method() string {
	return "test-seq"
}

// errSource always fails
type errSource struct {
	err error
}

func (s *errSource) Fill(dest []byte) error {
	return s.err
}

func (s *errSource) MaxChunkSize() int {
	return 4096
}

func (s *errSource) Method() string {
	return "test-err"
}
