// seed_test.go - seed file round trip tests
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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSeedRoundTrip(t *testing.T) {
	assert := newAsserter(t)
	fn := filepath.Join(t.TempDir(), "seed")

	src := &seqSource{max: 64}
	err := SaveSeed(fn, src, 512)
	assert(err == nil, "save: %s", err)

	st, err := os.Stat(fn)
	assert(err == nil, "stat: %s", err)
	assert(st.Size() == 512, "size: %d", st.Size())
	if runtime.GOOS != "windows" {
		assert(st.Mode().Perm() == 0600, "mode: %s", st.Mode())
	}

	// re-draw what the source produced for comparison
	want := make([]byte, 512)
	cmp := &seqSource{max: 64}
	err = fillFull(cmp, want)
	assert(err == nil, "refill: %s", err)

	got, err := LoadSeed(fn)
	assert(err == nil, "load: %s", err)
	assert(bytes.Equal(got, want), "seed bytes differ")
}

func TestSeedReuseRefused(t *testing.T) {
	assert := newAsserter(t)
	fn := filepath.Join(t.TempDir(), "seed")

	err := SaveSeed(fn, &seqSource{max: 4096}, 64)
	assert(err == nil, "save: %s", err)
	assert(!SeedConsumed(fn), "fresh seed marked consumed")

	_, err = LoadSeed(fn)
	assert(err == nil, "load: %s", err)

	if !SeedConsumed(fn) {
		t.Skipf("xattr not supported on %s", filepath.Dir(fn))
	}

	_, err = LoadSeed(fn)
	assert(errors.Is(err, ErrSeedConsumed), "reload: wrong error %v", err)

	// writing a new seed makes the path fresh again
	err = SaveSeed(fn, &seqSource{max: 4096}, 64)
	assert(err == nil, "re-save: %s", err)
	assert(!SeedConsumed(fn), "re-saved seed still marked consumed")

	_, err = LoadSeed(fn)
	assert(err == nil, "load after re-save: %s", err)
}

func TestSeedErrors(t *testing.T) {
	assert := newAsserter(t)
	tmp := t.TempDir()

	_, err := LoadSeed(filepath.Join(tmp, "no-such-seed"))
	assert(err != nil, "load: no error for missing file")

	err = SaveSeed(filepath.Join(tmp, "seed"), &seqSource{max: 64}, 0)
	assert(err != nil, "save: no error for zero size")

	boom := errors.New("backend gone")
	err = SaveSeed(filepath.Join(tmp, "seed"), &errSource{err: boom}, 32)
	assert(errors.Is(err, boom), "save: wrong error %v", err)

	// nothing may be left behind on a failed save
	ents, err := os.ReadDir(tmp)
	assert(err == nil, "readdir: %s", err)
	assert(len(ents) == 0, "leftover temp files: %v", ents)
}

func TestFeedKernel(t *testing.T) {
	assert := newAsserter(t)

	err := FeedKernel(nil)
	assert(err != nil, "feed: no error for empty seed")

	seed := make([]byte, 64)
	err = fillFull(&seqSource{max: 64}, seed)
	assert(err == nil, "fill: %s", err)

	err = FeedKernel(seed)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && (e.Kind == Unsupported || e.Kind == Unavailable) {
			t.Skipf("kernel pool not reachable: %s", err)
		}
		t.Fatalf("feed: %s", err)
	}
}
