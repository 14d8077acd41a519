// entropy.go - OS/host entropy source abstraction
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

// Package entropy provides a uniform interface for obtaining
// cryptographically secure random bytes from the operating system or
// host runtime. Each supported platform contributes one backend
// (getrandom(2), getentropy(2), RtlGenRandom, the JS host crypto
// object, /dev/urandom); the backend is picked once by New() and never
// changes for the lifetime of the returned Source.
//
// A Source is a thin conduit to the platform facility: it does not
// buffer, mix or post-process the bytes it returns. Backends differ in
// how many bytes one call may request; callers either respect
// MaxChunkSize() themselves or use Reader which splits large requests
// transparently.
package entropy

// Source is a single platform entropy backend.
type Source interface {
	// Fill overwrites every byte of dest with random bytes from the
	// backend. The caller must not pass a buffer longer than
	// MaxChunkSize(); Fill does not re-check this.
	Fill(dest []byte) error

	// MaxChunkSize returns the largest buffer one Fill call may
	// request from this backend.
	MaxChunkSize() int

	// Method returns a fixed, human readable label for the backend;
	// used in diagnostics and error messages.
	Method() string
}

// New detects the entropy facility of the current platform and returns
// a Source bound to it. Detection runs exactly once per returned
// Source; the binding never changes afterwards.
func New() (Source, error) {
	return newSource()
}

// fillFull fills all of dest from src, splitting the request into
// MaxChunkSize() sized pieces as needed.
func fillFull(src Source, dest []byte) error {
	max := src.MaxChunkSize()
	for len(dest) > 0 {
		n := min(max, len(dest))
		if err := src.Fill(dest[:n]); err != nil {
			return err
		}
		dest = dest[n:]
	}
	return nil
}
