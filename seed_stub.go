// seed_stub.go - no seed file support on these platforms
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

//go:build !unix && !windows

package entropy

// Seed files need mmap and extended attribute support, neither of
// which exists on these platforms; the core Source/Reader surface is
// unaffected.

// SaveSeed is not implemented on this platform.
func SaveSeed(path string, src Source, n int) error {
	return &Error{Kind: Unsupported, Msg: "seed files are not supported"}
}

// LoadSeed is not implemented on this platform.
func LoadSeed(path string) ([]byte, error) {
	return nil, &Error{Kind: Unsupported, Msg: "seed files are not supported"}
}

// SeedConsumed always reports false on this platform.
func SeedConsumed(path string) bool {
	return false
}
