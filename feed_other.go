// feed_other.go - no kernel pool to feed on these platforms
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

//go:build !unix

package entropy

// FeedKernel is not implemented on this platform; the seed is left
// untouched and the caller gets an Unsupported error.
func FeedKernel(seed []byte) error {
	return &Error{Kind: Unsupported, Msg: "no writable kernel entropy pool"}
}
