// errors.go - descriptive errors for entropy backends
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
)

// Kind classifies entropy errors.
type Kind int

const (
	// Unavailable indicates the backend (or a capability it needs)
	// is not present in the current environment. A caller with
	// multiple backends should try the next one.
	Unavailable Kind = 1 + iota

	// Unsupported indicates the requested operation has no
	// implementation on the current platform.
	Unsupported
)

// String returns the name of the error kind
func (k Kind) String() string {
	switch k {
	case Unavailable:
		return "unavailable"
	case Unsupported:
		return "unsupported"
	}
	return fmt.Sprintf("kind-%d", int(k))
}

// Error represents errors returned by New, LoadSeed, SaveSeed and
// FeedKernel. Msg is a fixed description of what exactly was found
// missing; Err, when non-nil, is the underlying OS error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error returns a string representation of Error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("entropy: %s: %s: %s", e.Kind, e.Msg, e.Err.Error())
	}
	return fmt.Sprintf("entropy: %s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrSeedConsumed is returned by LoadSeed for a seed file that was
// already handed out once before.
var ErrSeedConsumed = errors.New("entropy: seed already consumed")

var _ error = &Error{}
