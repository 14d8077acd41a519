// jsenv.go - JS host runtime detection and entropy delegates
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
	"math"
)

// A JS embedding offers exactly one of two random-fill facilities:
// a server-side host runtime has a built-in "crypto" module with
// randomFillSync(), a browser window or worker exposes a global
// crypto object with getRandomValues(). detectSource probes the
// environment once and binds to whichever is present.
//
// The probing runs over jsEnviron/jsValue so it can be exercised with
// stub environments on every platform; entropy_js.go supplies the
// real syscall/js binding.

// jsValue is a minimal view of one JS value.
type jsValue interface {
	// IsUndefined reports whether the value is JS `undefined`.
	IsUndefined() bool

	// Get reads property 'prop' off the value.
	Get(prop string) jsValue

	// FillRandom invokes the named random-fill method on the value,
	// overwriting all of dest.
	FillRandom(method string, dest []byte)
}

// jsEnviron is the ambient JS embedding.
type jsEnviron interface {
	// GlobalThis returns the implicit global object ("this" at the
	// top level). A supported embedding can always produce it.
	GlobalThis() jsValue

	// Require resolves a built-in module by name, like the host's
	// require() function.
	Require(module string) jsValue
}

// getRandomValues rejects requests larger than 64 KiB with a
// QuotaExceededError; callers split at this boundary.
const browserChunkMax = 65536

// detectSource determines whether the embedding is a server-side host
// runtime or a browser-like one and binds to its entropy facility.
//
// The discriminator is the `self` property of the global object: it is
// defined only in browser windows and workers. Without it we assume a
// host runtime and take its "crypto" module as-is; with it we insist
// on a usable self.crypto.getRandomValues and fail with an Unavailable
// error otherwise.
func detectSource(env jsEnviron) (Source, error) {
	this := env.GlobalThis()
	if this == nil || this.IsUndefined() {
		// every supported embedding can produce the global object;
		// this is not a recoverable condition.
		panic("entropy: js global object is undefined")
	}

	if this.Get("self").IsUndefined() {
		// Host runtime. Acquisition of the crypto module is not
		// validated here; a throwing require propagates as-is.
		return &hostSource{crypto: env.Require("crypto")}, nil
	}

	// Browser window or web worker. Older browsers may not define
	// crypto at all.
	crypto := this.Get("crypto")
	if crypto.IsUndefined() {
		return nil, &Error{Kind: Unavailable, Msg: "self.crypto is undefined"}
	}

	// Probe the function without invoking it.
	if crypto.Get("getRandomValues").IsUndefined() {
		return nil, &Error{Kind: Unavailable, Msg: "self.crypto.getRandomValues is undefined"}
	}

	return &browserSource{crypto: crypto}, nil
}

// hostSource is the server-side host runtime backend; it delegates to
// the built-in crypto module's randomFillSync().
type hostSource struct {
	crypto jsValue
}

// Fill overwrites dest with bytes from randomFillSync. The delegate is
// synchronous and all-or-nothing; errors it raises are not translated
// at this layer.
func (s *hostSource) Fill(dest []byte) error {
	s.crypto.FillRandom("randomFillSync", dest)
	return nil
}

func (s *hostSource) MaxChunkSize() int {
	return math.MaxInt
}

func (s *hostSource) Method() string {
	return "crypto.randomFillSync"
}

// browserSource is the browser/worker backend; it delegates to the
// global crypto object's getRandomValues().
type browserSource struct {
	crypto jsValue
}

// Fill overwrites dest with bytes from getRandomValues. dest must not
// exceed browserChunkMax; the delegate enforces its quota itself.
func (s *browserSource) Fill(dest []byte) error {
	s.crypto.FillRandom("getRandomValues", dest)
	return nil
}

func (s *browserSource) MaxChunkSize() int {
	return browserChunkMax
}

func (s *browserSource) Method() string {
	return "crypto.getRandomValues"
}

var (
	_ Source = &hostSource{}
	_ Source = &browserSource{}
)
