// selftest_test.go - backend sanity check tests
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
	"strings"
	"testing"
)

func TestSelfTestHealthy(t *testing.T) {
	assert := newAsserter(t)

	err := SelfTest(&seqSource{max: 4096})
	assert(err == nil, "selftest: %s", err)

	// a tiny chunk limit only makes fills slower, not wrong
	err = SelfTest(&seqSource{max: 8})
	assert(err == nil, "selftest small chunks: %s", err)
}

func TestSelfTestStuckAtZero(t *testing.T) {
	assert := newAsserter(t)

	err := SelfTest(&patSource{max: 4096, pat: 0})
	assert(err != nil, "selftest: zero source passed")
	assert(strings.Contains(err.Error(), "all-zero"), "selftest: wrong error %v", err)
}

func TestSelfTestConstant(t *testing.T) {
	assert := newAsserter(t)

	err := SelfTest(&patSource{max: 4096, pat: 0x5A})
	assert(err != nil, "selftest: constant source passed")
	assert(strings.Contains(err.Error(), "duplicate"), "selftest: wrong error %v", err)
}

func TestSelfTestBackendError(t *testing.T) {
	assert := newAsserter(t)

	boom := errors.New("backend gone")
	err := SelfTest(&errSource{err: boom})
	assert(errors.Is(err, boom), "selftest: wrong error %v", err)
}
