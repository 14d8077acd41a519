// entropy_windows.go - Windows ProcessPrng backend
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

//go:build windows

package entropy

import (
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ProcessPrng is the per-process system RNG (bcryptprimitives.dll);
// it needs no provider handle and cannot fail once the DLL is loaded.
var (
	bcryptprimitives = windows.NewLazySystemDLL("bcryptprimitives.dll")
	procProcessPrng  = bcryptprimitives.NewProc("ProcessPrng")
)

type winSource struct{}

func newSource() (Source, error) {
	if err := procProcessPrng.Find(); err != nil {
		return nil, &Error{Kind: Unavailable, Msg: "ProcessPrng is not exported", Err: err}
	}
	return &winSource{}, nil
}

func (s *winSource) Fill(dest []byte) error {
	if len(dest) == 0 {
		return nil
	}

	// the length argument is a SIZE_T; chunks are capped at MaxInt32
	// so the arithmetic stays in int range on 32-bit builds.
	r, _, err := procProcessPrng.Call(
		uintptr(unsafe.Pointer(&dest[0])),
		uintptr(len(dest)))
	if r == 0 {
		return err
	}
	return nil
}

func (s *winSource) MaxChunkSize() int {
	return math.MaxInt32
}

func (s *winSource) Method() string {
	return "ProcessPrng"
}
