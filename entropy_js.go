// entropy_js.go - syscall/js binding for the JS backend
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

//go:build js && wasm

package entropy

import (
	"syscall/js"
)

func newSource() (Source, error) {
	return detectSource(jsRuntime{})
}

// jsRuntime adapts syscall/js to the jsEnviron/jsValue views used by
// detectSource.
type jsRuntime struct{}

func (jsRuntime) GlobalThis() jsValue {
	return jsVal{js.Global()}
}

func (jsRuntime) Require(module string) jsValue {
	return jsVal{js.Global().Call("require", module)}
}

type jsVal struct {
	v js.Value
}

func (j jsVal) IsUndefined() bool {
	return j.v.IsUndefined()
}

func (j jsVal) Get(prop string) jsValue {
	return jsVal{j.v.Get(prop)}
}

// FillRandom calls the random-fill method with a scratch Uint8Array
// and copies the result back; wasm linear memory is not visible to
// the JS side, so the bytes must round-trip through a JS buffer.
func (j jsVal) FillRandom(method string, dest []byte) {
	a := uint8Array.New(len(dest))
	j.v.Call(method, a)
	js.CopyBytesToGo(dest, a)
}

var uint8Array = js.Global().Get("Uint8Array")
