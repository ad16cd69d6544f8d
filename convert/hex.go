/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tresport/value"
)

// hexify replaces Color values with their hex string form, recursing
// through composites. Alpha is omitted from the hex notation when
// fully opaque.
func hexify(v value.Value) value.Value {
	switch x := v.(type) {
	case value.Color:
		c := csscolorparser.Color{R: x.R, G: x.G, B: x.B, A: x.A}
		return value.String(c.HexString())
	case value.Array:
		for i, elem := range x {
			x[i] = hexify(elem)
		}
		return x
	case *value.Map:
		hexifyMap(x)
		return x
	}
	return v
}

// hexifyMap rewrites every Color value in m, in place.
func hexifyMap(m *value.Map) {
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		m.Set(k, hexify(v))
	}
}
