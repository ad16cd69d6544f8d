/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tres

import (
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/tresport/value"
)

// Literal patterns. Color components are unsigned; Vector2 components
// may carry a sign. Both patterns anchor at the start only, matching
// the tolerant behavior of hand-authored files with trailing noise.
var (
	colorPattern   = regexp.MustCompile(`^Color\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*\)`)
	vector2Pattern = regexp.MustCompile(`^Vector2\(\s*([\d.-]+)\s*,\s*([\d.-]+)\s*\)`)
	intPattern     = regexp.MustCompile(`^-?\d+$`)
	floatPattern   = regexp.MustCompile(`^-?\d+\.\d*$`)
)

// classifier pairs a literal matcher with its constructor. It reports
// false when the raw text does not match its literal form.
type classifier func(raw string) (value.Value, bool)

// classifiers is evaluated in order; the first match wins. The order is
// load-bearing: several literal forms are textual subsets of later
// ones (a Color body is digits and dots, a quoted string may start
// with a digit, and so on).
// Assigned in init rather than at declaration to break the spurious
// initialization cycle the compiler sees through classifyArray and
// classifyMap, which recurse into Classify.
var classifiers []classifier

func init() {
	classifiers = []classifier{
		classifyKeyword,
		classifyColor,
		classifyVector2,
		classifyQuoted,
		classifyArray,
		classifyMap,
		classifyInt,
		classifyFloat,
	}
}

// Classify converts raw literal text to a Value. It is total: text that
// matches no recognized literal form comes back as the trimmed input
// String, never an error.
func Classify(raw string) value.Value {
	raw = strings.TrimSpace(raw)
	for _, c := range classifiers {
		if v, ok := c(raw); ok {
			return v
		}
	}
	return value.String(raw)
}

func classifyKeyword(raw string) (value.Value, bool) {
	switch raw {
	case "true":
		return value.Bool(true), true
	case "false":
		return value.Bool(false), true
	case "null", "nil":
		return value.Null{}, true
	}
	return nil, false
}

func classifyColor(raw string) (value.Value, bool) {
	m := colorPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}

	var components [4]float64
	for i := range components {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return nil, false
		}
		components[i] = f
	}

	return value.Color{
		R: components[0],
		G: components[1],
		B: components[2],
		A: components[3],
	}, true
}

func classifyVector2(raw string) (value.Value, bool) {
	m := vector2Pattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}

	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, false
	}
	y, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, false
	}

	return value.Vector2{X: x, Y: y}, true
}

func classifyQuoted(raw string) (value.Value, bool) {
	if len(raw) < 2 || !strings.HasPrefix(raw, `"`) || !strings.HasSuffix(raw, `"`) {
		return nil, false
	}
	// No escape decoding: embedded escape sequences are preserved
	// literally in the value.
	return value.String(raw[1 : len(raw)-1]), true
}

func classifyArray(raw string) (value.Value, bool) {
	if !strings.HasPrefix(raw, "[") {
		return nil, false
	}
	return parseArray(raw), true
}

func classifyMap(raw string) (value.Value, bool) {
	if !strings.HasPrefix(raw, "{") {
		return nil, false
	}
	return parseMap(raw), true
}

func classifyInt(raw string) (value.Value, bool) {
	if !intPattern.MatchString(raw) {
		return nil, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Out of int64 range: fall through to the raw-string fallback.
		return nil, false
	}
	return value.Int(n), true
}

func classifyFloat(raw string) (value.Value, bool) {
	if !floatPattern.MatchString(raw) {
		return nil, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return value.Float(f), true
}
