/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tres

import (
	"strings"

	"bennypowers.dev/tresport/value"
)

// The composite scanners split a bracketed literal into its top-level
// fragments by tracking bracket-nesting depth and quoted-string state.
// The quote check is a minimal escape heuristic, a single-character
// backslash lookback, not full escape decoding; the interchange target
// does not decode deeper escape forms either.
//
// Both scanners are fail-soft: a literal with a missing closing
// delimiter, unbalanced nesting, or an unterminated string yields an
// empty composite rather than an error, so one malformed field in a
// hand-edited file never poisons the rest of the document.

// parseArray parses a [...] literal into an Array. Elements are split
// on top-level commas and recursively classified. Malformed input
// yields an empty Array.
func parseArray(raw string) value.Array {
	items := value.Array{}
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return items
	}

	body := strings.TrimSpace(raw[1 : len(raw)-1])
	if body == "" {
		return items
	}

	depth := 0
	inString := false
	var current []byte

	for i := 0; i < len(body); i++ {
		ch := body[i]

		if ch == '"' && (len(current) == 0 || current[len(current)-1] != '\\') {
			inString = !inString
		}

		if !inString {
			switch ch {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			case ',':
				if depth == 0 {
					items = append(items, Classify(string(current)))
					current = current[:0]
					continue
				}
			}
		}

		current = append(current, ch)
	}

	if depth != 0 || inString {
		return value.Array{}
	}

	if frag := strings.TrimSpace(string(current)); frag != "" {
		items = append(items, Classify(frag))
	}

	return items
}

// parseMap parses a {...} literal into a Map. A top-level colon ends
// the current key, a top-level comma commits the current entry. Keys
// are plain strings, trimmed and stripped of one surrounding quote
// pair, never recursively classified. Malformed input yields an empty
// Map.
//
// Unlike parseArray, the quote lookback here inspects the previous
// byte of the brace body rather than the accumulated fragment. The
// asymmetry is kept as is so conversion output stays stable for
// existing assets.
func parseMap(raw string) *value.Map {
	result := value.NewMap()
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return result
	}

	body := strings.TrimSpace(raw[1 : len(raw)-1])
	if body == "" {
		return result
	}

	depth := 0
	inString := false
	parsingKey := true
	var key string
	var current []byte

	for i := 0; i < len(body); i++ {
		ch := body[i]

		if ch == '"' && (i == 0 || body[i-1] != '\\') {
			inString = !inString
		}

		if !inString {
			switch ch {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			case ':':
				if depth == 0 && parsingKey {
					key = unquoteKey(strings.TrimSpace(string(current)))
					current = current[:0]
					parsingKey = false
					continue
				}
			case ',':
				if depth == 0 {
					if !parsingKey {
						result.Set(key, Classify(string(current)))
					}
					key = ""
					current = current[:0]
					parsingKey = true
					continue
				}
			}
		}

		current = append(current, ch)
	}

	if depth != 0 || inString {
		return value.NewMap()
	}

	if !parsingKey {
		if frag := strings.TrimSpace(string(current)); frag != "" {
			result.Set(key, Classify(frag))
		}
	}

	return result
}

// unquoteKey strips a single pair of surrounding double quotes.
func unquoteKey(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
