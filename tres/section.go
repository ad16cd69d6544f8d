/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tres

import (
	"iter"
	"regexp"
	"strings"
)

// resourceSectionPattern matches the [resource] section marker and
// captures everything after it to the end of the file.
var resourceSectionPattern = regexp.MustCompile(`(?s)\[resource\](.*)`)

// assignmentPattern matches a flat field assignment: identifier = rest.
var assignmentPattern = regexp.MustCompile(`^(\w+)\s*=\s*(.+)$`)

// scriptPrefix marks script-binding metadata lines, which are not data
// fields.
const scriptPrefix = "script"

// ExtractResourceSection locates the [resource] marker in content and
// returns everything after it. The second result is false when the file
// has no such section; no further validation of file structure is
// performed.
func ExtractResourceSection(content string) (string, bool) {
	m := resourceSectionPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Assignments walks a [resource] section body line by line and yields
// (key, raw value text) pairs. Blank lines, # comments, lines whose key
// begins with the script prefix, and lines that do not match the
// assignment pattern are skipped. The sequence is lazy; ranging over it
// again restarts the walk.
func Assignments(section string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for line := range strings.Lines(strings.TrimSpace(section)) {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, scriptPrefix) {
				continue
			}

			m := assignmentPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			if !yield(m[1], strings.TrimSpace(m[2])) {
				return
			}
		}
	}
}
