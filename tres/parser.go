/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tres parses Godot .tres resource files into generic value
// trees.
//
// The parser is deliberately tolerant: .tres files are hand-edited, so
// unrecognized literal syntax degrades to a raw string and malformed
// composite literals degrade to an empty array or map instead of
// failing. Only the absence of a [resource] section is reported as an
// error.
//
// The package keeps no state, so parsing different files from different
// goroutines needs no synchronization. Composite literals are parsed
// recursively; nesting depth is bounded only by the call stack.
package tres

import (
	"errors"
	"fmt"

	"bennypowers.dev/tresport/fs"
	"bennypowers.dev/tresport/value"
)

// ErrNoResourceSection is returned when a file contains no [resource]
// section. Callers typically skip such files rather than fail.
var ErrNoResourceSection = errors.New("no [resource] section")

// Parser converts .tres resource file content into Documents.
type Parser struct{}

// NewParser creates a new .tres parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the [resource] section from data and classifies each
// field assignment in it, returning the resulting Document. Duplicate
// keys overwrite earlier values. Returns ErrNoResourceSection when the
// file has no [resource] section.
func (p *Parser) Parse(data []byte) (*value.Map, error) {
	section, ok := ExtractResourceSection(string(data))
	if !ok {
		return nil, ErrNoResourceSection
	}

	doc := value.NewMap()
	for key, raw := range Assignments(section) {
		doc.Set(key, Classify(raw))
	}
	return doc, nil
}

// ParseFile reads and parses a .tres file, returning its Document.
func (p *Parser) ParseFile(filesystem fs.FileSystem, path string) (*value.Map, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
