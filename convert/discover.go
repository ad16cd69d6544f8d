/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// discover expands a source glob pattern against the source root and
// returns matching file paths in lexical walk order. An absent base
// directory yields no matches rather than an error, so optional
// subdirectories (like data/skills/heroes) can be listed
// unconditionally.
func (c *Converter) discover(pattern string) ([]string, error) {
	pattern = filepath.Join(c.cfg.Source, pattern)

	if !containsGlob(pattern) {
		if c.fs.Exists(pattern) {
			return []string{pattern}, nil
		}
		return nil, nil
	}

	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	if !c.fs.Exists(baseDir) {
		return nil, nil
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(c.fs, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matchDoublestar(relPattern, filepath.ToSlash(relPath)) {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// matchDoublestar provides glob matching using the doublestar library,
// so patterns may use ** to cross directory boundaries while a plain *
// stays within one.
func matchDoublestar(pattern, path string) bool {
	matched, _ := doublestar.Match(pattern, path)
	return matched
}
