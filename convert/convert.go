/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert drives per-category conversion of .tres resources
// into category JSON files.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/tresport/config"
	tresfs "bennypowers.dev/tresport/fs"
	"bennypowers.dev/tresport/internal/logger"
	"bennypowers.dev/tresport/tres"
	"bennypowers.dev/tresport/value"
)

// Converter converts a Godot project's resource files into one JSON
// file per configured category.
type Converter struct {
	fs     tresfs.FileSystem
	cfg    *config.Config
	parser *tres.Parser
	dryRun bool
}

// New creates a Converter for the given filesystem and configuration.
func New(filesystem tresfs.FileSystem, cfg *config.Config) *Converter {
	return &Converter{
		fs:     filesystem,
		cfg:    cfg,
		parser: tres.NewParser(),
	}
}

// SetDryRun controls dry-run mode: discover and parse as usual, but
// write no output files or directories.
func (c *Converter) SetDryRun(dry bool) {
	c.dryRun = dry
}

// CategoryResult reports the outcome of converting one category.
type CategoryResult struct {
	// Name is the category name.
	Name string

	// Documents is the number of documents written.
	Documents int

	// Failures is the number of files that could not be converted.
	Failures int

	// Path is the output file the category was written to.
	Path string
}

// Summary aggregates per-category results for a conversion run.
type Summary struct {
	Categories []CategoryResult
}

// Documents returns the total number of documents written.
func (s *Summary) Documents() int {
	var n int
	for _, c := range s.Categories {
		n += c.Documents
	}
	return n
}

// Failures returns the total number of files that failed to convert.
func (s *Summary) Failures() int {
	var n int
	for _, c := range s.Categories {
		n += c.Failures
	}
	return n
}

// Run converts every configured category.
func (c *Converter) Run() (*Summary, error) {
	return c.RunCategories(nil)
}

// RunCategories converts the named categories, or every configured
// category when names is empty. A file that fails to convert is logged
// and counted but never aborts the rest of the batch.
func (c *Converter) RunCategories(names []string) (*Summary, error) {
	if !c.dryRun {
		if err := c.fs.MkdirAll(c.cfg.Output, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", c.cfg.Output, err)
		}
	}

	summary := &Summary{}
	for _, cat := range c.cfg.Categories {
		if len(names) > 0 && !slices.Contains(names, cat.Name) {
			continue
		}

		result, err := c.convertCategory(cat)
		if err != nil {
			return nil, err
		}
		summary.Categories = append(summary.Categories, result)
	}

	return summary, nil
}

// convertCategory parses every source of a category, post-processes the
// documents, and writes the aggregate JSON file.
func (c *Converter) convertCategory(cat config.Category) (CategoryResult, error) {
	logger.Info("[%s]", strings.ToUpper(cat.Name))

	result := CategoryResult{Name: cat.Name}
	docs := []*value.Map{}

	for _, src := range cat.Sources {
		files, err := c.discover(src.Pattern)
		if err != nil {
			return result, fmt.Errorf("failed to expand pattern %s: %w", src.Pattern, err)
		}

		for _, file := range files {
			doc, err := c.parser.ParseFile(c.fs, file)
			if err != nil {
				if errors.Is(err, tres.ErrNoResourceSection) {
					// Not resource data; skip silently.
					continue
				}
				logger.Warn("failed to convert %s: %v", file, err)
				result.Failures++
				continue
			}

			c.postProcess(doc, src)
			docs = append(docs, doc)
			logger.Info("  Converted: %s", displayName(doc, file))
		}
	}

	outPath := filepath.Join(c.cfg.Output, cat.Name+".json")
	if !c.dryRun {
		if err := c.writeCategory(outPath, docs); err != nil {
			return result, err
		}
	}

	result.Documents = len(docs)
	result.Path = outPath
	logger.Info("  Total: %d", len(docs))
	return result, nil
}

// postProcess applies a source's category-specific rewrites to a
// freshly parsed document: engine path rewriting, injected fields, and
// optional hex color rendering.
func (c *Converter) postProcess(doc *value.Map, src config.Source) {
	for _, field := range src.PathFields {
		v, ok := doc.Get(field)
		if !ok {
			continue
		}
		if s, ok := v.(value.String); ok {
			doc.Set(field, value.String(RewritePath(string(s), c.cfg.ResourcePrefix)))
		}
	}

	for _, field := range slices.Sorted(maps.Keys(src.Inject)) {
		v, err := value.FromGo(src.Inject[field])
		if err != nil {
			logger.Warn("cannot inject field %s: %v", field, err)
			continue
		}
		doc.Set(field, v)
	}

	if c.cfg.HexColors {
		hexifyMap(doc)
	}
}

// writeCategory serializes docs as pretty-printed JSON, preserving the
// field order of each document, and writes them to path.
func (c *Converter) writeCategory(path string, docs []*value.Map) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}

	if err := c.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// RewritePath converts an engine resource path to a portable one by
// stripping the engine URI prefix and normalizing directory separators
// to forward slashes.
func RewritePath(p, prefix string) string {
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, prefix, "")
	return strings.ReplaceAll(p, `\`, "/")
}

// displayName returns a document's display_name field, falling back to
// the source file's stem.
func displayName(doc *value.Map, file string) string {
	if v, ok := doc.Get("display_name"); ok {
		if s, ok := v.(value.String); ok {
			return string(s)
		}
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
