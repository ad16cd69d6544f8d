/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration for resource conversion: the
// source and destination roots and the category-to-directory layout.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// DefaultResourcePrefix is the engine URI prefix stripped from
// path-valued fields.
const DefaultResourcePrefix = "res://"

// Config represents the conversion configuration.
type Config struct {
	// Source is the root directory of the Godot project.
	Source string `yaml:"source" json:"source"`

	// Output is the directory category JSON files are written to.
	Output string `yaml:"output" json:"output"`

	// ResourcePrefix is the engine URI prefix stripped from path
	// fields (default "res://").
	ResourcePrefix string `yaml:"resourcePrefix" json:"resourcePrefix"`

	// HexColors renders Color values as hex strings instead of
	// component objects.
	HexColors bool `yaml:"hexColors" json:"hexColors"`

	// Categories lists the entity categories to convert. Empty means
	// the default layout.
	Categories []Category `yaml:"categories" json:"categories"`
}

// Category groups one output file's worth of resources.
type Category struct {
	// Name is the category name; documents are aggregated into
	// <Name>.json under Output.
	Name string `yaml:"name" json:"name"`

	// Sources lists where the category's resources live and how their
	// documents are post-processed.
	Sources []Source `yaml:"sources" json:"sources"`
}

// Source describes one set of resource files within a category.
// It can be specified as a simple glob string or as an object with
// post-processing options.
type Source struct {
	// Pattern is a glob, relative to Config.Source, matching resource
	// files (supports ** via doublestar).
	Pattern string `yaml:"pattern" json:"pattern"`

	// PathFields lists fields holding engine resource paths to
	// rewrite into portable form.
	PathFields []string `yaml:"pathFields" json:"pathFields"`

	// Inject maps field names to scalar values set on every document
	// produced from this source.
	Inject map[string]any `yaml:"inject" json:"inject"`
}

// UnmarshalYAML handles both string and object forms for Source.
func (s *Source) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Pattern = node.Value
		return nil
	}

	type rawSource Source
	return node.Decode((*rawSource)(s))
}

// UnmarshalJSON handles both string and object forms for Source.
func (s *Source) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Pattern = str
		return nil
	}

	type rawSource Source
	return json.Unmarshal(data, (*rawSource)(s))
}

// Default returns a config with the standard game-data layout.
func Default() *Config {
	return &Config{
		Source:         ".",
		Output:         "Assets/Data",
		ResourcePrefix: DefaultResourcePrefix,
		Categories:     DefaultCategories(),
	}
}

// DefaultCategories returns the standard category layout: monsters,
// skills (with the monster-skill subdirectory), heroes (including hero
// skills) and items (consumables and equipment subcategories).
func DefaultCategories() []Category {
	return []Category{
		{
			Name: "monsters",
			Sources: []Source{
				{
					Pattern:    "data/monsters/*.tres",
					PathFields: []string{"sprite_path", "portrait_path"},
				},
			},
		},
		{
			Name: "skills",
			Sources: []Source{
				{
					Pattern:    "data/skills/*.tres",
					PathFields: []string{"icon_path"},
				},
				{
					Pattern:    "data/skills/monsters/*.tres",
					PathFields: []string{"icon_path"},
					Inject:     map[string]any{"is_monster_skill": true},
				},
			},
		},
		{
			Name: "heroes",
			Sources: []Source{
				{
					Pattern:    "data/heroes/*.tres",
					PathFields: []string{"sprite_path", "portrait_path", "battle_sprite_path"},
				},
				{
					Pattern: "data/skills/heroes/*.tres",
				},
			},
		},
		{
			Name: "items",
			Sources: []Source{
				{
					Pattern:    "data/items/consumables/*.tres",
					PathFields: []string{"icon_path"},
					Inject:     map[string]any{"item_category": "consumables"},
				},
				{
					Pattern:    "data/items/equipment/*.tres",
					PathFields: []string{"icon_path"},
					Inject:     map[string]any{"item_category": "equipment"},
				},
			},
		},
	}
}

// applyDefaults fills unset fields with their default values.
func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = "."
	}
	if c.Output == "" {
		c.Output = "Assets/Data"
	}
	if c.ResourcePrefix == "" {
		c.ResourcePrefix = DefaultResourcePrefix
	}
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
	}
}

// CategoryNames returns the names of all configured categories.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// FindCategory returns the category with the given name.
func (c *Config) FindCategory(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
