/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tresport/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tresport.yaml", `
source: /game
output: /unity/Assets/Data
hexColors: true
categories:
  - name: npcs
    sources:
      - data/npcs/*.tres
      - pattern: data/npcs/special/*.tres
        pathFields:
          - icon_path
        inject:
          special: true
`, 0644)

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/game", cfg.Source)
	assert.Equal(t, "/unity/Assets/Data", cfg.Output)
	assert.True(t, cfg.HexColors)
	assert.Equal(t, DefaultResourcePrefix, cfg.ResourcePrefix)

	require.Len(t, cfg.Categories, 1)
	cat := cfg.Categories[0]
	assert.Equal(t, "npcs", cat.Name)
	require.Len(t, cat.Sources, 2)

	// string form
	assert.Equal(t, "data/npcs/*.tres", cat.Sources[0].Pattern)
	assert.Empty(t, cat.Sources[0].PathFields)

	// object form
	assert.Equal(t, "data/npcs/special/*.tres", cat.Sources[1].Pattern)
	assert.Equal(t, []string{"icon_path"}, cat.Sources[1].PathFields)
	assert.Equal(t, map[string]any{"special": true}, cat.Sources[1].Inject)
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tresport.json", `{
  // the Godot project checkout
  "source": "/game",
  "categories": [
    {
      "name": "npcs",
      "sources": ["data/npcs/*.tres"]
    }
  ]
}`, 0644)

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/game", cfg.Source)
	require.Len(t, cfg.Categories, 1)
	assert.Equal(t, "data/npcs/*.tres", cfg.Categories[0].Sources[0].Pattern)
}

func TestLoad_DefaultsFillMissingFields(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tresport.yaml", "output: /unity/Assets/Data\n", 0644)

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ".", cfg.Source)
	assert.Equal(t, "/unity/Assets/Data", cfg.Output)
	assert.Equal(t, DefaultResourcePrefix, cfg.ResourcePrefix)
	assert.Len(t, cfg.Categories, 4)
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault(mapfs.New(), "/project")
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"monsters", "skills", "heroes", "items"}, cfg.CategoryNames())
}

func TestFindCategory(t *testing.T) {
	cfg := Default()

	cat, ok := cfg.FindCategory("items")
	require.True(t, ok)
	assert.Equal(t, "items", cat.Name)
	require.Len(t, cat.Sources, 2)
	assert.Equal(t, map[string]any{"item_category": "consumables"}, cat.Sources[0].Inject)

	_, ok = cfg.FindCategory("towns")
	assert.False(t, ok)
}
