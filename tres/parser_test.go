/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tres_test

import (
	"errors"
	"reflect"
	"testing"

	"bennypowers.dev/tresport/internal/mapfs"
	"bennypowers.dev/tresport/tres"
	"bennypowers.dev/tresport/value"
)

func TestParser_Parse(t *testing.T) {
	data := []byte(`[gd_resource type="Resource" format=3]

[resource]
hp = 100
name = "Slime"
tags = ["weak", "slow"]
`)

	p := tres.NewParser()
	doc, err := p.Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := value.NewMap()
	want.Set("hp", value.Int(100))
	want.Set("name", value.String("Slime"))
	want.Set("tags", value.Array{value.String("weak"), value.String("slow")})

	if !reflect.DeepEqual(doc, want) {
		t.Errorf("got %#v, want %#v", doc, want)
	}
}

func TestParser_Parse_FieldOrder(t *testing.T) {
	data := []byte("[resource]\nz = 1\na = 2\nm = 3\n")

	p := tres.NewParser()
	doc, err := p.Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(doc.Keys(), want) {
		t.Errorf("field order = %v, want %v", doc.Keys(), want)
	}
}

func TestParser_Parse_DuplicateKeysLastWins(t *testing.T) {
	data := []byte("[resource]\nhp = 1\nhp = 2\n")

	p := tres.NewParser()
	doc, err := p.Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Len() != 1 {
		t.Fatalf("expected 1 field, got %d", doc.Len())
	}
	if v, _ := doc.Get("hp"); v != value.Int(2) {
		t.Errorf("hp = %#v, want Int(2)", v)
	}
}

func TestParser_Parse_NoResourceSection(t *testing.T) {
	p := tres.NewParser()
	_, err := p.Parse([]byte("[gd_scene format=3]\n"))
	if !errors.Is(err, tres.ErrNoResourceSection) {
		t.Errorf("expected ErrNoResourceSection, got %v", err)
	}
}

func TestParser_ParseFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/test/slime.tres", "[resource]\nhp = 100\n", 0644)

	p := tres.NewParser()
	doc, err := p.ParseFile(mfs, "/test/slime.tres")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, _ := doc.Get("hp"); v != value.Int(100) {
		t.Errorf("hp = %#v, want Int(100)", v)
	}
}

func TestParser_ParseFile_Missing(t *testing.T) {
	p := tres.NewParser()
	if _, err := p.ParseFile(mapfs.New(), "/test/missing.tres"); err == nil {
		t.Error("expected error for missing file")
	}
}
