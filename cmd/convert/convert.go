/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for tresport.
package convert

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tresport/config"
	convertlib "bennypowers.dev/tresport/convert"
	"bennypowers.dev/tresport/fs"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert resource files into category JSON",
	Long: `Convert a Godot project's .tres resource files into one JSON file per
entity category.

Categories, path-field rewrites and injected fields come from
.config/tresport.{yaml,yml,json} when present, falling back to the
standard layout (monsters, skills, heroes, items).

Examples:
  # Convert everything under the current directory into Assets/Data
  tresport convert

  # Convert a specific project into a specific output directory
  tresport convert --source ~/games/mygame --output ~/unity/Assets/Data

  # Convert only two categories
  tresport convert --category monsters --category skills

  # Render Color values as hex strings
  tresport convert --hex-colors

  # Report what would be converted without writing anything
  tresport convert --dry-run`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringArray("category", nil, "Convert only the named categories (repeatable)")
	Cmd.Flags().Bool("hex-colors", false, "Render Color values as hex strings")
	Cmd.Flags().Bool("dry-run", false, "Parse and summarize without writing any files")
}

func run(cmd *cobra.Command, args []string) error {
	categories, _ := cmd.Flags().GetStringArray("category")
	hexColors, _ := cmd.Flags().GetBool("hex-colors")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/tresport.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")

	// CLI flags (via viper) override config file values
	if source := viper.GetString("source"); source != "" {
		cfg.Source = source
	}
	if output := viper.GetString("output"); output != "" {
		cfg.Output = output
	}
	if hexColors {
		cfg.HexColors = true
	}

	for _, name := range categories {
		if _, ok := cfg.FindCategory(name); !ok {
			return fmt.Errorf("unknown category %q (configured: %s)",
				name, strings.Join(cfg.CategoryNames(), ", "))
		}
	}

	converter := convertlib.New(filesystem, cfg)
	converter.SetDryRun(dryRun)
	summary, err := converter.RunCategories(categories)
	if err != nil {
		return err
	}

	title := cases.Title(language.English)
	for _, cat := range summary.Categories {
		fmt.Printf("%s: %d documents -> %s\n", title.String(cat.Name), cat.Documents, cat.Path)
	}
	fmt.Printf("Total: %d documents\n", summary.Documents())
	if dryRun {
		fmt.Println("Dry run: no files written.")
	}
	if failures := summary.Failures(); failures > 0 {
		return fmt.Errorf("%d files failed to convert", failures)
	}
	return nil
}
