/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package inspect provides the inspect command for tresport.
package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tresport/fs"
	"bennypowers.dev/tresport/tres"
)

// Cmd is the inspect cobra command.
var Cmd = &cobra.Command{
	Use:   "inspect [files...]",
	Short: "Parse .tres files and print their documents as JSON",
	Long:  `Parse one or more .tres resource files and print each resulting document as pretty-printed JSON, without any category post-processing.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	parser := tres.NewParser()

	var failures int
	for _, file := range args {
		doc, err := parser.ParseFile(filesystem, file)
		if err != nil {
			if errors.Is(err, tres.ErrNoResourceSection) {
				fmt.Fprintf(os.Stderr, "%s: no [resource] section\n", file)
			} else {
				fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", file, err)
			}
			failures++
			continue
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", file, err)
		}

		if len(args) > 1 {
			fmt.Printf("// %s\n", file)
		}
		fmt.Println(string(data))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files could not be parsed", failures, len(args))
	}
	return nil
}
