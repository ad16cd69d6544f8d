/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tresport.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tresport/cmd/convert"
	"bennypowers.dev/tresport/cmd/inspect"
	"bennypowers.dev/tresport/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tresport",
	Short: "Convert Godot .tres resources to JSON",
	Long:  `tresport bulk-converts a Godot project's .tres resource files into JSON documents grouped by entity category.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("source", "s", "", "Godot project root (default: current directory or config)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory for category JSON files")
	cobra.CheckErr(viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(inspect.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
