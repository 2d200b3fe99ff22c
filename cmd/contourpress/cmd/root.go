// Package cmd is the contourpress command-line tree, built the way
// go-detour's recast CLI and krasin-steel's main.go build theirs: one
// file per subcommand, each registering itself with RootCmd from init.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command invoked with no subcommand.
var RootCmd = &cobra.Command{
	Use:   "contourpress",
	Short: "slice triangle meshes into printable layers",
	Long: `contourpress turns an indexed triangle mesh into an ordered
sequence of layer cross-sections, and can preview or export them as
SVG, DXF or G-code.`,
}

// Execute runs RootCmd. Called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
