package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoTransform string

var infoCmd = &cobra.Command{
	Use:   "info MESH",
	Short: "print vertex/face counts and bounding box for a mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoTransform, "transform", "", "transform chain to apply before reporting")
	RootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := loadAndTransform(args[0], infoTransform)
	if err != nil {
		return err
	}
	low, _ := m.Lowest()
	high, _ := m.Highest()
	fmt.Printf("vertices: %d\n", len(m.Vertices))
	fmt.Printf("faces:    %d\n", len(m.Faces))
	fmt.Printf("z range:  [%g, %g]\n", low, high)
	return nil
}
