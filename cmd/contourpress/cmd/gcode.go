package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hexlattice/contourpress/gcodeio"
	"github.com/hexlattice/contourpress/slice"
)

var (
	gcodeTransform   string
	gcodeLayerHeight float64
	gcodeOutput      string
)

var gcodeCmd = &cobra.Command{
	Use:   "gcode MESH",
	Short: "slice a mesh and emit G-code",
	Args:  cobra.ExactArgs(1),
	RunE:  runGcode,
}

func init() {
	gcodeCmd.Flags().StringVar(&gcodeTransform, "transform", "", "transform chain to apply before slicing")
	gcodeCmd.Flags().Float64Var(&gcodeLayerHeight, "layer-height", slice.DefaultLayerHeight, "layer height")
	gcodeCmd.Flags().StringVarP(&gcodeOutput, "output", "o", "", "output file (default stdout)")
	RootCmd.AddCommand(gcodeCmd)
}

func runGcode(cmd *cobra.Command, args []string) error {
	m, err := loadAndTransform(args[0], gcodeTransform)
	if err != nil {
		return err
	}

	w := os.Stdout
	if gcodeOutput != "" {
		f, err := os.Create(gcodeOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	it := slice.NewIterator(m, slice.Config{LayerHeight: gcodeLayerHeight})
	printer := gcodeio.NewPrinter(w, gcodeio.DagomaDiscoUltimate)
	return printer.Print(it, gcodeLayerHeight)
}
