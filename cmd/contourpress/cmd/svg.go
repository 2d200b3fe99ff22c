package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hexlattice/contourpress/render/svgslice"
	"github.com/hexlattice/contourpress/slice"
)

var (
	svgTransform   string
	svgLayerHeight float64
	svgOutDir      string
)

var svgCmd = &cobra.Command{
	Use:   "svg MESH",
	Short: "render each layer of a mesh to a separate SVG file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSVG,
}

func init() {
	svgCmd.Flags().StringVar(&svgTransform, "transform", "", "transform chain to apply before slicing")
	svgCmd.Flags().Float64Var(&svgLayerHeight, "layer-height", slice.DefaultLayerHeight, "layer height")
	svgCmd.Flags().StringVarP(&svgOutDir, "output", "o", "svg-out", "output directory")
	RootCmd.AddCommand(svgCmd)
}

func runSVG(cmd *cobra.Command, args []string) error {
	m, err := loadAndTransform(args[0], svgTransform)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(svgOutDir, 0755); err != nil {
		return err
	}

	it := slice.NewIterator(m, slice.Config{LayerHeight: svgLayerHeight})
	n := 0
	for {
		sl, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		path := filepath.Join(svgOutDir, fmt.Sprintf("layer%04d.svg", n))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		svgslice.Write(f, sl)
		if err := f.Close(); err != nil {
			return err
		}
		n++
	}
	return nil
}
