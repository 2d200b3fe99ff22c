package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hexlattice/contourpress/render/rasterslice"
	"github.com/hexlattice/contourpress/slice"
)

var (
	pngTransform   string
	pngLayerHeight float64
	pngOutDir      string
)

var pngCmd = &cobra.Command{
	Use:   "png MESH",
	Short: "rasterize each layer of a mesh to a separate PNG file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPNG,
}

func init() {
	pngCmd.Flags().StringVar(&pngTransform, "transform", "", "transform chain to apply before slicing")
	pngCmd.Flags().Float64Var(&pngLayerHeight, "layer-height", slice.DefaultLayerHeight, "layer height")
	pngCmd.Flags().StringVarP(&pngOutDir, "output", "o", "png-out", "output directory")
	RootCmd.AddCommand(pngCmd)
}

func runPNG(cmd *cobra.Command, args []string) error {
	m, err := loadAndTransform(args[0], pngTransform)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(pngOutDir, 0755); err != nil {
		return err
	}

	it := slice.NewIterator(m, slice.Config{LayerHeight: pngLayerHeight})
	n := 0
	for {
		sl, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		path := filepath.Join(pngOutDir, fmt.Sprintf("layer%04d.png", n))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = rasterslice.WritePNG(f, sl, rasterslice.Options{})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		n++
	}
	return nil
}
