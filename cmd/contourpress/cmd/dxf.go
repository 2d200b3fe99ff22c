package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hexlattice/contourpress/render/dxfslice"
	"github.com/hexlattice/contourpress/slice"
)

var (
	dxfTransform   string
	dxfLayerHeight float64
	dxfOutput      string
)

var dxfCmd = &cobra.Command{
	Use:   "dxf MESH",
	Short: "export every layer of a mesh to a single multi-layer DXF file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDXF,
}

func init() {
	dxfCmd.Flags().StringVar(&dxfTransform, "transform", "", "transform chain to apply before slicing")
	dxfCmd.Flags().Float64Var(&dxfLayerHeight, "layer-height", slice.DefaultLayerHeight, "layer height")
	dxfCmd.Flags().StringVarP(&dxfOutput, "output", "o", "slices.dxf", "output DXF file")
	RootCmd.AddCommand(dxfCmd)
}

func runDXF(cmd *cobra.Command, args []string) error {
	m, err := loadAndTransform(args[0], dxfTransform)
	if err != nil {
		return err
	}

	w := dxfslice.New()
	it := slice.NewIterator(m, slice.Config{LayerHeight: dxfLayerHeight})
	for {
		sl, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := w.AddSlice(sl); err != nil {
			return err
		}
	}
	return w.SaveAs(dxfOutput)
}
