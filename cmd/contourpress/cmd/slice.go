package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexlattice/contourpress/slice"
)

var (
	sliceTransform   string
	sliceLayerHeight float64
	sliceWorkers     int
)

var sliceCmd = &cobra.Command{
	Use:   "slice MESH",
	Short: "slice a mesh and print per-layer polygon counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlice,
}

func init() {
	sliceCmd.Flags().StringVar(&sliceTransform, "transform", "", "transform chain to apply before slicing")
	sliceCmd.Flags().Float64Var(&sliceLayerHeight, "layer-height", slice.DefaultLayerHeight, "layer height")
	sliceCmd.Flags().IntVar(&sliceWorkers, "workers", 1, "parallel slicing workers (1 = sequential)")
	RootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	m, err := loadAndTransform(args[0], sliceTransform)
	if err != nil {
		return err
	}
	cfg := slice.Config{LayerHeight: sliceLayerHeight}

	if sliceWorkers > 1 {
		slices, err := slice.Parallel(m, cfg, sliceWorkers)
		if err != nil {
			return err
		}
		for _, sl := range slices {
			printSliceSummary(sl)
		}
		return nil
	}

	it := slice.NewIterator(m, cfg)
	for {
		sl, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		printSliceSummary(*sl)
	}
	return nil
}

func printSliceSummary(sl slice.Slice) {
	fmt.Printf("z=%-8g polygons=%-4d warnings=%d\n", sl.Height, len(sl.Polygons), len(sl.Warnings))
	for _, w := range sl.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
