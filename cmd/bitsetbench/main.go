// Command bitsetbench drives the concise and rleplus codecs over random
// input and prints a size comparison against roaring, gzip, and zstd.
// This is scaffolding around the codecs (§1 of the spec calls the
// benchmark harness an "external collaborator"), not part of the codec
// API itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filecoin-project/bitsets/internal/bench"
	"github.com/filecoin-project/bitsets/log"
)

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:   "bitsetbench",
		Short: "Compare Concise and RLE+ bitset encodings against roaring/gzip/zstd",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	var totalBits int
	var seed uint64
	var steps int

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run both scenarios at increasing sizes and print a size table",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-12s %-10s %10s %10s %10s %10s %10s %10s %10s\n",
				"scenario", "total", "set", "raw", "concise", "rle+", "roaring", "gzip", "zstd")
			for step := 0; step < steps; step++ {
				n := totalBits * (step + 1)
				for _, sc := range []bench.Scenario{bench.Random, bench.Contiguous} {
					res, err := bench.Run(sc, n, seed+uint64(step))
					if err != nil {
						return fmt.Errorf("run: %w", err)
					}
					fmt.Printf("%-12s %-10d %10d %10d %10d %10d %10d %10d %10d\n",
						scenarioName(sc), res.TotalBits, res.SetBits, res.RawBytes,
						res.ConciseBytes, res.RLEPlusBytes, res.RoaringBytes, res.GzipBytes, res.ZstdBytes)
				}
			}
			return nil
		},
	}
	runCmd.Flags().IntVar(&totalBits, "total-bits", 1_000, "universe size for the first step")
	runCmd.Flags().Uint64Var(&seed, "seed", 1, "PRNG seed")
	runCmd.Flags().IntVar(&steps, "steps", 5, "number of increasing-size steps to run")

	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		log.Logger.Error().Err(err).Msg("bitsetbench failed")
		os.Exit(1)
	}
}

func scenarioName(sc bench.Scenario) string {
	switch sc {
	case bench.Random:
		return "random"
	case bench.Contiguous:
		return "contiguous"
	default:
		return "unknown"
	}
}
