// SPDX-License-Identifier: MIT

// Command matrixctl evaluates matrix operations over YAML matrix documents.
//
// Usage:
//
//	matrixctl add a.yaml b.yaml
//	matrixctl mul --element float --yaml a.yaml b.yaml
//	matrixctl insert-row --row 7,8 m.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build information. Populated at build-time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matrixctl",
		Short: "matrixctl - fixed and dynamic matrix arithmetic",
		Long: `matrixctl loads matrices from YAML documents and applies
elementwise, product, scalar and structural operations.

The result of a binary operation keeps the storage variant of its left
operand; --variant forces every loaded matrix to one variant.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("element", elementInt, "Element type: int (int64) or float (float64)")
	rootCmd.PersistentFlags().Bool("yaml", false, "Write the result as a YAML document instead of text")
	rootCmd.PersistentFlags().String("variant", "", "Force the storage variant: fixed or dynamic")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "matrixctl %s\n", version)
		},
	})
	rootCmd.AddCommand(
		newPrintCmd(),
		newBinaryCmd(opAdd, "Elementwise sum of two matrices"),
		newBinaryCmd(opSub, "Elementwise difference A - B"),
		newBinaryCmd(opMul, "Matrix product A × B"),
		newBinaryCmd(opHadamard, "Elementwise product of two matrices"),
		newScaleCmd(),
		newTransposeCmd(),
		newInsertRowCmd(),
		newEqualCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
