package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	curveName string

	rootCmd = &cobra.Command{
		Use:   "vss-cli",
		Short: "Deal, verify and combine verifiable secret shares",
		Long: `A CLI tool for threshold secret sharing: Shamir splits, Feldman and
Pedersen verifiable splits, share verification against the published
commitments, and reconstruction from any threshold subset.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&curveName, "curve", "c", "secp256k1", "Curve to operate on")
	rootCmd.AddCommand(splitCmd, combineCmd, verifyCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
