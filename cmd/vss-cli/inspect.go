package main

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/luxfi/vss/pkg/sharing"
)

var (
	inspectInput string

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Display a bundle's parameters and commitments",
		RunE:  runInspect,
	}
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "input", "i", "", "Bundle file to inspect (required)")
	_ = inspectCmd.MarkFlagRequired("input")
}

func runInspect(cmd *cobra.Command, args []string) error {
	b, group, err := loadBundle(inspectInput)
	if err != nil {
		return err
	}

	cmd.Printf("curve:     %s\n", b.Curve)
	cmd.Printf("scheme:    %s\n", b.Scheme)
	cmd.Printf("threshold: %d\n", b.Threshold)
	cmd.Printf("shares:    %d dealt, %d stored\n", b.Limit, len(b.Shares))

	printCommitments := func(v *sharing.FeldmanVerifier) error {
		for i, commitment := range v.Commitments {
			data, err := commitment.MarshalBinary()
			if err != nil {
				return err
			}
			cmd.Printf("  c[%d] = %s\n", i, hex.EncodeToString(data))
		}
		return nil
	}

	switch b.Scheme {
	case schemePedersen:
		result, err := b.pedersenResult(group)
		if err != nil {
			return err
		}
		fingerprint, err := result.Verifier.Fingerprint()
		if err != nil {
			return err
		}
		cmd.Printf("verifier:  %x\n", fingerprint)
		cmd.Println("feldman commitments:")
		if err := printCommitments(&result.Verifier.Feldman); err != nil {
			return err
		}
		cmd.Println("pedersen commitments:")
		for i, commitment := range result.Verifier.Commitments {
			data, err := commitment.MarshalBinary()
			if err != nil {
				return err
			}
			cmd.Printf("  p[%d] = %s\n", i, hex.EncodeToString(data))
		}
	case schemeFeldman:
		verifier, err := b.feldmanVerifier(group)
		if err != nil {
			return err
		}
		fingerprint, err := verifier.Fingerprint()
		if err != nil {
			return err
		}
		cmd.Printf("verifier:  %x\n", fingerprint)
		cmd.Println("feldman commitments:")
		if err := printCommitments(verifier); err != nil {
			return err
		}
	default:
		cmd.Println("no verifier: plain Shamir bundle")
	}
	return nil
}
