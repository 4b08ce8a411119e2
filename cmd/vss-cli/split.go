package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/sharing"
)

var (
	splitSecret   string
	splitBlinding string
	splitScheme   string
	threshold     int
	limit         int
	outputFile    string

	splitCmd = &cobra.Command{
		Use:   "split",
		Short: "Split a secret into verifiable shares",
		Long:  `Split a hex-encoded secret scalar into threshold-of-limit shares`,
		RunE:  runSplit,
	}
)

func init() {
	splitCmd.Flags().StringVarP(&splitSecret, "secret", "s", "", "Hex-encoded secret scalar (required)")
	splitCmd.Flags().StringVarP(&splitBlinding, "blinding", "b", "", "Hex-encoded blinding scalar (pedersen only)")
	splitCmd.Flags().StringVarP(&splitScheme, "scheme", "m", schemePedersen, "Scheme: shamir, feldman, pedersen")
	splitCmd.Flags().IntVarP(&threshold, "threshold", "t", 2, "Shares needed to reconstruct")
	splitCmd.Flags().IntVarP(&limit, "shares", "n", 3, "Total shares to deal")
	splitCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Bundle file to write")
	_ = splitCmd.MarkFlagRequired("secret")
}

func parseScalar(group curve.Curve, encoded, name string) (curve.Scalar, error) {
	data, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid hex", name)
	}
	if len(data) < group.ScalarByteSize() {
		padded := make([]byte, group.ScalarByteSize())
		copy(padded[group.ScalarByteSize()-len(data):], data)
		data = padded
	}
	scalar := group.NewScalar()
	if err := scalar.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return scalar, nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	group, err := groupByName(curveName)
	if err != nil {
		return err
	}
	secret, err := parseScalar(group, splitSecret, "secret")
	if err != nil {
		return err
	}

	out := &bundle{Curve: group.Name(), Scheme: splitScheme, Threshold: threshold, Limit: limit}
	var shares []*sharing.Share

	switch splitScheme {
	case schemeShamir:
		shamir, err := sharing.NewShamir(group, threshold, limit)
		if err != nil {
			return err
		}
		if shares, err = shamir.Split(secret, rand.Reader); err != nil {
			return err
		}
	case schemeFeldman:
		feldman, err := sharing.NewFeldman(group, threshold, limit)
		if err != nil {
			return err
		}
		var verifier *sharing.FeldmanVerifier
		if shares, verifier, err = feldman.Split(secret, rand.Reader); err != nil {
			return err
		}
		if out.Verifier, err = verifier.MarshalBinary(); err != nil {
			return err
		}
	case schemePedersen:
		pedersen, err := sharing.NewPedersen(group, threshold, limit)
		if err != nil {
			return err
		}
		opts := &sharing.PedersenOpts{}
		if splitBlinding != "" {
			if opts.Blinding, err = parseScalar(group, splitBlinding, "blinding"); err != nil {
				return err
			}
		}
		result, err := pedersen.Split(secret, opts, rand.Reader)
		if err != nil {
			return err
		}
		shares = result.SecretShares
		if out.Result, err = result.MarshalBinary(); err != nil {
			return err
		}
		if out.Verifier, err = result.Verifier.Feldman.MarshalBinary(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown scheme %q", splitScheme)
	}

	for _, share := range shares {
		container, err := share.MarshalBinary()
		if err != nil {
			return err
		}
		out.Shares = append(out.Shares, container)
		cmd.Printf("share %3d: %s\n", share.ID, share)
	}

	if outputFile != "" {
		if err := saveBundle(outputFile, out); err != nil {
			return err
		}
		cmd.Printf("bundle written to %s\n", outputFile)
	}
	return nil
}
