package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxfi/vss/pkg/sharing"
)

var (
	combineInput string
	combineIDs   string

	combineCmd = &cobra.Command{
		Use:   "combine [share-hex...]",
		Short: "Reconstruct a secret from shares",
		Long: `Reconstruct the secret from hex shares given as arguments, or from a
subset of a bundle's stored shares selected with --ids`,
		RunE: runCombine,
	}
)

func init() {
	combineCmd.Flags().StringVarP(&combineInput, "input", "i", "", "Bundle file to take shares from")
	combineCmd.Flags().StringVar(&combineIDs, "ids", "", "Comma-separated share identifiers to use with --input")
	combineCmd.Flags().IntVarP(&threshold, "threshold", "t", 2, "Shares needed to reconstruct (without --input)")
	combineCmd.Flags().IntVarP(&limit, "shares", "n", 3, "Total shares dealt (without --input)")
}

func runCombine(cmd *cobra.Command, args []string) error {
	group, err := groupByName(curveName)
	if err != nil {
		return err
	}
	t, n := threshold, limit

	var shares []*sharing.Share
	switch {
	case combineInput != "":
		b, bundleGroup, err := loadBundle(combineInput)
		if err != nil {
			return err
		}
		group, t, n = bundleGroup, b.Threshold, b.Limit
		stored, err := b.shares()
		if err != nil {
			return err
		}
		if combineIDs == "" {
			shares = stored
			break
		}
		byID := make(map[byte]*sharing.Share, len(stored))
		for _, share := range stored {
			byID[share.ID] = share
		}
		for _, field := range strings.Split(combineIDs, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
			if err != nil {
				return fmt.Errorf("bad share identifier %q", field)
			}
			share, ok := byID[byte(id)]
			if !ok {
				return fmt.Errorf("bundle has no share %d", id)
			}
			shares = append(shares, share)
		}
	case len(args) > 0:
		for i, arg := range args {
			share := new(sharing.Share)
			if err := share.UnmarshalText([]byte(arg)); err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			shares = append(shares, share)
		}
	default:
		return fmt.Errorf("provide hex shares or --input")
	}

	shamir, err := sharing.NewShamir(group, t, n)
	if err != nil {
		return err
	}
	secret, err := shamir.Combine(shares...)
	if err != nil {
		return err
	}
	data, err := secret.MarshalBinary()
	if err != nil {
		return err
	}
	cmd.Printf("secret: %s\n", hex.EncodeToString(data))
	return nil
}
