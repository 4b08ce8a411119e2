package main

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/sharing"
)

const (
	schemeShamir   = "shamir"
	schemeFeldman  = "feldman"
	schemePedersen = "pedersen"
)

// bundle is the CBOR envelope written by split and consumed by verify,
// combine and inspect. The verifier and result fields hold the wire form
// of the corresponding sharing types; shares hold their binary containers.
type bundle struct {
	Curve     string   `cbor:"curve"`
	Scheme    string   `cbor:"scheme"`
	Threshold int      `cbor:"threshold"`
	Limit     int      `cbor:"limit"`
	Shares    [][]byte `cbor:"shares,omitempty"`
	Verifier  []byte   `cbor:"verifier,omitempty"`
	Result    []byte   `cbor:"result,omitempty"`
}

func groupByName(name string) (curve.Curve, error) {
	switch name {
	case "secp256k1":
		return curve.Secp256k1{}, nil
	default:
		return nil, fmt.Errorf("unsupported curve %q", name)
	}
}

func saveBundle(path string, b *bundle) error {
	data, err := cbor.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing bundle: %w", err)
	}
	return nil
}

func loadBundle(path string) (*bundle, curve.Curve, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading bundle: %w", err)
	}
	b := new(bundle)
	if err := cbor.Unmarshal(data, b); err != nil {
		return nil, nil, fmt.Errorf("decoding bundle: %w", err)
	}
	group, err := groupByName(b.Curve)
	if err != nil {
		return nil, nil, err
	}
	return b, group, nil
}

func (b *bundle) shares() ([]*sharing.Share, error) {
	shares := make([]*sharing.Share, len(b.Shares))
	for i, container := range b.Shares {
		share := new(sharing.Share)
		if err := share.UnmarshalBinary(container); err != nil {
			return nil, fmt.Errorf("share %d: %w", i+1, err)
		}
		shares[i] = share
	}
	return shares, nil
}

func (b *bundle) pedersenResult(group curve.Curve) (*sharing.PedersenResult, error) {
	if len(b.Result) == 0 {
		return nil, fmt.Errorf("bundle carries no Pedersen result")
	}
	result := sharing.EmptyPedersenResult(group)
	if err := result.UnmarshalBinary(b.Result); err != nil {
		return nil, err
	}
	return result, nil
}

func (b *bundle) feldmanVerifier(group curve.Curve) (*sharing.FeldmanVerifier, error) {
	if len(b.Verifier) == 0 {
		return nil, fmt.Errorf("bundle carries no verifier")
	}
	verifier := sharing.EmptyFeldmanVerifier(group)
	if err := verifier.UnmarshalBinary(b.Verifier); err != nil {
		return nil, err
	}
	return verifier, nil
}
