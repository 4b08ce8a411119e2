package sharing

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/luxfi/vss/internal/zigzag"
	"github.com/luxfi/vss/pkg/math/curve"
)

// The binary wire format is deterministic: single elements are their
// fixed-width canonical bytes, variable-length element vectors carry a
// zig-zag varint count followed by the concatenated canonical bytes, and
// arrays whose length is known from context are concatenated bare. The
// human-readable form maps every element to lowercase hex inside JSON.

func marshalPoints(points []curve.Point) ([]byte, error) {
	out := zigzag.Encode(nil, uint64(len(points)))
	for _, point := range points {
		data, err := point.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}
	return out, nil
}

// unmarshalPoints decodes a varint-prefixed point vector from the front of
// data, returning the points and the number of bytes consumed.
func unmarshalPoints(group curve.Curve, data []byte) ([]curve.Point, int, error) {
	count, prefixLen, err := zigzag.Decode(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: bad commitment count prefix", ErrInvalidEncoding)
	}
	if count < 2 || count > MaxLimit {
		return nil, 0, fmt.Errorf("%w: commitment count %d out of range", ErrInvalidEncoding, count)
	}
	size := group.PointByteSize()
	need := prefixLen + int(count)*size
	if len(data) < need {
		return nil, 0, fmt.Errorf("%w: commitment vector truncated", ErrInvalidEncoding)
	}
	points := make([]curve.Point, count)
	offset := prefixLen
	for i := range points {
		points[i] = group.NewPoint()
		if err := points[i].UnmarshalBinary(data[offset : offset+size]); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		offset += size
	}
	return points, offset, nil
}

func pointsToHex(points []curve.Point) ([]string, error) {
	out := make([]string, len(points))
	for i, point := range points {
		data, err := point.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out[i] = hex.EncodeToString(data)
	}
	return out, nil
}

func pointFromHex(group curve.Curve, encoded string) (curve.Point, error) {
	data, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", ErrInvalidEncoding)
	}
	point := group.NewPoint()
	if err := point.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return point, nil
}

func pointsFromHex(group curve.Curve, encoded []string) ([]curve.Point, error) {
	if len(encoded) < 2 || len(encoded) > MaxLimit {
		return nil, fmt.Errorf("%w: commitment count %d out of range", ErrInvalidEncoding, len(encoded))
	}
	points := make([]curve.Point, len(encoded))
	for i, e := range encoded {
		point, err := pointFromHex(group, e)
		if err != nil {
			return nil, err
		}
		points[i] = point
	}
	return points, nil
}

// MarshalBinary encodes the generator followed by the varint-prefixed
// commitment vector.
func (v *FeldmanVerifier) MarshalBinary() ([]byte, error) {
	out, err := v.Generator.MarshalBinary()
	if err != nil {
		return nil, err
	}
	commitments, err := marshalPoints(v.Commitments)
	if err != nil {
		return nil, err
	}
	return append(out, commitments...), nil
}

// UnmarshalBinary decodes the form produced by MarshalBinary. The
// verifier must have been bound to a group, via EmptyFeldmanVerifier.
func (v *FeldmanVerifier) UnmarshalBinary(data []byte) error {
	if v.group == nil {
		return fmt.Errorf("%w: verifier not bound to a group", ErrInvalidEncoding)
	}
	size := v.group.PointByteSize()
	if len(data) < size {
		return fmt.Errorf("%w: generator truncated", ErrInvalidEncoding)
	}
	generator := v.group.NewPoint()
	if err := generator.UnmarshalBinary(data[:size]); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	commitments, consumed, err := unmarshalPoints(v.group, data[size:])
	if err != nil {
		return err
	}
	if size+consumed != len(data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(data)-size-consumed)
	}
	v.Generator = generator
	v.Commitments = commitments
	return nil
}

type feldmanVerifierJSON struct {
	Generator   string   `json:"generator"`
	Commitments []string `json:"commitments"`
}

// MarshalJSON implements the human-readable form, with every element as
// lowercase hex.
func (v *FeldmanVerifier) MarshalJSON() ([]byte, error) {
	generator, err := v.Generator.MarshalBinary()
	if err != nil {
		return nil, err
	}
	commitments, err := pointsToHex(v.Commitments)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&feldmanVerifierJSON{
		Generator:   hex.EncodeToString(generator),
		Commitments: commitments,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The verifier must have been
// bound to a group, via EmptyFeldmanVerifier.
func (v *FeldmanVerifier) UnmarshalJSON(data []byte) error {
	if v.group == nil {
		return fmt.Errorf("%w: verifier not bound to a group", ErrInvalidEncoding)
	}
	var raw feldmanVerifierJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	generator, err := pointFromHex(v.group, raw.Generator)
	if err != nil {
		return err
	}
	commitments, err := pointsFromHex(v.group, raw.Commitments)
	if err != nil {
		return err
	}
	v.Generator = generator
	v.Commitments = commitments
	return nil
}

// MarshalBinary encodes the blinding generator, the varint-prefixed
// Pedersen commitment vector, and the embedded Feldman verifier.
func (v *PedersenVerifier) MarshalBinary() ([]byte, error) {
	out, err := v.Generator.MarshalBinary()
	if err != nil {
		return nil, err
	}
	commitments, err := marshalPoints(v.Commitments)
	if err != nil {
		return nil, err
	}
	out = append(out, commitments...)
	feldman, err := v.Feldman.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, feldman...), nil
}

// UnmarshalBinary decodes the form produced by MarshalBinary. The
// verifier must have been bound to a group, via EmptyPedersenVerifier.
func (v *PedersenVerifier) UnmarshalBinary(data []byte) error {
	if v.group == nil {
		return fmt.Errorf("%w: verifier not bound to a group", ErrInvalidEncoding)
	}
	size := v.group.PointByteSize()
	if len(data) < size {
		return fmt.Errorf("%w: generator truncated", ErrInvalidEncoding)
	}
	generator := v.group.NewPoint()
	if err := generator.UnmarshalBinary(data[:size]); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	commitments, consumed, err := unmarshalPoints(v.group, data[size:])
	if err != nil {
		return err
	}
	feldman := FeldmanVerifier{group: v.group}
	if err := feldman.UnmarshalBinary(data[size+consumed:]); err != nil {
		return err
	}
	if len(feldman.Commitments) != len(commitments) {
		return fmt.Errorf("%w: commitment vectors disagree on threshold", ErrInvalidEncoding)
	}
	v.Generator = generator
	v.Commitments = commitments
	v.Feldman = feldman
	return nil
}

type pedersenVerifierJSON struct {
	Generator   string          `json:"generator"`
	Commitments []string        `json:"commitments"`
	Feldman     json.RawMessage `json:"feldman"`
}

// MarshalJSON implements the human-readable form.
func (v *PedersenVerifier) MarshalJSON() ([]byte, error) {
	generator, err := v.Generator.MarshalBinary()
	if err != nil {
		return nil, err
	}
	commitments, err := pointsToHex(v.Commitments)
	if err != nil {
		return nil, err
	}
	feldman, err := v.Feldman.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&pedersenVerifierJSON{
		Generator:   hex.EncodeToString(generator),
		Commitments: commitments,
		Feldman:     feldman,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The verifier must have been
// bound to a group, via EmptyPedersenVerifier.
func (v *PedersenVerifier) UnmarshalJSON(data []byte) error {
	if v.group == nil {
		return fmt.Errorf("%w: verifier not bound to a group", ErrInvalidEncoding)
	}
	var raw pedersenVerifierJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	generator, err := pointFromHex(v.group, raw.Generator)
	if err != nil {
		return err
	}
	commitments, err := pointsFromHex(v.group, raw.Commitments)
	if err != nil {
		return err
	}
	feldman := FeldmanVerifier{group: v.group}
	if err := feldman.UnmarshalJSON(raw.Feldman); err != nil {
		return err
	}
	if len(feldman.Commitments) != len(commitments) {
		return fmt.Errorf("%w: commitment vectors disagree on threshold", ErrInvalidEncoding)
	}
	v.Generator = generator
	v.Commitments = commitments
	v.Feldman = feldman
	return nil
}

// EmptyPedersenResult returns a result bound to a group, ready for
// unmarshalling.
func EmptyPedersenResult(group curve.Curve) *PedersenResult {
	return &PedersenResult{Verifier: EmptyPedersenVerifier(group)}
}

// MarshalBinary encodes the blinding scalar, a varint share count, the
// two share arrays (secret first) and the verifier. Both arrays share the
// one count, since they are aligned by construction.
func (r *PedersenResult) MarshalBinary() ([]byte, error) {
	if r.Blinding == nil || r.Verifier == nil {
		return nil, fmt.Errorf("%w: incomplete result", ErrInvalidEncoding)
	}
	out, err := r.Blinding.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if len(r.SecretShares) != len(r.BlindShares) {
		return nil, fmt.Errorf("%w: share arrays disagree on count", ErrInvalidEncoding)
	}
	out = zigzag.Encode(out, uint64(len(r.SecretShares)))
	for _, shares := range [][]*Share{r.SecretShares, r.BlindShares} {
		for _, share := range shares {
			container, err := share.MarshalBinary()
			if err != nil {
				return nil, err
			}
			out = append(out, container...)
		}
	}
	verifier, err := r.Verifier.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, verifier...), nil
}

// UnmarshalBinary decodes the form produced by MarshalBinary. The result
// must have been bound to a group, via EmptyPedersenResult.
func (r *PedersenResult) UnmarshalBinary(data []byte) error {
	if r.Verifier == nil || r.Verifier.group == nil {
		return fmt.Errorf("%w: result not bound to a group", ErrInvalidEncoding)
	}
	group := r.Verifier.group
	scalarSize := group.ScalarByteSize()
	if len(data) < scalarSize {
		return fmt.Errorf("%w: blinding scalar truncated", ErrInvalidEncoding)
	}
	blinding := group.NewScalar()
	if err := blinding.UnmarshalBinary(data[:scalarSize]); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	rest := data[scalarSize:]
	count, prefixLen, err := zigzag.Decode(rest)
	if err != nil {
		return fmt.Errorf("%w: bad share count prefix", ErrInvalidEncoding)
	}
	if count < 2 || count > MaxLimit {
		return fmt.Errorf("%w: share count %d out of range", ErrInvalidEncoding, count)
	}
	rest = rest[prefixLen:]
	containerSize := 1 + scalarSize
	need := 2 * int(count) * containerSize
	if len(rest) < need {
		return fmt.Errorf("%w: share arrays truncated", ErrInvalidEncoding)
	}
	arrays := make([][]*Share, 2)
	for a := range arrays {
		arrays[a] = make([]*Share, count)
		for i := range arrays[a] {
			share := new(Share)
			if err := share.UnmarshalBinary(rest[:containerSize]); err != nil {
				return err
			}
			arrays[a][i] = share
			rest = rest[containerSize:]
		}
	}
	for i := range arrays[0] {
		if arrays[0][i].ID != arrays[1][i].ID {
			return fmt.Errorf("%w: share arrays not aligned", ErrInvalidEncoding)
		}
	}
	verifier := EmptyPedersenVerifier(group)
	if err := verifier.UnmarshalBinary(rest); err != nil {
		return err
	}
	if int(count) < len(verifier.Commitments) {
		return fmt.Errorf("%w: fewer shares than threshold", ErrInvalidEncoding)
	}
	r.Blinding = blinding
	r.SecretShares = arrays[0]
	r.BlindShares = arrays[1]
	r.Verifier = verifier
	return nil
}

type pedersenResultJSON struct {
	Blinding     string          `json:"blinding"`
	SecretShares []*Share        `json:"secret_shares"`
	BlindShares  []*Share        `json:"blind_shares"`
	Verifier     json.RawMessage `json:"verifier"`
}

// MarshalJSON implements the human-readable form; shares appear as the
// hex of their binary containers.
func (r *PedersenResult) MarshalJSON() ([]byte, error) {
	blinding, err := r.Blinding.MarshalBinary()
	if err != nil {
		return nil, err
	}
	verifier, err := r.Verifier.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&pedersenResultJSON{
		Blinding:     hex.EncodeToString(blinding),
		SecretShares: r.SecretShares,
		BlindShares:  r.BlindShares,
		Verifier:     verifier,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The result must have been
// bound to a group, via EmptyPedersenResult.
func (r *PedersenResult) UnmarshalJSON(data []byte) error {
	if r.Verifier == nil || r.Verifier.group == nil {
		return fmt.Errorf("%w: result not bound to a group", ErrInvalidEncoding)
	}
	group := r.Verifier.group
	var raw pedersenResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	encoded, err := hex.DecodeString(raw.Blinding)
	if err != nil {
		return fmt.Errorf("%w: blinding is not valid hex", ErrInvalidEncoding)
	}
	blinding := group.NewScalar()
	if err := blinding.UnmarshalBinary(encoded); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw.SecretShares) != len(raw.BlindShares) {
		return fmt.Errorf("%w: share arrays disagree on count", ErrInvalidEncoding)
	}
	if len(raw.SecretShares) < 2 || len(raw.SecretShares) > MaxLimit {
		return fmt.Errorf("%w: share count %d out of range", ErrInvalidEncoding, len(raw.SecretShares))
	}
	for i := range raw.SecretShares {
		if raw.SecretShares[i] == nil || raw.BlindShares[i] == nil {
			return fmt.Errorf("%w: missing share", ErrInvalidEncoding)
		}
		if raw.SecretShares[i].ID != raw.BlindShares[i].ID {
			return fmt.Errorf("%w: share arrays not aligned", ErrInvalidEncoding)
		}
	}
	verifier := EmptyPedersenVerifier(group)
	if err := verifier.UnmarshalJSON(raw.Verifier); err != nil {
		return err
	}
	if len(raw.SecretShares) < len(verifier.Commitments) {
		return fmt.Errorf("%w: fewer shares than threshold", ErrInvalidEncoding)
	}
	r.Blinding = blinding
	r.SecretShares = raw.SecretShares
	r.BlindShares = raw.BlindShares
	r.Verifier = verifier
	return nil
}
