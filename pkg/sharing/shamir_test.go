package sharing_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/vss/internal/test"
	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/sharing"
)

func TestNewShamirParams(t *testing.T) {
	group := curve.Secp256k1{}

	cases := []struct {
		name      string
		threshold int
		limit     int
	}{
		{"threshold below 2", 1, 3},
		{"zero threshold", 0, 3},
		{"limit below threshold", 3, 2},
		{"limit above 255", 2, 256},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sharing.NewShamir(group, tc.threshold, tc.limit)
			assert.ErrorIs(t, err, sharing.ErrInvalidParameters)
		})
	}

	_, err := sharing.NewShamir(nil, 2, 3)
	assert.ErrorIs(t, err, sharing.ErrInvalidParameters)

	shamir, err := sharing.NewShamir(group, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, shamir.Threshold())
	assert.Equal(t, 3, shamir.Limit())
}

// Any 2 of 3 shares of the secret 3 reconstruct it; a single share cannot.
func TestShamirTwoOfThree(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(3)

	shamir, err := sharing.NewShamir(group, 2, 3)
	require.NoError(t, err)
	shares, err := shamir.Split(secret, test.Rand(0))
	require.NoError(t, err)
	require.Len(t, shares, 3)

	for i, share := range shares {
		assert.Equal(t, byte(i+1), share.ID)
		assert.Len(t, share.Value, group.ScalarByteSize())
	}

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			recovered, err := shamir.Combine(shares[i], shares[j])
			require.NoError(t, err)
			assert.True(t, recovered.Equal(secret), "subset {%d,%d}", i, j)
		}
	}

	_, err = shamir.Combine(shares[0])
	assert.ErrorIs(t, err, sharing.ErrMinThreshold)
}

// All ten 3-share subsets of a 3-of-5 sharing of 7 reconstruct 7.
func TestShamirThreeOfFive(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(7)

	shamir, err := sharing.NewShamir(group, 3, 5)
	require.NoError(t, err)
	shares, err := shamir.Split(secret, test.Rand(0))
	require.NoError(t, err)
	require.Len(t, shares, 5)

	subsets := 0
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			for k := j + 1; k < 5; k++ {
				recovered, err := shamir.Combine(shares[i], shares[j], shares[k])
				require.NoError(t, err)
				assert.True(t, recovered.Equal(secret), "subset {%d,%d,%d}", i, j, k)
				subsets++
			}
		}
	}
	assert.Equal(t, 10, subsets)
}

func TestShamirCombineDuplicate(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(7)

	shamir, err := sharing.NewShamir(group, 3, 5)
	require.NoError(t, err)
	shares, err := shamir.Split(secret, test.Rand(1))
	require.NoError(t, err)

	duplicate := &sharing.Share{ID: shares[1].ID, Value: shares[1].Value}
	_, err = shamir.Combine(shares[0], shares[1], duplicate)
	assert.ErrorIs(t, err, sharing.ErrDuplicateShare)
}

func TestShamirCombineInvalidShare(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(7)

	shamir, err := sharing.NewShamir(group, 3, 5)
	require.NoError(t, err)
	shares, err := shamir.Split(secret, test.Rand(2))
	require.NoError(t, err)

	zeroID := &sharing.Share{ID: 0, Value: shares[0].Value}
	_, err = shamir.Combine(zeroID, shares[1], shares[2])
	assert.ErrorIs(t, err, sharing.ErrInvalidShare)

	// A non-canonical value is rejected even when it sits past the
	// first threshold shares.
	bad := &sharing.Share{ID: 9, Value: bytes.Repeat([]byte{0xff}, group.ScalarByteSize())}
	_, err = shamir.Combine(shares[0], shares[1], shares[2], bad)
	assert.ErrorIs(t, err, sharing.ErrInvalidShare)

	short := &sharing.Share{ID: 9, Value: []byte{1, 2, 3}}
	_, err = shamir.Combine(shares[0], shares[1], short)
	assert.ErrorIs(t, err, sharing.ErrInvalidShare)
}

// Combining more than threshold shares uses the first threshold of them.
func TestShamirCombineFirstThreshold(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(99)

	shamir, err := sharing.NewShamir(group, 2, 5)
	require.NoError(t, err)
	shares, err := shamir.Split(secret, test.Rand(3))
	require.NoError(t, err)

	recovered, err := shamir.Combine(shares...)
	require.NoError(t, err)
	assert.True(t, recovered.Equal(secret))
}

// Shamir sharing is linear: share-wise sums reconstruct the sum of the
// secrets when identifiers align.
func TestShamirLinearity(t *testing.T) {
	group := curve.Secp256k1{}
	secretA := group.NewScalar().SetUInt32(20)
	secretB := group.NewScalar().SetUInt32(22)

	shamir, err := sharing.NewShamir(group, 3, 5)
	require.NoError(t, err)
	sharesA, err := shamir.Split(secretA, test.Rand(4))
	require.NoError(t, err)
	sharesB, err := shamir.Split(secretB, test.Rand(5))
	require.NoError(t, err)

	summed := make([]*sharing.Share, len(sharesA))
	for i := range sharesA {
		require.Equal(t, sharesA[i].ID, sharesB[i].ID)
		ya := group.NewScalar()
		require.NoError(t, ya.UnmarshalBinary(sharesA[i].Value))
		yb := group.NewScalar()
		require.NoError(t, yb.UnmarshalBinary(sharesB[i].Value))
		value, err := ya.Add(yb).MarshalBinary()
		require.NoError(t, err)
		summed[i] = &sharing.Share{ID: sharesA[i].ID, Value: value}
	}

	recovered, err := shamir.Combine(summed[0], summed[2], summed[4])
	require.NoError(t, err)
	expected := group.NewScalar().Set(secretA).Add(secretB)
	assert.True(t, recovered.Equal(expected))
}

// Shares acting on the generator combine to secret·G, the way partial
// threshold signatures combine in the group.
func TestShamirCombinePoints(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(13)

	shamir, err := sharing.NewShamir(group, 3, 5)
	require.NoError(t, err)
	shares, err := shamir.Split(secret, test.Rand(6))
	require.NoError(t, err)

	pointShares := make([]*sharing.Share, len(shares))
	for i, share := range shares {
		y := group.NewScalar()
		require.NoError(t, y.UnmarshalBinary(share.Value))
		value, err := y.ActOnBase().MarshalBinary()
		require.NoError(t, err)
		pointShares[i] = &sharing.Share{ID: share.ID, Value: value}
	}

	recovered, err := shamir.CombinePoints(pointShares[1], pointShares[2], pointShares[4])
	require.NoError(t, err)
	assert.True(t, recovered.Equal(secret.ActOnBase()))
}

func TestShamirCombinePointsRejectsScalarValues(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(13)

	shamir, err := sharing.NewShamir(group, 2, 3)
	require.NoError(t, err)
	shares, err := shamir.Split(secret, test.Rand(7))
	require.NoError(t, err)

	// Scalar-length values are not canonical point encodings.
	_, err = shamir.CombinePoints(shares[0], shares[1])
	assert.ErrorIs(t, err, sharing.ErrInvalidShare)
}

func TestShamirSplitDeterministic(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(77)

	shamir, err := sharing.NewShamir(group, 2, 3)
	require.NoError(t, err)
	first, err := shamir.Split(secret, test.Rand(8))
	require.NoError(t, err)
	second, err := shamir.Split(secret, test.Rand(8))
	require.NoError(t, err)
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}
