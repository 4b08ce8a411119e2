package sharing_test

import (
	"testing/quick"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/vss/internal/test"
	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/math/sample"
	"github.com/luxfi/vss/pkg/sharing"
)

var _ = Describe("Sharing properties", func() {
	group := curve.Secp256k1{}

	It("reconstructs the secret from any threshold subset", func() {
		property := func(tRaw, nRaw, secretRaw uint8, seed byte) bool {
			n := int(nRaw%10) + 2       // n in [2, 11]
			t := int(tRaw%uint8(n)) + 1 // t in [1, n]
			if t < 2 {
				t = 2
			}

			shamir, err := sharing.NewShamir(group, t, n)
			if err != nil {
				return false
			}
			secret := group.NewScalar().SetUInt32(uint32(secretRaw))
			shares, err := shamir.Split(secret, test.Rand(seed))
			if err != nil {
				return false
			}

			first, err := shamir.Combine(shares[:t]...)
			if err != nil || !first.Equal(secret) {
				return false
			}
			last, err := shamir.Combine(shares[n-t:]...)
			return err == nil && last.Equal(secret)
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 25})).To(Succeed())
	})

	It("verifies every dealt Pedersen pair under both verifiers", func() {
		property := func(secretRaw uint8, seed byte) bool {
			pedersen, err := sharing.NewPedersen(group, 3, 6)
			if err != nil {
				return false
			}
			secret, err := sample.Scalar(test.Rand(secretRaw), group)
			if err != nil {
				return false
			}
			result, err := pedersen.Split(secret, nil, test.Rand(seed))
			if err != nil {
				return false
			}
			for k := range result.SecretShares {
				if !result.Verifier.Verify(result.SecretShares[k], result.BlindShares[k]) {
					return false
				}
				if !result.Verifier.Feldman.Verify(result.SecretShares[k]) {
					return false
				}
			}
			return true
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 15})).To(Succeed())
	})

	It("rejects any single byte corruption of a share value", func() {
		property := func(seed byte, position uint8, mask uint8) bool {
			feldman, err := sharing.NewFeldman(group, 3, 5)
			if err != nil {
				return false
			}
			secret, err := sample.Scalar(test.Rand(seed), group)
			if err != nil {
				return false
			}
			shares, verifier, err := feldman.Split(secret, test.Rand(seed+1))
			if err != nil {
				return false
			}

			share := shares[int(position)%len(shares)]
			tampered := &sharing.Share{ID: share.ID, Value: append([]byte{}, share.Value...)}
			index := int(position) % len(tampered.Value)
			tampered.Value[index] ^= mask | 1
			return !verifier.Verify(tampered)
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 25})).To(Succeed())
	})
})
