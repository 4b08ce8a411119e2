package sharing

import "github.com/zeebo/blake3"

// Fingerprint returns a digest of the verifier's canonical binary form,
// usable as a short identity for a dealt commitment set.
func (v *FeldmanVerifier) Fingerprint() ([32]byte, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return blake3.Sum256(data), nil
}

// Fingerprint returns a digest of the verifier's canonical binary form,
// covering both commitment vectors and both generators.
func (v *PedersenVerifier) Fingerprint() ([32]byte, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return blake3.Sum256(data), nil
}
