package sample

import (
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the number of bytes read from the external RNG to seed a
// Stream.
const SeedSize = chacha20.KeySize

// Stream is a deterministic cryptographic byte stream, seeded once from an
// external entropy source. A dealer draws all of its randomness from a
// Stream so that the external RNG is consumed exactly once per deal and a
// fixed seed reproduces the full output.
type Stream struct {
	cipher *chacha20.Cipher
}

// NewStream reads SeedSize bytes from rand and returns the ChaCha20 stream
// keyed by them.
func NewStream(rand io.Reader) (*Stream, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, fmt.Errorf("sample: reading stream seed: %w", err)
	}
	return NewStreamFromSeed(seed)
}

// NewStreamFromSeed returns the stream produced by a fixed SeedSize byte
// seed.
func NewStreamFromSeed(seed []byte) (*Stream, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("sample: stream seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	cipher, err := chacha20.NewUnauthenticatedCipher(seed, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("sample: initializing stream: %w", err)
	}
	return &Stream{cipher: cipher}, nil
}

// Read fills p with the next keystream bytes. It never fails.
func (s *Stream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}
