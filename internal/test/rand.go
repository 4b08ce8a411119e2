// Package test provides helpers shared by the package tests.
package test

import (
	"io"

	"github.com/luxfi/vss/pkg/math/sample"
)

// Rand returns a deterministic random source whose 32 byte seed is the
// given byte repeated. The same seed always yields the same stream, which
// keeps dealt shares reproducible across test runs.
func Rand(seed byte) io.Reader {
	buf := make([]byte, sample.SeedSize)
	for i := range buf {
		buf[i] = seed
	}
	stream, err := sample.NewStreamFromSeed(buf)
	if err != nil {
		panic(err)
	}
	return stream
}

// FailingReader is an io.Reader that always fails, for exercising RNG
// error paths.
type FailingReader struct{}

func (FailingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
