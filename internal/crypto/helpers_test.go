package crypto

import (
	"math/rand/v2"
	"testing"
)

// seededReader returns a deterministic byte stream for reproducible
// property tests. It must never be used outside tests.
func seededReader(seed byte) *rand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return rand.NewChaCha8(s)
}

type constReader byte

func (c constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errReaderBroken
}

type readerError string

func (e readerError) Error() string { return string(e) }

const errReaderBroken = readerError("reader broken")

func newTestSession(t *testing.T, seed byte) Session {
	t.Helper()
	r := seededReader(seed)
	codec := NewSecretCodec(WithRandom(r))

	secret, err := codec.Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	sp, err := RandomBytes(r, SaltedPasswordSize)
	if err != nil {
		t.Fatalf("RandomBytes error: %v", err)
	}
	s, err := NewSession(codec, secret, sp, 1)
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}
	return s
}
