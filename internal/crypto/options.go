package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Option configures a [SecretCodec] or [BlobCodec].
type Option func(*options)

type options struct {
	rand    io.Reader
	idOrder binary.ByteOrder
}

func defaultOptions() options {
	return options{
		rand:    rand.Reader,
		idOrder: binary.BigEndian,
	}
}

// WithRandom replaces the random source. It exists for deterministic tests;
// production code must keep the default crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithSecretIDByteOrder sets the byte order used to read the 64-bit secret
// ID from the first 8 bytes of SHA-256(secret).
func WithSecretIDByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		if order != nil {
			o.idOrder = order
		}
	}
}

// ParseByteOrder maps "big"/"little" (and their -endian spellings) to a
// binary.ByteOrder. An empty string selects big-endian.
func ParseByteOrder(s string) (binary.ByteOrder, bool) {
	switch s {
	case "", "big", "big-endian", "be":
		return binary.BigEndian, true
	case "little", "little-endian", "le":
		return binary.LittleEndian, true
	default:
		return nil, false
	}
}
