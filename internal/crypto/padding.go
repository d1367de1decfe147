package crypto

import (
	"fmt"
	"io"
)

// Pad prefixes plaintext with random padding so that the total length is a
// multiple of [BlockSize]. The first padding byte stores the padding length,
// which is always in [MinPadding, MaxPadding].
func Pad(r io.Reader, plaintext []byte) ([]byte, error) {
	n, err := randomInt(r, paddingDrawRange)
	if err != nil {
		return nil, err
	}

	extra := MinPadding + n
	for (len(plaintext)+extra)%BlockSize != 0 {
		extra++
	}

	padded := make([]byte, extra+len(plaintext))
	if _, err = io.ReadFull(r, padded[:extra]); err != nil {
		return nil, fmt.Errorf("%w: read padding: %w", ErrCryptoPrimitive, err)
	}
	padded[0] = byte(extra)
	copy(padded[extra:], plaintext)

	return padded, nil
}

// Unpad strips the padding added by [Pad]. The returned slice aliases padded.
func Unpad(padded []byte) ([]byte, error) {
	if len(padded) == 0 {
		return nil, fmt.Errorf("%w: empty padded buffer", ErrMalformedInput)
	}

	offset := int(padded[0])
	if offset == 0 || offset > len(padded) {
		return nil, fmt.Errorf("%w: padding length %d for buffer of %d bytes", ErrMalformedInput, offset, len(padded))
	}

	return padded[offset:], nil
}
