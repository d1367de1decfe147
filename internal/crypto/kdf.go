package crypto

import "fmt"

// DeriveBlobKey derives an AES-256 key and IV from SHA-512(secret ‖ hash).
//
// The same derivation protects two things: with the master secret it yields
// the key wrapping a per-item secret, with the item secret it yields the key
// encrypting the content. Both depend on the content hash, so one leaked
// item secret opens nothing else.
func DeriveBlobKey(secret, hash []byte) (key, iv []byte, err error) {
	if len(secret) != SecretSize {
		return nil, nil, fmt.Errorf("%w: secret length %d, want %d", ErrMalformedInput, len(secret), SecretSize)
	}
	if len(hash) != HashSize {
		return nil, nil, fmt.Errorf("%w: hash length %d, want %d", ErrMalformedInput, len(hash), HashSize)
	}

	h := SHA512(secret, hash)
	key = clone(h[:aesKeySize])
	iv = clone(h[aesKeySize : aesKeySize+aesIVSize])
	return key, iv, nil
}
