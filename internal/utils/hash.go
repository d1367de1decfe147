// Package utils provides small helpers shared across go-secure-id packages:
// identifier generation and log-safe rendering of content hashes.
package utils

import "encoding/hex"

// shortHashLen is the number of hash bytes shown in logs.
const shortHashLen = 8

// HexHash renders a full content hash for logs and command output.
func HexHash(hash []byte) string {
	return hex.EncodeToString(hash)
}

// ShortHash renders the first bytes of a content hash, enough to tell blobs
// apart in logs.
func ShortHash(hash []byte) string {
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}
	return hex.EncodeToString(hash)
}
