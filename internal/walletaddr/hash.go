// Package walletaddr provides wallet address utilities for boundary
// collaborators: a stable hash for lookup keys and Solana address format
// checks. Scoring itself treats addresses as opaque strings and never calls
// into this package.
package walletaddr

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a stable lookup key for a wallet address.
// Returns the hex-encoded SHA-256 digest (64 characters); it carries no
// scoring semantics.
func Hash(address string) string {
	sum := sha256.Sum256([]byte(address))
	return hex.EncodeToString(sum[:])
}
