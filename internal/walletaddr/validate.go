package walletaddr

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Validate checks that address is a plausible Solana account address:
// base58 text decoding to exactly 32 bytes. It does not require the point
// to be on the ed25519 curve, since program-derived addresses are
// deliberately off-curve.
func Validate(address string) error {
	if address == "" {
		return fmt.Errorf("empty address")
	}
	decoded, err := base58.Decode(address)
	if err != nil {
		return fmt.Errorf("decode address: %w", err)
	}
	if len(decoded) != 32 {
		return fmt.Errorf("address decodes to %d bytes, want 32", len(decoded))
	}
	return nil
}

// IsOnCurve reports whether the address decodes to a point on the ed25519
// curve. Ordinary wallet keypairs are on-curve; program-derived addresses
// are not. Returns false for addresses that fail Validate.
func IsOnCurve(address string) bool {
	decoded, err := base58.Decode(address)
	if err != nil || len(decoded) != 32 {
		return false
	}
	_, err = new(edwards25519.Point).SetBytes(decoded)
	return err == nil
}
