package types

import (
	"crypto/sha256"
	"math"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LaneModulus is the number of sequence lanes per base counter tick. Each
// (application, sender) pair owns a deterministic lane, so independent
// callers allocating in the same tick never collide and a relayer can
// derive the final sequence off-chain before the allocating transaction
// executes.
const LaneModulus = 10000

// Lane returns the deterministic lane of the (application, sender) pair.
func Lane(appID, sender string) uint64 {
	h := sha256.New()
	h.Write([]byte("lane"))
	h.Write([]byte(appID))
	h.Write([]byte{0x00})
	h.Write([]byte(sender))
	sum := h.Sum(nil)
	return sdk.BigEndianToUint64(sum[:8]) % LaneModulus
}

// DeriveSequence computes the packet sequence for the given base counter
// value and (application, sender) pair:
//
//	sequence = baseCounter*LaneModulus + Lane(appID, sender)
//
// The derivation is pure, so an off-chain party holding the current base
// counter can predict the sequence before its transaction executes.
// Base counter overflow is fatal for the client; sequences are never
// reused.
func DeriveSequence(baseCounter uint64, appID, sender string) (uint64, error) {
	lane := Lane(appID, sender)
	if baseCounter > (math.MaxUint64-lane)/LaneModulus {
		return 0, errorsmod.Wrapf(ErrSequenceExhausted, "base counter %d overflows the sequence space", baseCounter)
	}
	return baseCounter*LaneModulus + lane, nil
}
