package groth16

import (
	"crypto/sha256"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
)

// ConsensusState is a proven snapshot of the counterparty at one height:
// the commitment root membership proofs are verified against, and the
// consensus timestamp used for packet timeouts.
type ConsensusState struct {
	// Root is the counterparty commitment root at this height.
	Root [32]byte
	// Timestamp is the counterparty time in unix nanoseconds.
	Timestamp uint64
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(root [32]byte, timestamp uint64) *ConsensusState {
	return &ConsensusState{Root: root, Timestamp: timestamp}
}

// ValidateBasic rejects degenerate bootstrap states.
func (cs ConsensusState) ValidateBasic() error {
	if cs.Root == ([32]byte{}) {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "root cannot be empty")
	}
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "timestamp must be greater than 0")
	}
	return nil
}

// ConsensusCommitment is the public-input binding of a consensus state:
// sha256(bigEndian64(height) || root || bigEndian64(timestamp)). The proven
// circuit exposes the trusted and the new commitment as its public inputs.
func ConsensusCommitment(height uint64, root [32]byte, timestamp uint64) [32]byte {
	buf := make([]byte, 0, 8+32+8)
	buf = append(buf, sdk.Uint64ToBigEndian(height)...)
	buf = append(buf, root[:]...)
	buf = append(buf, sdk.Uint64ToBigEndian(timestamp)...)
	return sha256.Sum256(buf)
}
