package attestations

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
)

// ConsensusState holds the attested counterparty timestamp for one height.
// Attestation clients carry no commitment root: membership is established
// by quorum signatures over the packet commitments themselves.
type ConsensusState struct {
	// Timestamp is the attested counterparty time in unix nanoseconds.
	Timestamp uint64
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(timestamp uint64) *ConsensusState {
	return &ConsensusState{Timestamp: timestamp}
}

// ValidateBasic rejects degenerate bootstrap states.
func (cs ConsensusState) ValidateBasic() error {
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "timestamp must be greater than 0")
	}
	return nil
}

// ABIEncode encodes the consensus state.
// This type uses ABI encoding (not Protobuf) for cross-platform compatibility.
func (cs ConsensusState) ABIEncode() ([]byte, error) {
	return consensusStateArgs.Pack(cs.Timestamp)
}

// ABIDecodeConsensusState decodes an ABI encoded consensus state.
func ABIDecodeConsensusState(data []byte) (*ConsensusState, error) {
	unpacked, err := consensusStateArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "failed to ABI decode consensus state: %v", err)
	}

	timestamp, ok := unpacked[0].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "invalid timestamp type")
	}

	return &ConsensusState{Timestamp: timestamp}, nil
}
