package groth16

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
)

// State and wire records use ABI encoding (not Protobuf) for cross-platform
// compatibility with the prover and the counterparty implementation.

var (
	uint64Type, _  = abi.NewType("uint64", "", nil)
	boolType, _    = abi.NewType("bool", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)
	bytes32Type, _ = abi.NewType("bytes32", "", nil)

	clientStateArgs = abi.Arguments{
		{Name: "verifyingKey", Type: bytesType},
		{Name: "trustLevelNumerator", Type: uint64Type},
		{Name: "trustLevelDenominator", Type: uint64Type},
		{Name: "latestHeight", Type: uint64Type},
		{Name: "frozen", Type: boolType},
	}

	consensusStateArgs = abi.Arguments{
		{Name: "root", Type: bytes32Type},
		{Name: "timestamp", Type: uint64Type},
	}

	headerArgs = abi.Arguments{
		{Name: "trustedHeight", Type: uint64Type},
		{Name: "newHeight", Type: uint64Type},
		{Name: "newRoot", Type: bytes32Type},
		{Name: "newTimestamp", Type: uint64Type},
		{Name: "proof", Type: bytesType},
	}
)

// ABIEncode encodes the client state.
func (cs ClientState) ABIEncode() ([]byte, error) {
	return clientStateArgs.Pack(cs.VerifyingKey, cs.TrustLevelNumerator, cs.TrustLevelDenominator, cs.LatestHeight, cs.Frozen)
}

// ABIDecodeClientState decodes an ABI encoded client state.
func ABIDecodeClientState(data []byte) (*ClientState, error) {
	unpacked, err := clientStateArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidClient, "failed to ABI decode client state: %v", err)
	}

	if len(unpacked) != 5 {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid client state: expected 5 fields")
	}

	verifyingKey, ok := unpacked[0].([]byte)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid verifying key type")
	}
	trustNum, ok := unpacked[1].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid trust level numerator type")
	}
	trustDen, ok := unpacked[2].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid trust level denominator type")
	}
	latestHeight, ok := unpacked[3].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid latest height type")
	}
	frozen, ok := unpacked[4].(bool)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid frozen type")
	}

	return &ClientState{
		VerifyingKey:          verifyingKey,
		TrustLevelNumerator:   trustNum,
		TrustLevelDenominator: trustDen,
		LatestHeight:          latestHeight,
		Frozen:                frozen,
	}, nil
}

// ABIEncode encodes the consensus state.
func (cs ConsensusState) ABIEncode() ([]byte, error) {
	return consensusStateArgs.Pack(cs.Root, cs.Timestamp)
}

// ABIDecodeConsensusState decodes an ABI encoded consensus state.
func ABIDecodeConsensusState(data []byte) (*ConsensusState, error) {
	unpacked, err := consensusStateArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "failed to ABI decode consensus state: %v", err)
	}

	if len(unpacked) != 2 {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "invalid consensus state: expected 2 fields")
	}

	root, ok := unpacked[0].([32]byte)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "invalid root type")
	}
	timestamp, ok := unpacked[1].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "invalid timestamp type")
	}

	return &ConsensusState{Root: root, Timestamp: timestamp}, nil
}

// ABIEncode encodes the header.
func (h Header) ABIEncode() ([]byte, error) {
	return headerArgs.Pack(h.TrustedHeight, h.NewHeight, h.NewRoot, h.NewTimestamp, h.Proof)
}

// ABIDecodeHeader decodes an ABI encoded header.
func ABIDecodeHeader(data []byte) (*Header, error) {
	unpacked, err := headerArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidHeader, "failed to ABI decode header: %v", err)
	}

	if len(unpacked) != 5 {
		return nil, errorsmod.Wrap(ErrInvalidHeader, "invalid header: expected 5 fields")
	}

	trustedHeight, ok := unpacked[0].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidHeader, "invalid trusted height type")
	}
	newHeight, ok := unpacked[1].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidHeader, "invalid new height type")
	}
	newRoot, ok := unpacked[2].([32]byte)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidHeader, "invalid new root type")
	}
	newTimestamp, ok := unpacked[3].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidHeader, "invalid new timestamp type")
	}
	proof, ok := unpacked[4].([]byte)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidHeader, "invalid proof type")
	}

	return &Header{
		TrustedHeight: trustedHeight,
		NewHeight:     newHeight,
		NewRoot:       newRoot,
		NewTimestamp:  newTimestamp,
		Proof:         proof,
	}, nil
}
