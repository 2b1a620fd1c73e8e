package exported

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LightClientModule is the verification strategy implemented by each light
// client package. The packet handlers never interact with a light client
// directly; they dispatch through the client keeper which routes on the
// client type encoded in the client identifier.
type LightClientModule interface {
	// Initialize unmarshals the provided client and consensus state bytes,
	// performs basic validation and stores them in the client prefix store.
	// The initial consensus state must have non-zero height and timestamp.
	Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error

	// VerifyClientMessage checks the validity of a client message (header,
	// attestation claim or misbehaviour) without mutating state.
	VerifyClientMessage(ctx sdk.Context, clientID string, clientMsg ClientMessage) error

	// CheckForMisbehaviour reports whether the verified client message
	// evidences conflicting state for an already attested height.
	CheckForMisbehaviour(ctx sdk.Context, clientID string, clientMsg ClientMessage) bool

	// UpdateStateOnMisbehaviour freezes the client. The state change commits
	// even though the message evidences a protocol violation.
	UpdateStateOnMisbehaviour(ctx sdk.Context, clientID string, clientMsg ClientMessage)

	// UpdateState stores the new consensus state(s) attested by a previously
	// verified client message and returns the updated heights.
	UpdateState(ctx sdk.Context, clientID string, clientMsg ClientMessage) []uint64

	// VerifyMembership verifies a proof that value is stored under path in
	// the counterparty state at the given trusted height. Fails closed.
	VerifyMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, value, proof []byte) error

	// VerifyNonMembership verifies a proof that no value is stored under path
	// in the counterparty state at the given trusted height. Fails closed.
	VerifyNonMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, proof []byte) error

	// Status returns the status of the client.
	Status(ctx sdk.Context, clientID string) Status

	// LatestHeight returns the latest attested counterparty height.
	LatestHeight(ctx sdk.Context, clientID string) uint64

	// TimestampAtHeight returns the timestamp, in unix nanoseconds, of the
	// consensus state stored at the given height.
	TimestampAtHeight(ctx sdk.Context, clientID string, height uint64) (uint64, error)
}
