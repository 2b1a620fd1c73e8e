package groth16

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// ClientState holds the fixed Groth16 verification key of the consensus
// circuit and the configured trust level. The state-transition function
// (header validation, validator-set rotation, trust-threshold signing) is
// enforced inside the circuit; the client only checks the proof.
type ClientState struct {
	// VerifyingKey is the serialized bn254 Groth16 verification key.
	// The trust level is a constant of the proven circuit: changing it
	// requires a new circuit and therefore a new key.
	VerifyingKey []byte
	// TrustLevelNumerator/Denominator record the trust fraction the circuit
	// was compiled with. Default 2/3 of the previous validator set.
	TrustLevelNumerator   uint64
	TrustLevelDenominator uint64
	// LatestHeight is the highest proven counterparty height.
	LatestHeight uint64
	// Frozen is set on misbehaviour and is terminal.
	Frozen bool
}

// NewClientState creates a new ClientState instance.
func NewClientState(verifyingKey []byte, trustNum, trustDen, latestHeight uint64) *ClientState {
	return &ClientState{
		VerifyingKey:          verifyingKey,
		TrustLevelNumerator:   trustNum,
		TrustLevelDenominator: trustDen,
		LatestHeight:          latestHeight,
		Frozen:                false,
	}
}

// ClientType is groth16.
func (ClientState) ClientType() string {
	return exported.Groth16
}

// Validate performs basic validation of the client state fields. The trust
// fraction must lie in (1/3, 1].
func (cs ClientState) Validate() error {
	if len(cs.VerifyingKey) == 0 {
		return errorsmod.Wrap(ErrInvalidVerifyingKey, "verifying key cannot be empty")
	}
	if _, err := deserializeVerifyingKey(cs.VerifyingKey); err != nil {
		return err
	}

	if cs.TrustLevelDenominator == 0 {
		return errorsmod.Wrap(ErrInvalidTrustLevel, "trust level denominator cannot be 0")
	}
	if cs.TrustLevelNumerator > cs.TrustLevelDenominator {
		return errorsmod.Wrap(ErrInvalidTrustLevel, "trust level cannot exceed 1")
	}
	if 3*cs.TrustLevelNumerator <= cs.TrustLevelDenominator {
		return errorsmod.Wrap(ErrInvalidTrustLevel, "trust level must be greater than 1/3")
	}

	if cs.LatestHeight == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "latest height must be greater than 0")
	}

	return nil
}
