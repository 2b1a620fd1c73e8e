package groth16

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

var (
	_ exported.ClientMessage = (*Header)(nil)
	_ exported.ClientMessage = (*Misbehaviour)(nil)
)

// Header is the client message of a groth16 client: a claimed new
// consensus state plus a succinct proof of the transition from a trusted
// consensus state.
type Header struct {
	// TrustedHeight selects the consensus state the proof starts from.
	TrustedHeight uint64
	// NewHeight, NewRoot and NewTimestamp describe the claimed new state.
	NewHeight    uint64
	NewRoot      [32]byte
	NewTimestamp uint64
	// Proof is the serialized bn254 Groth16 proof.
	Proof []byte
}

// ClientType is groth16.
func (Header) ClientType() string {
	return exported.Groth16
}

// ValidateBasic performs stateless validation of the header.
func (h Header) ValidateBasic() error {
	if h.TrustedHeight == 0 {
		return errorsmod.Wrap(ErrInvalidHeader, "trusted height cannot be 0")
	}
	if h.NewHeight <= h.TrustedHeight {
		return errorsmod.Wrapf(ErrInvalidHeader, "new height (%d) must be greater than trusted height (%d)", h.NewHeight, h.TrustedHeight)
	}
	if h.NewRoot == ([32]byte{}) {
		return errorsmod.Wrap(ErrInvalidHeader, "new root cannot be empty")
	}
	if h.NewTimestamp == 0 {
		return errorsmod.Wrap(ErrInvalidHeader, "new timestamp cannot be 0")
	}
	if len(h.Proof) == 0 {
		return errorsmod.Wrap(ErrInvalidHeader, "proof cannot be empty")
	}
	return nil
}

// Misbehaviour is two conflicting proven headers for the same height.
type Misbehaviour struct {
	HeaderA *Header
	HeaderB *Header
}

// ClientType is groth16.
func (Misbehaviour) ClientType() string {
	return exported.Groth16
}

// ValidateBasic performs stateless validation of the misbehaviour evidence.
func (m Misbehaviour) ValidateBasic() error {
	if m.HeaderA == nil || m.HeaderB == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour headers cannot be nil")
	}
	if err := m.HeaderA.ValidateBasic(); err != nil {
		return err
	}
	if err := m.HeaderB.ValidateBasic(); err != nil {
		return err
	}
	if m.HeaderA.NewHeight != m.HeaderB.NewHeight {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour headers must claim the same height")
	}
	if m.HeaderA.NewRoot == m.HeaderB.NewRoot && m.HeaderA.NewTimestamp == m.HeaderB.NewTimestamp {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour headers do not conflict")
	}
	return nil
}
