package attestations

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// VerifyClientMessage checks the validity of a client message. A claim is
// valid if it has signatures from distinct attestors meeting quorum; for
// misbehaviour evidence both claims must independently reach quorum.
func (cs *ClientState) VerifyClientMessage(ctx sdk.Context, clientMsg exported.ClientMessage) error {
	if cs.Frozen {
		return ErrClientFrozen
	}

	switch msg := clientMsg.(type) {
	case *AttestationClaim:
		if err := msg.ValidateBasic(); err != nil {
			return err
		}
		if err := cs.verifySignatures(msg); err != nil {
			return err
		}
		// state attestations must decode and carry a non-zero height
		stateAttestation, err := ABIDecodeStateAttestation(msg.AttestationData)
		if err != nil {
			return err
		}
		if stateAttestation.Height == 0 || stateAttestation.Timestamp == 0 {
			return errorsmod.Wrap(ErrInvalidAttestationData, "attested height and timestamp must be non-zero")
		}
		return nil

	case *Misbehaviour:
		if err := msg.ValidateBasic(); err != nil {
			return err
		}
		if err := cs.verifySignatures(msg.ClaimA); err != nil {
			return errorsmod.Wrap(err, "claim A")
		}
		if err := cs.verifySignatures(msg.ClaimB); err != nil {
			return errorsmod.Wrap(err, "claim B")
		}

		attA, err := ABIDecodeStateAttestation(msg.ClaimA.AttestationData)
		if err != nil {
			return errorsmod.Wrap(err, "claim A")
		}
		attB, err := ABIDecodeStateAttestation(msg.ClaimB.AttestationData)
		if err != nil {
			return errorsmod.Wrap(err, "claim B")
		}

		if attA.Height != attB.Height {
			return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour claims must attest the same height")
		}
		if attA.Timestamp == attB.Timestamp {
			return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour claims do not conflict")
		}
		return nil

	default:
		return errorsmod.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T or %T, got type %T", (*AttestationClaim)(nil), (*Misbehaviour)(nil), clientMsg)
	}
}

// CheckForMisbehaviour reports whether the verified client message
// evidences conflicting attestations: either explicit misbehaviour
// evidence, or a claim for an already attested height with a different
// timestamp.
func (cs *ClientState) CheckForMisbehaviour(ctx sdk.Context, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) bool {
	switch msg := clientMsg.(type) {
	case *AttestationClaim:
		stateAttestation, err := ABIDecodeStateAttestation(msg.AttestationData)
		if err != nil {
			return false
		}

		if existing, found := getConsensusState(clientStore, stateAttestation.Height); found {
			return existing.Timestamp != stateAttestation.Timestamp
		}
		return false

	case *Misbehaviour:
		return true

	default:
		return false
	}
}

// UpdateState stores the attested consensus state and bumps the latest
// height. The claim was validated in VerifyClientMessage, so anything
// unexpected here panics.
func (cs *ClientState) UpdateState(ctx sdk.Context, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) []uint64 {
	claim, ok := clientMsg.(*AttestationClaim)
	if !ok {
		panic(fmt.Sprintf("expected type %T, got type %T", (*AttestationClaim)(nil), clientMsg))
	}

	stateAttestation, err := ABIDecodeStateAttestation(claim.AttestationData)
	if err != nil {
		panic(fmt.Sprintf("failed to decode attestation data: %v", err))
	}

	setConsensusState(clientStore, NewConsensusState(stateAttestation.Timestamp), stateAttestation.Height)

	if stateAttestation.Height > cs.LatestHeight {
		cs.LatestHeight = stateAttestation.Height
	}

	setClientState(clientStore, cs)

	return []uint64{stateAttestation.Height}
}
