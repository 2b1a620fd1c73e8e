package groth16

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// VerifyClientMessage checks the validity of a client message. A header is
// valid if its proof verifies against the fixed verification key with the
// trusted and claimed consensus commitments as public inputs. Misbehaviour
// requires both headers to carry valid proofs.
func (cs *ClientState) VerifyClientMessage(ctx sdk.Context, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) error {
	if cs.Frozen {
		return ErrClientFrozen
	}

	switch msg := clientMsg.(type) {
	case *Header:
		return cs.verifyHeader(clientStore, msg)

	case *Misbehaviour:
		if err := msg.ValidateBasic(); err != nil {
			return err
		}
		if err := cs.verifyHeader(clientStore, msg.HeaderA); err != nil {
			return errorsmod.Wrap(err, "header A")
		}
		if err := cs.verifyHeader(clientStore, msg.HeaderB); err != nil {
			return errorsmod.Wrap(err, "header B")
		}
		return nil

	default:
		return errorsmod.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T or %T, got type %T", (*Header)(nil), (*Misbehaviour)(nil), clientMsg)
	}
}

func (cs *ClientState) verifyHeader(clientStore storetypes.KVStore, header *Header) error {
	if err := header.ValidateBasic(); err != nil {
		return err
	}

	trustedConsensusState, found := getConsensusState(clientStore, header.TrustedHeight)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "trusted height (%d)", header.TrustedHeight)
	}

	if header.NewTimestamp <= trustedConsensusState.Timestamp {
		return errorsmod.Wrap(ErrInvalidHeader, "new timestamp must be after the trusted timestamp")
	}

	vk, err := deserializeVerifyingKey(cs.VerifyingKey)
	if err != nil {
		return err
	}

	trustedCommitment := ConsensusCommitment(header.TrustedHeight, trustedConsensusState.Root, trustedConsensusState.Timestamp)
	newCommitment := ConsensusCommitment(header.NewHeight, header.NewRoot, header.NewTimestamp)

	return verifyConsensusProof(vk, header.Proof, trustedCommitment, newCommitment)
}

// CheckForMisbehaviour reports whether the verified client message
// evidences conflicting state: explicit misbehaviour evidence, or a header
// for an already proven height with a different root or timestamp.
func (cs *ClientState) CheckForMisbehaviour(ctx sdk.Context, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) bool {
	switch msg := clientMsg.(type) {
	case *Header:
		if existing, found := getConsensusState(clientStore, msg.NewHeight); found {
			return existing.Root != msg.NewRoot || existing.Timestamp != msg.NewTimestamp
		}
		return false

	case *Misbehaviour:
		return true

	default:
		return false
	}
}

// UpdateState stores the proven consensus state and bumps the latest
// height. The header was validated in VerifyClientMessage, so anything
// unexpected here panics.
func (cs *ClientState) UpdateState(ctx sdk.Context, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) []uint64 {
	header, ok := clientMsg.(*Header)
	if !ok {
		panic(fmt.Sprintf("expected type %T, got type %T", (*Header)(nil), clientMsg))
	}

	setConsensusState(clientStore, NewConsensusState(header.NewRoot, header.NewTimestamp), header.NewHeight)

	if header.NewHeight > cs.LatestHeight {
		cs.LatestHeight = header.NewHeight
	}

	setClientState(clientStore, cs)

	return []uint64{header.NewHeight}
}
