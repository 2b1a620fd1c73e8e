package groth16

import (
	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	ics23 "github.com/cosmos/ics23/go"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-lite/modules/core/23-commitment/types"
)

// verifyMembership verifies an ics23 merkle proof of value at path against
// the commitment root proven for the given height. Fails closed on any
// malformed proof, unknown height or frozen client.
func (cs *ClientState) verifyMembership(
	clientStore storetypes.KVStore,
	height uint64,
	path [][]byte,
	value []byte,
	proofBz []byte,
) error {
	if cs.Frozen {
		return ErrClientFrozen
	}

	consensusState, found := getConsensusState(clientStore, height)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "consensus state not found for height %d", height)
	}

	merkleProof, err := commitmenttypes.UnmarshalMerkleProof(proofBz)
	if err != nil {
		return err
	}

	merklePath := commitmenttypes.NewMerklePath(path...)
	return merkleProof.VerifyMembership(specsForPath(merklePath), consensusState.Root[:], merklePath, value)
}

// verifyNonMembership verifies an ics23 absence proof of path against the
// commitment root proven for the given height. Used exclusively for
// timeout proofs. Same fail-closed requirement as verifyMembership.
func (cs *ClientState) verifyNonMembership(
	clientStore storetypes.KVStore,
	height uint64,
	path [][]byte,
	proofBz []byte,
) error {
	if cs.Frozen {
		return ErrClientFrozen
	}

	consensusState, found := getConsensusState(clientStore, height)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "consensus state not found for height %d", height)
	}

	merkleProof, err := commitmenttypes.UnmarshalMerkleProof(proofBz)
	if err != nil {
		return err
	}

	merklePath := commitmenttypes.NewMerklePath(path...)
	return merkleProof.VerifyNonMembership(specsForPath(merklePath), consensusState.Root[:], merklePath)
}

// specsForPath selects the proof specs for the given path depth. A full
// path proves through the counterparty's store prefix into the outer
// multistore; a single-key path proves directly against the outer tree.
func specsForPath(path commitmenttypes.MerklePath) []*ics23.ProofSpec {
	specs := commitmenttypes.GetSDKSpecs()
	if n := len(path.KeyPath); n > 0 && n < len(specs) {
		return specs[len(specs)-n:]
	}
	return specs
}
