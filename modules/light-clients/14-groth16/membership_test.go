package groth16_test

import (
	"crypto/sha256"

	ics23 "github.com/cosmos/ics23/go"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-lite/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-lite/modules/core/24-host"
)

// existenceProof builds a leaf-only ics23 existence proof of value under key.
// Its calculated root is the leaf hash itself, which lets the tests anchor a
// commitment root without building a full tree.
func existenceProof(spec *ics23.ProofSpec, key, value []byte) *ics23.CommitmentProof {
	return &ics23.CommitmentProof{
		Proof: &ics23.CommitmentProof_Exist{
			Exist: &ics23.ExistenceProof{
				Key:   key,
				Value: value,
				Leaf:  spec.LeafSpec,
			},
		},
	}
}

func (s *Groth16TestSuite) calculateRoot(proof *ics23.CommitmentProof) [32]byte {
	root, err := proof.Calculate()
	s.Require().NoError(err)
	s.Require().Len(root, 32)

	var out [32]byte
	copy(out[:], root)
	return out
}

func (s *Groth16TestSuite) marshalProof(proofs ...*ics23.CommitmentProof) []byte {
	bz, err := commitmenttypes.MerkleProof{Proofs: proofs}.Marshal()
	s.Require().NoError(err)
	return bz
}

func (s *Groth16TestSuite) TestVerifyMembershipChained() {
	value := []byte("packet commitment")
	leafKey := host.PacketCommitmentKey("groth16-7", 1)
	storeKey := []byte("ibc")

	// inner proof binds the value under the leaf key, outer proof binds the
	// resulting subroot under the counterparty store prefix
	innerProof := existenceProof(ics23.IavlSpec, leafKey, value)
	subroot := s.calculateRoot(innerProof)
	outerProof := existenceProof(ics23.TendermintSpec, storeKey, subroot[:])
	root := s.calculateRoot(outerProof)

	s.initializeClient(root, 10)

	path := [][]byte{storeKey, leafKey}
	proofBz := s.marshalProof(innerProof, outerProof)

	err := s.lightClientModule.VerifyMembership(s.ctx, testClientID, 100, path, value, proofBz)
	s.Require().NoError(err)

	// tampered value fails against the proven root
	err = s.lightClientModule.VerifyMembership(s.ctx, testClientID, 100, path, []byte("tampered"), proofBz)
	s.Require().ErrorIs(err, commitmenttypes.ErrInvalidProof)

	// unknown height has no proven root to verify against
	err = s.lightClientModule.VerifyMembership(s.ctx, testClientID, 99, path, value, proofBz)
	s.Require().ErrorIs(err, clienttypes.ErrConsensusStateNotFound)

	// undecodable proof bytes fail closed
	err = s.lightClientModule.VerifyMembership(s.ctx, testClientID, 100, path, value, []byte("garbage"))
	s.Require().ErrorIs(err, commitmenttypes.ErrInvalidMerkleProof)
}

func (s *Groth16TestSuite) TestVerifyMembershipSingleKeyPath() {
	value := []byte("packet commitment")
	leafKey := host.PacketCommitmentKey("groth16-7", 1)

	proof := existenceProof(ics23.TendermintSpec, leafKey, value)
	root := s.calculateRoot(proof)

	s.initializeClient(root, 10)

	err := s.lightClientModule.VerifyMembership(s.ctx, testClientID, 100, [][]byte{leafKey}, value, s.marshalProof(proof))
	s.Require().NoError(err)
}

func (s *Groth16TestSuite) TestVerifyNonMembership() {
	existingKey := host.PacketReceiptKey("groth16-7", 1)
	missingKey := host.PacketReceiptKey("groth16-7", 2)

	left := existenceProof(ics23.TendermintSpec, existingKey, []byte{2})
	nonExistProof := &ics23.CommitmentProof{
		Proof: &ics23.CommitmentProof_Nonexist{
			Nonexist: &ics23.NonExistenceProof{
				Key:  missingKey,
				Left: left.GetExist(),
			},
		},
	}
	root := s.calculateRoot(nonExistProof)

	s.initializeClient(root, 10)

	err := s.lightClientModule.VerifyNonMembership(s.ctx, testClientID, 100, [][]byte{missingKey}, s.marshalProof(nonExistProof))
	s.Require().NoError(err)

	// an existence proof cannot prove absence
	err = s.lightClientModule.VerifyNonMembership(s.ctx, testClientID, 100, [][]byte{existingKey}, s.marshalProof(left))
	s.Require().ErrorIs(err, commitmenttypes.ErrInvalidProof)
}

func (s *Groth16TestSuite) TestVerifyMembershipWrongRoot() {
	value := []byte("packet commitment")
	leafKey := host.PacketCommitmentKey("groth16-7", 1)

	proof := existenceProof(ics23.TendermintSpec, leafKey, value)

	// client initialized with an unrelated root
	s.initializeClient(sha256.Sum256([]byte("unrelated root")), 10)

	err := s.lightClientModule.VerifyMembership(s.ctx, testClientID, 100, [][]byte{leafKey}, value, s.marshalProof(proof))
	s.Require().ErrorIs(err, commitmenttypes.ErrInvalidProof)
}
