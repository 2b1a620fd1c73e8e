package types

import (
	"bytes"
	"encoding/binary"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	ics23 "github.com/cosmos/ics23/go"
)

// GetSDKSpecs returns the proof specs of a store built on an IAVL tree whose
// root hash is committed into a simple merkle tree (the standard SDK
// multistore layout the counterparty commitment root is computed over).
func GetSDKSpecs() []*ics23.ProofSpec {
	return []*ics23.ProofSpec{ics23.IavlSpec, ics23.TendermintSpec}
}

// MerklePath is the path used to verify commitment proofs, ordered from the
// outermost store to the leaf key.
type MerklePath struct {
	KeyPath [][]byte
}

// NewMerklePath creates a new MerklePath instance.
// The keys must be passed in from root-to-leaf order.
func NewMerklePath(keyPath ...[]byte) MerklePath {
	return MerklePath{KeyPath: keyPath}
}

// ApplyPrefix joins the counterparty key-path prefix with the provable
// packet path. An empty prefix yields a single-element path.
func ApplyPrefix(prefix []byte, path []byte) MerklePath {
	if len(prefix) == 0 {
		return NewMerklePath(path)
	}
	return NewMerklePath(prefix, path)
}

// GetKey returns the key at the given index, counted from the root.
func (mp MerklePath) GetKey(i uint64) ([]byte, error) {
	if i >= uint64(len(mp.KeyPath)) {
		return nil, fmt.Errorf("index out of range. %d (index) >= %d (len)", i, len(mp.KeyPath))
	}
	return mp.KeyPath[i], nil
}

// Empty returns true if the path is empty.
func (mp MerklePath) Empty() bool {
	return len(mp.KeyPath) == 0
}

// MerkleProof is a chained ics23 commitment proof. Proofs are ordered from
// the leaf store upward: Proofs[0] proves the value under the leaf key,
// each subsequent proof proves the previous subroot under the next key.
type MerkleProof struct {
	Proofs []*ics23.CommitmentProof
}

// Marshal encodes the proof as a sequence of length-prefixed ics23
// commitment proofs. The framing is part of the relayer wire contract.
func (proof MerkleProof) Marshal() ([]byte, error) {
	var buf []byte
	for _, p := range proof.Proofs {
		bz, err := p.Marshal()
		if err != nil {
			return nil, err
		}
		var lenPrefix [4]byte
		binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(bz)))
		buf = append(buf, lenPrefix[:]...)
		buf = append(buf, bz...)
	}
	return buf, nil
}

// UnmarshalMerkleProof decodes a sequence of length-prefixed ics23
// commitment proofs.
func UnmarshalMerkleProof(bz []byte) (MerkleProof, error) {
	var proof MerkleProof
	for len(bz) > 0 {
		if len(bz) < 4 {
			return MerkleProof{}, errorsmod.Wrap(ErrInvalidMerkleProof, "truncated proof length prefix")
		}
		length := binary.BigEndian.Uint32(bz[:4])
		bz = bz[4:]
		if uint32(len(bz)) < length {
			return MerkleProof{}, errorsmod.Wrap(ErrInvalidMerkleProof, "truncated proof body")
		}
		var p ics23.CommitmentProof
		if err := p.Unmarshal(bz[:length]); err != nil {
			return MerkleProof{}, errorsmod.Wrapf(ErrInvalidMerkleProof, "failed to unmarshal commitment proof: %v", err)
		}
		proof.Proofs = append(proof.Proofs, &p)
		bz = bz[length:]
	}
	if len(proof.Proofs) == 0 {
		return MerkleProof{}, errorsmod.Wrap(ErrInvalidMerkleProof, "empty merkle proof")
	}
	return proof, nil
}

// VerifyMembership verifies the chained membership proof of value at path
// against the given root. The number of path keys must match the number of
// proofs and specs.
func (proof MerkleProof) VerifyMembership(specs []*ics23.ProofSpec, root []byte, path MerklePath, value []byte) error {
	if err := proof.validateVerificationArgs(specs, root, path); err != nil {
		return err
	}
	if len(value) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "empty value in membership proof")
	}
	return verifyChainedMembershipProof(root, specs, proof.Proofs, path, value, 0)
}

// VerifyNonMembership verifies a chained proof that no value is stored at
// path: a non-existence proof for the leaf key, then membership proofs of
// each subroot up to the given root.
func (proof MerkleProof) VerifyNonMembership(specs []*ics23.ProofSpec, root []byte, path MerklePath) error {
	if err := proof.validateVerificationArgs(specs, root, path); err != nil {
		return err
	}

	np := proof.Proofs[0].GetNonexist()
	if np == nil {
		return errorsmod.Wrapf(ErrInvalidProof, "expected non-existence proof for key at index 0, got %T", proof.Proofs[0].GetProof())
	}

	subroot, err := proof.Proofs[0].Calculate()
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidProof, "could not calculate root for proof index 0, merkle tree is likely empty: %v", err)
	}

	key, err := path.GetKey(uint64(len(path.KeyPath) - 1))
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidProof, "could not retrieve leaf key: %v", err)
	}

	if ok := ics23.VerifyNonMembership(specs[0], subroot, proof.Proofs[0], key); !ok {
		return errorsmod.Wrapf(ErrInvalidProof, "non-membership verification failed for key %x", key)
	}

	// verify the subroot up to the commitment root
	return verifyChainedMembershipProof(root, specs, proof.Proofs, path, subroot, 1)
}

// verifyChainedMembershipProof verifies membership proofs from index up to
// the final root. Keys are consumed leaf-first, so proof at index i proves
// the key at path position len(path)-1-i.
func verifyChainedMembershipProof(root []byte, specs []*ics23.ProofSpec, proofs []*ics23.CommitmentProof, path MerklePath, value []byte, index int) error {
	var (
		subroot []byte
		err     error
	)

	subroot = value
	for i := index; i < len(proofs); i++ {
		subroot, err = proofs[i].Calculate()
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidProof, "could not calculate proof root at index %d: %v", i, err)
		}

		if ep := proofs[i].GetExist(); ep == nil {
			return errorsmod.Wrapf(ErrInvalidProof, "expected existence proof at index %d, got %T", i, proofs[i].GetProof())
		}

		key, err := path.GetKey(uint64(len(path.KeyPath) - 1 - i))
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidProof, "could not retrieve key at index %d: %v", i, err)
		}

		if ok := ics23.VerifyMembership(specs[i], subroot, proofs[i], key, value); !ok {
			return errorsmod.Wrapf(ErrInvalidProof, "membership verification failed for key %x", key)
		}

		value = subroot
	}

	if !bytes.Equal(root, subroot) {
		return errorsmod.Wrapf(ErrInvalidProof, "calculated root %x does not match provided root %x", subroot, root)
	}
	return nil
}

func (proof MerkleProof) validateVerificationArgs(specs []*ics23.ProofSpec, root []byte, path MerklePath) error {
	if len(proof.Proofs) == 0 {
		return errorsmod.Wrap(ErrInvalidMerkleProof, "proof cannot be empty")
	}
	if len(root) == 0 {
		return errorsmod.Wrap(ErrInvalidMerkleProof, "root cannot be empty")
	}
	if len(specs) != len(proof.Proofs) {
		return errorsmod.Wrapf(ErrInvalidMerkleProof, "length of specs %d not equal to length of proofs %d", len(specs), len(proof.Proofs))
	}
	if len(path.KeyPath) != len(specs) {
		return errorsmod.Wrapf(ErrInvalidProof, "path length %d not same as proof %d", len(path.KeyPath), len(specs))
	}
	for i, spec := range specs {
		if spec == nil {
			return errorsmod.Wrapf(ErrInvalidProof, "spec at position %d is nil", i)
		}
	}
	return nil
}
