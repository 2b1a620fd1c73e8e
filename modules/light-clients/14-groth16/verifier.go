package groth16

import (
	"bytes"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// verifyingKey is a bn254 Groth16 verification key. Serialization uses the
// gnark-crypto point encoding: alpha (G1), beta, gamma, delta (G2) followed
// by the IC points (G1 slice with a uint32 length prefix).
type verifyingKey struct {
	Alpha bn254.G1Affine
	Beta  bn254.G2Affine
	Gamma bn254.G2Affine
	Delta bn254.G2Affine
	IC    []bn254.G1Affine
}

// consensusProof is a bn254 Groth16 proof: A, C in G1 and B in G2, in
// gnark-crypto point encoding.
type consensusProof struct {
	A bn254.G1Affine
	B bn254.G2Affine
	C bn254.G1Affine
}

// publicInputCount is fixed by the consensus circuit: the trusted consensus
// commitment and the new consensus commitment.
const publicInputCount = 2

func deserializeVerifyingKey(bz []byte) (*verifyingKey, error) {
	var vk verifyingKey
	dec := bn254.NewDecoder(bytes.NewReader(bz))

	if err := dec.Decode(&vk.Alpha); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidVerifyingKey, "failed to decode alpha: %v", err)
	}
	if err := dec.Decode(&vk.Beta); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidVerifyingKey, "failed to decode beta: %v", err)
	}
	if err := dec.Decode(&vk.Gamma); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidVerifyingKey, "failed to decode gamma: %v", err)
	}
	if err := dec.Decode(&vk.Delta); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidVerifyingKey, "failed to decode delta: %v", err)
	}
	if err := dec.Decode(&vk.IC); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidVerifyingKey, "failed to decode IC points: %v", err)
	}

	if len(vk.IC) != publicInputCount+1 {
		return nil, errorsmod.Wrapf(ErrInvalidVerifyingKey, "expected %d IC points, got %d", publicInputCount+1, len(vk.IC))
	}

	return &vk, nil
}

func deserializeProof(bz []byte) (*consensusProof, error) {
	var proof consensusProof
	dec := bn254.NewDecoder(bytes.NewReader(bz))

	if err := dec.Decode(&proof.A); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidProof, "failed to decode A: %v", err)
	}
	if err := dec.Decode(&proof.B); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidProof, "failed to decode B: %v", err)
	}
	if err := dec.Decode(&proof.C); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidProof, "failed to decode C: %v", err)
	}

	return &proof, nil
}

// verifyConsensusProof checks the Groth16 pairing equation
//
//	e(A, B) = e(alpha, beta) * e(vk_x, gamma) * e(C, delta)
//
// where vk_x = IC[0] + sum_i input_i * IC[i+1]. The two public inputs bind
// the trusted consensus commitment and the claimed new commitment, so a
// valid proof attests that the deterministic state-transition function
// applied to the trusted state yields the new state.
func verifyConsensusProof(vk *verifyingKey, proofBz []byte, trustedCommitment, newCommitment [32]byte) error {
	proof, err := deserializeProof(proofBz)
	if err != nil {
		return err
	}

	if !proof.A.IsInSubGroup() || !proof.B.IsInSubGroup() || !proof.C.IsInSubGroup() {
		return errorsmod.Wrap(ErrInvalidProof, "proof point not in subgroup")
	}

	inputs := [publicInputCount]fr.Element{}
	inputs[0].SetBytes(trustedCommitment[:])
	inputs[1].SetBytes(newCommitment[:])

	// vk_x = IC[0] + sum_i inputs[i] * IC[i+1]
	vkx := vk.IC[0]
	for i, input := range inputs {
		var term bn254.G1Affine
		var scalar big.Int
		input.BigInt(&scalar)
		term.ScalarMultiplication(&vk.IC[i+1], &scalar)
		vkx.Add(&vkx, &term)
	}

	var negA bn254.G1Affine
	negA.Neg(&proof.A)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{negA, vk.Alpha, vkx, proof.C},
		[]bn254.G2Affine{proof.B, vk.Beta, vk.Gamma, vk.Delta},
	)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidProof, "pairing check failed: %v", err)
	}
	if !ok {
		return errorsmod.Wrap(ErrInvalidProof, "consensus proof verification failed")
	}

	return nil
}
