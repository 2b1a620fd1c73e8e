package attestations

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

var (
	_ exported.ClientMessage = (*AttestationClaim)(nil)
	_ exported.ClientMessage = (*Misbehaviour)(nil)
)

// AttestationClaim is the client message of an attestation client: a quorum
// of signatures over an ABI encoded state or packet attestation.
type AttestationClaim struct {
	// AttestationData is the ABI encoded StateAttestation or PacketAttestation.
	AttestationData []byte
	// Signatures are 65-byte (r||s||v) secp256k1 signatures over
	// sha256(AttestationData).
	Signatures [][]byte
}

// ClientType is attestations.
func (AttestationClaim) ClientType() string {
	return exported.Attestations
}

// ValidateBasic performs stateless validation of the claim.
func (c AttestationClaim) ValidateBasic() error {
	if len(c.AttestationData) == 0 {
		return errorsmod.Wrap(ErrInvalidAttestationData, "attestation data cannot be empty")
	}
	if len(c.Signatures) == 0 {
		return errorsmod.Wrap(ErrInvalidSignature, "signatures cannot be empty")
	}
	return nil
}

// ABIEncode encodes the claim.
// This type uses ABI encoding (not Protobuf) for cross-platform compatibility.
func (c AttestationClaim) ABIEncode() ([]byte, error) {
	return attestationClaimArgs.Pack(c.AttestationData, c.Signatures)
}

// ABIDecodeAttestationClaim decodes an ABI encoded attestation claim.
func ABIDecodeAttestationClaim(data []byte) (*AttestationClaim, error) {
	unpacked, err := attestationClaimArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestationData, "failed to ABI decode attestation claim: %v", err)
	}

	if len(unpacked) != 2 {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid attestation claim: expected 2 fields")
	}

	attestationData, ok := unpacked[0].([]byte)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid attestation data type")
	}

	signatures, ok := unpacked[1].([][]byte)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid signatures type")
	}

	return &AttestationClaim{AttestationData: attestationData, Signatures: signatures}, nil
}

// Misbehaviour is two conflicting attestation claims for the same height.
// Both claims must carry a valid quorum; a client that accepts both has
// observed the attestor set vouching for two different states and freezes.
type Misbehaviour struct {
	ClaimA *AttestationClaim
	ClaimB *AttestationClaim
}

// ClientType is attestations.
func (Misbehaviour) ClientType() string {
	return exported.Attestations
}

// ValidateBasic performs stateless validation of the misbehaviour evidence.
func (m Misbehaviour) ValidateBasic() error {
	if m.ClaimA == nil || m.ClaimB == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour claims cannot be nil")
	}
	if err := m.ClaimA.ValidateBasic(); err != nil {
		return err
	}
	return m.ClaimB.ValidateBasic()
}
