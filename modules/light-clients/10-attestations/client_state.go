package attestations

import (
	"bytes"
	"crypto/sha256"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// ClientState holds the quorum configuration of an attestation client: the
// set of trusted attestor addresses and the minimum number of distinct
// signatures required to accept a claim.
type ClientState struct {
	// Attestors are hex-encoded secp256k1 addresses of the trusted signers.
	Attestors []string
	// QuorumThreshold is the minimum number of distinct attestor signatures.
	QuorumThreshold uint32
	// LatestHeight is the highest attested counterparty height.
	LatestHeight uint64
	// Frozen is set on misbehaviour and is terminal.
	Frozen bool
}

// NewClientState creates a new ClientState instance.
func NewClientState(attestors []string, quorumThreshold uint32, latestHeight uint64) *ClientState {
	return &ClientState{
		Attestors:       attestors,
		QuorumThreshold: quorumThreshold,
		LatestHeight:    latestHeight,
		Frozen:          false,
	}
}

// ClientType is attestations.
func (ClientState) ClientType() string {
	return exported.Attestations
}

// Validate performs basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if len(cs.Attestors) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "attestor addresses cannot be empty")
	}
	if cs.QuorumThreshold == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "quorum threshold cannot be 0")
	}
	if cs.QuorumThreshold > uint32(len(cs.Attestors)) {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "quorum threshold cannot exceed number of attestors")
	}

	seen := make(map[string]bool)
	for _, addr := range cs.Attestors {
		if addr == "" {
			return errorsmod.Wrap(clienttypes.ErrInvalidClient, "attestor address cannot be empty")
		}
		if seen[addr] {
			return errorsmod.Wrap(clienttypes.ErrInvalidClient, "duplicate attestor address")
		}
		seen[addr] = true
	}

	if cs.LatestHeight == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "latest height must be greater than 0")
	}

	return nil
}

// ABIEncode encodes the client state.
// This type uses ABI encoding (not Protobuf) for cross-platform compatibility.
func (cs ClientState) ABIEncode() ([]byte, error) {
	return clientStateArgs.Pack(cs.Attestors, cs.QuorumThreshold, cs.LatestHeight, cs.Frozen)
}

// ABIDecodeClientState decodes an ABI encoded client state.
func ABIDecodeClientState(data []byte) (*ClientState, error) {
	unpacked, err := clientStateArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidClient, "failed to ABI decode client state: %v", err)
	}

	if len(unpacked) != 4 {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid client state: expected 4 fields")
	}

	attestors, ok := unpacked[0].([]string)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid attestors type")
	}
	quorumThreshold, ok := unpacked[1].(uint32)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid quorum threshold type")
	}
	latestHeight, ok := unpacked[2].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid latest height type")
	}
	frozen, ok := unpacked[3].(bool)
	if !ok {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "invalid frozen type")
	}

	return &ClientState{
		Attestors:       attestors,
		QuorumThreshold: quorumThreshold,
		LatestHeight:    latestHeight,
		Frozen:          frozen,
	}, nil
}

// verifyMembership verifies an attested packet commitment at the given
// height. The proof is an attestation claim over a packet attestation that
// must contain the exact (path, value) pair. Fails closed on any malformed
// proof, unknown height or frozen client.
func (cs *ClientState) verifyMembership(
	ctx sdk.Context,
	clientStore storetypes.KVStore,
	height uint64,
	path [][]byte,
	value []byte,
	proof []byte,
) error {
	if cs.Frozen {
		return ErrClientFrozen
	}

	if len(path) == 0 {
		return errorsmod.Wrap(ErrInvalidPath, "path cannot be empty")
	}

	if len(value) == 0 {
		return errorsmod.Wrap(ErrInvalidAttestationData, "value cannot be empty")
	}

	if _, found := getConsensusState(clientStore, height); !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "consensus state not found for height %d", height)
	}

	claim, err := ABIDecodeAttestationClaim(proof)
	if err != nil {
		return err
	}

	if err := cs.verifySignatures(claim); err != nil {
		return err
	}

	packetAttestation, err := ABIDecodePacketAttestation(claim.AttestationData)
	if err != nil {
		return err
	}

	if packetAttestation.Height != height {
		return errorsmod.Wrapf(ErrInvalidHeight, "height mismatch: expected %d, got %d", height, packetAttestation.Height)
	}

	if len(packetAttestation.Packets) == 0 {
		return errorsmod.Wrap(ErrInvalidAttestationData, "packets cannot be empty")
	}

	commitmentPath := normalizePathBytes(flattenPath(path))

	for _, packet := range packetAttestation.Packets {
		if len(packet.Commitment) == 32 && len(value) == 32 && bytes.Equal(packet.Commitment, value) && bytes.Equal(packet.Path, commitmentPath) {
			return nil
		}
	}

	return ErrNotMember
}

// verifyNonMembership always fails: attestors vouch for presence, not
// absence, so timeout proofs require a counterparty exposing a commitment
// root. Failing closed keeps the contract safe.
func (cs *ClientState) verifyNonMembership() error {
	if cs.Frozen {
		return ErrClientFrozen
	}
	return ErrNonMembershipUnsupported
}

func flattenPath(path [][]byte) []byte {
	return bytes.Join(path, []byte("/"))
}

// normalizePathBytes maps a path of arbitrary length onto the fixed 32-byte
// representation the attestors sign.
func normalizePathBytes(raw []byte) []byte {
	if len(raw) == 32 {
		return raw
	}

	sum := sha256.Sum256(raw)
	return sum[:]
}
