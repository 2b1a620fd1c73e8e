package attestations

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// All wire and state records of this client use ABI encoding (not Protobuf)
// for cross-platform compatibility: the attestors and the counterparty
// implementation sign and parse the exact same byte layouts.

var (
	uint32Type, _      = abi.NewType("uint32", "", nil)
	uint64Type, _      = abi.NewType("uint64", "", nil)
	boolType, _        = abi.NewType("bool", "", nil)
	bytesType, _       = abi.NewType("bytes", "", nil)
	bytesSliceType, _  = abi.NewType("bytes[]", "", nil)
	bytes32Type, _     = abi.NewType("bytes32", "", nil)
	stringSliceType, _ = abi.NewType("string[]", "", nil)

	clientStateArgs = abi.Arguments{
		{Name: "attestors", Type: stringSliceType},
		{Name: "quorumThreshold", Type: uint32Type},
		{Name: "latestHeight", Type: uint64Type},
		{Name: "frozen", Type: boolType},
	}

	consensusStateArgs = abi.Arguments{
		{Name: "timestamp", Type: uint64Type},
	}

	attestationClaimArgs = abi.Arguments{
		{Name: "attestationData", Type: bytesType},
		{Name: "signatures", Type: bytesSliceType},
	}

	stateAttestationArgs = abi.Arguments{
		{Name: "height", Type: uint64Type},
		{Name: "timestamp", Type: uint64Type},
	}

	packetCompactTupleType, _ = abi.NewType("tuple[]", "", []abi.ArgumentMarshaling{
		{Name: "path", Type: "bytes32"},
		{Name: "commitment", Type: "bytes32"},
	})

	packetAttestationArgs = abi.Arguments{
		{Name: "height", Type: uint64Type},
		{Name: "packets", Type: packetCompactTupleType},
	}
)

// StateAttestation is the tuple attestors sign to vouch for a new
// counterparty height and timestamp.
type StateAttestation struct {
	Height    uint64
	Timestamp uint64
}

// PacketAttestation is the tuple attestors sign to vouch for a set of
// packet commitments present at a height.
type PacketAttestation struct {
	Height  uint64
	Packets []PacketCompact
}

// PacketCompact pairs a normalized 32-byte path with the 32-byte commitment
// attested at that path.
type PacketCompact struct {
	Path       []byte
	Commitment []byte
}

type abiPacketCompact struct {
	Path       [32]byte
	Commitment [32]byte
}

func (sa *StateAttestation) ABIEncode() ([]byte, error) {
	return stateAttestationArgs.Pack(sa.Height, sa.Timestamp)
}

// ABIDecodeStateAttestation decodes an ABI encoded state attestation.
func ABIDecodeStateAttestation(data []byte) (*StateAttestation, error) {
	unpacked, err := stateAttestationArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestationData, "failed to ABI decode state attestation: %v", err)
	}

	if len(unpacked) != 2 {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid state attestation: expected 2 fields")
	}

	height, ok := unpacked[0].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid height type")
	}

	timestamp, ok := unpacked[1].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid timestamp type")
	}

	return &StateAttestation{Height: height, Timestamp: timestamp}, nil
}

func (pa *PacketAttestation) ABIEncode() ([]byte, error) {
	packets := make([]abiPacketCompact, len(pa.Packets))
	for i, p := range pa.Packets {
		packets[i] = abiPacketCompact{
			Path:       bytesToBytes32(p.Path),
			Commitment: bytesToBytes32(p.Commitment),
		}
	}
	return packetAttestationArgs.Pack(pa.Height, packets)
}

// ABIDecodePacketAttestation decodes an ABI encoded packet attestation.
func ABIDecodePacketAttestation(data []byte) (*PacketAttestation, error) {
	unpacked, err := packetAttestationArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAttestationData, "failed to ABI decode packet attestation: %v", err)
	}

	if len(unpacked) != 2 {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid packet attestation: expected 2 fields")
	}

	height, ok := unpacked[0].(uint64)
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid height type")
	}

	abiPackets, ok := unpacked[1].([]struct {
		Path       [32]byte `json:"path"`
		Commitment [32]byte `json:"commitment"`
	})
	if !ok {
		return nil, errorsmod.Wrap(ErrInvalidAttestationData, "invalid packets type")
	}

	packets := make([]PacketCompact, len(abiPackets))
	for i, p := range abiPackets {
		packets[i] = PacketCompact{
			Path:       p.Path[:],
			Commitment: p.Commitment[:],
		}
	}

	return &PacketAttestation{Height: height, Packets: packets}, nil
}

func bytesToBytes32(b []byte) [32]byte {
	var result [32]byte
	copy(result[:], b)
	return result
}
