package host

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Marker bytes separating the client identifier from the big-endian sequence
// in provable packet paths. These paths cross into externally verified
// commitment proofs shared by both ledgers: the exact byte layout, including
// the big-endian sequence encoding, is a protocol contract.
const (
	packetCommitmentMarker      byte = 0x01
	packetReceiptMarker         byte = 0x02
	packetAcknowledgementMarker byte = 0x03
)

// PacketCommitmentKey returns the store key under which a packet commitment
// is stored: sourceClient || 0x01 || bigEndian64(sequence).
func PacketCommitmentKey(clientID string, sequence uint64) []byte {
	return packetKey(clientID, packetCommitmentMarker, sequence)
}

// PacketReceiptKey returns the store key under which a packet receipt is
// stored: destClient || 0x02 || bigEndian64(sequence).
func PacketReceiptKey(clientID string, sequence uint64) []byte {
	return packetKey(clientID, packetReceiptMarker, sequence)
}

// PacketAcknowledgementKey returns the store key under which a packet
// acknowledgement is stored: destClient || 0x03 || bigEndian64(sequence).
func PacketAcknowledgementKey(clientID string, sequence uint64) []byte {
	return packetKey(clientID, packetAcknowledgementMarker, sequence)
}

func packetKey(clientID string, marker byte, sequence uint64) []byte {
	key := make([]byte, 0, len(clientID)+1+8)
	key = append(key, clientID...)
	key = append(key, marker)
	return append(key, sdk.Uint64ToBigEndian(sequence)...)
}
