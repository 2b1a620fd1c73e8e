package types

import (
	"crypto/sha256"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CommitPacket returns the packet commitment bytes. The commitment consists
// of: bigEndian64(timeout) + sha256_hash(destinationClient) + sha256_hash(payloads)
// from a given packet. This results in a fixed length preimage.
// NOTE: A fixed length preimage is ESSENTIAL to prevent relayers from being able
// to malleate the packet fields and create a commitment hash that matches the original packet.
func CommitPacket(packet Packet) []byte {
	buf := sdk.Uint64ToBigEndian(packet.TimeoutTimestamp)

	destIDHash := sha256.Sum256([]byte(packet.DestinationClient))
	buf = append(buf, destIDHash[:]...)

	for _, payload := range packet.Payloads {
		buf = append(buf, hashPayload(payload)...)
	}

	hash := sha256.Sum256(buf)
	return hash[:]
}

// hashPayload returns the fixed length hash of a single payload.
func hashPayload(payload Payload) []byte {
	var buf []byte
	sourceHash := sha256.Sum256([]byte(payload.SourcePort))
	buf = append(buf, sourceHash[:]...)
	destHash := sha256.Sum256([]byte(payload.DestinationPort))
	buf = append(buf, destHash[:]...)
	valueHash := sha256.Sum256(payload.Value)
	buf = append(buf, valueHash[:]...)
	encodingHash := sha256.Sum256([]byte(payload.Encoding))
	buf = append(buf, encodingHash[:]...)
	versionHash := sha256.Sum256([]byte(payload.Version))
	buf = append(buf, versionHash[:]...)
	hash := sha256.Sum256(buf)
	return hash[:]
}

// CommitAcknowledgement returns the hash of the acknowledgement data,
// hashing each app acknowledgement to keep the preimage fixed length.
func CommitAcknowledgement(acknowledgement Acknowledgement) []byte {
	var buf []byte
	for _, ack := range acknowledgement.AppAcknowledgements {
		hash := sha256.Sum256(ack)
		buf = append(buf, hash[:]...)
	}

	hash := sha256.Sum256(buf)
	return hash[:]
}
