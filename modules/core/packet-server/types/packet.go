package types

import (
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
)

// MaxTimeoutDelta is the maximum allowed distance between the current block
// time and a packet's timeout timestamp at send time. Bounding the window
// keeps commitments from being stuck behind unreachable timeouts.
const MaxTimeoutDelta = 24 * time.Hour

// Packet is the unit of cross-ledger communication. Packets are scoped
// directly to a client pair; there is no channel handshake.
type Packet struct {
	// Sequence uniquely identifies the packet within the source client's
	// send lane. Allocated by DeriveSequence, never reused.
	Sequence uint64
	// SourceClient identifies the sending side's client of the receiver.
	SourceClient string
	// DestinationClient identifies the receiving side's client of the sender.
	DestinationClient string
	// TimeoutTimestamp is the unix timestamp in seconds after which the
	// packet can no longer be received and may be timed out.
	TimeoutTimestamp uint64
	// Payloads carries the application data. Callbacks run in payload order.
	Payloads []Payload
}

// Payload is a single application datum carried by a packet.
type Payload struct {
	SourcePort      string
	DestinationPort string
	Version         string
	Encoding        string
	Value           []byte
}

// NewPacket constructs a new packet.
func NewPacket(sequence uint64, sourceClient, destinationClient string, timeoutTimestamp uint64, payloads ...Payload) Packet {
	return Packet{
		Sequence:          sequence,
		SourceClient:      sourceClient,
		DestinationClient: destinationClient,
		TimeoutTimestamp:  timeoutTimestamp,
		Payloads:          payloads,
	}
}

// NewPayload constructs a new payload.
func NewPayload(sourcePort, destinationPort, version, encoding string, value []byte) Payload {
	return Payload{
		SourcePort:      sourcePort,
		DestinationPort: destinationPort,
		Version:         version,
		Encoding:        encoding,
		Value:           value,
	}
}

// ValidateBasic performs stateless validation of the packet.
func (p Packet) ValidateBasic() error {
	if len(p.Payloads) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "packet must carry at least one payload")
	}

	for _, payload := range p.Payloads {
		if err := payload.Validate(); err != nil {
			return err
		}
	}

	if !clienttypes.IsValidClientID(p.SourceClient) {
		return errorsmod.Wrapf(ErrInvalidPacket, "invalid source client ID %s", p.SourceClient)
	}
	if !clienttypes.IsValidClientID(p.DestinationClient) {
		return errorsmod.Wrapf(ErrInvalidPacket, "invalid destination client ID %s", p.DestinationClient)
	}

	if p.Sequence == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "packet sequence cannot be 0")
	}
	if p.TimeoutTimestamp == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "packet timeout timestamp cannot be 0")
	}

	return nil
}

// Validate validates a payload.
func (p Payload) Validate() error {
	if strings.TrimSpace(p.SourcePort) == "" {
		return errorsmod.Wrap(ErrInvalidPayload, "payload source port cannot be empty")
	}
	if strings.TrimSpace(p.DestinationPort) == "" {
		return errorsmod.Wrap(ErrInvalidPayload, "payload destination port cannot be empty")
	}
	if strings.TrimSpace(p.Version) == "" {
		return errorsmod.Wrap(ErrInvalidPayload, "payload version cannot be empty")
	}
	if strings.TrimSpace(p.Encoding) == "" {
		return errorsmod.Wrap(ErrInvalidPayload, "payload encoding cannot be empty")
	}
	if len(p.Value) == 0 {
		return errorsmod.Wrap(ErrInvalidPayload, "payload value cannot be empty")
	}
	return nil
}

// PacketStatus is the result status of an application recv callback.
type PacketStatus int32

const (
	// PacketStatusSuccess indicates the application processed the payload.
	// The returned acknowledgement may still carry an application-level
	// error result; both are successful protocol outcomes.
	PacketStatusSuccess PacketStatus = iota + 1
	// PacketStatusFailure indicates the application rejected the payload.
	// The whole receive is aborted and an error acknowledgement is written.
	PacketStatusFailure
)

// RecvPacketResult is returned by the application recv callback.
type RecvPacketResult struct {
	Status          PacketStatus
	Acknowledgement []byte
}
