package mock

import (
	packettypes "github.com/cosmos/ibc-lite/modules/core/packet-server/types"
)

const (
	// ModuleName is the name of the mock application.
	ModuleName = "mock"

	// PortID is the port the mock application binds to.
	PortID = ModuleName

	// Version is the mock application version.
	Version = "mock-version"

	// Encoding is the mock payload encoding.
	Encoding = "json"
)

var (
	// MockPacketData is the default payload value.
	MockPacketData = []byte("mock packet data")

	// MockAcknowledgement is the app acknowledgement written by the mock
	// application on a successful receive.
	MockAcknowledgement = []byte("mock acknowledgement")

	// MockFailPacketData triggers a failure status from the mock recv
	// callback.
	MockFailPacketData = []byte("mock failed packet data")

	// MockRecvPacketResult is the recv result returned for MockPacketData.
	MockRecvPacketResult = packettypes.RecvPacketResult{
		Status:          packettypes.PacketStatusSuccess,
		Acknowledgement: MockAcknowledgement,
	}
)

// NewMockPayload returns a mock payload addressed to the mock port on both
// sides.
func NewMockPayload(sourcePort, destPort string) packettypes.Payload {
	return packettypes.Payload{
		SourcePort:      sourcePort,
		DestinationPort: destPort,
		Version:         Version,
		Encoding:        Encoding,
		Value:           MockPacketData,
	}
}
