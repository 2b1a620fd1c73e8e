package api

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	packettypes "github.com/cosmos/ibc-lite/modules/core/packet-server/types"
)

// IBCModule is the callback interface implemented by applications built on
// the packet handler. Callbacks are invoked at most once per packet and in
// payload order within a multi-payload packet.
type IBCModule interface {
	// OnSendPacket is executed when a packet is being sent. The callback is
	// provided with the client pair, the allocated sequence and the payload
	// addressed to this application. An error aborts the whole send.
	OnSendPacket(
		ctx sdk.Context,
		sourceClient string,
		destinationClient string,
		sequence uint64,
		payload packettypes.Payload,
		signer sdk.AccAddress,
	) error

	// OnRecvPacket is executed when a packet addressed to this application
	// is received. The returned result carries the app acknowledgement, or
	// a failure status which aborts the whole receive.
	OnRecvPacket(
		ctx sdk.Context,
		sourceClient string,
		destinationClient string,
		sequence uint64,
		payload packettypes.Payload,
		relayer sdk.AccAddress,
	) packettypes.RecvPacketResult

	// OnTimeoutPacket is executed when a sent packet has provably timed out
	// on the receiving chain.
	OnTimeoutPacket(
		ctx sdk.Context,
		sourceClient string,
		destinationClient string,
		sequence uint64,
		payload packettypes.Payload,
		relayer sdk.AccAddress,
	) error

	// OnAcknowledgementPacket is executed when a sent packet gets
	// acknowledged by the counterparty application.
	OnAcknowledgementPacket(
		ctx sdk.Context,
		sourceClient string,
		destinationClient string,
		sequence uint64,
		payload packettypes.Payload,
		acknowledgement []byte,
		relayer sdk.AccAddress,
	) error
}
