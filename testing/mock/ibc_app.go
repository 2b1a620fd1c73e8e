package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	packettypes "github.com/cosmos/ibc-lite/modules/core/packet-server/types"
)

// IBCApp holds optional callback overrides for the mock IBC module. A nil
// field falls back to the default mock behaviour.
type IBCApp struct {
	OnSendPacket            func(ctx sdk.Context, sourceClient string, destinationClient string, sequence uint64, payload packettypes.Payload, signer sdk.AccAddress) error
	OnRecvPacket            func(ctx sdk.Context, sourceClient string, destinationClient string, sequence uint64, payload packettypes.Payload, relayer sdk.AccAddress) packettypes.RecvPacketResult
	OnTimeoutPacket         func(ctx sdk.Context, sourceClient string, destinationClient string, sequence uint64, payload packettypes.Payload, relayer sdk.AccAddress) error
	OnAcknowledgementPacket func(ctx sdk.Context, sourceClient string, destinationClient string, sequence uint64, payload packettypes.Payload, acknowledgement []byte, relayer sdk.AccAddress) error
}
