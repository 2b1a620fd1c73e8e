package mock

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-lite/modules/core/api"
	packettypes "github.com/cosmos/ibc-lite/modules/core/packet-server/types"
)

var _ api.IBCModule = (*IBCModule)(nil)

// IBCModule is a mock implementation of the IBCModule interface which
// delegates calls to the underlying IBCApp.
type IBCModule struct {
	IBCApp *IBCApp
}

// NewIBCModule creates a new IBCModule with an underlying mock IBC
// application.
func NewIBCModule() IBCModule {
	return IBCModule{
		IBCApp: &IBCApp{},
	}
}

func (im IBCModule) OnSendPacket(ctx sdk.Context, sourceClient string, destinationClient string, sequence uint64, payload packettypes.Payload, signer sdk.AccAddress) error {
	if im.IBCApp.OnSendPacket != nil {
		return im.IBCApp.OnSendPacket(ctx, sourceClient, destinationClient, sequence, payload, signer)
	}
	return nil
}

func (im IBCModule) OnRecvPacket(ctx sdk.Context, sourceClient string, destinationClient string, sequence uint64, payload packettypes.Payload, relayer sdk.AccAddress) packettypes.RecvPacketResult {
	if im.IBCApp.OnRecvPacket != nil {
		return im.IBCApp.OnRecvPacket(ctx, sourceClient, destinationClient, sequence, payload, relayer)
	}
	if bytes.Equal(payload.Value, MockPacketData) {
		return MockRecvPacketResult
	}
	return packettypes.RecvPacketResult{Status: packettypes.PacketStatusFailure}
}

func (im IBCModule) OnTimeoutPacket(ctx sdk.Context, sourceClient string, destinationClient string, sequence uint64, payload packettypes.Payload, relayer sdk.AccAddress) error {
	if im.IBCApp.OnTimeoutPacket != nil {
		return im.IBCApp.OnTimeoutPacket(ctx, sourceClient, destinationClient, sequence, payload, relayer)
	}
	return nil
}

func (im IBCModule) OnAcknowledgementPacket(ctx sdk.Context, sourceClient string, destinationClient string, sequence uint64, payload packettypes.Payload, acknowledgement []byte, relayer sdk.AccAddress) error {
	if im.IBCApp.OnAcknowledgementPacket != nil {
		return im.IBCApp.OnAcknowledgementPacket(ctx, sourceClient, destinationClient, sequence, payload, acknowledgement, relayer)
	}
	return nil
}
