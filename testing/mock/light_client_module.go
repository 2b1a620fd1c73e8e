package mock

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

const (
	// ClientType is the client type of the mock light client.
	ClientType = "mock"
)

var (
	_ exported.LightClientModule = (*LightClientModule)(nil)
	_ exported.ClientMessage     = (*ClientMessage)(nil)
)

// ClientMessage is a no-op client message accepted by the mock light client.
type ClientMessage struct{}

func (ClientMessage) ClientType() string   { return ClientType }
func (ClientMessage) ValidateBasic() error { return nil }

// LightClientModule is a scriptable light client for keeper tests. All
// proof checks succeed unless an error is injected, and status, height and
// timestamps are plain fields.
type LightClientModule struct {
	ClientStatus exported.Status
	Height       uint64
	// Timestamps maps heights to consensus timestamps in unix nanoseconds.
	Timestamps map[uint64]uint64

	VerifyMembershipErr    error
	VerifyNonMembershipErr error
	VerifyClientMessageErr error
	FoundMisbehaviour      bool
}

// NewLightClientModule returns an active mock light client at the given
// height with the given timestamp stored for it.
func NewLightClientModule(height, timestampNano uint64) *LightClientModule {
	return &LightClientModule{
		ClientStatus: exported.Active,
		Height:       height,
		Timestamps:   map[uint64]uint64{height: timestampNano},
	}
}

func (l *LightClientModule) Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error {
	return nil
}

func (l *LightClientModule) VerifyClientMessage(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) error {
	return l.VerifyClientMessageErr
}

func (l *LightClientModule) CheckForMisbehaviour(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) bool {
	return l.FoundMisbehaviour
}

func (l *LightClientModule) UpdateStateOnMisbehaviour(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) {
	l.ClientStatus = exported.Frozen
}

func (l *LightClientModule) UpdateState(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) []uint64 {
	return []uint64{l.Height}
}

func (l *LightClientModule) VerifyMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, value, proof []byte) error {
	return l.VerifyMembershipErr
}

func (l *LightClientModule) VerifyNonMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, proof []byte) error {
	return l.VerifyNonMembershipErr
}

func (l *LightClientModule) Status(ctx sdk.Context, clientID string) exported.Status {
	return l.ClientStatus
}

func (l *LightClientModule) LatestHeight(ctx sdk.Context, clientID string) uint64 {
	return l.Height
}

func (l *LightClientModule) TimestampAtHeight(ctx sdk.Context, clientID string, height uint64) (uint64, error) {
	timestamp, ok := l.Timestamps[height]
	if !ok {
		return 0, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height (%d)", height)
	}
	return timestamp, nil
}
