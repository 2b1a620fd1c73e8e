package keeper_test

import (
	"testing"
	"time"

	storetypes "cosmossdk.io/store/types"
	testifysuite "github.com/stretchr/testify/suite"

	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clientkeeper "github.com/cosmos/ibc-lite/modules/core/02-client/keeper"
	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-lite/modules/core/23-commitment/types"
	chunkedkeeper "github.com/cosmos/ibc-lite/modules/core/chunked/keeper"
	chunkedtypes "github.com/cosmos/ibc-lite/modules/core/chunked/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
	"github.com/cosmos/ibc-lite/modules/core/packet-server/keeper"
	"github.com/cosmos/ibc-lite/modules/core/packet-server/types"
	mock "github.com/cosmos/ibc-lite/testing/mock"
)

const (
	sourceClient = "mock-0"
	destClient   = "mock-1"

	// block time used by every test, in unix seconds
	blockTime = 100

	// default packet timeout, in unix seconds
	defaultTimeout = 1000
)

// nano converts unix seconds to the nanosecond precision used by client
// consensus timestamps.
func nano(seconds uint64) uint64 {
	return seconds * uint64(time.Second)
}

type PacketKeeperTestSuite struct {
	testifysuite.Suite

	ctx sdk.Context

	clientKeeper *clientkeeper.Keeper
	chunkKeeper  *chunkedkeeper.Keeper
	keeper       *keeper.Keeper

	lightClientModule *mock.LightClientModule
	mockModule        mock.IBCModule

	signer  sdk.AccAddress
	relayer sdk.AccAddress
}

func TestPacketKeeperTestSuite(t *testing.T) {
	testifysuite.Run(t, new(PacketKeeperTestSuite))
}

func (s *PacketKeeperTestSuite) SetupTest() {
	storeKey := storetypes.NewKVStoreKey(exported.StoreKey)
	s.ctx = testutil.DefaultContext(storeKey, storetypes.NewTransientStoreKey("transient_test")).
		WithBlockTime(time.Unix(blockTime, 0))

	s.clientKeeper = clientkeeper.NewKeeper(storeKey)
	s.lightClientModule = mock.NewLightClientModule(100, nano(50))
	s.clientKeeper.AddRoute(mock.ClientType, s.lightClientModule)

	for i := 0; i < 2; i++ {
		_, err := s.clientKeeper.CreateClient(s.ctx, mock.ClientType, []byte("client state"), []byte("consensus state"))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.clientKeeper.RegisterCounterparty(s.ctx, sourceClient, clienttypes.NewCounterpartyInfo(destClient, []byte("ibc"))))
	s.Require().NoError(s.clientKeeper.RegisterCounterparty(s.ctx, destClient, clienttypes.NewCounterpartyInfo(sourceClient, []byte("ibc"))))

	s.chunkKeeper = chunkedkeeper.NewKeeper(storeKey)
	s.keeper = keeper.NewKeeper(storeKey, s.clientKeeper, s.chunkKeeper)

	s.mockModule = mock.NewIBCModule()
	s.keeper.Router.AddRoute(mock.PortID, s.mockModule)

	s.signer = sdk.AccAddress([]byte("test_signer_address_"))
	s.relayer = sdk.AccAddress([]byte("test_relayer_address"))
}

// sendPacket sends a mock payload over sourceClient and reconstructs the
// packet the keeper committed to.
func (s *PacketKeeperTestSuite) sendPacket() types.Packet {
	payload := mock.NewMockPayload(mock.PortID, mock.PortID)

	sequence, destID, err := s.keeper.SendPacket(s.ctx, sourceClient, defaultTimeout, []types.Payload{payload}, s.signer)
	s.Require().NoError(err)
	s.Require().Equal(destClient, destID)

	return types.NewPacket(sequence, sourceClient, destID, defaultTimeout, payload)
}

func inlineProof() chunkedtypes.ProofData {
	return chunkedtypes.NewInlineProof([]byte("proof"))
}

func (s *PacketKeeperTestSuite) TestSendPacket() {
	packet := s.sendPacket()

	// the sequence is derived from the base counter and the (app, sender) lane
	expSequence, err := types.DeriveSequence(1, mock.PortID, s.signer.String())
	s.Require().NoError(err)
	s.Require().Equal(expSequence, packet.Sequence)

	s.Require().Equal(types.CommitPacket(packet), s.keeper.GetPacketCommitment(s.ctx, sourceClient, packet.Sequence))
	s.Require().Equal(uint64(2), s.keeper.GetBaseSequence(s.ctx, sourceClient))

	// a duplicate send gets the next sequence in the same lane
	next := s.sendPacket()
	s.Require().Equal(packet.Sequence+types.LaneModulus, next.Sequence)
}

func (s *PacketKeeperTestSuite) TestSendPacketFailures() {
	payloads := []types.Payload{mock.NewMockPayload(mock.PortID, mock.PortID)}

	testCases := []struct {
		name     string
		malleate func() (string, uint64, []types.Payload)
		expErr   error
	}{
		{
			"no counterparty registered",
			func() (string, uint64, []types.Payload) { return "mock-5", defaultTimeout, payloads },
			clienttypes.ErrCounterpartyNotFound,
		},
		{
			"no payloads",
			func() (string, uint64, []types.Payload) { return sourceClient, defaultTimeout, nil },
			types.ErrInvalidPacket,
		},
		{
			"timeout not in the future",
			func() (string, uint64, []types.Payload) { return sourceClient, blockTime, payloads },
			types.ErrTimeoutElapsed,
		},
		{
			"timeout beyond the maximum window",
			func() (string, uint64, []types.Payload) {
				return sourceClient, blockTime + uint64(types.MaxTimeoutDelta.Seconds()) + 1, payloads
			},
			types.ErrInvalidTimeout,
		},
		{
			"client not active",
			func() (string, uint64, []types.Payload) {
				s.lightClientModule.ClientStatus = exported.Frozen
				return sourceClient, defaultTimeout, payloads
			},
			clienttypes.ErrClientNotActive,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			clientID, timeout, sendPayloads := tc.malleate()

			_, _, err := s.keeper.SendPacket(s.ctx, clientID, timeout, sendPayloads, s.signer)
			s.Require().ErrorIs(err, tc.expErr)
		})
	}
}

func (s *PacketKeeperTestSuite) TestRecvPacket() {
	packet := types.NewPacket(5, sourceClient, destClient, defaultTimeout, mock.NewMockPayload(mock.PortID, mock.PortID))

	ack, err := s.keeper.RecvPacket(s.ctx, packet, inlineProof(), 100, s.relayer)
	s.Require().NoError(err)
	s.Require().Equal(types.NewAcknowledgement(mock.MockAcknowledgement), ack)

	s.Require().True(s.keeper.HasPacketReceipt(s.ctx, destClient, packet.Sequence))
	s.Require().Equal(types.CommitAcknowledgement(ack), s.keeper.GetPacketAcknowledgement(s.ctx, destClient, packet.Sequence))

	// a replay fails on the receipt, before any proof verification
	s.lightClientModule.VerifyMembershipErr = commitmenttypes.ErrInvalidProof
	_, err = s.keeper.RecvPacket(s.ctx, packet, inlineProof(), 100, s.relayer)
	s.Require().ErrorIs(err, types.ErrPacketAlreadyReceived)
}

func (s *PacketKeeperTestSuite) TestRecvPacketFailures() {
	testCases := []struct {
		name     string
		malleate func(p *types.Packet)
		expErr   error
	}{
		{
			"source client is not the counterparty",
			func(p *types.Packet) { p.SourceClient = "mock-2" },
			clienttypes.ErrInvalidCounterparty,
		},
		{
			"timeout elapsed",
			func(p *types.Packet) { p.TimeoutTimestamp = blockTime },
			types.ErrTimeoutElapsed,
		},
		{
			"commitment proof rejected",
			func(p *types.Packet) { s.lightClientModule.VerifyMembershipErr = commitmenttypes.ErrInvalidProof },
			commitmenttypes.ErrInvalidProof,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			packet := types.NewPacket(5, sourceClient, destClient, defaultTimeout, mock.NewMockPayload(mock.PortID, mock.PortID))
			tc.malleate(&packet)

			_, err := s.keeper.RecvPacket(s.ctx, packet, inlineProof(), 100, s.relayer)
			s.Require().ErrorIs(err, tc.expErr)
			s.Require().False(s.keeper.HasPacketReceipt(s.ctx, destClient, packet.Sequence))
		})
	}
}

// TestRecvPacketApplicationFailure checks that an application failure is a
// successful protocol receive: the receipt is written and the error sentinel
// is acknowledged.
func (s *PacketKeeperTestSuite) TestRecvPacketApplicationFailure() {
	payload := mock.NewMockPayload(mock.PortID, mock.PortID)
	payload.Value = mock.MockFailPacketData
	packet := types.NewPacket(5, sourceClient, destClient, defaultTimeout, payload)

	ack, err := s.keeper.RecvPacket(s.ctx, packet, inlineProof(), 100, s.relayer)
	s.Require().NoError(err)
	s.Require().True(ack.IsError())

	s.Require().True(s.keeper.HasPacketReceipt(s.ctx, destClient, packet.Sequence))
	s.Require().Equal(types.CommitAcknowledgement(ack), s.keeper.GetPacketAcknowledgement(s.ctx, destClient, packet.Sequence))
}

// TestRecvPacketChunkedProof relays a proof that was pre-uploaded in chunks.
func (s *PacketKeeperTestSuite) TestRecvPacketChunkedProof() {
	proofBz := make([]byte, 3*chunkedtypes.MaxChunkSize)
	var index uint32
	for offset := 0; offset < len(proofBz); offset += chunkedtypes.MaxChunkSize {
		s.Require().NoError(s.chunkKeeper.PutChunk(s.ctx, s.relayer.String(), 1, index, proofBz[offset:offset+chunkedtypes.MaxChunkSize]))
		index++
	}

	packet := types.NewPacket(5, sourceClient, destClient, defaultTimeout, mock.NewMockPayload(mock.PortID, mock.PortID))

	_, err := s.keeper.RecvPacket(s.ctx, packet, chunkedtypes.NewChunkedProof(s.relayer.String(), 1, index), 100, s.relayer)
	s.Require().NoError(err)

	// the upload is consumed on use
	s.Require().False(s.chunkKeeper.HasChunk(s.ctx, s.relayer.String(), 1, 0))
}

func (s *PacketKeeperTestSuite) TestAcknowledgePacket() {
	packet := s.sendPacket()
	ack := types.NewAcknowledgement(mock.MockAcknowledgement)

	var deliveredAcks [][]byte
	s.mockModule.IBCApp.OnAcknowledgementPacket = func(ctx sdk.Context, sourceClient, destinationClient string, sequence uint64, payload types.Payload, acknowledgement []byte, relayer sdk.AccAddress) error {
		deliveredAcks = append(deliveredAcks, acknowledgement)
		return nil
	}

	err := s.keeper.AcknowledgePacket(s.ctx, packet, ack, inlineProof(), 100, s.relayer)
	s.Require().NoError(err)
	s.Require().Equal([][]byte{mock.MockAcknowledgement}, deliveredAcks)
	s.Require().Empty(s.keeper.GetPacketCommitment(s.ctx, sourceClient, packet.Sequence))

	// the lifecycle already completed: neither a second acknowledge nor a
	// timeout can succeed
	err = s.keeper.AcknowledgePacket(s.ctx, packet, ack, inlineProof(), 100, s.relayer)
	s.Require().ErrorIs(err, types.ErrCommitmentNotFound)

	s.lightClientModule.Timestamps[200] = nano(defaultTimeout)
	err = s.keeper.TimeoutPacket(s.ctx, packet, inlineProof(), 200, s.relayer)
	s.Require().ErrorIs(err, types.ErrCommitmentNotFound)
}

// TestAcknowledgePacketErrorSentinel checks that the error sentinel is
// delivered to every payload's application.
func (s *PacketKeeperTestSuite) TestAcknowledgePacketErrorSentinel() {
	packet := s.sendPacket()

	var deliveredAcks [][]byte
	s.mockModule.IBCApp.OnAcknowledgementPacket = func(ctx sdk.Context, sourceClient, destinationClient string, sequence uint64, payload types.Payload, acknowledgement []byte, relayer sdk.AccAddress) error {
		deliveredAcks = append(deliveredAcks, acknowledgement)
		return nil
	}

	err := s.keeper.AcknowledgePacket(s.ctx, packet, types.NewAcknowledgement(types.ErrorAcknowledgement[:]), inlineProof(), 100, s.relayer)
	s.Require().NoError(err)
	s.Require().Equal([][]byte{types.ErrorAcknowledgement[:]}, deliveredAcks)
}

func (s *PacketKeeperTestSuite) TestAcknowledgePacketFailures() {
	ack := types.NewAcknowledgement(mock.MockAcknowledgement)

	testCases := []struct {
		name     string
		malleate func(p *types.Packet) types.Acknowledgement
		expErr   error
	}{
		{
			"destination client is not the counterparty",
			func(p *types.Packet) types.Acknowledgement {
				p.DestinationClient = "mock-2"
				return ack
			},
			clienttypes.ErrInvalidCounterparty,
		},
		{
			"packet does not match the stored commitment",
			func(p *types.Packet) types.Acknowledgement {
				p.TimeoutTimestamp++
				return ack
			},
			types.ErrInvalidPacket,
		},
		{
			"acknowledgement count mismatch",
			func(p *types.Packet) types.Acknowledgement {
				return types.NewAcknowledgement(mock.MockAcknowledgement, mock.MockAcknowledgement)
			},
			types.ErrInvalidAcknowledgement,
		},
		{
			"acknowledgement proof rejected",
			func(p *types.Packet) types.Acknowledgement {
				s.lightClientModule.VerifyMembershipErr = commitmenttypes.ErrInvalidProof
				return ack
			},
			commitmenttypes.ErrInvalidProof,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			packet := s.sendPacket()
			tcAck := tc.malleate(&packet)

			err := s.keeper.AcknowledgePacket(s.ctx, packet, tcAck, inlineProof(), 100, s.relayer)
			s.Require().ErrorIs(err, tc.expErr)
		})
	}
}

func (s *PacketKeeperTestSuite) TestTimeoutPacket() {
	packet := s.sendPacket()

	var timedOut bool
	s.mockModule.IBCApp.OnTimeoutPacket = func(ctx sdk.Context, sourceClient, destinationClient string, sequence uint64, payload types.Payload, relayer sdk.AccAddress) error {
		timedOut = true
		return nil
	}

	// the consensus state proven at height 200 has reached the timeout
	s.lightClientModule.Timestamps[200] = nano(defaultTimeout)

	err := s.keeper.TimeoutPacket(s.ctx, packet, inlineProof(), 200, s.relayer)
	s.Require().NoError(err)
	s.Require().True(timedOut)
	s.Require().Empty(s.keeper.GetPacketCommitment(s.ctx, sourceClient, packet.Sequence))

	// exactly one of acknowledge or timeout completes the lifecycle
	err = s.keeper.TimeoutPacket(s.ctx, packet, inlineProof(), 200, s.relayer)
	s.Require().ErrorIs(err, types.ErrCommitmentNotFound)

	err = s.keeper.AcknowledgePacket(s.ctx, packet, types.NewAcknowledgement(mock.MockAcknowledgement), inlineProof(), 100, s.relayer)
	s.Require().ErrorIs(err, types.ErrCommitmentNotFound)
}

func (s *PacketKeeperTestSuite) TestTimeoutPacketFailures() {
	testCases := []struct {
		name        string
		proofHeight uint64
		malleate    func(p *types.Packet)
		expErr      error
	}{
		{
			"timeout not elapsed on the counterparty",
			100,
			func(p *types.Packet) {},
			types.ErrTimeoutNotElapsed,
		},
		{
			"destination client is not the counterparty",
			200,
			func(p *types.Packet) { p.DestinationClient = "mock-2" },
			clienttypes.ErrInvalidCounterparty,
		},
		{
			"packet does not match the stored commitment",
			200,
			func(p *types.Packet) { p.Payloads[0].Value = []byte("tampered") },
			types.ErrInvalidPacket,
		},
		{
			"receipt absence proof rejected",
			200,
			func(p *types.Packet) { s.lightClientModule.VerifyNonMembershipErr = commitmenttypes.ErrInvalidProof },
			commitmenttypes.ErrInvalidProof,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			packet := s.sendPacket()
			s.lightClientModule.Timestamps[200] = nano(defaultTimeout)
			tc.malleate(&packet)

			err := s.keeper.TimeoutPacket(s.ctx, packet, inlineProof(), tc.proofHeight, s.relayer)
			s.Require().ErrorIs(err, tc.expErr)

			// a failed timeout leaves the commitment in place
			s.Require().NotEmpty(s.keeper.GetPacketCommitment(s.ctx, sourceClient, packet.Sequence))
		})
	}
}
