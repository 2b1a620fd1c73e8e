package keeper

import (
	"bytes"
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"
	metrics "github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-lite/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-lite/modules/core/24-host"
	chunkedtypes "github.com/cosmos/ibc-lite/modules/core/chunked/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
	"github.com/cosmos/ibc-lite/modules/core/packet-server/types"
)

// SendPacket constructs a packet from the input arguments and writes a
// packet commitment to state so the packet is provable by the counterparty.
// The sequence is derived from the client's base counter and the
// (application, sender) lane, so duplicate sends naturally get distinct
// sequences.
func (k *Keeper) SendPacket(
	ctx sdk.Context,
	sourceClient string,
	timeoutTimestamp uint64,
	payloads []types.Payload,
	signer sdk.AccAddress,
) (uint64, string, error) {
	// lookup counterparty from client identifiers
	counterparty, ok := k.ClientKeeper.GetClientCounterparty(ctx, sourceClient)
	if !ok {
		return 0, "", errorsmod.Wrapf(clienttypes.ErrCounterpartyNotFound, "counterparty not found for client: %s", sourceClient)
	}

	if len(payloads) == 0 {
		return 0, "", errorsmod.Wrap(types.ErrInvalidPacket, "packet must carry at least one payload")
	}

	// timeoutTimestamp must be strictly in the future
	timeout := time.Unix(int64(timeoutTimestamp), 0)
	if !timeout.After(ctx.BlockTime()) {
		return 0, "", errorsmod.Wrapf(types.ErrTimeoutElapsed, "timeout is less than or equal to the current block timestamp, %d <= %d", timeoutTimestamp, ctx.BlockTime().Unix())
	}

	// timeoutTimestamp must be within MaxTimeoutDelta of the current block time
	if timeout.After(ctx.BlockTime().Add(types.MaxTimeoutDelta)) {
		return 0, "", errorsmod.Wrap(types.ErrInvalidTimeout, "timeout exceeds the maximum expected value")
	}

	// check that the client of the counterparty chain is still active
	if status := k.ClientKeeper.GetClientStatus(ctx, sourceClient); status != exported.Active {
		return 0, "", errorsmod.Wrapf(clienttypes.ErrClientNotActive, "client (%s) status is %s", sourceClient, status)
	}

	latestHeight := k.ClientKeeper.GetClientLatestHeight(ctx, sourceClient)
	if latestHeight == 0 {
		return 0, "", errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "cannot send packet using client (%s) with zero height", sourceClient)
	}

	// client timestamps are in nanoseconds while packet timeouts are in
	// seconds, so the client timestamp is converted before comparison
	latestTimestampNano, err := k.ClientKeeper.GetClientTimestampAtHeight(ctx, sourceClient, latestHeight)
	if err != nil {
		return 0, "", err
	}
	latestTimestamp := uint64(time.Unix(0, int64(latestTimestampNano)).Unix())

	if latestTimestamp >= timeoutTimestamp {
		return 0, "", errorsmod.Wrapf(types.ErrTimeoutElapsed, "latest timestamp: %d, timeout timestamp: %d", latestTimestamp, timeoutTimestamp)
	}

	// the first payload's source port selects the sequence lane
	sequence, err := k.allocateSequence(ctx, sourceClient, payloads[0].SourcePort, signer.String())
	if err != nil {
		return 0, "", err
	}

	packet := types.NewPacket(sequence, sourceClient, counterparty.ClientID, timeoutTimestamp, payloads...)

	if err := packet.ValidateBasic(); err != nil {
		return 0, "", errorsmod.Wrapf(types.ErrInvalidPacket, "constructed packet failed basic validation: %v", err)
	}

	for _, payload := range packet.Payloads {
		cbs := k.Router.Route(payload.SourcePort)
		if err := cbs.OnSendPacket(ctx, packet.SourceClient, packet.DestinationClient, packet.Sequence, payload, signer); err != nil {
			return 0, "", err
		}
	}

	commitment := types.CommitPacket(packet)
	k.SetPacketCommitment(ctx, sourceClient, packet.Sequence, commitment)

	k.Logger(ctx).Info("packet sent", "sequence", strconv.FormatUint(packet.Sequence, 10), "dst_client_id", packet.DestinationClient, "src_client_id", packet.SourceClient)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "packet", "send"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelSourceClient, packet.SourceClient),
			telemetry.NewLabel(types.LabelDestinationClient, packet.DestinationClient),
		},
	)

	emitSendPacketEvents(ctx, packet)

	return sequence, counterparty.ClientID, nil
}

// RecvPacket implements the packet receiving logic. The packet is checked
// for correctness including asserting that it was sent and received on
// clients which are counterparties for one another, that its timeout has
// not elapsed and that it was not received before. On success a permanent
// receipt is written, the application callback runs for each payload in
// order and the resulting acknowledgement commitment is stored.
func (k *Keeper) RecvPacket(
	ctx sdk.Context,
	packet types.Packet,
	proof chunkedtypes.ProofData,
	proofHeight uint64,
	relayer sdk.AccAddress,
) (types.Acknowledgement, error) {
	if err := packet.ValidateBasic(); err != nil {
		return types.Acknowledgement{}, err
	}

	// lookup counterparty from client identifiers
	counterparty, ok := k.ClientKeeper.GetClientCounterparty(ctx, packet.DestinationClient)
	if !ok {
		return types.Acknowledgement{}, errorsmod.Wrapf(clienttypes.ErrCounterpartyNotFound, "counterparty not found for client: %s", packet.DestinationClient)
	}

	if counterparty.ClientID != packet.SourceClient {
		return types.Acknowledgement{}, errorsmod.Wrapf(clienttypes.ErrInvalidCounterparty, "counterparty id (%s) does not match packet source id (%s)", counterparty.ClientID, packet.SourceClient)
	}

	currentTimestamp := uint64(ctx.BlockTime().Unix())
	if currentTimestamp >= packet.TimeoutTimestamp {
		return types.Acknowledgement{}, errorsmod.Wrapf(types.ErrTimeoutElapsed, "current timestamp: %d, timeout timestamp: %d", currentTimestamp, packet.TimeoutTimestamp)
	}

	// REPLAY PROTECTION: the permanent receipt indicates the packet was
	// already received. The check precedes proof verification, so a replay
	// fails here regardless of proof validity.
	if k.HasPacketReceipt(ctx, packet.DestinationClient, packet.Sequence) {
		return types.Acknowledgement{}, errorsmod.Wrapf(types.ErrPacketAlreadyReceived, "sequence (%d)", packet.Sequence)
	}

	proofBz, err := k.ChunkKeeper.ResolveProof(ctx, relayer.String(), proof)
	if err != nil {
		return types.Acknowledgement{}, err
	}

	path := host.PacketCommitmentKey(packet.SourceClient, packet.Sequence)
	merklePath := commitmenttypes.ApplyPrefix(counterparty.KeyPrefix, path)

	commitment := types.CommitPacket(packet)

	if err := k.ClientKeeper.VerifyMembership(
		ctx,
		packet.DestinationClient,
		proofHeight,
		merklePath.KeyPath,
		commitment,
		proofBz,
	); err != nil {
		return types.Acknowledgement{}, errorsmod.Wrapf(err, "failed packet commitment verification for client (%s)", packet.DestinationClient)
	}

	// the receipt prevents a timeout from occurring on the counterparty
	k.SetPacketReceipt(ctx, packet.DestinationClient, packet.Sequence)

	ack, err := k.runRecvCallbacks(ctx, packet, relayer)
	if err != nil {
		return types.Acknowledgement{}, err
	}

	if err := k.writeAcknowledgement(ctx, packet, ack); err != nil {
		return types.Acknowledgement{}, err
	}

	k.Logger(ctx).Info("packet received", "sequence", strconv.FormatUint(packet.Sequence, 10), "src_client_id", packet.SourceClient, "dst_client_id", packet.DestinationClient)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "packet", "recv"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelSourceClient, packet.SourceClient),
			telemetry.NewLabel(types.LabelDestinationClient, packet.DestinationClient),
		},
	)

	emitRecvPacketEvents(ctx, packet)

	return ack, nil
}

// runRecvCallbacks invokes the application recv callback for each payload
// in order. A single failure status aborts the remaining callbacks and
// collapses the acknowledgement to the error sentinel; the receive is still
// a successful protocol outcome.
func (k *Keeper) runRecvCallbacks(ctx sdk.Context, packet types.Packet, relayer sdk.AccAddress) (types.Acknowledgement, error) {
	var appAcks [][]byte
	for _, payload := range packet.Payloads {
		// the callbacks run in an isolated context so a failed payload
		// leaves no partial application writes behind
		cacheCtx, writeFn := ctx.CacheContext()

		cbs := k.Router.Route(payload.DestinationPort)
		res := cbs.OnRecvPacket(cacheCtx, packet.SourceClient, packet.DestinationClient, packet.Sequence, payload, relayer)

		if res.Status == types.PacketStatusFailure {
			return types.NewAcknowledgement(types.ErrorAcknowledgement[:]), nil
		}

		writeFn()
		appAcks = append(appAcks, res.Acknowledgement)
	}

	return types.NewAcknowledgement(appAcks...), nil
}

// writeAcknowledgement stores the acknowledgement commitment so it can be
// proven by the counterparty.
func (k *Keeper) writeAcknowledgement(ctx sdk.Context, packet types.Packet, ack types.Acknowledgement) error {
	if err := ack.Validate(); err != nil {
		return err
	}

	if k.HasPacketAcknowledgement(ctx, packet.DestinationClient, packet.Sequence) {
		return errorsmod.Wrapf(types.ErrAcknowledgementExists, "acknowledgement for id %s, sequence %d already exists", packet.DestinationClient, packet.Sequence)
	}

	k.SetPacketAcknowledgement(ctx, packet.DestinationClient, packet.Sequence, types.CommitAcknowledgement(ack))

	emitWriteAcknowledgementEvents(ctx, packet, ack)

	return nil
}

// AcknowledgePacket verifies that the counterparty wrote the given
// acknowledgement for a packet this chain sent, deletes the packet
// commitment and delivers the ack results to the originating applications.
// A missing commitment means the lifecycle already completed.
func (k *Keeper) AcknowledgePacket(
	ctx sdk.Context,
	packet types.Packet,
	acknowledgement types.Acknowledgement,
	proof chunkedtypes.ProofData,
	proofHeight uint64,
	relayer sdk.AccAddress,
) error {
	// lookup counterparty from client identifiers
	counterparty, ok := k.ClientKeeper.GetClientCounterparty(ctx, packet.SourceClient)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrCounterpartyNotFound, "counterparty not found for client: %s", packet.SourceClient)
	}

	if counterparty.ClientID != packet.DestinationClient {
		return errorsmod.Wrapf(clienttypes.ErrInvalidCounterparty, "counterparty id (%s) does not match packet destination id (%s)", counterparty.ClientID, packet.DestinationClient)
	}

	commitment := k.GetPacketCommitment(ctx, packet.SourceClient, packet.Sequence)
	if len(commitment) == 0 {
		// the acknowledgement was already relayed, or the packet timed out
		return errorsmod.Wrapf(types.ErrCommitmentNotFound, "sourceClient (%s), sequence (%d)", packet.SourceClient, packet.Sequence)
	}

	packetCommitment := types.CommitPacket(packet)

	// verify we sent the packet and haven't cleared it out yet
	if !bytes.Equal(commitment, packetCommitment) {
		return errorsmod.Wrapf(types.ErrInvalidPacket, "commitment bytes are not equal: got (%v), expected (%v)", packetCommitment, commitment)
	}

	proofBz, err := k.ChunkKeeper.ResolveProof(ctx, relayer.String(), proof)
	if err != nil {
		return err
	}

	path := host.PacketAcknowledgementKey(packet.DestinationClient, packet.Sequence)
	merklePath := commitmenttypes.ApplyPrefix(counterparty.KeyPrefix, path)

	if err := k.ClientKeeper.VerifyMembership(
		ctx,
		packet.SourceClient,
		proofHeight,
		merklePath.KeyPath,
		types.CommitAcknowledgement(acknowledgement),
		proofBz,
	); err != nil {
		return errorsmod.Wrapf(err, "failed packet acknowledgement verification for client (%s)", packet.SourceClient)
	}

	k.DeletePacketCommitment(ctx, packet.SourceClient, packet.Sequence)

	if err := k.runAckCallbacks(ctx, packet, acknowledgement, relayer); err != nil {
		return err
	}

	k.Logger(ctx).Info("packet acknowledged", "sequence", strconv.FormatUint(packet.Sequence, 10), "src_client_id", packet.SourceClient, "dst_client_id", packet.DestinationClient)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "packet", "acknowledge"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelSourceClient, packet.SourceClient),
			telemetry.NewLabel(types.LabelDestinationClient, packet.DestinationClient),
		},
	)

	emitAcknowledgePacketEvents(ctx, packet)

	return nil
}

// runAckCallbacks delivers the acknowledgement results to the originating
// application of each payload, in payload order. The error sentinel is
// delivered to every payload.
func (k *Keeper) runAckCallbacks(ctx sdk.Context, packet types.Packet, ack types.Acknowledgement, relayer sdk.AccAddress) error {
	isError := ack.IsError()
	if !isError && len(ack.AppAcknowledgements) != len(packet.Payloads) {
		return errorsmod.Wrapf(types.ErrInvalidAcknowledgement, "expected %d app acknowledgements, got %d", len(packet.Payloads), len(ack.AppAcknowledgements))
	}

	for i, payload := range packet.Payloads {
		appAck := types.ErrorAcknowledgement[:]
		if !isError {
			appAck = ack.AppAcknowledgements[i]
		}

		cbs := k.Router.Route(payload.SourcePort)
		if err := cbs.OnAcknowledgementPacket(ctx, packet.SourceClient, packet.DestinationClient, packet.Sequence, payload, appAck, relayer); err != nil {
			return err
		}
	}

	return nil
}

// TimeoutPacket verifies that the packet's timeout elapsed on the
// counterparty and that the packet was never received there, then deletes
// the packet commitment and notifies the originating applications. A
// missing commitment means the lifecycle already completed; exactly one of
// acknowledge or timeout can ever succeed for a sequence.
func (k *Keeper) TimeoutPacket(
	ctx sdk.Context,
	packet types.Packet,
	proof chunkedtypes.ProofData,
	proofHeight uint64,
	relayer sdk.AccAddress,
) error {
	// lookup counterparty from client identifiers
	counterparty, ok := k.ClientKeeper.GetClientCounterparty(ctx, packet.SourceClient)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrCounterpartyNotFound, "counterparty not found for client: %s", packet.SourceClient)
	}

	if counterparty.ClientID != packet.DestinationClient {
		return errorsmod.Wrapf(clienttypes.ErrInvalidCounterparty, "counterparty id (%s) does not match packet destination id (%s)", counterparty.ClientID, packet.DestinationClient)
	}

	// check that the timeout timestamp has passed on the other end: the
	// proven consensus timestamp at proofHeight must have reached the
	// packet timeout
	proofTimestampNano, err := k.ClientKeeper.GetClientTimestampAtHeight(ctx, packet.SourceClient, proofHeight)
	if err != nil {
		return err
	}
	proofTimestamp := uint64(time.Unix(0, int64(proofTimestampNano)).Unix())

	if proofTimestamp < packet.TimeoutTimestamp {
		return errorsmod.Wrapf(types.ErrTimeoutNotElapsed, "proof timestamp: %d, timeout timestamp: %d", proofTimestamp, packet.TimeoutTimestamp)
	}

	// check that the commitment has not been cleared and that it matches
	// the packet sent by the relayer
	commitment := k.GetPacketCommitment(ctx, packet.SourceClient, packet.Sequence)
	if len(commitment) == 0 {
		// the timeout was already relayed, or the packet was acknowledged
		return errorsmod.Wrapf(types.ErrCommitmentNotFound, "sourceClient (%s), sequence (%d)", packet.SourceClient, packet.Sequence)
	}

	packetCommitment := types.CommitPacket(packet)
	if !bytes.Equal(commitment, packetCommitment) {
		return errorsmod.Wrapf(types.ErrInvalidPacket, "packet commitment bytes are not equal: got (%v), expected (%v)", commitment, packetCommitment)
	}

	proofBz, err := k.ChunkKeeper.ResolveProof(ctx, relayer.String(), proof)
	if err != nil {
		return err
	}

	// verify packet receipt absence: the destination never received it
	path := host.PacketReceiptKey(packet.DestinationClient, packet.Sequence)
	merklePath := commitmenttypes.ApplyPrefix(counterparty.KeyPrefix, path)

	if err := k.ClientKeeper.VerifyNonMembership(
		ctx,
		packet.SourceClient,
		proofHeight,
		merklePath.KeyPath,
		proofBz,
	); err != nil {
		return errorsmod.Wrapf(err, "failed packet receipt absence verification for client (%s)", packet.SourceClient)
	}

	k.DeletePacketCommitment(ctx, packet.SourceClient, packet.Sequence)

	for _, payload := range packet.Payloads {
		cbs := k.Router.Route(payload.SourcePort)
		if err := cbs.OnTimeoutPacket(ctx, packet.SourceClient, packet.DestinationClient, packet.Sequence, payload, relayer); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("packet timed out", "sequence", strconv.FormatUint(packet.Sequence, 10), "src_client_id", packet.SourceClient, "dst_client_id", packet.DestinationClient)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "packet", "timeout"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelSourceClient, packet.SourceClient),
			telemetry.NewLabel(types.LabelDestinationClient, packet.DestinationClient),
		},
	)

	emitTimeoutPacketEvents(ctx, packet)

	return nil
}
