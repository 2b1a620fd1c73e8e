package types

import "github.com/cosmos/ibc-lite/modules/core/exported"

// Packet handler events
const (
	EventTypeSendPacket           = "send_packet"
	EventTypeRecvPacket           = "recv_packet"
	EventTypeWriteAcknowledgement = "write_acknowledgement"
	EventTypeAcknowledgePacket    = "acknowledge_packet"
	EventTypeTimeoutPacket        = "timeout_packet"

	AttributeKeySrcClient        = "packet_source_client"
	AttributeKeyDstClient        = "packet_dest_client"
	AttributeKeySequence         = "packet_sequence"
	AttributeKeyTimeoutTimestamp = "packet_timeout_timestamp"
	AttributeKeyPayloadLength    = "packet_payload_length"
	AttributeKeyAcknowledgement  = "acknowledgement"
)

// Telemetry labels
const (
	LabelSourceClient      = "source_client"
	LabelDestinationClient = "destination_client"
)

// AttributeValueCategory is the module category emitted with every event.
var AttributeValueCategory = exported.ModuleName + "_" + SubModuleName
