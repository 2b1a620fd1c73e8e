package types

import (
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// client events
const (
	EventTypeCreateClient         = "create_client"
	EventTypeUpdateClient         = "update_client"
	EventTypeSubmitMisbehaviour   = "client_misbehaviour"
	EventTypeRegisterCounterparty = "register_counterparty"

	AttributeKeyClientID             = "client_id"
	AttributeKeyClientType           = "client_type"
	AttributeKeyConsensusHeights     = "consensus_heights"
	AttributeKeyCounterpartyClientID = "counterparty_client_id"

	// AttributeValueCategory is the message event category.
	AttributeValueCategory = exported.ModuleName + "_" + SubModuleName
)

// telemetry labels
const (
	LabelClientType = "client_type"
	LabelClientID   = "client_id"
	LabelMsgType    = "msg_type"
)
