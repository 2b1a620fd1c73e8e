package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidPacket          = errorsmod.Register(SubModuleName, 1, "invalid packet")
	ErrInvalidPayload         = errorsmod.Register(SubModuleName, 2, "invalid payload")
	ErrInvalidAcknowledgement = errorsmod.Register(SubModuleName, 3, "invalid acknowledgement")
	ErrAcknowledgementExists  = errorsmod.Register(SubModuleName, 4, "acknowledgement already exists")
	ErrPacketAlreadyReceived  = errorsmod.Register(SubModuleName, 5, "packet already received")
	ErrCommitmentNotFound     = errorsmod.Register(SubModuleName, 6, "packet commitment not found")
	ErrTimeoutElapsed         = errorsmod.Register(SubModuleName, 7, "timeout elapsed")
	ErrTimeoutNotElapsed      = errorsmod.Register(SubModuleName, 8, "timeout not elapsed")
	ErrInvalidTimeout         = errorsmod.Register(SubModuleName, 9, "invalid packet timeout")
	ErrSequenceExhausted      = errorsmod.Register(SubModuleName, 10, "sequence space exhausted")
	ErrReceiptNotFound        = errorsmod.Register(SubModuleName, 11, "packet receipt not found")
)
