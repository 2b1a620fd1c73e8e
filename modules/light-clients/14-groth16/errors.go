package groth16

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName is the error codespace for the groth16 light client.
const SubModuleName = "groth16"

var (
	ErrClientFrozen        = errorsmod.Register(SubModuleName, 1, "client is frozen")
	ErrInvalidHeader       = errorsmod.Register(SubModuleName, 2, "invalid header")
	ErrInvalidProof        = errorsmod.Register(SubModuleName, 3, "invalid consensus proof")
	ErrInvalidVerifyingKey = errorsmod.Register(SubModuleName, 4, "invalid verifying key")
	ErrInvalidTrustLevel   = errorsmod.Register(SubModuleName, 5, "invalid trust level")
)
