package types

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName is the error codespace for the commitment submodule.
const SubModuleName = "commitment"

var (
	ErrInvalidProof       = errorsmod.Register(SubModuleName, 1, "invalid proof")
	ErrInvalidPrefix      = errorsmod.Register(SubModuleName, 2, "invalid prefix")
	ErrInvalidMerkleProof = errorsmod.Register(SubModuleName, 3, "invalid merkle proof")
)
