package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidChunk           = errorsmod.Register(SubModuleName, 1, "invalid chunk")
	ErrChunkTooLarge          = errorsmod.Register(SubModuleName, 2, "chunk exceeds maximum size")
	ErrIncompleteUpload       = errorsmod.Register(SubModuleName, 3, "incomplete chunked upload")
	ErrChunkOwnershipMismatch = errorsmod.Register(SubModuleName, 4, "chunk upload owned by another submitter")
	ErrInvalidProofData       = errorsmod.Register(SubModuleName, 5, "invalid proof data")
)
