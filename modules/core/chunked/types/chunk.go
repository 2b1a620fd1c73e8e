package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ChunkedRef references a pre-uploaded object. The referenced chunks are
// read back in index order 0..TotalChunks-1 and concatenated byte-exactly.
type ChunkedRef struct {
	// Uploader is the account that uploaded the chunks. Only the uploader
	// may consume or abort the upload.
	Uploader string
	// ObjectID distinguishes concurrent uploads by the same uploader.
	ObjectID uint64
	// TotalChunks is the number of chunks the object was split into.
	TotalChunks uint32
}

// Validate performs basic validation of the reference.
func (r ChunkedRef) Validate() error {
	if r.Uploader == "" {
		return errorsmod.Wrap(ErrInvalidProofData, "uploader cannot be empty")
	}
	if r.TotalChunks == 0 {
		return errorsmod.Wrap(ErrInvalidProofData, "total chunks cannot be 0")
	}
	return nil
}

// ProofData carries a proof in one of two mutually exclusive transport
// modes: inline, when the proof fits in a single message, or chunked, when
// it was pre-uploaded via the chunk store.
type ProofData struct {
	Inline  []byte
	Chunked *ChunkedRef
}

// NewInlineProof returns proof data carrying the full proof directly.
func NewInlineProof(proof []byte) ProofData {
	return ProofData{Inline: proof}
}

// NewChunkedProof returns proof data referencing a pre-uploaded proof.
func NewChunkedProof(uploader string, objectID uint64, totalChunks uint32) ProofData {
	return ProofData{Chunked: &ChunkedRef{Uploader: uploader, ObjectID: objectID, TotalChunks: totalChunks}}
}

// Validate ensures exactly one transport mode is populated.
func (p ProofData) Validate() error {
	switch {
	case len(p.Inline) > 0 && p.Chunked != nil:
		return errorsmod.Wrap(ErrInvalidProofData, "inline and chunked modes are mutually exclusive")
	case len(p.Inline) == 0 && p.Chunked == nil:
		return errorsmod.Wrap(ErrInvalidProofData, "proof data cannot be empty")
	case p.Chunked != nil:
		return p.Chunked.Validate()
	default:
		return nil
	}
}
