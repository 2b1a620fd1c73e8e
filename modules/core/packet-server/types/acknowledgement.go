package types

import (
	"bytes"
	"crypto/sha256"

	errorsmod "cosmossdk.io/errors"
)

// ErrorAcknowledgement is a constant app acknowledgement written when the
// application rejects a payload. Both ledgers know this sentinel, so the
// sender can distinguish application failure without decoding app data.
var ErrorAcknowledgement = sha256.Sum256([]byte("UNIVERSAL_ERROR_ACKNOWLEDGEMENT"))

// Acknowledgement carries one app acknowledgement per payload, in payload
// order.
type Acknowledgement struct {
	AppAcknowledgements [][]byte
}

// NewAcknowledgement constructs a new acknowledgement.
func NewAcknowledgement(appAcknowledgements ...[]byte) Acknowledgement {
	return Acknowledgement{AppAcknowledgements: appAcknowledgements}
}

// Validate performs basic validation of the acknowledgement.
func (a Acknowledgement) Validate() error {
	if len(a.AppAcknowledgements) == 0 {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement cannot be empty")
	}

	for _, ack := range a.AppAcknowledgements {
		if len(ack) == 0 {
			return errorsmod.Wrap(ErrInvalidAcknowledgement, "app acknowledgement cannot be empty")
		}
	}

	// The error sentinel is a full-packet outcome, never mixed with
	// per-payload results.
	if len(a.AppAcknowledgements) > 1 {
		for _, ack := range a.AppAcknowledgements {
			if bytes.Equal(ack, ErrorAcknowledgement[:]) {
				return errorsmod.Wrap(ErrInvalidAcknowledgement, "cannot mix error acknowledgement with app acknowledgements")
			}
		}
	}

	return nil
}

// IsError reports whether the acknowledgement is the error sentinel.
func (a Acknowledgement) IsError() bool {
	return len(a.AppAcknowledgements) == 1 && bytes.Equal(a.AppAcknowledgements[0], ErrorAcknowledgement[:])
}
