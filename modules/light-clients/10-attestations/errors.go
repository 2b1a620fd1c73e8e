package attestations

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName is the error codespace for the attestations light client.
const SubModuleName = "attestations"

var (
	ErrClientFrozen             = errorsmod.Register(SubModuleName, 1, "client is frozen")
	ErrInvalidAttestationData   = errorsmod.Register(SubModuleName, 2, "invalid attestation data")
	ErrInvalidSignature         = errorsmod.Register(SubModuleName, 3, "invalid signature")
	ErrUnknownSigner            = errorsmod.Register(SubModuleName, 4, "unknown signer")
	ErrDuplicateSigner          = errorsmod.Register(SubModuleName, 5, "duplicate signer")
	ErrInvalidQuorum            = errorsmod.Register(SubModuleName, 6, "quorum not met")
	ErrInvalidHeight            = errorsmod.Register(SubModuleName, 7, "invalid height")
	ErrInvalidPath              = errorsmod.Register(SubModuleName, 8, "invalid path")
	ErrNotMember                = errorsmod.Register(SubModuleName, 9, "value is not attested at path")
	ErrNonMembershipUnsupported = errorsmod.Register(SubModuleName, 10, "non-membership verification is not supported by attestation clients")
)
