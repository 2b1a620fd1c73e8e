package types

import (
	errorsmod "cosmossdk.io/errors"
)

// client sentinel errors
var (
	ErrClientNotFound                  = errorsmod.Register(SubModuleName, 1, "light client not found")
	ErrClientFrozen                    = errorsmod.Register(SubModuleName, 2, "light client is frozen due to misbehaviour")
	ErrClientNotActive                 = errorsmod.Register(SubModuleName, 3, "light client is not active")
	ErrInvalidClient                   = errorsmod.Register(SubModuleName, 4, "light client is invalid")
	ErrClientTypeNotFound              = errorsmod.Register(SubModuleName, 5, "client type not found")
	ErrInvalidClientType               = errorsmod.Register(SubModuleName, 6, "invalid client type")
	ErrInvalidConsensus                = errorsmod.Register(SubModuleName, 7, "invalid consensus state")
	ErrConsensusStateNotFound          = errorsmod.Register(SubModuleName, 8, "consensus state not found: height is not trusted")
	ErrInvalidHeader                   = errorsmod.Register(SubModuleName, 9, "invalid client header")
	ErrInvalidMisbehaviour             = errorsmod.Register(SubModuleName, 10, "invalid light client misbehaviour")
	ErrFailedMembershipVerification    = errorsmod.Register(SubModuleName, 11, "membership verification failed")
	ErrFailedNonMembershipVerification = errorsmod.Register(SubModuleName, 12, "non-membership verification failed")
	ErrRouteNotFound                   = errorsmod.Register(SubModuleName, 13, "light client module route not found")
	ErrCounterpartyNotFound            = errorsmod.Register(SubModuleName, 14, "counterparty not found")
	ErrInvalidCounterparty             = errorsmod.Register(SubModuleName, 15, "invalid counterparty")
)
