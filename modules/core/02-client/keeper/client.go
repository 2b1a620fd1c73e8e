package keeper

import (
	errorsmod "cosmossdk.io/errors"
	metrics "github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// CreateClient generates a new client identifier and isolated prefix store
// for the provided client and consensus state. The light client module is
// responsible for validating the bootstrap state: degenerate initial states
// (zero height or zero timestamp) are rejected during Initialize.
func (k *Keeper) CreateClient(ctx sdk.Context, clientType string, clientState, consensusState []byte) (string, error) {
	params := k.GetParams(ctx)
	if !params.IsAllowedClient(clientType) {
		return "", errorsmod.Wrapf(
			types.ErrInvalidClientType,
			"client state type %s is not registered in the allowlist", clientType,
		)
	}

	clientID := k.GenerateClientIdentifier(ctx, clientType)

	lightClientModule, found := k.router.GetRoute(clientID)
	if !found {
		return "", errorsmod.Wrap(types.ErrRouteNotFound, clientID)
	}

	if err := lightClientModule.Initialize(ctx, clientID, clientState, consensusState); err != nil {
		return "", err
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return "", errorsmod.Wrapf(types.ErrClientNotActive, "cannot create client (%s) with status %s", clientID, status)
	}

	k.Logger(ctx).Info("client created at height", "client-id", clientID, "height", lightClientModule.LatestHeight(ctx, clientID))

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "create"},
		1,
		[]metrics.Label{telemetry.NewLabel(types.LabelClientType, clientType)},
	)

	emitCreateClientEvent(ctx, clientID, clientType)

	return clientID, nil
}

// RegisterCounterparty stores the counterparty client identifier and key
// prefix for an existing client. The counterparty may be registered once.
func (k *Keeper) RegisterCounterparty(ctx sdk.Context, clientID string, counterparty types.CounterpartyInfo) error {
	if err := counterparty.Validate(); err != nil {
		return err
	}

	if _, ok := k.GetClientCounterparty(ctx, clientID); ok {
		return errorsmod.Wrapf(types.ErrInvalidCounterparty, "counterparty already registered for client %s", clientID)
	}

	if status := k.GetClientStatus(ctx, clientID); status == exported.Unknown {
		return errorsmod.Wrap(types.ErrClientNotFound, clientID)
	}

	k.SetClientCounterparty(ctx, clientID, counterparty)

	k.Logger(ctx).Info("counterparty registered", "client-id", clientID, "counterparty-client-id", counterparty.ClientID)

	emitRegisterCounterpartyEvent(ctx, clientID, counterparty.ClientID)

	return nil
}

// UpdateClient verifies the client message against the stored client state
// and either stores the attested consensus state or, if the message
// evidences conflicting state for an already attested height, freezes the
// client. Freezing commits and the handler returns nil: it is the safe
// terminal response to a protocol violation, not an error to roll back.
func (k *Keeper) UpdateClient(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) error {
	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot update client (%s) with status %s", clientID, status)
	}

	clientType, _, err := types.ParseClientIdentifier(clientID)
	if err != nil {
		return errorsmod.Wrapf(types.ErrClientNotFound, "clientID (%s)", clientID)
	}

	lightClientModule, found := k.router.GetRoute(clientID)
	if !found {
		return errorsmod.Wrap(types.ErrRouteNotFound, clientID)
	}

	if err := lightClientModule.VerifyClientMessage(ctx, clientID, clientMsg); err != nil {
		return err
	}

	foundMisbehaviour := lightClientModule.CheckForMisbehaviour(ctx, clientID, clientMsg)
	if foundMisbehaviour {
		lightClientModule.UpdateStateOnMisbehaviour(ctx, clientID, clientMsg)

		k.Logger(ctx).Info("client frozen due to misbehaviour", "client-id", clientID)

		defer telemetry.IncrCounterWithLabels(
			[]string{"ibc", "client", "misbehaviour"},
			1,
			[]metrics.Label{
				telemetry.NewLabel(types.LabelClientType, clientType),
				telemetry.NewLabel(types.LabelClientID, clientID),
				telemetry.NewLabel(types.LabelMsgType, "update"),
			},
		)

		emitSubmitMisbehaviourEvent(ctx, clientID, clientType)

		return nil
	}

	consensusHeights := lightClientModule.UpdateState(ctx, clientID, clientMsg)

	k.Logger(ctx).Info("client state updated", "client-id", clientID, "heights", consensusHeights)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "update"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelClientType, clientType),
			telemetry.NewLabel(types.LabelClientID, clientID),
		},
	)

	emitUpdateClientEvent(ctx, clientID, clientType, consensusHeights)

	return nil
}
