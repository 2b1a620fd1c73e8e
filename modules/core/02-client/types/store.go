package types

import (
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StoreProvider encapsulates the key of the core module store and provides
// isolated prefix stores to each light client, so concurrent operations on
// different clients never contend on shared records.
type StoreProvider struct {
	storeKey storetypes.StoreKey
}

// NewStoreProvider creates and returns a new client StoreProvider.
func NewStoreProvider(storeKey storetypes.StoreKey) StoreProvider {
	return StoreProvider{
		storeKey: storeKey,
	}
}

// ClientStore returns the store prefixed to the given client identifier.
func (s StoreProvider) ClientStore(ctx sdk.Context, clientID string) storetypes.KVStore {
	return prefix.NewStore(ctx.KVStore(s.storeKey), ClientStorePrefix(clientID))
}
