package types

import (
	"errors"
	"fmt"

	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// Router routes client identifiers to the light client module implementing
// the verification strategy selected for that client at creation. Callers
// never need to know which strategy a given client uses.
type Router struct {
	routes map[string]exported.LightClientModule
}

// NewRouter returns an empty client router.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]exported.LightClientModule),
	}
}

// AddRoute registers the light client module for the given client type.
//
// Panics if a module is already registered for the client type.
func (rtr *Router) AddRoute(clientType string, module exported.LightClientModule) *Router {
	if clientType == "" {
		panic(errors.New("client type cannot be empty"))
	}
	if rtr.HasRoute(clientType) {
		panic(fmt.Errorf("route %s has already been registered", clientType))
	}

	rtr.routes[clientType] = module

	return rtr
}

// HasRoute returns true if the router has a module registered for the
// given client type.
func (rtr *Router) HasRoute(clientType string) bool {
	_, ok := rtr.routes[clientType]
	return ok
}

// GetRoute returns the light client module registered for the client type
// parsed from the provided client identifier.
func (rtr *Router) GetRoute(clientID string) (exported.LightClientModule, bool) {
	clientType, _, err := ParseClientIdentifier(clientID)
	if err != nil {
		return nil, false
	}

	route, ok := rtr.routes[clientType]
	return route, ok
}
