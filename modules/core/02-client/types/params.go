package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// DefaultAllowedClients is the list of client types allowed at genesis.
// The wildcard entry permits any registered client type.
var DefaultAllowedClients = []string{AllowAllClients}

// Params defines the set of client parameters.
type Params struct {
	// AllowedClients is the client types allowed to be created by the
	// registry. A single "*" entry allows all registered types.
	AllowedClients []string
}

// NewParams creates a new parameter configuration for the client submodule.
func NewParams(allowedClients ...string) Params {
	return Params{
		AllowedClients: allowedClients,
	}
}

// DefaultParams is the default parameter configuration for the client submodule.
func DefaultParams() Params {
	return NewParams(DefaultAllowedClients...)
}

// Validate ensures all allowed clients are non-empty and that the wildcard,
// if present, is the only entry.
func (p Params) Validate() error {
	if len(p.AllowedClients) == 0 {
		return fmt.Errorf("allowed clients must not be empty")
	}
	for i, clientType := range p.AllowedClients {
		if strings.TrimSpace(clientType) == "" {
			return fmt.Errorf("client type %d cannot be blank", i)
		}
		if clientType == AllowAllClients && len(p.AllowedClients) > 1 {
			return fmt.Errorf("allow list must have only one element because the allow all clients wildcard (%s) is present", AllowAllClients)
		}
	}
	return nil
}

// IsAllowedClient reports whether the given client type is registered on
// the allowlist.
func (p Params) IsAllowedClient(clientType string) bool {
	for _, allowedClient := range p.AllowedClients {
		if allowedClient == AllowAllClients || allowedClient == clientType {
			return true
		}
	}
	return false
}

var (
	stringSliceType, _ = abi.NewType("string[]", "", nil)

	paramsArgs = abi.Arguments{
		{Name: "allowedClients", Type: stringSliceType},
	}
)

// ABIEncode encodes the params.
// This type uses ABI encoding (not Protobuf) for cross-platform compatibility.
func (p Params) ABIEncode() ([]byte, error) {
	return paramsArgs.Pack(p.AllowedClients)
}

// ABIDecodeParams decodes an ABI encoded params record.
func ABIDecodeParams(data []byte) (Params, error) {
	unpacked, err := paramsArgs.Unpack(data)
	if err != nil {
		return Params{}, errorsmod.Wrapf(ErrInvalidClient, "failed to ABI decode params: %v", err)
	}

	allowedClients, ok := unpacked[0].([]string)
	if !ok {
		return Params{}, errorsmod.Wrap(ErrInvalidClient, "invalid allowed clients type")
	}

	return NewParams(allowedClients...), nil
}
