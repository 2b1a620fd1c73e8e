package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	host "github.com/cosmos/ibc-lite/modules/core/24-host"
)

const (
	// SubModuleName defines the client submodule name.
	SubModuleName = "client"

	// KeyNextClientSequence is the key used to store the next client sequence
	// in the global store.
	KeyNextClientSequence = "nextClientSequence"

	// KeyCounterparty is the key under which the counterparty info is stored
	// within the client prefix store.
	KeyCounterparty = "counterparty"

	// ParamsKey is the key under which module parameters are stored.
	ParamsKey = "clientParams"

	// AllowAllClients is the wildcard entry for the allowed clients parameter.
	AllowAllClients = "*"
)

// clientIDRegex validates generated client identifiers: a client type
// followed by a dash and a numeric sequence.
var clientIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]-[0-9]{1,20}$`)

// FormatClientIdentifier returns the client identifier for the provided
// client type and sequence.
func FormatClientIdentifier(clientType string, sequence uint64) string {
	return fmt.Sprintf("%s-%d", clientType, sequence)
}

// ParseClientIdentifier splits a client identifier into its client type and
// sequence components. The client type may itself contain dashes.
func ParseClientIdentifier(clientID string) (string, uint64, error) {
	if !IsValidClientID(clientID) {
		return "", 0, errorsmod.Wrapf(ErrInvalidClientType, "invalid client identifier %s", clientID)
	}

	splitStr := strings.Split(clientID, "-")
	lastIndex := len(splitStr) - 1

	clientType := strings.Join(splitStr[:lastIndex], "-")
	if strings.TrimSpace(clientType) == "" {
		return "", 0, errorsmod.Wrapf(ErrInvalidClientType, "client identifier must be in format: `{client-type}-{N}`, got: %s", clientID)
	}

	sequence, err := strconv.ParseUint(splitStr[lastIndex], 10, 64)
	if err != nil {
		return "", 0, errorsmod.Wrapf(err, "failed to parse client identifier sequence")
	}

	return clientType, sequence, nil
}

// IsValidClientID reports whether the string is a valid generated client
// identifier.
func IsValidClientID(clientID string) bool {
	return clientIDRegex.MatchString(clientID)
}

// ClientStorePrefix returns the prefix under which all state for the
// provided client is isolated.
func ClientStorePrefix(clientID string) []byte {
	return []byte(fmt.Sprintf("%s/%s/", host.KeyClientStorePrefix, clientID))
}
