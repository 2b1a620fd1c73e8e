package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// CounterpartyInfo links a local client to the counterparty's client of this
// chain and carries the key-path prefix under which the counterparty stores
// its provable packet state.
type CounterpartyInfo struct {
	// ClientID is the identifier of the counterparty's client of this chain.
	ClientID string
	// KeyPrefix is prepended to the packet paths before proof verification.
	KeyPrefix []byte
}

// NewCounterpartyInfo creates a new CounterpartyInfo instance.
func NewCounterpartyInfo(clientID string, keyPrefix []byte) CounterpartyInfo {
	return CounterpartyInfo{
		ClientID:  clientID,
		KeyPrefix: keyPrefix,
	}
}

// Validate performs basic validation of the counterparty info.
func (c CounterpartyInfo) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty client identifier cannot be empty")
	}
	return nil
}

var (
	stringType, _ = abi.NewType("string", "", nil)
	bytesType, _  = abi.NewType("bytes", "", nil)

	counterpartyArgs = abi.Arguments{
		{Name: "clientId", Type: stringType},
		{Name: "keyPrefix", Type: bytesType},
	}
)

// ABIEncode encodes the counterparty info.
// This type uses ABI encoding (not Protobuf) for cross-platform compatibility.
func (c CounterpartyInfo) ABIEncode() ([]byte, error) {
	return counterpartyArgs.Pack(c.ClientID, c.KeyPrefix)
}

// ABIDecodeCounterpartyInfo decodes an ABI encoded counterparty info record.
func ABIDecodeCounterpartyInfo(data []byte) (CounterpartyInfo, error) {
	unpacked, err := counterpartyArgs.Unpack(data)
	if err != nil {
		return CounterpartyInfo{}, errorsmod.Wrapf(ErrInvalidCounterparty, "failed to ABI decode counterparty info: %v", err)
	}

	if len(unpacked) != 2 {
		return CounterpartyInfo{}, errorsmod.Wrap(ErrInvalidCounterparty, "invalid counterparty info: expected 2 fields")
	}

	clientID, ok := unpacked[0].(string)
	if !ok {
		return CounterpartyInfo{}, errorsmod.Wrap(ErrInvalidCounterparty, "invalid client id type")
	}

	keyPrefix, ok := unpacked[1].([]byte)
	if !ok {
		return CounterpartyInfo{}, errorsmod.Wrap(ErrInvalidCounterparty, "invalid key prefix type")
	}

	return CounterpartyInfo{ClientID: clientID, KeyPrefix: keyPrefix}, nil
}
