package groth16_test

import (
	"crypto/sha256"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	groth16 "github.com/cosmos/ibc-lite/modules/light-clients/14-groth16"
)

func (s *Groth16TestSuite) TestClientStateValidate() {
	testCases := []struct {
		name        string
		clientState *groth16.ClientState
		expErr      error
	}{
		{
			"valid client state",
			s.createClientState(1),
			nil,
		},
		{
			"empty verifying key",
			groth16.NewClientState(nil, 2, 3, 1),
			groth16.ErrInvalidVerifyingKey,
		},
		{
			"malformed verifying key",
			groth16.NewClientState([]byte("garbage"), 2, 3, 1),
			groth16.ErrInvalidVerifyingKey,
		},
		{
			"zero trust level denominator",
			groth16.NewClientState(s.verifyingKey, 2, 0, 1),
			groth16.ErrInvalidTrustLevel,
		},
		{
			"trust level above 1",
			groth16.NewClientState(s.verifyingKey, 4, 3, 1),
			groth16.ErrInvalidTrustLevel,
		},
		{
			"trust level at 1/3",
			groth16.NewClientState(s.verifyingKey, 1, 3, 1),
			groth16.ErrInvalidTrustLevel,
		},
		{
			"zero latest height",
			groth16.NewClientState(s.verifyingKey, 2, 3, 0),
			clienttypes.ErrInvalidClient,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.clientState.Validate()
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *Groth16TestSuite) TestClientStateRoundTrip() {
	clientState := s.createClientState(42)
	clientState.Frozen = true

	bz, err := clientState.ABIEncode()
	s.Require().NoError(err)

	decoded, err := groth16.ABIDecodeClientState(bz)
	s.Require().NoError(err)
	s.Require().Equal(clientState, decoded)
}

func (s *Groth16TestSuite) TestConsensusStateRoundTrip() {
	consensusState := groth16.NewConsensusState(s.initialRoot, 1234567890)

	bz, err := consensusState.ABIEncode()
	s.Require().NoError(err)

	decoded, err := groth16.ABIDecodeConsensusState(bz)
	s.Require().NoError(err)
	s.Require().Equal(consensusState, decoded)
}

func (s *Groth16TestSuite) TestHeaderRoundTrip() {
	header := &groth16.Header{
		TrustedHeight: 100,
		NewHeight:     101,
		NewRoot:       s.initialRoot,
		NewTimestamp:  20,
		Proof:         testProof(s.T()),
	}

	bz, err := header.ABIEncode()
	s.Require().NoError(err)

	decoded, err := groth16.ABIDecodeHeader(bz)
	s.Require().NoError(err)
	s.Require().Equal(header, decoded)
}

// TestConsensusCommitment pins the byte layout of the public-input binding:
// sha256(bigEndian64(height) || root || bigEndian64(timestamp)).
func (s *Groth16TestSuite) TestConsensusCommitment() {
	root := sha256.Sum256([]byte("root"))

	var preimage []byte
	preimage = append(preimage, sdk.Uint64ToBigEndian(7)...)
	preimage = append(preimage, root[:]...)
	preimage = append(preimage, sdk.Uint64ToBigEndian(9)...)
	expected := sha256.Sum256(preimage)

	s.Require().Equal(expected, groth16.ConsensusCommitment(7, root, 9))

	// every field changes the commitment
	s.Require().NotEqual(expected, groth16.ConsensusCommitment(8, root, 9))
	s.Require().NotEqual(expected, groth16.ConsensusCommitment(7, root, 10))
	s.Require().NotEqual(expected, groth16.ConsensusCommitment(7, [32]byte{}, 9))
}
