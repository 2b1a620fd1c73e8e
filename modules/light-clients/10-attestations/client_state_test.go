package attestations_test

import (
	attestations "github.com/cosmos/ibc-lite/modules/light-clients/10-attestations"
)

func (s *AttestationsTestSuite) TestClientStateValidate() {
	testCases := []struct {
		name        string
		clientState *attestations.ClientState
		expErr      bool
	}{
		{
			"valid client state",
			s.createClientState(1),
			false,
		},
		{
			"zero latest height",
			attestations.NewClientState(s.attestorAddrs, s.quorum, 0),
			true,
		},
		{
			"empty attestor addresses",
			attestations.NewClientState([]string{}, 1, 1),
			true,
		},
		{
			"zero quorum threshold",
			attestations.NewClientState(s.attestorAddrs, 0, 1),
			true,
		},
		{
			"quorum threshold exceeds attestor count",
			attestations.NewClientState(s.attestorAddrs, 10, 1),
			true,
		},
		{
			"duplicate attestor address",
			attestations.NewClientState([]string{s.attestorAddrs[0], s.attestorAddrs[0]}, 1, 1),
			true,
		},
		{
			"empty attestor address",
			attestations.NewClientState([]string{""}, 1, 1),
			true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.clientState.Validate()
			if tc.expErr {
				s.Require().Error(err)
			} else {
				s.Require().NoError(err)
			}
		})
	}
}

func (s *AttestationsTestSuite) TestClientStateRoundTrip() {
	clientState := s.createClientState(42)
	clientState.Frozen = true

	bz, err := clientState.ABIEncode()
	s.Require().NoError(err)

	decoded, err := attestations.ABIDecodeClientState(bz)
	s.Require().NoError(err)
	s.Require().Equal(clientState, decoded)
}

func (s *AttestationsTestSuite) TestConsensusStateRoundTrip() {
	consensusState := attestations.NewConsensusState(1234567890)

	bz, err := consensusState.ABIEncode()
	s.Require().NoError(err)

	decoded, err := attestations.ABIDecodeConsensusState(bz)
	s.Require().NoError(err)
	s.Require().Equal(consensusState, decoded)
}

func (s *AttestationsTestSuite) TestAttestationClaimRoundTrip() {
	claim := s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2})

	bz, err := claim.ABIEncode()
	s.Require().NoError(err)

	decoded, err := attestations.ABIDecodeAttestationClaim(bz)
	s.Require().NoError(err)
	s.Require().Equal(claim, decoded)
}
