package attestations_test

import (
	"github.com/cosmos/ibc-lite/modules/core/exported"
	attestations "github.com/cosmos/ibc-lite/modules/light-clients/10-attestations"
)

func (s *AttestationsTestSuite) TestVerifyClientMessage() {
	testCases := []struct {
		name      string
		clientMsg func() exported.ClientMessage
		expErr    error
	}{
		{
			"valid claim with exact quorum",
			func() exported.ClientMessage {
				return s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2})
			},
			nil,
		},
		{
			"valid claim with all attestors",
			func() exported.ClientMessage {
				return s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2, 3, 4})
			},
			nil,
		},
		{
			"quorum not met",
			func() exported.ClientMessage {
				return s.createClaim(s.createStateAttestation(101, 20), []int{0, 1})
			},
			attestations.ErrInvalidQuorum,
		},
		{
			"duplicate signer rejected",
			func() exported.ClientMessage {
				return s.createClaim(s.createStateAttestation(101, 20), []int{0, 0, 1})
			},
			attestations.ErrDuplicateSigner,
		},
		{
			"unknown signer rejected",
			func() exported.ClientMessage {
				claim := s.createClaim(s.createStateAttestation(101, 20), []int{0, 1})
				outsider := s.outsiderClaim(s.createStateAttestation(101, 20))
				claim.Signatures = append(claim.Signatures, outsider.Signatures...)
				return claim
			},
			attestations.ErrUnknownSigner,
		},
		{
			"zero attested height rejected",
			func() exported.ClientMessage {
				return s.createClaim(s.createStateAttestation(0, 20), []int{0, 1, 2})
			},
			attestations.ErrInvalidAttestationData,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initializeClient(10)

			err := s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, tc.clientMsg())
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *AttestationsTestSuite) TestUpdateState() {
	s.initializeClient(10)

	claim := s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2})

	err := s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, claim)
	s.Require().NoError(err)
	s.Require().False(s.lightClientModule.CheckForMisbehaviour(s.ctx, testClientID, claim))

	heights := s.lightClientModule.UpdateState(s.ctx, testClientID, claim)
	s.Require().Equal([]uint64{101}, heights)
	s.Require().Equal(uint64(101), s.lightClientModule.LatestHeight(s.ctx, testClientID))

	timestamp, err := s.lightClientModule.TimestampAtHeight(s.ctx, testClientID, 101)
	s.Require().NoError(err)
	s.Require().Equal(uint64(20), timestamp)

	// an identical claim for the same height is not misbehaviour
	s.Require().False(s.lightClientModule.CheckForMisbehaviour(s.ctx, testClientID, claim))
}

func (s *AttestationsTestSuite) TestCheckForMisbehaviourConflictingClaim() {
	s.initializeClient(10)

	claim := s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2})
	s.lightClientModule.UpdateState(s.ctx, testClientID, claim)

	// a quorum-backed claim for the stored height with a different
	// timestamp is misbehaviour
	conflicting := s.createClaim(s.createStateAttestation(101, 21), []int{0, 1, 2})
	s.Require().NoError(s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, conflicting))
	s.Require().True(s.lightClientModule.CheckForMisbehaviour(s.ctx, testClientID, conflicting))
}

func (s *AttestationsTestSuite) TestMisbehaviourEvidence() {
	s.initializeClient(10)

	misbehaviour := &attestations.Misbehaviour{
		ClaimA: s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2}),
		ClaimB: s.createClaim(s.createStateAttestation(101, 21), []int{0, 1, 2}),
	}

	s.Require().NoError(s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, misbehaviour))
	s.Require().True(s.lightClientModule.CheckForMisbehaviour(s.ctx, testClientID, misbehaviour))

	// non-conflicting evidence is rejected during verification
	identical := &attestations.Misbehaviour{
		ClaimA: s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2}),
		ClaimB: s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2}),
	}
	s.Require().Error(s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, identical))

	// evidence where one claim lacks quorum is rejected
	weak := &attestations.Misbehaviour{
		ClaimA: s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2}),
		ClaimB: s.createClaim(s.createStateAttestation(101, 21), []int{0}),
	}
	s.Require().ErrorIs(s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, weak), attestations.ErrInvalidQuorum)
}

func (s *AttestationsTestSuite) TestFreezeIsTerminal() {
	s.initializeClient(10)

	misbehaviour := &attestations.Misbehaviour{
		ClaimA: s.createClaim(s.createStateAttestation(101, 20), []int{0, 1, 2}),
		ClaimB: s.createClaim(s.createStateAttestation(101, 21), []int{0, 1, 2}),
	}

	s.lightClientModule.UpdateStateOnMisbehaviour(s.ctx, testClientID, misbehaviour)
	s.Require().Equal(exported.Frozen, s.lightClientModule.Status(s.ctx, testClientID))

	// a frozen client rejects further updates and proof checks
	claim := s.createClaim(s.createStateAttestation(102, 30), []int{0, 1, 2})
	err := s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, claim)
	s.Require().ErrorIs(err, attestations.ErrClientFrozen)

	err = s.lightClientModule.VerifyMembership(s.ctx, testClientID, 100, [][]byte{[]byte("path")}, []byte("value"), []byte("proof"))
	s.Require().ErrorIs(err, attestations.ErrClientFrozen)

	err = s.lightClientModule.VerifyNonMembership(s.ctx, testClientID, 100, [][]byte{[]byte("path")}, []byte("proof"))
	s.Require().ErrorIs(err, attestations.ErrClientFrozen)
}
