package groth16_test

import (
	"crypto/sha256"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
	groth16 "github.com/cosmos/ibc-lite/modules/light-clients/14-groth16"
)

func (s *Groth16TestSuite) validHeader() *groth16.Header {
	return &groth16.Header{
		TrustedHeight: 100,
		NewHeight:     101,
		NewRoot:       sha256.Sum256([]byte("new root")),
		NewTimestamp:  20,
		Proof:         testProof(s.T()),
	}
}

func (s *Groth16TestSuite) TestHeaderValidateBasic() {
	testCases := []struct {
		name     string
		malleate func(h *groth16.Header)
		expErr   bool
	}{
		{"valid header", func(h *groth16.Header) {}, false},
		{"zero trusted height", func(h *groth16.Header) { h.TrustedHeight = 0 }, true},
		{"new height not above trusted", func(h *groth16.Header) { h.NewHeight = h.TrustedHeight }, true},
		{"empty new root", func(h *groth16.Header) { h.NewRoot = [32]byte{} }, true},
		{"zero new timestamp", func(h *groth16.Header) { h.NewTimestamp = 0 }, true},
		{"empty proof", func(h *groth16.Header) { h.Proof = nil }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			header := s.validHeader()
			tc.malleate(header)

			err := header.ValidateBasic()
			if tc.expErr {
				s.Require().ErrorIs(err, groth16.ErrInvalidHeader)
			} else {
				s.Require().NoError(err)
			}
		})
	}
}

func (s *Groth16TestSuite) TestVerifyClientMessageFailsClosed() {
	testCases := []struct {
		name     string
		malleate func()
		header   func() *groth16.Header
		expErr   error
	}{
		{
			"unknown trusted height",
			func() {},
			func() *groth16.Header {
				header := s.validHeader()
				header.TrustedHeight = 50
				return header
			},
			clienttypes.ErrConsensusStateNotFound,
		},
		{
			"timestamp not increasing",
			func() {},
			func() *groth16.Header {
				header := s.validHeader()
				header.NewTimestamp = 10
				return header
			},
			groth16.ErrInvalidHeader,
		},
		{
			"malformed proof bytes",
			func() {},
			func() *groth16.Header {
				header := s.validHeader()
				header.Proof = []byte("garbage")
				return header
			},
			groth16.ErrInvalidProof,
		},
		{
			"unsatisfiable proof rejected",
			func() {},
			s.validHeader,
			groth16.ErrInvalidProof,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initializeClient(s.initialRoot, 10)
			tc.malleate()

			err := s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, tc.header())
			s.Require().ErrorIs(err, tc.expErr)
		})
	}
}

func (s *Groth16TestSuite) TestMisbehaviourValidateBasic() {
	conflicting := s.validHeader()
	conflicting.NewRoot = sha256.Sum256([]byte("conflicting root"))

	misbehaviour := &groth16.Misbehaviour{HeaderA: s.validHeader(), HeaderB: conflicting}
	s.Require().NoError(misbehaviour.ValidateBasic())

	identical := &groth16.Misbehaviour{HeaderA: s.validHeader(), HeaderB: s.validHeader()}
	s.Require().ErrorIs(identical.ValidateBasic(), clienttypes.ErrInvalidMisbehaviour)

	differentHeights := s.validHeader()
	differentHeights.NewHeight = 102
	mismatched := &groth16.Misbehaviour{HeaderA: s.validHeader(), HeaderB: differentHeights}
	s.Require().ErrorIs(mismatched.ValidateBasic(), clienttypes.ErrInvalidMisbehaviour)
}

func (s *Groth16TestSuite) TestCheckForMisbehaviourAndUpdate() {
	s.initializeClient(s.initialRoot, 10)

	header := s.validHeader()

	// a header for an unseen height is not misbehaviour
	s.Require().False(s.lightClientModule.CheckForMisbehaviour(s.ctx, testClientID, header))

	heights := s.lightClientModule.UpdateState(s.ctx, testClientID, header)
	s.Require().Equal([]uint64{101}, heights)
	s.Require().Equal(uint64(101), s.lightClientModule.LatestHeight(s.ctx, testClientID))

	timestamp, err := s.lightClientModule.TimestampAtHeight(s.ctx, testClientID, 101)
	s.Require().NoError(err)
	s.Require().Equal(uint64(20), timestamp)

	// an identical header for the stored height is not misbehaviour
	s.Require().False(s.lightClientModule.CheckForMisbehaviour(s.ctx, testClientID, header))

	// a conflicting root for the stored height is misbehaviour
	conflicting := s.validHeader()
	conflicting.NewRoot = sha256.Sum256([]byte("conflicting root"))
	s.Require().True(s.lightClientModule.CheckForMisbehaviour(s.ctx, testClientID, conflicting))

	// explicit misbehaviour evidence always reports true
	misbehaviour := &groth16.Misbehaviour{HeaderA: header, HeaderB: conflicting}
	s.Require().True(s.lightClientModule.CheckForMisbehaviour(s.ctx, testClientID, misbehaviour))
}

func (s *Groth16TestSuite) TestFreezeIsTerminal() {
	s.initializeClient(s.initialRoot, 10)

	s.lightClientModule.UpdateStateOnMisbehaviour(s.ctx, testClientID, s.validHeader())
	s.Require().Equal(exported.Frozen, s.lightClientModule.Status(s.ctx, testClientID))

	err := s.lightClientModule.VerifyClientMessage(s.ctx, testClientID, s.validHeader())
	s.Require().ErrorIs(err, groth16.ErrClientFrozen)

	err = s.lightClientModule.VerifyMembership(s.ctx, testClientID, 100, [][]byte{[]byte("path")}, []byte("value"), []byte("proof"))
	s.Require().ErrorIs(err, groth16.ErrClientFrozen)

	err = s.lightClientModule.VerifyNonMembership(s.ctx, testClientID, 100, [][]byte{[]byte("path")}, []byte("proof"))
	s.Require().ErrorIs(err, groth16.ErrClientFrozen)
}
