package attestations_test

import (
	"crypto/sha256"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	host "github.com/cosmos/ibc-lite/modules/core/24-host"
	attestations "github.com/cosmos/ibc-lite/modules/light-clients/10-attestations"
)

func (s *AttestationsTestSuite) TestVerifyMembership() {
	commitment := sha256.Sum256([]byte("packet commitment preimage"))
	path := host.PacketCommitmentKey("attestations-7", 1)

	// the attested path is the 32-byte normalization of the flattened path
	attestedPath := sha256.Sum256(path)

	packets := []attestations.PacketCompact{
		{Path: attestedPath[:], Commitment: commitment[:]},
	}

	makeProof := func(height uint64, packets []attestations.PacketCompact, signers []int) []byte {
		claim := s.createClaim(s.createPacketAttestation(height, packets), signers)
		bz, err := claim.ABIEncode()
		s.Require().NoError(err)
		return bz
	}

	testCases := []struct {
		name   string
		height uint64
		path   [][]byte
		value  []byte
		proof  func() []byte
		expErr error
	}{
		{
			"attested commitment verifies",
			100,
			[][]byte{path},
			commitment[:],
			func() []byte { return makeProof(100, packets, []int{0, 1, 2}) },
			nil,
		},
		{
			"wrong value is not attested",
			100,
			[][]byte{path},
			sha256Bytes("some other commitment"),
			func() []byte { return makeProof(100, packets, []int{0, 1, 2}) },
			attestations.ErrNotMember,
		},
		{
			"attestation height mismatch",
			100,
			[][]byte{path},
			commitment[:],
			func() []byte { return makeProof(99, packets, []int{0, 1, 2}) },
			attestations.ErrInvalidHeight,
		},
		{
			"unknown consensus height",
			101,
			[][]byte{path},
			commitment[:],
			func() []byte { return makeProof(101, packets, []int{0, 1, 2}) },
			clienttypes.ErrConsensusStateNotFound,
		},
		{
			"quorum not met",
			100,
			[][]byte{path},
			commitment[:],
			func() []byte { return makeProof(100, packets, []int{0, 1}) },
			attestations.ErrInvalidQuorum,
		},
		{
			"empty path rejected",
			100,
			nil,
			commitment[:],
			func() []byte { return makeProof(100, packets, []int{0, 1, 2}) },
			attestations.ErrInvalidPath,
		},
		{
			"malformed proof bytes rejected",
			100,
			[][]byte{path},
			commitment[:],
			func() []byte { return []byte("garbage") },
			attestations.ErrInvalidAttestationData,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initializeClient(10)

			err := s.lightClientModule.VerifyMembership(s.ctx, testClientID, tc.height, tc.path, tc.value, tc.proof())
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *AttestationsTestSuite) TestVerifyNonMembershipUnsupported() {
	s.initializeClient(10)

	err := s.lightClientModule.VerifyNonMembership(s.ctx, testClientID, 100, [][]byte{[]byte("path")}, []byte("proof"))
	s.Require().ErrorIs(err, attestations.ErrNonMembershipUnsupported)
}

func sha256Bytes(data string) []byte {
	sum := sha256.Sum256([]byte(data))
	return sum[:]
}
