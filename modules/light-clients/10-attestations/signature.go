package attestations

import (
	"crypto/sha256"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the expected length of an ECDSA signature (r||s||v).
const SignatureLength = 65

// verifySignatures verifies that the claim carries valid signatures from
// distinct, known attestors meeting the quorum threshold. Signatures cover
// sha256(attestationData). Recovery is order-independent; a duplicate
// signer is rejected rather than double-counted.
func (cs *ClientState) verifySignatures(claim *AttestationClaim) error {
	if len(claim.Signatures) == 0 {
		return errorsmod.Wrap(ErrInvalidSignature, "signatures cannot be empty")
	}

	attestorSet := make(map[string]bool, len(cs.Attestors))
	for _, addr := range cs.Attestors {
		attestorSet[strings.ToLower(addr)] = true
	}

	hash := sha256.Sum256(claim.AttestationData)
	seenSigners := make(map[string]bool, len(claim.Signatures))
	validSigs := 0

	for _, sig := range claim.Signatures {
		if len(sig) != SignatureLength {
			return errorsmod.Wrapf(ErrInvalidSignature, "signature must be %d bytes, got %d", SignatureLength, len(sig))
		}

		pubKey, err := crypto.SigToPub(hash[:], sig)
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidSignature, "failed to recover signer: %v", err)
		}

		addrStr := strings.ToLower(crypto.PubkeyToAddress(*pubKey).Hex())

		if seenSigners[addrStr] {
			return errorsmod.Wrapf(ErrDuplicateSigner, "signer %s signed more than once", addrStr)
		}
		seenSigners[addrStr] = true

		if !attestorSet[addrStr] {
			return errorsmod.Wrapf(ErrUnknownSigner, "signer %s is not in attestor set", addrStr)
		}

		validSigs++
	}

	if validSigs < int(cs.QuorumThreshold) {
		return errorsmod.Wrapf(ErrInvalidQuorum, "quorum not met: required %d, got %d", cs.QuorumThreshold, validSigs)
	}

	return nil
}
