// Package blsdemo is a supplemented feature showing hash-to-curve's real
// consumer: a minimal BLS signature scheme with messages hashed onto G1
// (via the suite package), signatures on G1 as well, and public keys
// living on the opposite curve, G2 — the "minimal signature size" BLS
// variant. It is a
// demonstration, not a production signing library (see spec.md's
// Non-goals): the only novel logic here is the pairing check itself,
// built entirely on gnark-crypto's native bls12381 package. Grounded on
// types/lightclient.go's AggregatePublicKeys (the G1Affine.Add
// accumulation loop, generalized here to G2) and on that file's domain
// handling idiom for associating a message with a verification context.
package blsdemo

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/kysee/bls-h2c/g1"
	"github.com/kysee/bls-h2c/suite"
)

// ErrNoSigners is returned by AggregatePublicKeys when every participation
// bit is false.
var ErrNoSigners = errors.New("blsdemo: no participating signers")

// ErrVerificationFailed is returned by Verify when the pairing check
// rejects the signature.
var ErrVerificationFailed = errors.New("blsdemo: signature verification failed")

// g2Gen is the canonical BLS12-381 G2 generator, as returned by
// gnark-crypto's bls12381.Generators().
func g2Gen() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// PrivateKey is a toy BLS scalar key; production code would derive this
// via a KDF over random entropy, which is out of scope here (spec.md
// Non-goals: "key management").
type PrivateKey struct {
	scalar big.Int
}

// NewPrivateKey wraps a raw scalar as a PrivateKey.
func NewPrivateKey(scalar *big.Int) PrivateKey {
	return PrivateKey{scalar: *scalar}
}

// PublicKey derives the G2 public key k*G2.
func (k PrivateKey) PublicKey() bls12381.G2Affine {
	var pk bls12381.G2Affine
	gen := g2Gen()
	pk.ScalarMultiplication(&gen, &k.scalar)
	return pk
}

// Sign hashes msg onto G1 under s (the suite carrying the scheme's DST)
// and scalar-multiplies the result by k's private scalar.
func (k PrivateKey) Sign(s suite.Suite, msg []byte) (bls12381.G1Affine, error) {
	hm, err := hashToG1Affine(s, msg)
	if err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("blsdemo: sign: %w", err)
	}
	var sig bls12381.G1Affine
	sig.ScalarMultiplication(&hm, &k.scalar)
	return sig, nil
}

// hashToG1Affine runs the hash-to-curve suite and re-expresses the
// resulting point in gnark-crypto's native G1Affine representation by
// round-tripping through canonical big-endian coordinate bytes.
func hashToG1Affine(s suite.Suite, msg []byte) (bls12381.G1Affine, error) {
	p, err := s.HashToCurve(msg)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	return toG1Affine(p)
}

func toG1Affine(p g1.Point) (bls12381.G1Affine, error) {
	var out bls12381.G1Affine
	if p.Infinity {
		return out, nil
	}
	out.X.SetBytes(p.X.Bytes())
	out.Y.SetBytes(p.Y.Bytes())
	if !out.IsOnCurve() {
		return out, fmt.Errorf("blsdemo: hash-to-curve output failed gnark-crypto's on-curve check")
	}
	return out, nil
}

// AggregatePublicKeys sums the G2 public keys selected by bits, the same
// accumulate-over-participation-bitmap pattern as
// types/lightclient.go's AggregatePublicKeys, generalized from G1 to G2
// since this scheme keeps keys on the curve opposite the message.
func AggregatePublicKeys(pubkeys []bls12381.G2Affine, bits []bool) (bls12381.G2Affine, int, error) {
	var agg bls12381.G2Affine
	agg.X.SetZero()
	agg.Y.SetZero()

	count := 0
	for i, participates := range bits {
		if !participates || i >= len(pubkeys) {
			continue
		}
		agg.Add(&agg, &pubkeys[i])
		count++
	}
	if count == 0 {
		return agg, 0, ErrNoSigners
	}
	return agg, count, nil
}

// AggregateSignatures sums G1 signatures, the message-side counterpart of
// AggregatePublicKeys.
func AggregateSignatures(sigs []bls12381.G1Affine) bls12381.G1Affine {
	var agg bls12381.G1Affine
	agg.X.SetZero()
	agg.Y.SetZero()
	for i := range sigs {
		agg.Add(&agg, &sigs[i])
	}
	return agg
}

// Verify checks that sig is a valid BLS signature over msg under pubkey,
// via e(sig, G2) == e(H(msg), pubkey), i.e.
// e(sig, G2) * e(-H(msg), pubkey) == 1.
func Verify(s suite.Suite, pubkey bls12381.G2Affine, msg []byte, sig bls12381.G1Affine) error {
	hm, err := hashToG1Affine(s, msg)
	if err != nil {
		return fmt.Errorf("blsdemo: verify: %w", err)
	}
	var negHm bls12381.G1Affine
	negHm.Neg(&hm)

	gen := g2Gen()
	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{sig, negHm},
		[]bls12381.G2Affine{gen, pubkey},
	)
	if err != nil {
		return fmt.Errorf("blsdemo: pairing check: %w", err)
	}
	if !ok {
		return ErrVerificationFailed
	}
	return nil
}
