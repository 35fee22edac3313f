package blsdemo

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/kysee/bls-h2c/dst"
	"github.com/kysee/bls-h2c/suite"
	"github.com/stretchr/testify/require"
)

func testSuite(t *testing.T) suite.Suite {
	t.Helper()
	s, err := suite.NewBLS12381G1XMDSha256RO(dst.WithAppTag("BLSDEMO"))
	require.NoError(t, err)
	return s
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	s := testSuite(t)
	sk := NewPrivateKey(big.NewInt(424242))
	msg := crypto.Keccak256([]byte("transfer 10 tokens to alice"))

	sig, err := sk.Sign(s, msg)
	require.NoError(t, err)
	require.NoError(t, Verify(s, sk.PublicKey(), msg, sig))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	s := testSuite(t)
	sk := NewPrivateKey(big.NewInt(7))
	msg := crypto.Keccak256([]byte("original"))
	tampered := crypto.Keccak256([]byte("tampered"))

	sig, err := sk.Sign(s, msg)
	require.NoError(t, err)
	require.ErrorIs(t, Verify(s, sk.PublicKey(), tampered, sig), ErrVerificationFailed)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	s := testSuite(t)
	sk := NewPrivateKey(big.NewInt(11))
	other := NewPrivateKey(big.NewInt(12))
	msg := crypto.Keccak256([]byte("payload"))

	sig, err := sk.Sign(s, msg)
	require.NoError(t, err)
	require.ErrorIs(t, Verify(s, other.PublicKey(), msg, sig), ErrVerificationFailed)
}

func TestAggregateSignaturesAndKeysVerify(t *testing.T) {
	s := testSuite(t)
	msg := crypto.Keccak256([]byte("sync committee update"))

	sk1 := NewPrivateKey(big.NewInt(101))
	sk2 := NewPrivateKey(big.NewInt(202))

	sig1, err := sk1.Sign(s, msg)
	require.NoError(t, err)
	sig2, err := sk2.Sign(s, msg)
	require.NoError(t, err)

	aggSig := AggregateSignatures([]bls12381.G1Affine{sig1, sig2})
	aggPK, count, err := AggregatePublicKeys([]bls12381.G2Affine{sk1.PublicKey(), sk2.PublicKey()}, []bool{true, true})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.NoError(t, Verify(s, aggPK, msg, aggSig))
}

func TestAggregatePublicKeysRejectsEmptyBitmap(t *testing.T) {
	_, _, err := AggregatePublicKeys(nil, []bool{false, false})
	require.ErrorIs(t, err, ErrNoSigners)
}
