package suite

import (
	"fmt"

	"github.com/kysee/bls-h2c/dst"
)

// The four IETF-registered BLS12-381 G1 suite labels (spec.md section 6
// "Wire compatibility"). Each is a DST prefix; callers append an
// application tag via dst.WithAppTag when constructing a suite.
const (
	LabelXMDSha256RO  = "BLS12381G1_XMD:SHA-256_SSWU_RO_"
	LabelXMDSha256NU  = "BLS12381G1_XMD:SHA-256_SSWU_NU_"
	LabelXOFShake128RO = "BLS12381G1_XOF:SHAKE-128_SSWU_RO_"
	LabelXOFShake128NU = "BLS12381G1_XOF:SHAKE-128_SSWU_NU_"
)

// NewBLS12381G1XMDSha256RO builds the RFC 9380 reference "hash_to_curve"
// suite over SHA-256 expansion, named the way
// original_source/src/bls381g1.rs's Bls12381G1Sswu::new ergonomics suggest
// (one named constructor per registered suite) rather than only a bare
// (mode, expansion) tuple constructor.
func NewBLS12381G1XMDSha256RO(opts ...dst.Option) (Suite, error) {
	return build(LabelXMDSha256RO, xmdExpand(), RandomOracle, opts)
}

// NewBLS12381G1XMDSha256NU builds the "encode_to_curve" counterpart of
// NewBLS12381G1XMDSha256RO.
func NewBLS12381G1XMDSha256NU(opts ...dst.Option) (Suite, error) {
	return build(LabelXMDSha256NU, xmdExpand(), NonUniform, opts)
}

// NewBLS12381G1XOFShake128RO builds the SHAKE-128 XOF-expansion Random
// Oracle suite.
func NewBLS12381G1XOFShake128RO(opts ...dst.Option) (Suite, error) {
	return build(LabelXOFShake128RO, xofExpand(), RandomOracle, opts)
}

// NewBLS12381G1XOFShake128NU builds the SHAKE-128 XOF-expansion
// Non-Uniform suite.
func NewBLS12381G1XOFShake128NU(opts ...dst.Option) (Suite, error) {
	return build(LabelXOFShake128NU, xofExpand(), NonUniform, opts)
}

func build(label string, expandFn func(msg, dst []byte, lenInBytes int) ([]byte, error), mode OperationMode, opts []dst.Option) (Suite, error) {
	tag, err := dst.New(label, opts...)
	if err != nil {
		return Suite{}, fmt.Errorf("suite: %w: %v", ErrInvalidDST, err)
	}
	return newSuite(tag, expandFn, mode), nil
}
