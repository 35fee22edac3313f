// Package suite implements the public hash-to-curve façade (spec.md
// section 4.7, section 6 public surface): combining an expansion mode
// (XMD or XOF) with an operation mode (Random Oracle or Non-Uniform) into
// the four IETF-registered BLS12-381 G1 suites, each exposing
// EncodeToCurve and HashToCurve over a fixed DST. Grounded on
// chris-wood-voprf-poc-1/h2c.go's h2cParams, which plays the same role
// (bundle DST + mapping parameters behind two entry points) for that
// package's P-384/P-521 curves; here the switch is over expansion×mode
// instead of curve name, since this module only ever targets G1.
package suite

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/kysee/bls-h2c/dst"
	"github.com/kysee/bls-h2c/fp"
	"github.com/kysee/bls-h2c/g1"
	"github.com/kysee/bls-h2c/internal/expand"
	"github.com/kysee/bls-h2c/internal/hashfield"
	"github.com/kysee/bls-h2c/internal/iso"
	"github.com/kysee/bls-h2c/internal/sswu"
	"golang.org/x/crypto/sha3"
)

// OperationMode selects between the draft's Random Oracle and Non-Uniform
// encodings (spec.md section 4.6).
type OperationMode int

const (
	// RandomOracle ("hash_to_curve") hashes two field elements and adds
	// their images, giving output indistinguishable from uniform.
	RandomOracle OperationMode = iota
	// NonUniform ("encode_to_curve") hashes a single field element; faster,
	// but its output distribution is not uniform over the group.
	NonUniform
)

// Suite is an immutable (DST, expansion, mode) tuple (spec.md section 3
// "Suite configuration" — no hidden state). Build one via the registry.go
// constructors rather than this struct literal directly.
type Suite struct {
	dstBytes []byte
	expand   hashfield.ExpandFunc
	mode     OperationMode
}

func newSuite(tag dst.DST, expandFn hashfield.ExpandFunc, mode OperationMode) Suite {
	return Suite{dstBytes: tag.Bytes(), expand: expandFn, mode: mode}
}

func xmdExpand() hashfield.ExpandFunc {
	return func(msg, dst []byte, lenInBytes int) ([]byte, error) {
		out, err := expand.XMD(sha256.New, msg, dst, lenInBytes)
		return out, wrapExpandErr(err)
	}
}

func xofExpand() hashfield.ExpandFunc {
	return func(msg, dst []byte, lenInBytes int) ([]byte, error) {
		out, err := expand.XOF(func() sha3.ShakeHash { return sha3.NewShake128() }, msg, dst, lenInBytes)
		return out, wrapExpandErr(err)
	}
}

func wrapExpandErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, expand.ErrDSTTooLong):
		return fmt.Errorf("%w: %v", ErrInvalidDST, err)
	case errors.Is(err, expand.ErrLenTooLarge):
		return fmt.Errorf("%w: %v", ErrInvalidExpansionLength, err)
	case errors.Is(err, expand.ErrBadHashSize):
		return fmt.Errorf("%w: %v", ErrPrimitiveContract, err)
	default:
		return err
	}
}

// EncodeToCurve implements encode_to_curve (spec.md section 4.6): a single
// hash_to_field call, one SSWU+isogeny map, one cofactor clear. Its output
// distribution is not uniform; prefer HashToCurve unless the caller
// specifically needs encode_to_curve's cheaper cost.
func (s Suite) EncodeToCurve(msg []byte) (g1.Point, error) {
	u, err := hashfield.NU(s.expand, msg, s.dstBytes)
	if err != nil {
		return g1.Point{}, fmt.Errorf("suite: encode_to_curve: %w", err)
	}
	return clearCofactor(mapToCurve(u)), nil
}

// HashToCurve implements hash_to_curve (spec.md section 4.6): two
// hash_to_field draws, two independent SSWU+isogeny maps, a point
// addition, then cofactor clearing. This is the suite callers should use
// whenever the output must be indistinguishable from a uniformly random
// group element.
func (s Suite) HashToCurve(msg []byte) (g1.Point, error) {
	u0, u1, err := hashfield.RO(s.expand, msg, s.dstBytes)
	if err != nil {
		return g1.Point{}, fmt.Errorf("suite: hash_to_curve: %w", err)
	}
	q0 := mapToCurve(u0)
	q1 := mapToCurve(u1)
	return clearCofactor(g1.Add(q0, q1)), nil
}

// Mode reports whether s was built as a RandomOracle or NonUniform suite.
func (s Suite) Mode() OperationMode { return s.mode }

// DST returns the suite's domain separation tag bytes.
func (s Suite) DST() []byte { return append([]byte{}, s.dstBytes...) }

func mapToCurve(u fp.Elt) g1.Point {
	xPrime, yPrime := sswu.Map(u)
	x, y := iso.Map(xPrime, yPrime)
	p, ok := g1.FromXY(x, y)
	if !ok {
		// The isogeny image of a valid SSWU output always lies on E; if this
		// ever trips, the isogeny constants in internal/iso are wrong.
		panic("suite: isogeny map produced a point off the target curve")
	}
	return p
}

func clearCofactor(p g1.Point) g1.Point {
	return g1.ScalarMul(p, iso.HEff())
}
