// Package iso implements the 3-isogeny (in the draft's generic sense; for
// BLS12-381 G1 this is an 11-isogeny) mapping the SSWU target curve E'
// onto BLS12-381 G1's curve E: y^2 = x^3 + 4, per spec.md section 4.5 and
// draft-irtf-cfrg-hash-to-curve section 6.6.3 / appendix E.2.1. Grounded
// on original_source/src/bls381g1.rs's iso_map/iso_map_helper, which
// evaluates four rational polynomials over a shared vector of powers of
// x'.
package iso

import (
	"math/big"

	"github.com/kysee/bls-h2c/fp"
)

// Z is the SSWU curve's distinguished non-square, shared with package sswu.
func Z() fp.Elt { return z }

// A is E''s short-Weierstrass A coefficient.
func A() fp.Elt { return isoA }

// B is E''s short-Weierstrass B coefficient.
func B() fp.Elt { return isoB }

// HEff is the cofactor-clearing scalar h_eff for G1 (spec.md section 7).
func HEff() *big.Int { return new(big.Int).Set(hEff) }

// PM1Div2 is (p-1)/2, the exponent is_square raises to.
func PM1Div2() *big.Int { return new(big.Int).Set(pm1Div2) }

// Map evaluates the isogeny at a point (x', y') on E', returning the
// corresponding affine coordinates on E. Callers are expected to have
// already rejected x'=y'=identity (handled by g1.Identity upstream); Map
// itself assumes x_den/y_den are non-zero, which holds for every input the
// SSWU step of this module ever produces.
func Map(xPrime, yPrime fp.Elt) (x, y fp.Elt) {
	powers := powersOf(xPrime)

	xNumVal := evalPoly(powers, xNum[:])
	xDenVal := evalPoly(powers, xDen[:])
	yNumVal := evalPoly(powers, yNum[:])
	yDenVal := evalPoly(powers, yDen[:])

	x = fp.Mul(xNumVal, fp.Inv0(xDenVal))
	y = fp.Mul(fp.Mul(yNumVal, fp.Inv0(yDenVal)), yPrime)
	return x, y
}

// powersOf returns [1, x, x^2, ..., x^15], enough monomials to evaluate the
// highest-degree polynomial (y_num, degree 15) in the isogeny map.
func powersOf(x fp.Elt) [16]fp.Elt {
	var p [16]fp.Elt
	p[0] = fp.One()
	for i := 1; i < len(p); i++ {
		p[i] = fp.Mul(p[i-1], x)
	}
	return p
}

// evalPoly computes sum_i coeffs[i] * powers[i], the shared structure
// behind x_num/x_den/y_num/y_den (iso_map_helper in the Rust original).
func evalPoly(powers [16]fp.Elt, coeffs []fp.Elt) fp.Elt {
	acc := fp.Zero()
	for i, c := range coeffs {
		acc = fp.Add(acc, fp.Mul(powers[i], c))
	}
	return acc
}
