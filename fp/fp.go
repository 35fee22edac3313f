// Package fp implements constant-time-disciplined arithmetic over the
// BLS12-381 base field F_p, the field primitive collaborator described in
// spec.md section 6. The representation is a thin wrapper over math/big,
// the same choice the original hash-to-curve reference code and
// chris-wood's oprf-poc ecgroup package make for their field elements.
package fp

import "math/big"

// Modulus is the BLS12-381 base field prime p.
var Modulus = mustParse("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab")

// Elt is an element of F_p, always kept canonicalized to [0, p).
type Elt struct {
	v *big.Int
}

func mustParse(hex string) *big.Int {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("fp: invalid constant")
	}
	return n
}

// New builds a canonical field element from any integer, reducing mod p.
func New(v *big.Int) Elt {
	r := new(big.Int).Mod(v, Modulus)
	return Elt{v: r}
}

// FromInt64 builds a canonical field element from a small integer.
func FromInt64(v int64) Elt {
	return New(big.NewInt(v))
}

// Zero is the additive identity.
func Zero() Elt { return Elt{v: big.NewInt(0)} }

// One is the multiplicative identity.
func One() Elt { return Elt{v: big.NewInt(1)} }

// SetBytes interprets a big-endian byte string as an element, reducing mod p.
// This is used only by hash-to-field's wide-integer path (see
// internal/hashfield), never on a value whose bit-length structure must be
// hidden from timing.
func SetBytes(b []byte) Elt {
	return New(new(big.Int).SetBytes(b))
}

// Bytes renders the element as a 48-byte big-endian string (BLS12-381's
// field elements fit in 381 bits = 48 bytes).
func (a Elt) Bytes() []byte {
	out := make([]byte, 48)
	a.v.FillBytes(out)
	return out
}

// BigInt returns the canonical integer representative in [0, p).
func (a Elt) BigInt() *big.Int {
	return new(big.Int).Set(a.v)
}

// IsZero reports whether a is the additive identity.
func (a Elt) IsZero() bool {
	return a.v.Sign() == 0
}

// Add returns a+b mod p.
func Add(a, b Elt) Elt {
	return New(new(big.Int).Add(a.v, b.v))
}

// Sub returns a-b mod p.
func Sub(a, b Elt) Elt {
	return New(new(big.Int).Sub(a.v, b.v))
}

// Neg returns -a mod p.
func Neg(a Elt) Elt {
	return New(new(big.Int).Neg(a.v))
}

// Mul returns a*b mod p.
func Mul(a, b Elt) Elt {
	return New(new(big.Int).Mul(a.v, b.v))
}

// Sqr returns a*a mod p.
func Sqr(a Elt) Elt {
	return Mul(a, a)
}

// Pow returns a^e mod p for a public exponent e. Per spec.md section 5, the
// exponents used throughout this module (sqrt and is_square exponents) are
// compile-time constants, not secrets, so an exponent-dependent big.Int.Exp
// does not violate the module's constant-time discipline.
func Pow(a Elt, e *big.Int) Elt {
	return New(new(big.Int).Exp(a.v, e, Modulus))
}

// Inv0 returns a^-1 mod p, with the convention Inv0(0) = 0 (spec.md section
// 3, "inv0"). Computed via Fermat's little theorem (a^(p-2)) so that the
// zero case is folded into the same exponentiation rather than a branch on
// a == 0; a is masked to 1 first and the true result masked back to 0, both
// selections going through CMov rather than an if/else on a's value.
func Inv0(a Elt) Elt {
	isZero := a.IsZero()
	base := CMov(a, One(), isZero)
	pMinus2 := new(big.Int).Sub(Modulus, big.NewInt(2))
	inv := Pow(base, pMinus2)
	return CMov(inv, Zero(), isZero)
}

// CMov returns b if cond is true, a otherwise. Named after the draft's CMOV
// primitive (spec.md section 4.4/9): callers holding a secret-dependent
// cond must go through this instead of a native if/else so that both
// branches are always materialized.
func CMov(a, b Elt, cond bool) Elt {
	mask := big.NewInt(0)
	if cond {
		mask = big.NewInt(1)
	}
	notMask := new(big.Int).Sub(big.NewInt(1), mask)
	t1 := new(big.Int).Mul(notMask, a.v)
	t2 := new(big.Int).Mul(mask, b.v)
	return New(new(big.Int).Add(t1, t2))
}

// Cmp performs the canonical lexicographic compare required by spec.md
// section 3 ("Curve point... lexicographic compare"); both operands are
// assumed already canonicalized to [0, p).
func Cmp(a, b Elt) int {
	return a.v.Cmp(b.v)
}

// Equal reports whether a and b are the same field element.
func Equal(a, b Elt) bool {
	return Cmp(a, b) == 0
}
