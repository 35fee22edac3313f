// Package hashfield implements hash_to_field (spec.md section 4.3): the
// reduction of expand_message output into one (NU) or two (RO) field
// elements. m=1 (a single base field element per F_p value) and L=64
// throughout, since this repo only targets BLS12-381's G1 curve.
package hashfield

import (
	"github.com/kysee/bls-h2c/fp"
)

// L is the number of bytes hashed per field element: ceil((381+128)/8).
const L = 64

// ExpandFunc produces lenInBytes pseudorandom bytes bound to (msg, dst);
// it is satisfied by a closure over either expand.XMD or expand.XOF so
// that this package stays agnostic to which expansion mode is in play.
type ExpandFunc func(msg, dst []byte, lenInBytes int) ([]byte, error)

// NU reduces a 64-byte expansion into the single field element the
// Non-Uniform operation mode consumes.
func NU(expand ExpandFunc, msg, dst []byte) (fp.Elt, error) {
	raw, err := expand(msg, dst, L)
	if err != nil {
		return fp.Elt{}, err
	}
	return fp.SetBytes(raw), nil
}

// RO reduces a 128-byte expansion into the two field elements the
// Random-Oracle operation mode consumes, in order.
func RO(expand ExpandFunc, msg, dst []byte) (u0, u1 fp.Elt, err error) {
	raw, err := expand(msg, dst, 2*L)
	if err != nil {
		return fp.Elt{}, fp.Elt{}, err
	}
	return fp.SetBytes(raw[:L]), fp.SetBytes(raw[L:]), nil
}
