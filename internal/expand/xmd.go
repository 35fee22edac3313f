// Package expand implements the two message-expansion functions of
// spec.md section 4.1 and 4.2: expand_message_xmd (fixed-output hash) and
// expand_message_xof (extendable-output function). Both take a DST that
// has already been validated by the dst package and produce exactly
// lenInBytes pseudorandom bytes bound to (msg, dst).
package expand

import (
	"errors"
	"fmt"
	"hash"
)

// ErrDSTTooLong is returned when len(dst) > 255, per spec.md section 4.1.
var ErrDSTTooLong = errors.New("expand: DST exceeds 255 bytes")

// ErrLenTooLarge is returned when the requested output exceeds the
// draft's len_in_bytes <= 65535 bound, or the derived ell exceeds 255.
var ErrLenTooLarge = errors.New("expand: requested length too large")

// ErrBadHashSize is PrimitiveContract territory (spec.md section 7): the
// supplied hash.Hash did not produce the output size it advertises.
var ErrBadHashSize = errors.New("expand: hash primitive returned an unexpected output size")

func i2osp1(x int) byte { return byte(x) }

func i2osp2(x int) [2]byte {
	return [2]byte{byte(x >> 8), byte(x)}
}

// XMD implements expand_message_xmd (spec.md section 4.1 / draft section
// 5.4.1). newHash must return a fresh, reset hash.Hash each call; bInBytes
// and rInBytes are that hash's digest and block sizes (32/64 for SHA-256).
func XMD(newHash func() hash.Hash, msg, dst []byte, lenInBytes int) ([]byte, error) {
	if len(dst) > 255 {
		return nil, ErrDSTTooLong
	}
	if lenInBytes > 65535 {
		return nil, ErrLenTooLarge
	}

	h := newHash()
	bInBytes := h.Size()
	rInBytes := h.BlockSize()

	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 {
		return nil, ErrLenTooLarge
	}

	dstPrime := append(append([]byte{}, dst...), i2osp1(len(dst)))

	zPad := make([]byte, rInBytes)
	lenBytes := i2osp2(lenInBytes)

	h.Reset()
	h.Write(zPad)
	h.Write(msg)
	h.Write(lenBytes[:])
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)
	if len(b0) != bInBytes {
		return nil, fmt.Errorf("%w: want %d got %d", ErrBadHashSize, bInBytes, len(b0))
	}

	h = newHash()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bi := h.Sum(nil)

	out := make([]byte, 0, ell*bInBytes)
	out = append(out, bi...)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := range xored {
			xored[j] = b0[j] ^ bi[j]
		}
		h = newHash()
		h.Write(xored)
		h.Write([]byte{i2osp1(i)})
		h.Write(dstPrime)
		bi = h.Sum(nil)
		out = append(out, bi...)
	}

	return out[:lenInBytes], nil
}
