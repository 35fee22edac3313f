package expand

import "golang.org/x/crypto/sha3"

// XOF implements expand_message_xof (spec.md section 4.2 / draft section
// 5.4.2) against an extendable-output function. newXOF must return a
// fresh sha3.ShakeHash each call; this repo wires it to sha3.NewShake128
// for the BLS12381G1_XOF:SHAKE-128_SSWU_* suites (golang.org/x/crypto/sha3,
// the same package the wider corpus pulls in for XOF-family hashing).
func XOF(newXOF func() sha3.ShakeHash, msg, dst []byte, lenInBytes int) ([]byte, error) {
	if len(dst) > 255 {
		return nil, ErrDSTTooLong
	}
	if lenInBytes > 65535 {
		return nil, ErrLenTooLarge
	}

	dstPrime := append(append([]byte{}, dst...), i2osp1(len(dst)))
	lenBytes := i2osp2(lenInBytes)

	x := newXOF()
	x.Write(msg)
	x.Write(lenBytes[:])
	x.Write(dstPrime)

	out := make([]byte, lenInBytes)
	if _, err := x.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}
