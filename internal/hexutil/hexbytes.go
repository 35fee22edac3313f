// Package hexutil provides JSON-friendly hex byte slices, adapted from
// the teacher's types/hex2bytes.go: HexBytes marshals to "0x"-prefixed
// hex and unmarshals either hex or base64; cmd/h2c uses it to print curve
// coordinates.
package hexutil

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// ToBytes decodes a hex string, tolerating an optional "0x" prefix.
func ToBytes(hexStr string) ([]byte, error) {
	if strings.HasPrefix(hexStr, "0x") {
		hexStr = hexStr[2:]
	}
	return hex.DecodeString(hexStr)
}

// HexBytes is a byte slice that round-trips through JSON as "0x"-prefixed
// hex, falling back to base64 on unmarshal for callers feeding in
// non-hex-formatted fixtures.
type HexBytes []byte

// String renders the bytes as bare (unprefixed) hex.
func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

// MarshalJSON renders the bytes as a "0x"-prefixed JSON string.
func (hb HexBytes) MarshalJSON() ([]byte, error) {
	s := "0x" + hex.EncodeToString(hb)
	out := make([]byte, len(s)+2)
	out[0] = '"'
	copy(out[1:], s)
	out[len(out)-1] = '"'
	return out, nil
}

// UnmarshalJSON accepts either a "0x"-prefixed (or bare) hex string or a
// base64 string.
func (hb *HexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("hexutil: invalid quoted string: %s", data)
	}

	val := string(data[1 : len(data)-1])
	if isHex(val) {
		str := strings.TrimPrefix(val, "0x")
		bz, err := hex.DecodeString(str)
		if err != nil {
			return fmt.Errorf("hexutil: %w", err)
		}
		*hb = bz
		return nil
	}

	bz, err := base64.StdEncoding.DecodeString(val)
	if err != nil {
		return fmt.Errorf("hexutil: %w", err)
	}
	*hb = bz
	return nil
}

func isHex(s string) bool {
	v := s
	if len(v)%2 != 0 {
		return false
	}
	if strings.HasPrefix(v, "0x") {
		v = v[2:]
	}
	if v == "" {
		return false
	}
	for _, b := range []byte(v) {
		if !(b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F') {
			return false
		}
	}
	return true
}
