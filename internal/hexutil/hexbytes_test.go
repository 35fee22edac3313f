package hexutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalJSONProducesHexPrefixed(t *testing.T) {
	hb := HexBytes{0xde, 0xad, 0xbe, 0xef}
	b, err := json.Marshal(hb)
	require.NoError(t, err)
	require.Equal(t, `"0xdeadbeef"`, string(b))
}

func TestUnmarshalJSONHexRoundTrip(t *testing.T) {
	var hb HexBytes
	require.NoError(t, json.Unmarshal([]byte(`"0xdeadbeef"`), &hb))
	require.Equal(t, HexBytes{0xde, 0xad, 0xbe, 0xef}, hb)
}

func TestUnmarshalJSONBase64Fallback(t *testing.T) {
	var hb HexBytes
	require.NoError(t, json.Unmarshal([]byte(`"3q2+7w=="`), &hb))
	require.Equal(t, HexBytes{0xde, 0xad, 0xbe, 0xef}, hb)
}

func TestToBytesStripsPrefix(t *testing.T) {
	b, err := ToBytes("0x1234")
	require.NoError(t, err)
	require.Equal(t, []byte{0x12, 0x34}, b)
}
