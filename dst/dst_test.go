package dst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlainSuiteID(t *testing.T) {
	d, err := New("BLS12381G1_XMD:SHA-256_SSWU_RO_")
	require.NoError(t, err)
	require.Equal(t, "BLS12381G1_XMD:SHA-256_SSWU_RO_", d.String())
}

func TestNewWithAppAndVersionTag(t *testing.T) {
	d, err := New("BLS12381G1_XMD:SHA-256_SSWU_RO_", WithAppTag("MYPROTO"), WithVersionTag("v1"))
	require.NoError(t, err)
	require.Equal(t, "BLS12381G1_XMD:SHA-256_SSWU_RO_MYPROTO-v1", d.String())
}

func TestNewRejectsOversizeTag(t *testing.T) {
	_, err := New(strings.Repeat("a", 256))
	require.ErrorIs(t, err, ErrTooLong)
}

func TestNewAcceptsExactly255Bytes(t *testing.T) {
	_, err := New(strings.Repeat("a", 255))
	require.NoError(t, err)
}

func TestBytesReturnsACopy(t *testing.T) {
	d, err := New("some-dst")
	require.NoError(t, err)
	b := d.Bytes()
	b[0] = 'X'
	require.Equal(t, "some-dst", d.String())
}
