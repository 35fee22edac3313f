package hashfield

import (
	"crypto/sha256"
	"testing"

	"github.com/kysee/bls-h2c/fp"
	"github.com/kysee/bls-h2c/internal/expand"
	"github.com/stretchr/testify/require"
)

func xmdExpand(msg, dst []byte, lenInBytes int) ([]byte, error) {
	return expand.XMD(sha256.New, msg, dst, lenInBytes)
}

func TestNUProducesNonZeroElement(t *testing.T) {
	u, err := NU(xmdExpand, []byte("abc"), []byte("QUUX-V01-CS02-with-expander-SHA256-128"))
	require.NoError(t, err)
	require.False(t, u.IsZero())
}

func TestNUIsDeterministic(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	a, err := NU(xmdExpand, []byte("abc"), dst)
	require.NoError(t, err)
	b, err := NU(xmdExpand, []byte("abc"), dst)
	require.NoError(t, err)
	require.True(t, fp.Equal(a, b))
}

func TestROProducesTwoDistinctElements(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	u0, u1, err := RO(xmdExpand, []byte("abc"), dst)
	require.NoError(t, err)
	require.False(t, fp.Equal(u0, u1))
}

func TestRODiffersByMessage(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	u0a, u1a, err := RO(xmdExpand, []byte("abc"), dst)
	require.NoError(t, err)
	u0b, u1b, err := RO(xmdExpand, []byte("abcdef0123456789"), dst)
	require.NoError(t, err)
	require.False(t, fp.Equal(u0a, u0b))
	require.False(t, fp.Equal(u1a, u1b))
}

func TestNUAndROFirstElementDiffer(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	nu, err := NU(xmdExpand, []byte("abc"), dst)
	require.NoError(t, err)
	ro0, _, err := RO(xmdExpand, []byte("abc"), dst)
	require.NoError(t, err)
	require.False(t, fp.Equal(nu, ro0))
}
