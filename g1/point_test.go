package g1

import (
	"math/big"
	"testing"

	"github.com/kysee/bls-h2c/fp"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	require.True(t, Generator.IsOnCurve())
}

func TestIdentityIsAdditiveUnit(t *testing.T) {
	p := Generator
	require.True(t, Add(p, Identity).Equal(p))
	require.True(t, Add(Identity, p).Equal(p))
}

func TestAddNegationIsIdentity(t *testing.T) {
	p := Generator
	neg := Point{X: p.X, Y: fp.Neg(p.Y)}
	require.True(t, Add(p, neg).Equal(Identity))
}

func TestScalarMulByZeroIsIdentity(t *testing.T) {
	require.True(t, ScalarMul(Generator, big.NewInt(0)).Equal(Identity))
}

func TestScalarMulByOneIsSame(t *testing.T) {
	require.True(t, ScalarMul(Generator, big.NewInt(1)).Equal(Generator))
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	sum := Identity
	for i := 0; i < 5; i++ {
		sum = Add(sum, Generator)
	}
	require.True(t, ScalarMul(Generator, big.NewInt(5)).Equal(sum))
}

func TestDoublingMatchesAddingToSelf(t *testing.T) {
	require.True(t, Add(Generator, Generator).Equal(ScalarMul(Generator, big.NewInt(2))))
}

func TestFromXYRejectsOffCurvePoint(t *testing.T) {
	_, ok := FromXY(fp.FromInt64(1), fp.FromInt64(1))
	require.False(t, ok)
}
