package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matfan/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSubHadamard(t *testing.T) {
	a := mustNew(t, 2, 2, []int{1, 2, 3, 4})
	b := mustNew(t, 2, 2, []int{10, 20, 30, 40})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, "{11 22}, {33 44}", sum.String())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, "{9 18}, {27 36}", diff.String())

	had, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	require.Equal(t, "{10 40}, {90 160}", had.String())

	// operands untouched
	require.Equal(t, []int{1, 2, 3, 4}, a.Values())
}

func TestElementwiseShapeErrors(t *testing.T) {
	a := mustNew(t, 2, 3, seq[int](6))
	b := mustNew(t, 3, 2, seq[int](6))

	for name, op := range map[string]func(x, y *matrix.Matrix[int]) (*matrix.Matrix[int], error){
		"Add":      matrix.Add[int],
		"Sub":      matrix.Sub[int],
		"Hadamard": matrix.Hadamard[int],
	} {
		c, err := op(a, b)
		require.Nil(t, c, name)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
		require.Contains(t, err.Error(), name, name)

		_, err = op(nil, b)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, name)
	}
}

func TestScale(t *testing.T) {
	m := mustNew(t, 1, 3, []float64{1, -2, 0.5})

	s, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{2, -4, 1}, s.Values())

	z, err := matrix.Scale(m, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, z.Values())

	_, err = matrix.Scale[float64](nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	m := mustNew(t, 2, 3, seq[int](6))

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, "{1 4}, {2 5}, {3 6}", tr.String())

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))

	_, err = matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeProductIdentity checks (A×B)ᵀ = Bᵀ×Aᵀ on integers, where it is exact.
func TestTransposeProductIdentity(t *testing.T) {
	a := mustNew(t, 3, 4, seq[int64](12))
	b := mustNew(t, 4, 2, seq[int64](8))

	ab, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	lhs, err := matrix.Transpose(ab)
	require.NoError(t, err)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	rhs, err := matrix.Multiply(bt, at)
	require.NoError(t, err)

	require.True(t, matrix.Equal(lhs, rhs))
}
