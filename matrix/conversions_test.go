package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matfan/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumRoundTrip(t *testing.T) {
	m := randFloats(t, 3, 5, 42)

	d, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 5, c)

	back, err := matrix.FromGonum(d)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))
}

func TestToGonumRejectsEmpty(t *testing.T) {
	_, err := matrix.ToGonum(mustNew(t, 0, 3, []float64{}))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonumTransposeView(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	m, err := matrix.FromGonum(d.T())
	require.NoError(t, err)
	require.Equal(t, "{1 4}, {2 5}, {3 6}", m.String())
}

// TestMultiplyAgreesWithGonum cross-checks the kernel against gonum's BLAS-backed product.
func TestMultiplyAgreesWithGonum(t *testing.T) {
	for _, shape := range [][3]int{{1, 1, 1}, {2, 3, 2}, {7, 5, 9}, {16, 16, 16}} {
		a := randFloats(t, shape[0], shape[1], int64(shape[0]))
		b := randFloats(t, shape[1], shape[2], int64(shape[2]+100))

		got, err := matrix.Multiply(a, b)
		require.NoError(t, err)

		ga, err := matrix.ToGonum(a)
		require.NoError(t, err)
		gb, err := matrix.ToGonum(b)
		require.NoError(t, err)
		var want mat.Dense
		want.Mul(ga, gb)

		require.InDeltaSlice(t, want.RawMatrix().Data, got.Values(), 1e-12, "shape %v", shape)
	}
}
