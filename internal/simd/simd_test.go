package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore(t *testing.T) {
	v := Load([]float32{1, 2, 3, 4, 5})
	out := make([]float32, 6)
	Store(v, out)
	assert.Equal(t, []float32{1, 2, 3, 4, 0, 0}, out)

	short := Load([]float32{7})
	assert.Equal(t, float32(7), short.Lane(0))
	assert.Equal(t, float32(0), short.Lane(3))
}

func TestArithmetic(t *testing.T) {
	a := Load([]float32{1, 2, 3, 4})
	b := Set(2)

	sum := Add(a, b)
	prod := Mul(a, b)
	for i := range Lanes {
		assert.Equal(t, a.Lane(i)+2, sum.Lane(i))
		assert.Equal(t, a.Lane(i)*2, prod.Lane(i))
	}
	assert.Equal(t, Zero(), Mul(a, Zero()))
}

func TestRound(t *testing.T) {
	v := Round(Load([]float32{0.5, 1.49, 2.5, 254.6}))
	assert.Equal(t, []float32{1, 1, 3, 255}, []float32{v.Lane(0), v.Lane(1), v.Lane(2), v.Lane(3)})
}

func TestMulAccMatchesScalarDotProducts(t *testing.T) {
	a := []float32{
		.131, .168, .189, .131,
		.543, .686, .769, .543,
		.272, .349, .393, .272,
	}
	b := []float32{
		10, 10, 10, 200,
		20, 20, 20, 100,
		30, 30, 30, 50,
	}

	var got [Lanes]float32
	MulAcc(got[:], a, b)

	for i := range Lanes {
		want := float32(a[i] * b[i])
		want = float32(want + float32(a[4+i]*b[4+i]))
		want = float32(want + float32(a[8+i]*b[8+i]))
		require.Equal(t, want, got[i], "lane %d", i)
	}
}

func TestMulAccIgnoresPartialBlock(t *testing.T) {
	var got [Lanes]float32
	MulAcc(got[:], []float32{1, 1, 1, 1, 9, 9}, []float32{2, 3, 4, 5, 9, 9})
	assert.Equal(t, [Lanes]float32{2, 3, 4, 5}, got)
}

func TestName(t *testing.T) {
	assert.NotEmpty(t, Name())

	t.Setenv("BMP_NO_SIMD", "1")
	assert.True(t, NoSimdEnv())
	assert.Equal(t, "scalar", detect())

	t.Setenv("BMP_NO_SIMD", "false")
	assert.False(t, NoSimdEnv())
}
