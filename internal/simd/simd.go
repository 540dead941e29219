// Package simd provides the 4-lane float32 operations behind the batched
// color transforms.
//
// Every operation rounds each lane to float32 on its own, so a packed
// multiply-accumulate gives bit-for-bit the result of four scalar dot
// products evaluated left to right. Products are never fused with the
// following addition.
//
// Example:
//
//	var sums [simd.Lanes]float32
//	simd.MulAcc(sums[:], coefficients[:], samples[:])
package simd

import "math"

// Lanes is the number of float32 lanes in a Vec.
const Lanes = 4

// Vec holds Lanes float32 values.
type Vec struct {
	data [Lanes]float32
}

// Load creates a vector from the first Lanes elements of src.
// Missing elements are zero.
func Load(src []float32) Vec {
	var v Vec
	copy(v.data[:], src)
	return v
}

// Store writes the vector lanes to dst, up to len(dst).
func Store(v Vec, dst []float32) {
	copy(dst, v.data[:])
}

// Set creates a vector with all lanes set to value.
func Set(value float32) Vec {
	return Vec{data: [Lanes]float32{value, value, value, value}}
}

// Zero returns a vector with all lanes set to zero.
func Zero() Vec {
	return Vec{}
}

// Lane returns lane i.
func (v Vec) Lane(i int) float32 {
	return v.data[i]
}

// Mul performs element-wise multiplication.
func Mul(a, b Vec) Vec {
	var r Vec
	for i := range Lanes {
		r.data[i] = float32(a.data[i] * b.data[i])
	}
	return r
}

// Add performs element-wise addition.
func Add(a, b Vec) Vec {
	var r Vec
	for i := range Lanes {
		r.data[i] = float32(a.data[i] + b.data[i])
	}
	return r
}

// Round rounds each lane to the nearest integer, halves away from zero.
func Round(v Vec) Vec {
	var r Vec
	for i := range Lanes {
		r.data[i] = float32(math.Round(float64(v.data[i])))
	}
	return r
}

// MulAcc is the packed multiply-accumulate:
//
//	dst[i] = a[i]*b[i] + a[4+i]*b[4+i] + ... for i in [0, Lanes)
//
// a and b are consumed in blocks of Lanes; a trailing partial block is
// ignored. Blocks are accumulated in order.
func MulAcc(dst, a, b []float32) {
	n := min(len(a), len(b))
	acc := Zero()
	for k := 0; k+Lanes <= n; k += Lanes {
		acc = Add(acc, Mul(Load(a[k:]), Load(b[k:])))
	}
	Store(acc, dst)
}
