// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// This file provides a portable 128-bit float32 vector. It mirrors the
// shape of archsimd.Float32x4 so kernels can be written once against lane
// operations and then specialized. It is a fixed-size value and never
// allocates.
//
// All operations are strictly lane-wise. No operation mixes lanes, so a
// lane that starts at zero in every operand stays zero.

// Float32x4Lanes is the number of lanes in a Float32x4.
const Float32x4Lanes = 4

// Float32x4 holds four float32 lanes.
type Float32x4 [Float32x4Lanes]float32

// LoadFloat32x4 loads all four lanes from an array.
func LoadFloat32x4(src *[4]float32) Float32x4 {
	return Float32x4(*src)
}

// Load3Float32x4 loads x, y, z into lanes 0..2 and zeroes lane 3.
func Load3Float32x4(src [3]float32) Float32x4 {
	return Float32x4{src[0], src[1], src[2], 0}
}

// BroadcastFloat32x4 returns a vector with all lanes set to value.
func BroadcastFloat32x4(value float32) Float32x4 {
	return Float32x4{value, value, value, value}
}

// ZeroFloat32x4 returns a vector with all lanes zero.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// Add performs element-wise addition.
func (v Float32x4) Add(o Float32x4) Float32x4 {
	return Float32x4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(o Float32x4) Float32x4 {
	return Float32x4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(o Float32x4) Float32x4 {
	return Float32x4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

// Min returns the element-wise minimum.
//
// Like MINPS, the second operand is returned when the lanes compare
// unordered (either is NaN) or equal.
func (v Float32x4) Min(o Float32x4) Float32x4 {
	return Float32x4{min4(v[0], o[0]), min4(v[1], o[1]), min4(v[2], o[2]), min4(v[3], o[3])}
}

// Max returns the element-wise maximum with the same NaN rule as Min.
func (v Float32x4) Max(o Float32x4) Float32x4 {
	return Float32x4{max4(v[0], o[0]), max4(v[1], o[1]), max4(v[2], o[2]), max4(v[3], o[3])}
}

// GetElem returns the value of lane i. It panics if i >= 4.
func (v Float32x4) GetElem(i uint8) float32 {
	return v[i]
}

// Store writes all four lanes to dst.
func (v Float32x4) Store(dst *[4]float32) {
	*dst = v
}

// Store3 returns lanes 0..2, discarding lane 3.
func (v Float32x4) Store3() [3]float32 {
	return [3]float32{v[0], v[1], v[2]}
}

func min4(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max4(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
