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

// Package hwy detects the SIMD capability of the running CPU and provides
// the small set of 4-lane float32 operations used by the bounding box
// kernels.
//
// The dispatch level is determined once at init time. Setting the
// HWY_NO_SIMD environment variable to any non-empty value forces scalar
// mode, which is useful for testing the fallback paths on SIMD hardware.
package hwy

import "os"

// DispatchLevel identifies the instruction set selected for the current process.
type DispatchLevel int

const (
	// DispatchScalar uses pure Go scalar code.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 is the amd64 baseline (128-bit).
	DispatchSSE2
	// DispatchAVX2 enables 256-bit AVX2 (and VEX-encoded 128-bit ops).
	DispatchAVX2
	// DispatchAVX512 enables 512-bit AVX-512.
	DispatchAVX512
	// DispatchNEON is the arm64 Advanced SIMD baseline (128-bit).
	DispatchNEON
)

// String returns the lower-case name of the level.
func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level detected at init time.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the native vector width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human readable name for the current dispatch target.
func CurrentName() string {
	return currentName
}

// HasSIMD reports whether a vector instruction set was selected.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv reports whether HWY_NO_SIMD is set.
func NoSimdEnv() bool {
	return os.Getenv("HWY_NO_SIMD") != ""
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
