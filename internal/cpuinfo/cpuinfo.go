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

// Package cpuinfo reports the CPU features detected by Go together with
// the dispatch decision made by hwy and the aabb transform it selects.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-aabb/hwy"
)

// Feature is a single named CPU capability flag.
type Feature struct {
	Name   string
	Note   string
	Enable bool
}

// Features returns the flags relevant to the current GOARCH. Other
// architectures return nil.
func Features() []Feature {
	switch runtime.GOARCH {
	case "arm64":
		return []Feature{
			{"HasASIMD", "NEON baseline", cpu.ARM64.HasASIMD},
			{"HasFP", "Floating point", cpu.ARM64.HasFP},
			{"HasFPHP", "FP16 scalar, ARMv8.2-A", cpu.ARM64.HasFPHP},
			{"HasASIMDHP", "FP16 NEON, ARMv8.2-A", cpu.ARM64.HasASIMDHP},
			{"HasASIMDFHM", "FP16 FMA, ARMv8.4-A", cpu.ARM64.HasASIMDFHM},
			{"HasSVE", "Scalable Vector Extension", cpu.ARM64.HasSVE},
			{"HasSVE2", "SVE2", cpu.ARM64.HasSVE2},
		}
	case "amd64":
		return []Feature{
			{"HasSSE2", "amd64 baseline", cpu.X86.HasSSE2},
			{"HasSSE41", "", cpu.X86.HasSSE41},
			{"HasSSE42", "", cpu.X86.HasSSE42},
			{"HasAVX", "", cpu.X86.HasAVX},
			{"HasAVX2", "128-bit broadcasts", cpu.X86.HasAVX2},
			{"HasFMA", "", cpu.X86.HasFMA},
			{"HasAVX512F", "", cpu.X86.HasAVX512F},
			{"HasAVX512VL", "", cpu.X86.HasAVX512VL},
		}
	}
	return nil
}

// Report writes a human readable summary to w.
func Report(w io.Writer, transformName string) error {
	ew := &errWriter{w: w}
	ew.printf("GOOS: %s\n", runtime.GOOS)
	ew.printf("GOARCH: %s\n", runtime.GOARCH)
	ew.printf("NumCPU: %d\n", runtime.NumCPU())
	ew.printf("\n")

	ew.printf("Highway dispatch level: %s\n", hwy.CurrentLevel())
	ew.printf("Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	ew.printf("Highway dispatch name: %s\n", hwy.CurrentName())
	ew.printf("HWY_NO_SIMD set: %v\n", hwy.NoSimdEnv())
	ew.printf("AABB transform: %s\n", transformName)

	features := Features()
	if len(features) == 0 {
		return ew.err
	}
	ew.printf("\n=== golang.org/x/sys/cpu (%s) ===\n", runtime.GOARCH)
	for _, f := range features {
		if f.Note != "" {
			ew.printf("  %-12s %v (%s)\n", f.Name+":", f.Enable, f.Note)
		} else {
			ew.printf("  %-12s %v\n", f.Name+":", f.Enable)
		}
	}
	return ew.err
}

// errWriter keeps the first write error so Report can print unconditionally.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
