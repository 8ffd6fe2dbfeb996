package main

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// floatsValue is a pflag.Value holding a fixed number of comma-separated
// float32 components.
type floatsValue struct {
	dst  []float32
	set  bool
	kind string
}

var _ pflag.Value = (*floatsValue)(nil)

func newVec3Value(dst *mgl32.Vec3) *floatsValue {
	return &floatsValue{dst: dst[:], kind: "x,y,z"}
}

// newMat3Value parses nine column-major components.
func newMat3Value(dst *mgl32.Mat3) *floatsValue {
	return &floatsValue{dst: dst[:], kind: "m00,m10,m20,m01,...,m22"}
}

func (f *floatsValue) String() string {
	return strings.Join(lo.Map(f.dst, func(v float32, _ int) string {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}), ",")
}

func (f *floatsValue) Set(s string) error {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	if len(parts) != len(f.dst) {
		return errors.Errorf("want %d comma-separated values, got %d", len(f.dst), len(parts))
	}
	values := make([]float32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return errors.Wrapf(err, "component %d", i)
		}
		values[i] = float32(v)
	}
	copy(f.dst, values)
	f.set = true
	return nil
}

func (f *floatsValue) Type() string {
	return f.kind
}
