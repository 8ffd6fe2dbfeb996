package aabb

import (
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-aabb/hwy"
)

// realizations lists every TransformFunc that must honour the contract.
var realizations = []struct {
	name string
	fn   TransformFunc
}{
	{"scalar", TransformScalar},
	{"vector", TransformVector},
	{"portable", transformPortable},
	{"dispatch", func(box AABB, xf Affine) AABB { return Transform(box, xf) }},
}

// tolerance is the allowed absolute error on axis k: a relative 1e-5 of
// the largest magnitude that feeds that axis. Ten-odd float32 roundings
// stay well inside it, and it absorbs FMA contraction on targets where
// the compiler fuses multiply-add.
func tolerance(box AABB, xf Affine, k int) float64 {
	mag := 1 + math.Abs(float64(xf.Translation[k]))
	for i := 0; i < 3; i++ {
		extent := math.Max(math.Abs(float64(box.Min[i])), math.Abs(float64(box.Max[i])))
		mag += math.Abs(float64(xf.Linear.At(k, i))) * extent
	}
	return 1e-5 * mag
}

func requireClose(t *testing.T, want, got AABB, box AABB, xf Affine, msgAndArgs ...any) {
	t.Helper()
	for k := 0; k < 3; k++ {
		tol := tolerance(box, xf, k)
		require.InDelta(t, want.Min[k], got.Min[k], tol, msgAndArgs...)
		require.InDelta(t, want.Max[k], got.Max[k], tol, msgAndArgs...)
	}
}

// cornerBounds is the brute-force reference: transform all 8 corners and
// bound them.
func cornerBounds(box AABB, xf Affine) AABB {
	corners := box.Corners()
	for i := range corners {
		corners[i] = xf.Apply(corners[i])
	}
	return FromPoints(corners[:]...)
}

func rotate90Z() Affine {
	// Columns are the images of +X and +Y under a quarter turn.
	return FromCols(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{})
}

func TestTransformExamples(t *testing.T) {
	tests := []struct {
		name string
		box  AABB
		xf   Affine
		want AABB
	}{
		{
			name: "identity",
			box:  New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 3, 4}),
			xf:   Identity(),
			want: New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 3, 4}),
		},
		{
			name: "identity dyadic",
			box:  New(mgl32.Vec3{-1.5, 0, 2.25}, mgl32.Vec3{3.5, 1, 8}),
			xf:   Identity(),
			want: New(mgl32.Vec3{-1.5, 0, 2.25}, mgl32.Vec3{3.5, 1, 8}),
		},
		{
			name: "pure translation",
			box:  New(mgl32.Vec3{-1.5, 0, 2.25}, mgl32.Vec3{3.5, 1, 8}),
			xf:   Translate(mgl32.Vec3{10, -4.5, 0.125}),
			want: New(mgl32.Vec3{8.5, -4.5, 2.375}, mgl32.Vec3{13.5, -3.5, 8.125}),
		},
		{
			name: "symmetric cube rotated 90 about z",
			box:  New(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}),
			xf:   rotate90Z(),
			want: New(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}),
		},
		{
			name: "non-uniform scale",
			box:  New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 4, 6}),
			xf:   Scale(mgl32.Vec3{2, 1, 0.5}),
			want: New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{4, 4, 3}),
		},
		{
			name: "off-center box rotated 90 about z",
			box:  New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 5, 4}),
			xf:   rotate90Z(),
			want: New(mgl32.Vec3{-5, 1, 3}, mgl32.Vec3{-2, 2, 4}),
		},
		{
			name: "negative scale flips",
			box:  New(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 3, 4}),
			xf:   Scale(mgl32.Vec3{-1, 1, -2}),
			want: New(mgl32.Vec3{-2, 1, -8}, mgl32.Vec3{-1, 3, -2}),
		},
		{
			name: "shear x by y",
			box:  New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}),
			xf:   FromCols(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 0}),
			want: New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 1, 1}),
		},
	}

	for _, impl := range realizations {
		for _, tt := range tests {
			t.Run(impl.name+"/"+tt.name, func(t *testing.T) {
				got := impl.fn(tt.box, tt.xf)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("transform mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestTransformDegeneratePoint(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		p := randVec3(rng, 100)
		box := FromPoint(p)
		xf := randAffine(rng)
		want := xf.Apply(p)

		for _, impl := range realizations {
			got := impl.fn(box, xf)
			require.Equal(t, got.Min, got.Max, "%s: point box must stay a point", impl.name)
			requireClose(t, FromPoint(want), got, box, xf, impl.name)
		}
	}
}

func TestTransformPreservesInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		box := randBox(rng)
		xf := randAffine(rng)
		for _, impl := range realizations {
			got := impl.fn(box, xf)
			require.True(t, got.IsValid(), "%s: %v -> %v", impl.name, box, got)
		}
	}
}

func TestTransformScalarVectorEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 5000; i++ {
		box := randBox(rng)
		xf := randAffine(rng)

		scalar := TransformScalar(box, xf)
		vector := TransformVector(box, xf)
		portable := transformPortable(box, xf)

		requireClose(t, scalar, vector, box, xf, "sample %d: box=%v xf=%v", i, box, xf)
		requireClose(t, scalar, portable, box, xf, "sample %d: box=%v xf=%v", i, box, xf)
	}
}

func TestTransformIsTight(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 2000; i++ {
		box := randBox(rng)
		xf := randAffine(rng)
		want := cornerBounds(box, xf)

		for _, impl := range realizations {
			got := impl.fn(box, xf)
			requireClose(t, want, got, box, xf, "%s sample %d", impl.name, i)
		}
	}
}

func TestTransformLanesPaddingInert(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 500; i++ {
		box := randBox(rng)
		xf := randAffine(rng)

		cols := [3]hwy.Float32x4{
			hwy.Load3Float32x4(xf.Linear.Col(0)),
			hwy.Load3Float32x4(xf.Linear.Col(1)),
			hwy.Load3Float32x4(xf.Linear.Col(2)),
		}
		vmin := hwy.Load3Float32x4(box.Min)
		vmax := hwy.Load3Float32x4(box.Max)
		t3 := hwy.Load3Float32x4(xf.Translation)

		lo, hi := transformLanes(vmin, vmax, t3, &cols)
		require.Zero(t, lo.GetElem(3), "zero-padded inputs must give a zero padding lane")
		require.Zero(t, hi.GetElem(3), "zero-padded inputs must give a zero padding lane")

		// Poison lane 3 everywhere; x/y/z must not change.
		poison := float32(math.NaN())
		dirtyCols := cols
		for c := range dirtyCols {
			dirtyCols[c][3] = poison
		}
		vmin[3], vmax[3], t3[3] = poison, -poison, float32(math.Inf(1))
		dlo, dhi := transformLanes(vmin, vmax, t3, &dirtyCols)

		require.Equal(t, lo.Store3(), dlo.Store3())
		require.Equal(t, hi.Store3(), dhi.Store3())
	}
}

func TestImplementation(t *testing.T) {
	box := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 4, 6})
	xf := Scale(mgl32.Vec3{2, 1, 0.5})
	want := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{4, 4, 3})

	require.Equal(t, []string{ImplAuto, ImplScalar, ImplVector}, Implementations())
	for _, name := range Implementations() {
		fn, err := Implementation(name)
		require.NoError(t, err)
		require.Equal(t, want, fn(box, xf), name)
	}

	_, err := Implementation("avx9000")
	require.ErrorIs(t, err, ErrUnknownImpl)
}

func TestBestFollowsDispatchLevel(t *testing.T) {
	t.Logf("dispatch level: %s", hwy.CurrentLevel())
	want := TransformScalar
	if hwy.HasSIMD() {
		want = TransformVector
	}
	require.Equal(t, funcPointer(want), funcPointer(Best()))
	require.Equal(t, funcPointer(Best()), funcPointer(Transform))
}

func funcPointer(fn TransformFunc) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func TestTransformConcurrent(t *testing.T) {
	box := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 3, 4})
	xf := RotateZ(mgl32.DegToRad(30)).Then(Translate(mgl32.Vec3{5, 0, -1}))
	want := TransformScalar(box, xf)

	done := make(chan AABB)
	for i := 0; i < 8; i++ {
		go func() {
			var out AABB
			for j := 0; j < 1000; j++ {
				out = TransformScalar(box, xf)
			}
			done <- out
		}()
	}
	for i := 0; i < 8; i++ {
		require.Equal(t, want, <-done)
	}
}

func TestTransformDoesNotAllocate(t *testing.T) {
	box := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 3, 4})
	xf := RotateZ(0.3)
	var sink AABB
	for _, impl := range realizations {
		fn := impl.fn
		allocs := testing.AllocsPerRun(100, func() {
			sink = fn(box, xf)
		})
		if allocs != 0 {
			t.Errorf("%s: %v allocs per call, want 0", impl.name, allocs)
		}
	}
	_ = sink
}

func randVec3(rng *rand.Rand, scale float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(rng.Float32()*2 - 1) * scale,
		(rng.Float32()*2 - 1) * scale,
		(rng.Float32()*2 - 1) * scale,
	}
}

// randBox returns a valid box; roughly one in eight is degenerate on some axis.
func randBox(rng *rand.Rand) AABB {
	min := randVec3(rng, 100)
	max := min
	for i := 0; i < 3; i++ {
		if rng.IntN(8) != 0 {
			max[i] += rng.Float32() * 50
		}
	}
	return New(min, max)
}

// randAffine mixes axis-aligned scales, rotations, shears and fully
// random linear parts.
func randAffine(rng *rand.Rand) Affine {
	t := randVec3(rng, 1000)
	var lin mgl32.Mat3
	switch rng.IntN(4) {
	case 0:
		lin = mgl32.Diag3(randVec3(rng, 4))
	case 1:
		lin = mgl32.Rotate3DX(rng.Float32() * 2 * math.Pi).
			Mul3(mgl32.Rotate3DY(rng.Float32() * 2 * math.Pi)).
			Mul3(mgl32.Rotate3DZ(rng.Float32() * 2 * math.Pi))
	case 2:
		lin = mgl32.Ident3()
		lin.Set(0, 1, rng.Float32()*2-1)
		lin.Set(1, 2, rng.Float32()*2-1)
		lin.Set(2, 0, rng.Float32()*2-1)
	default:
		for i := range lin {
			lin[i] = rng.Float32()*6 - 3
		}
	}
	return Affine{Linear: lin, Translation: t}
}

func BenchmarkTransform(b *testing.B) {
	box := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 3, 4})
	xf := Identity()

	for _, impl := range realizations {
		fn := impl.fn
		b.Run(impl.name, func(b *testing.B) {
			b.ReportAllocs()
			var out AABB
			for i := 0; i < b.N; i++ {
				out = fn(box, xf)
			}
			_ = out
		})
	}
}
