package main

import (
	"io"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-aabb/aabb"
)

type compareOptions struct {
	samples   int
	seed      uint64
	tolerance float64
}

// compareResult holds the worst relative error seen per check.
type compareResult struct {
	samples    int
	equivalent float64 // scalar vs vector
	tight      float64 // scalar vs 8-corner bounds
}

func newCompareCmd() *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "check scalar and vector transforms agree on random inputs",
		Long: `Run both realizations on random boxes and transforms (axis-aligned
scale, rotation, shear and dense linear parts, some degenerate boxes) and
report the worst relative error against each other and against the
brute-force 8-corner bounds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.samples <= 0 {
				return errors.Errorf("--samples must be positive, got %d", opts.samples)
			}
			res := runCompare(opts)
			printCompare(cmd.OutOrStdout(), res)
			if res.equivalent > opts.tolerance || res.tight > opts.tolerance {
				return errors.Errorf("relative error exceeds tolerance %g", opts.tolerance)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.samples, "samples", 10000, "number of random samples")
	f.Uint64Var(&opts.seed, "seed", 1, "random seed")
	f.Float64Var(&opts.tolerance, "tolerance", 1e-5, "maximum allowed relative error")
	return cmd
}

func runCompare(opts *compareOptions) compareResult {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	equivalent := make([]float64, 0, opts.samples)
	tight := make([]float64, 0, opts.samples)

	for i := 0; i < opts.samples; i++ {
		box := randomBox(rng)
		xf := randomAffine(rng)

		scalar := aabb.TransformScalar(box, xf)
		vector := aabb.TransformVector(box, xf)
		ref := cornerBounds(box, xf)

		equivalent = append(equivalent, relError(box, xf, scalar, vector))
		tight = append(tight, relError(box, xf, ref, scalar))
	}
	logger.Infof("compared %d samples", opts.samples)

	return compareResult{
		samples:    opts.samples,
		equivalent: lo.Max(equivalent),
		tight:      lo.Max(tight),
	}
}

func printCompare(w io.Writer, res compareResult) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "samples:                 %d\n", res.samples)
	p.Fprintf(w, "scalar vs vector:        %.3e\n", res.equivalent)
	p.Fprintf(w, "scalar vs corner bounds: %.3e\n", res.tight)
}

// relError is the largest component difference between a and b, relative
// to the magnitude of the terms that produced that component.
func relError(box aabb.AABB, xf aabb.Affine, a, b aabb.AABB) float64 {
	var worst float64
	for k := 0; k < 3; k++ {
		mag := 1 + math.Abs(float64(xf.Translation[k]))
		for i := 0; i < 3; i++ {
			extent := math.Max(math.Abs(float64(box.Min[i])), math.Abs(float64(box.Max[i])))
			mag += math.Abs(float64(xf.Linear.At(k, i))) * extent
		}
		worst = math.Max(worst, math.Abs(float64(a.Min[k]-b.Min[k]))/mag)
		worst = math.Max(worst, math.Abs(float64(a.Max[k]-b.Max[k]))/mag)
	}
	return worst
}

func cornerBounds(box aabb.AABB, xf aabb.Affine) aabb.AABB {
	corners := box.Corners()
	for i := range corners {
		corners[i] = xf.Apply(corners[i])
	}
	return aabb.FromPoints(corners[:]...)
}

func randomVec3(rng *rand.Rand, scale float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(rng.Float32()*2 - 1) * scale,
		(rng.Float32()*2 - 1) * scale,
		(rng.Float32()*2 - 1) * scale,
	}
}

func randomBox(rng *rand.Rand) aabb.AABB {
	bmin := randomVec3(rng, 100)
	bmax := bmin
	for i := 0; i < 3; i++ {
		if rng.IntN(8) != 0 {
			bmax[i] += rng.Float32() * 50
		}
	}
	return aabb.New(bmin, bmax)
}

func randomAffine(rng *rand.Rand) aabb.Affine {
	t := randomVec3(rng, 1000)
	var lin mgl32.Mat3
	switch rng.IntN(4) {
	case 0:
		lin = mgl32.Diag3(randomVec3(rng, 4))
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
	return aabb.Affine{Linear: lin, Translation: t}
}
