package main

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-aabb/aabb"
)

type transformOptions struct {
	min, max  mgl32.Vec3
	translate mgl32.Vec3
	scale     mgl32.Vec3
	linear    mgl32.Mat3
	rotateZ   float32
	impl      string
	check     bool
}

// affine composes the transform p' = T + Linear * RotZ * Scale * p.
func (o *transformOptions) affine() aabb.Affine {
	return aabb.Scale(o.scale).
		Then(aabb.RotateZ(mgl32.DegToRad(o.rotateZ))).
		Then(aabb.Affine{Linear: o.linear}).
		Then(aabb.Translate(o.translate))
}

func newTransformCmd() *cobra.Command {
	opts := &transformOptions{
		scale:  mgl32.Vec3{1, 1, 1},
		linear: mgl32.Ident3(),
		impl:   aabb.ImplAuto,
	}
	minFlag := newVec3Value(&opts.min)
	maxFlag := newVec3Value(&opts.max)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "transform a box and print its new bounds",
		Long: `Transform the box [min, max] by p' = T + Linear * RotZ * Scale * p and
print the tightest axis-aligned box enclosing the result.

--linear takes nine column-major values: the images of +X, +Y and +Z.`,
		Example: `  aabb transform --min 0,0,0 --max 2,4,6 --scale 2,1,0.5
  aabb transform --min -1,-1,-1 --max 1,1,1 --rotate-z 45 --translate 10,0,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !minFlag.set || !maxFlag.set {
				return errors.New("both --min and --max are required")
			}
			return runTransform(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.Var(minFlag, "min", "minimum corner")
	f.Var(maxFlag, "max", "maximum corner")
	f.Var(newVec3Value(&opts.translate), "translate", "translation")
	f.Var(newVec3Value(&opts.scale), "scale", "per-axis scale applied first")
	f.Var(newMat3Value(&opts.linear), "linear", "column-major 3x3 linear part")
	f.Float32Var(&opts.rotateZ, "rotate-z", 0, "rotation about +Z in degrees, applied after scale")
	f.StringVar(&opts.impl, "impl", opts.impl, "implementation: auto, scalar or vector")
	f.BoolVar(&opts.check, "check", false, "validate input and output boxes")
	return cmd
}

func runTransform(w io.Writer, opts *transformOptions) error {
	fn, err := aabb.Implementation(opts.impl)
	if err != nil {
		return err
	}

	box := aabb.New(opts.min, opts.max)
	xf := opts.affine()
	logger.Debugf("impl=%s box=%v linear=%v translation=%v", opts.impl, box, xf.Linear, xf.Translation)

	var out aabb.AABB
	if opts.check {
		out, err = aabb.Checked(fn)(box, xf)
		if err != nil {
			return errors.Wrap(err, "transform")
		}
	} else {
		out = fn(box, xf)
	}

	_, err = fmt.Fprintf(w, "min: %g %g %g\nmax: %g %g %g\n",
		out.Min[0], out.Min[1], out.Min[2], out.Max[0], out.Max[1], out.Max[2])
	return err
}
