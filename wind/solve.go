package wind

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/a-bouts/truewind/angle"
)

// vector builds a cartesian vector from a magnitude and a cartesian angle in
// radians.
func vector(m, θ float64) r2.Vec {
	return r2.Vec{X: m * math.Cos(θ), Y: m * math.Sin(θ)}
}

// Solve computes the true wind, leeway, vmg and current of a fully specified
// input. The only error is ErrInconsistentLeewayUnit.
func Solve(in Input) (Result, error) {
	if err := in.Leeway.Validate(); err != nil {
		return Result{}, err
	}

	r := in.Reading
	r.AWA = angle.Wrap180(r.AWA)
	r = CorrectAttitude(r)
	r.AWA = angle.Wrap180(r.AWA)

	m := in.Motion

	leeway := EstimateLeeway(r.AWA, m.BSpd, r.Roll, in.Leeway)
	λ := angle.Radians(leeway)

	stw := m.BSpd / math.Cos(λ)

	// through water boat motion in the boat frame, y along the boat axis
	boat := r2.Vec{X: stw * math.Sin(λ), Y: m.BSpd}

	tw := r2.Add(vector(r.AWS, angle.Radians(270-r.AWA)), boat)
	tws := r2.Norm(tw)

	var twa float64
	if θ := math.Atan2(tw.Y, tw.X); math.IsNaN(θ) {
		twa = singularity(tw.Y)
	} else {
		twa = 270.0 - angle.Degrees(θ)
		if r.AWA >= 0.0 {
			twa = math.Mod(twa, 360)
		} else {
			twa -= 360.0
		}
		twa = angle.Wrap180(twa)
	}

	vmg := stw * math.Cos(angle.Radians(-twa+leeway))

	twd := angle.Direction(m.Heading, twa)

	ground := vector(m.SOG, angle.Cartesian(m.COG-m.Variation))
	water := vector(stw, angle.Cartesian(m.Heading+leeway))
	current := r2.Sub(ground, water)

	var doc float64
	if θ := math.Atan2(current.Y, current.X); math.IsNaN(θ) {
		doc = singularity(current.Y)
	} else {
		doc = angle.Bearing(θ)
	}

	return Result{
		AWA:    r.AWA,
		AWS:    r.AWS,
		Leeway: leeway,
		STW:    stw,
		VMG:    vmg,
		TWS:    tws,
		TWA:    twa,
		TWD:    twd + m.Variation,
		SOC:    r2.Norm(current),
		DOC:    doc + m.Variation,
	}, nil
}

func singularity(y float64) float64 {
	if y < 0.0 {
		return 180.0
	}
	return 0.0
}
