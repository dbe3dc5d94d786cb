package wind

import (
	"math"

	"github.com/a-bouts/truewind/angle"
)

// CorrectAttitude corrects an apparent wind reading for the sensor roll and
// pitch. The reading is returned unchanged when either is missing, otherwise
// AWA is returned in [0, 360).
func CorrectAttitude(r Reading) Reading {
	if r.Roll == nil || r.Pitch == nil {
		return r
	}

	rwa := angle.Radians(angle.Positive(r.AWA))

	wx := r.AWS * math.Sin(rwa) / math.Cos(angle.Radians(*r.Roll))
	wy := r.AWS * math.Cos(rwa) / math.Cos(angle.Radians(*r.Pitch))

	// one collapsed axis would give a spurious speed, keep the measured one
	if wx != 0 && wy != 0 {
		r.AWS = math.Sqrt(wx*wx + wy*wy)
	}
	r.AWA = angle.Positive(angle.Degrees(math.Atan2(wx, wy)))

	return r
}
