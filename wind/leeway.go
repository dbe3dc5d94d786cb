package wind

import (
	"errors"
	"fmt"
)

const maxLeeway = 45.0

var ErrInconsistentLeewayUnit = errors.New("With the parameter K, also specify { speedunit = 'm/s' | 'kt' } for bspd.")

// Validate returns ErrInconsistentLeewayUnit when the speed unit of l is
// neither m/s nor kt. A nil Leeway is valid.
func (l *Leeway) Validate() error {
	if l == nil || l.SpeedUnit.Valid() {
		return nil
	}
	return fmt.Errorf("%w (got %q)", ErrInconsistentLeewayUnit, string(l.SpeedUnit))
}

// EstimateLeeway returns the leeway angle in degrees, clamped to [-45, 45].
// It is 0 when the boat is not moving, not heeling, heeling into the wind or
// when no leeway coefficient is known.
func EstimateLeeway(awa, bspd float64, roll *float64, l *Leeway) float64 {
	if bspd == 0 || roll == nil || *roll == 0 || l == nil {
		return 0
	}
	if (*roll > 0 && awa > 0) || (*roll < 0 && awa < 0) {
		return 0
	}

	kt := bspd
	if l.SpeedUnit == MetersPerSecond {
		kt *= MsToKt
	}

	leeway := l.K * *roll / (kt * kt)
	if leeway > maxLeeway {
		leeway = maxLeeway
	} else if leeway < -maxLeeway {
		leeway = -maxLeeway
	}

	return leeway
}
