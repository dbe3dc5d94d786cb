// Package truewind is the entry point for callers holding loosely specified
// instrument data: it back-fills the legacy fields and runs the wind solver.
package truewind

import (
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/truewind/model"
	"github.com/a-bouts/truewind/wind"
)

// GetTrue computes true wind, vmg, leeway and current from p. It fails with
// model.ErrMissingRequiredField or wind.ErrInconsistentLeewayUnit.
func GetTrue(p model.Params) (wind.Result, error) {
	in, err := p.Complete()
	if err != nil {
		log.WithError(err).Debug("Incomplete parameters")
		return wind.Result{}, err
	}

	res, err := wind.Solve(in)
	if err != nil {
		log.WithError(err).Debug("Cannot solve true wind")
		return wind.Result{}, err
	}

	log.Debugf("True wind %.1f° %.2f (twa %.1f°, leeway %.2f°)", res.TWD, res.TWS, res.TWA, res.Leeway)

	return res, nil
}

// GetAttitudeCorrections returns a copy of p with awa and aws corrected for
// the sensor roll and pitch. p is returned unchanged when either is missing.
func GetAttitudeCorrections(p model.Params) model.Params {
	r, ok := p.Reading()
	if !ok || r.Roll == nil || r.Pitch == nil {
		return p
	}
	return p.WithReading(wind.CorrectAttitude(r))
}
