// Package wind computes true wind, leeway and current from apparent wind and
// boat motion measurements. Every function is pure: inputs are values and
// results are new values.
package wind

import "github.com/a-bouts/truewind/angle"

// MsToKt converts a speed in m/s to knots
const MsToKt = 1.94384

type SpeedUnit string

const (
	MetersPerSecond SpeedUnit = "m/s"
	Knots           SpeedUnit = "kt"
)

func (u SpeedUnit) Valid() bool {
	return u == MetersPerSecond || u == Knots
}

// Reading is an apparent wind measurement in the sensor frame. Roll and Pitch
// are the sensor tilt, nil when no attitude sensor is fitted.
type Reading struct {
	AWA   float64
	AWS   float64
	Roll  *float64
	Pitch *float64
}

// Motion is the boat motion. Heading is magnetic, COG is true.
type Motion struct {
	BSpd      float64
	SOG       float64
	Heading   float64
	COG       float64
	Variation float64
}

// Leeway holds the empirical leeway coefficient. SpeedUnit is the unit of
// BSpd used inside the leeway formula only.
type Leeway struct {
	K         float64
	SpeedUnit SpeedUnit
}

type Input struct {
	Reading
	Motion
	Leeway *Leeway
}

type Result struct {
	AWA    float64 `json:"awa" yaml:"awa"`
	AWS    float64 `json:"aws" yaml:"aws"`
	Leeway float64 `json:"leeway" yaml:"leeway"`
	STW    float64 `json:"stw" yaml:"stw"`
	VMG    float64 `json:"vmg" yaml:"vmg"`
	TWS    float64 `json:"tws" yaml:"tws"`
	TWA    float64 `json:"twa" yaml:"twa"`
	TWD    float64 `json:"twd" yaml:"twd"`
	SOC    float64 `json:"soc" yaml:"soc"`
	DOC    float64 `json:"doc" yaml:"doc"`
}

// Folded returns a copy of the result with TWD and DOC folded into [0, 360).
// Solve adds the variation after folding, so both may fall outside that range.
func (r Result) Folded() Result {
	r.TWD = angle.Wrap360(r.TWD)
	r.DOC = angle.Wrap360(r.DOC)
	return r
}
