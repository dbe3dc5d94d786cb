package model

import (
	"errors"

	"github.com/a-bouts/truewind/angle"
	"github.com/a-bouts/truewind/wind"
)

var ErrMissingRequiredField = errors.New("Please supply at least the parameters { awa, aws, heading, bspd }")

// Params is the loosely specified input accepted at the boundary. Nil fields
// are absent.
type Params struct {
	Aws       *float64 `json:"aws,omitempty" yaml:"aws,omitempty"`
	Awa       *float64 `json:"awa,omitempty" yaml:"awa,omitempty"`
	Bspd      *float64 `json:"bspd,omitempty" yaml:"bspd,omitempty"`
	Sog       *float64 `json:"sog,omitempty" yaml:"sog,omitempty"`
	Cog       *float64 `json:"cog,omitempty" yaml:"cog,omitempty"`
	Heading   *float64 `json:"heading,omitempty" yaml:"heading,omitempty"`
	Variation *float64 `json:"variation,omitempty" yaml:"variation,omitempty"`
	Roll      *float64 `json:"roll,omitempty" yaml:"roll,omitempty"`
	Pitch     *float64 `json:"pitch,omitempty" yaml:"pitch,omitempty"`
	K         *float64 `json:"K,omitempty" yaml:"K,omitempty"`
	SpeedUnit *string  `json:"speedunit,omitempty" yaml:"speedunit,omitempty"`

	// Deprecated: Awd is the apparent wind direction (true), use Awa.
	Awd *float64 `json:"awd,omitempty" yaml:"awd,omitempty"`
}

func Float(v float64) *float64 {
	return &v
}

func String(v string) *string {
	return &v
}

// Complete fills the missing fields from the ones given, the way older
// clients expect, and returns the fully specified solver input. p is left
// untouched.
func (p Params) Complete() (wind.Input, error) {
	variation := 0.0
	if p.Variation != nil {
		variation = *p.Variation
	}

	bspd, sog := crossFill(p.Bspd, p.Sog)
	heading, cog := crossFill(p.Heading, p.Cog)

	awa := p.Awa
	if awa == nil && p.Awd != nil && heading != nil {
		awa = Float(angle.Twa(*heading+variation, *p.Awd))
	}

	if awa == nil || p.Aws == nil || heading == nil || bspd == nil {
		return wind.Input{}, ErrMissingRequiredField
	}

	var leeway *wind.Leeway
	if p.K != nil {
		l := wind.Leeway{K: *p.K}
		if p.SpeedUnit != nil {
			l.SpeedUnit = wind.SpeedUnit(*p.SpeedUnit)
		}
		if err := l.Validate(); err != nil {
			return wind.Input{}, err
		}
		leeway = &l
	}

	return wind.Input{
		Reading: wind.Reading{
			AWA:   *awa,
			AWS:   *p.Aws,
			Roll:  copyFloat(p.Roll),
			Pitch: copyFloat(p.Pitch),
		},
		Motion: wind.Motion{
			BSpd:      *bspd,
			SOG:       *sog,
			Heading:   *heading,
			COG:       *cog,
			Variation: variation,
		},
		Leeway: leeway,
	}, nil
}

// crossFill returns a, b with a missing side taken from the other one.
func crossFill(a, b *float64) (*float64, *float64) {
	if a == nil {
		return b, b
	}
	if b == nil {
		return a, a
	}
	return a, b
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

// WithReading returns a copy of p with the apparent wind and attitude fields
// taken from r.
func (p Params) WithReading(r wind.Reading) Params {
	p.Awa = Float(r.AWA)
	p.Aws = Float(r.AWS)
	p.Roll = copyFloat(r.Roll)
	p.Pitch = copyFloat(r.Pitch)
	return p
}

// Reading returns the apparent wind part of p, false when awa or aws is
// missing.
func (p Params) Reading() (wind.Reading, bool) {
	if p.Awa == nil || p.Aws == nil {
		return wind.Reading{}, false
	}
	return wind.Reading{
		AWA:   *p.Awa,
		AWS:   *p.Aws,
		Roll:  copyFloat(p.Roll),
		Pitch: copyFloat(p.Pitch),
	}, true
}
