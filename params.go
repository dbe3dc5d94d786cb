package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a-bouts/truewind/model"
)

// parseParams builds a record from key=value arguments, keys being the JSON
// field names of model.Params
func parseParams(args []string) (model.Params, error) {
	var p model.Params
	for _, arg := range args {
		kv := strings.SplitN(arg, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return p, fmt.Errorf("invalid argument '%s', want key=value", arg)
		}
		key, value := kv[0], kv[1]

		if key == "speedunit" {
			p.SpeedUnit = model.String(value)
			continue
		}

		field := floatField(&p, key)
		if field == nil {
			return p, fmt.Errorf("unknown parameter '%s'", key)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return p, fmt.Errorf("parameter '%s': %w", key, err)
		}
		*field = model.Float(f)
	}
	return p, nil
}

func floatField(p *model.Params, key string) **float64 {
	switch key {
	case "aws":
		return &p.Aws
	case "awa":
		return &p.Awa
	case "awd":
		return &p.Awd
	case "bspd":
		return &p.Bspd
	case "sog":
		return &p.Sog
	case "cog":
		return &p.Cog
	case "heading":
		return &p.Heading
	case "variation":
		return &p.Variation
	case "roll":
		return &p.Roll
	case "pitch":
		return &p.Pitch
	case "K", "k":
		return &p.K
	}
	return nil
}
