package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlParser is a ff.ConfigFileParser reading flat YAML mappings, keys are
// flag names
func yamlParser(r io.Reader, set func(name, value string) error) error {
	var m map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("parse config: %w", err)
	}
	for name, v := range m {
		var value string
		switch v := v.(type) {
		case nil:
			continue
		case string:
			value = v
		case bool, int, float64:
			value = fmt.Sprint(v)
		default:
			return fmt.Errorf("config '%s': unsupported value %v", name, v)
		}
		if err := set(name, value); err != nil {
			return fmt.Errorf("config '%s': %w", name, err)
		}
	}
	return nil
}
