package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type jsonEncoder struct {
	enc *json.Encoder
}

// NewJSONEncoder writes one JSON object per line
func NewJSONEncoder(w io.Writer) Encoder {
	return jsonEncoder{enc: json.NewEncoder(w)}
}

func (e jsonEncoder) Encode(l Line) error {
	return e.enc.Encode(l)
}

type YAMLEncoder struct {
	enc *yaml.Encoder
}

// NewYAMLEncoder writes one YAML document per line. Close flushes the
// encoder.
func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLEncoder{enc: enc}
}

func (e *YAMLEncoder) Encode(l Line) error {
	return e.enc.Encode(l)
}

func (e *YAMLEncoder) Close() error {
	return e.enc.Close()
}

type textEncoder struct {
	w      io.Writer
	header bool
}

// NewTextEncoder writes a fixed width table, one row per line
func NewTextEncoder(w io.Writer) Encoder {
	return &textEncoder{w: w}
}

func (e *textEncoder) Encode(l Line) error {
	if !e.header {
		e.header = true
		if _, err := fmt.Fprintf(e.w, "%5s %7s %7s %7s %7s %7s %7s %7s %7s %7s %7s\n",
			"line", "awa", "aws", "leeway", "stw", "vmg", "tws", "twa", "twd", "soc", "doc"); err != nil {
			return err
		}
	}
	if l.Result == nil {
		_, err := fmt.Fprintf(e.w, "%5d error: %s\n", l.Line, l.Error)
		return err
	}
	r := l.Result
	_, err := fmt.Fprintf(e.w, "%5d %7.2f %7.2f %7.2f %7.2f %7.2f %7.2f %7.2f %7.2f %7.2f %7.2f\n",
		l.Line, r.AWA, r.AWS, r.Leeway, r.STW, r.VMG, r.TWS, r.TWA, r.TWD, r.SOC, r.DOC)
	return err
}
