// Package batch solves a stream of JSON encoded parameter records
// concurrently, writing the results in input order.
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/a-bouts/truewind/model"
	"github.com/a-bouts/truewind/truewind"
	"github.com/a-bouts/truewind/wind"
)

const defaultChunk = 64

type Options struct {
	// Workers bounds the records solved at once, runtime.NumCPU() when <= 0
	Workers int
	// Chunk is the number of records read before the results are written
	Chunk int
	// Fold folds twd and doc into [0, 360) after the variation is applied
	Fold bool
}

type Stats struct {
	Records int
	Failed  int
}

// Line is the outcome of one input record. Line numbers start at 1.
type Line struct {
	Line   int          `json:"line" yaml:"line"`
	Result *wind.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
}

type Encoder interface {
	Encode(l Line) error
}

// Run decodes records from r until EOF and writes one Line per record to enc.
// Invalid records are reported in their Line and do not stop the run.
func Run(ctx context.Context, r io.Reader, enc Encoder, opts Options) (Stats, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunk := opts.Chunk
	if chunk <= 0 {
		chunk = defaultChunk
	}

	start := time.Now()

	var stats Stats
	dec := json.NewDecoder(r)
	params := make([]model.Params, 0, chunk)
	lines := make([]Line, chunk)

	for eof := false; !eof; {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		params = params[:0]
		for len(params) < chunk {
			var p model.Params
			err := dec.Decode(&p)
			if errors.Is(err, io.EOF) {
				eof = true
				break
			}
			if err != nil {
				return stats, fmt.Errorf("decode record %d: %w", stats.Records+len(params)+1, err)
			}
			params = append(params, p)
		}

		base := stats.Records
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range params {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				lines[i] = Solve(base+i+1, params[i], opts.Fold)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return stats, err
		}

		for i := range params {
			if lines[i].Error != "" {
				stats.Failed++
			}
			if err := enc.Encode(lines[i]); err != nil {
				return stats, fmt.Errorf("write record %d: %w", lines[i].Line, err)
			}
		}
		stats.Records += len(params)
	}

	log.WithFields(log.Fields{
		"records": stats.Records,
		"failed":  stats.Failed,
	}).Debugf("Batch took %s", time.Since(start).String())

	return stats, nil
}

// Solve solves the record numbered n
func Solve(n int, p model.Params, fold bool) Line {
	res, err := truewind.GetTrue(p)
	if err != nil {
		log.WithError(err).Debugf("Record %d", n)
		return Line{Line: n, Error: err.Error()}
	}
	if fold {
		res = res.Folded()
	}
	return Line{Line: n, Result: &res}
}
