package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/truewind/batch"
)

type config struct {
	input      string
	output     string
	format     string
	workers    int
	fold       bool
	logLevel   string
	logFormat  string
	cpuprofile bool
	args       []string
}

func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("truewind", flag.ContinueOnError)
	var c config
	fs.StringVar(&c.input, "input", "-", "records to solve, one JSON object per line ('-' for stdin)")
	fs.StringVar(&c.output, "output", "-", "results file ('-' for stdout)")
	fs.StringVar(&c.format, "format", "json", "output format: json, yaml or text")
	fs.IntVar(&c.workers, "workers", 0, "records solved at once (0 for one per CPU)")
	fs.BoolVar(&c.fold, "fold", false, "fold twd and doc into [0, 360) after applying the variation")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level")
	fs.StringVar(&c.logFormat, "log-format", "text", "log format: text or json")
	fs.BoolVar(&c.cpuprofile, "cpuprofile", false, "write a CPU profile in the working directory")
	fs.String("config", "", "YAML config file")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TRUEWIND"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(yamlParser))
	if err != nil {
		return c, err
	}
	c.args = fs.Args()

	switch c.format {
	case "json", "yaml", "text":
	default:
		return c, fmt.Errorf("unknown format '%s'", c.format)
	}
	return c, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newEncoder(format string, w io.Writer) (batch.Encoder, func() error) {
	switch format {
	case "yaml":
		enc := batch.NewYAMLEncoder(w)
		return enc, enc.Close
	case "text":
		return batch.NewTextEncoder(w), func() error { return nil }
	}
	return batch.NewJSONEncoder(w), func() error { return nil }
}

func run(ctx context.Context, c config) (batch.Stats, error) {
	out, err := openOutput(c.output)
	if err != nil {
		return batch.Stats{}, err
	}
	defer out.Close()

	enc, flush := newEncoder(c.format, out)

	var stats batch.Stats
	if len(c.args) > 0 {
		p, err := parseParams(c.args)
		if err != nil {
			return stats, err
		}
		l := batch.Solve(1, p, c.fold)
		stats.Records = 1
		if l.Error != "" {
			stats.Failed = 1
		}
		if err := enc.Encode(l); err != nil {
			return stats, err
		}
	} else {
		in, err := openInput(c.input)
		if err != nil {
			return stats, err
		}
		defer in.Close()

		stats, err = batch.Run(ctx, in, enc, batch.Options{Workers: c.workers, Fold: c.fold})
		if err != nil {
			return stats, err
		}
	}

	if err := flush(); err != nil {
		return stats, err
	}
	return stats, out.Close()
}

func main() {
	c, err := parseConfig(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := setupLogger(c.logLevel, c.logFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if c.cpuprofile {
		defer profile.Start(profile.ProfilePath("."), profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	requestLogger := log.WithFields(log.Fields{
		"input":  c.input,
		"format": c.format,
	})

	stats, err := run(ctx, c)
	if err != nil {
		requestLogger.WithError(err).Error("True wind failed")
		stop()
		os.Exit(1)
	}

	if stats.Failed > 0 {
		requestLogger.Warnf("%d of %d records could not be solved", stats.Failed, stats.Records)
	} else {
		requestLogger.Infof("%d records solved", stats.Records)
	}
}
