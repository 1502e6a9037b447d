package run

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/sig-0/twdrates/cmd/env"
	"github.com/sig-0/twdrates/gate"
	"github.com/sig-0/twdrates/pipeline"
	"github.com/sig-0/twdrates/provider/twd"
	"github.com/sig-0/twdrates/storage/file"
)

const (
	defaultDataPath = "data.json"
	defaultTimeout  = time.Second * 15
	defaultDelay    = time.Second * 2
)

// runCfg wraps the run configuration
type runCfg struct {
	dataPath     string
	holidaysPath string

	primaryURL   string
	secondaryURL string

	timeout time.Duration
	delay   time.Duration

	fixedPrecision bool
	skipStampCheck bool
}

// NewRunCmd creates the run subcommand
func NewRunCmd() *ffcli.Command {
	cfg := &runCfg{}

	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "run",
		ShortUsage: "run [flags]",
		LongHelp:   "Runs a single daily quotation acquisition against the flat-file store",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

func (c *runCfg) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(
		&c.dataPath,
		"data",
		defaultDataPath,
		"the path to the series JSON file",
	)

	fs.StringVar(
		&c.holidaysPath,
		"holidays",
		"",
		"the path to the TOML holiday calendar, if any",
	)

	fs.StringVar(
		&c.primaryURL,
		"primary-url",
		twd.BOTRateURL,
		"the primary (Bank of Taiwan) rate board URL",
	)

	fs.StringVar(
		&c.secondaryURL,
		"secondary-url",
		twd.SunnyRateURL,
		"the secondary (Sunny Bank) rate page URL",
	)

	fs.DurationVar(
		&c.timeout,
		"timeout",
		defaultTimeout,
		"the per-request fetch timeout",
	)

	fs.DurationVar(
		&c.delay,
		"delay",
		defaultDelay,
		"the politeness delay between source fetches",
	)

	fs.BoolVar(
		&c.fixedPrecision,
		"fixed-precision",
		false,
		"format obtained quotation values to 4 fractional digits",
	)

	fs.BoolVar(
		&c.skipStampCheck,
		"skip-stamp-check",
		false,
		"disable the primary-source quotation stamp cross-check",
	)
}

// exec executes the single acquisition run
func (c *runCfg) exec(ctx context.Context, _ []string) error {
	// Create a new logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("unable to load .env file")
	}

	// Load the holiday calendar, if any
	var gateOpts []gate.Option

	if c.holidaysPath != "" {
		calendar, err := gate.LoadCalendar(c.holidaysPath)
		if err != nil {
			return fmt.Errorf("unable to load holiday calendar, %w", err)
		}

		gateOpts = append(gateOpts, gate.WithCalendar(calendar))
	}

	var (
		primary   = twd.NewBOTProvider(c.primaryURL, c.timeout)
		secondary = twd.NewSunnyProvider(c.secondaryURL, c.timeout)

		store = file.NewStorage(c.dataPath)
	)

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithGate(gate.New(gateOpts...)),
		pipeline.WithDelay(c.delay),
		pipeline.WithStampCheck(!c.skipStampCheck),
	}

	if c.fixedPrecision {
		opts = append(opts, pipeline.WithFixedPrecision())
	}

	p := pipeline.New(primary, secondary, store, opts...)

	result, err := p.Run(ctx)
	if err != nil {
		return err
	}

	// A skipped run is a normal, clean completion
	if result.Skipped {
		logger.Info(
			"run skipped",
			"reason", result.Reason,
		)

		return nil
	}

	logger.Info(
		"run complete",
		"date", result.Record.Date,
	)

	return nil
}
