package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/sig-0/twdrates/cmd/run"
	"github.com/sig-0/twdrates/cmd/serve"
	"github.com/sig-0/twdrates/cmd/sql"
	"github.com/sig-0/twdrates/storage/file"
)

func main() {
	fs := flag.NewFlagSet("root", flag.ExitOnError)

	// Create the root command
	cmd := &ffcli.Command{
		ShortUsage: "<sub-command> [flags] [<arg>...]",
		LongHelp:   "Runs the twdrates service",
		FlagSet:    fs,
		Exec: func(_ context.Context, _ []string) error {
			return flag.ErrHelp
		},
	}

	// Add the subcommands
	cmd.Subcommands = []*ffcli.Command{
		run.NewRunCmd(),
		serve.NewServeCmd(),
		sql.NewSQLCmd(),
	}

	if err := cmd.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		// A corrupt series file gets a distinct status, so an
		// orchestrating scheduler can alert on it
		if errors.Is(err, file.ErrCorruptSeries) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
