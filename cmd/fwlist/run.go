package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Run implements subcommands.Command for the "run" command.
type Run struct {
	keepGoing bool
}

// Name implements subcommands.Command.Name.
func (*Run) Name() string {
	return "run"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Run) Synopsis() string {
	return "apply the list operations described in scenario files"
}

// Usage implements subcommands.Command.Usage.
func (*Run) Usage() string {
	return `run [flags] <scenario.toml|scenario.yaml>...
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Run) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.keepGoing, "keep-going", false, "continue with the next scenario after a failure")
}

// Execute implements subcommands.Command.Execute.
func (r *Run) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	log := loggerFrom(args)

	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		if err := runScenario(os.Stdout, log, path); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"event_type": "scenario_failed",
				"path":       path,
			}).Error("scenario failed")
			status = subcommands.ExitFailure
			if !r.keepGoing {
				break
			}
		}
	}
	return status
}

func runScenario(w io.Writer, log *logrus.Entry, path string) error {
	s, err := loadScenario(path)
	if err != nil {
		return err
	}
	l, err := s.execute(log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"event_type": "scenario_done",
		"scenario":   s.Name,
		"len":        l.Len(),
	}).Info("scenario done")

	_, err = fmt.Fprintf(w, "%s:%s\n", s.Name, render(l.All(), "%d"))
	return err
}
