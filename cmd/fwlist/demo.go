package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/davidvella/forwardlist"
	"github.com/google/subcommands"
)

// Demo implements subcommands.Command for the "demo" command.
type Demo struct{}

// Name implements subcommands.Command.Name.
func (*Demo) Name() string {
	return "demo"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Demo) Synopsis() string {
	return "print a few forward list examples"
}

// Usage implements subcommands.Command.Usage.
func (*Demo) Usage() string {
	return "demo\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Demo) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Demo) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	log := loggerFrom(args)
	if err := demo(os.Stdout); err != nil {
		log.WithError(err).WithField("event_type", "demo_failed").Error("demo failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func demo(w io.Writer) error {
	fmt.Fprintf(w, "\n %s\n\n", "---<(Examples)>---")

	ints := forwardlist.Of(0, 1, 2, 3, 4)
	fmt.Fprintln(w, render(ints.All(), "%d"))
	ints.Clear()

	floats := forwardlist.Of[float32](1.5, 2)
	for f := float32(2.5); f <= 3.5; f += 0.5 {
		if err := floats.PushBack(f); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, render(floats.All(), "%.1f"))
	floats.Clear()

	chars := forwardlist.Of('A', 'E')
	pos := chars.Begin()
	for c := 'B'; c < 'E'; c++ {
		var err error
		if pos, err = chars.InsertAfter(pos, c); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, render(chars.All(), "'%c'"))
	chars.Clear()

	words := forwardlist.Of("Battle", "C", "Apple", "Camel", "B", "A")
	words.Sort(func(a, b string) bool { return a < b })
	fmt.Fprintln(w, render(words.All(), "%q"))
	words.Clear()

	return nil
}

// render formats the elements of seq as a chain ending in NULL.
func render[T any](seq iter.Seq[T], format string) string {
	var b strings.Builder
	for v := range seq {
		b.WriteString(" ")
		fmt.Fprintf(&b, format, v)
		b.WriteString(" ->")
	}
	b.WriteString(" NULL")
	return b.String()
}
