// Binary fwlist demonstrates the forwardlist package. The demo subcommand
// prints a fixed set of examples; run executes list scenarios described in
// TOML or YAML files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var logLevel = flag.String("log-level", "info", "log level: debug, info, warn or error")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(new(Demo), "")
	subcommands.Register(new(Run), "")

	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	log := newLogger(os.Stderr, level)

	os.Exit(int(subcommands.Execute(context.Background(), log)))
}
