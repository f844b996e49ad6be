// Command kvgen renders YAML blueprints into KeyValues documents.
//
// Usage:
//
//	kvgen [OPTIONS] [blueprint...]
//
// Each blueprint is a local path, an http(s) URL or '-' for standard input.
// With no blueprints and a non-terminal standard input, standard input is
// read. Documents are printed to standard output unless an output directory
// is configured, in which case each is written to <dir>/<name><extension>.
// With -d, nothing is written and differences against the existing output
// files are printed instead.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-kv3/internal/cfg"
	"github.com/KimNorgaard/go-kv3/internal/cli"
	"github.com/KimNorgaard/go-kv3/internal/gen"
	"github.com/KimNorgaard/go-kv3/internal/logger"
)

const version = "v0.3.0"

func main() {
	log := logger.New(logrus.InfoLevel)
	if err := run(log, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if cli.IsErrOfType(err, goFlags.ErrHelp) {
			// Help message is printed by go-flags
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

// run executes kvgen with command line arguments <args>
func run(log *logrus.Logger, args []string, stdin *os.File, stdout io.Writer) error {
	flags, err := cli.Parse(args)
	if err != nil {
		return err
	}
	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	lvl, err := logrus.ParseLevel(flags.LogLevel)
	if err != nil {
		return errors.Wrap(err, "Parse log level")
	}
	log.SetLevel(lvl)

	c, err := cfg.Init(log, flags.CfgPath)
	if err != nil {
		return err
	}
	if flags.OutDir != "" {
		c.Output.Dir = flags.OutDir
	}
	if flags.Escaping != "" {
		c.Escaping = flags.Escaping
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	inputs := flags.Args.Blueprints
	if len(inputs) == 0 {
		if isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd()) {
			return errors.New("No blueprints given. Pass blueprint paths or pipe one into standard input")
		}
		log.Debug("Reading blueprint from standard input")
		inputs = []string{gen.StdinInput}
	}

	g, err := gen.New(log, c, flags.Diff)
	if err != nil {
		return err
	}
	g.Stdin = stdin
	g.Stdout = stdout

	results, err := g.Run(inputs)
	if err != nil {
		return err
	}
	log.WithField("count", len(results)).Debug("Done")
	return nil
}
