package cli

import (
	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
)

// Flags represents command line flags
type Flags struct {
	Version  bool   `short:"v" long:"version"  description:"Print the program version"`
	LogLevel string `short:"l" long:"logLevel" description:"Logging level: panic, fatal, error, warn, info, debug or trace" default:"info"`
	CfgPath  string `short:"c" long:"cfgPath"  description:"Config file path to read settings from"`
	OutDir   string `short:"o" long:"outDir"   description:"Directory to write documents to. Documents are printed to stdout if not set"`
	Diff     bool   `short:"d" long:"diff"     description:"Print differences against existing output files instead of writing them"`
	Escaping string `short:"e" long:"escaping" description:"String escaping policy, overrides the config" choice:"newlines" choice:"none"`
	Workers  int    `short:"w" long:"workers"  description:"Number of blueprints rendered in parallel, overrides the config"`

	Args struct {
		Blueprints []string `positional-arg-name:"blueprint" description:"Blueprint file paths or URLs. '-' reads standard input"`
	} `positional-args:"yes"`
}

// Parse returns a structure initialized with command line arguments <args> and error if parsing failed
func Parse(args []string) (Flags, error) {
	var flags Flags
	parser := goFlags.NewParser(&flags, goFlags.Default)
	parser.Usage = "[OPTIONS] [blueprint...]"
	_, err := parser.ParseArgs(args)
	if err != nil {
		return flags, errors.Wrap(err, "Parse CLI arguments")
	}
	return flags, nil
}

// IsErrOfType returns true if <err> is of type <t>
func IsErrOfType(err error, t goFlags.ErrorType) bool {
	goFlagsErr := &goFlags.Error{}
	if ok := errors.As(err, &goFlagsErr); ok && goFlagsErr.Type == t {
		return true
	}
	return false
}
