package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/mordor-tools/internal/config"
	"github.com/dmitrijs2005/mordor-tools/internal/flagx"
)

// commonFlags are the -c and -v flags of commands that parse flags.
// genpassword does not: its only argument is the password.
type commonFlags struct {
	configPath string
	verbose    bool
}

func newFlagSet(name, usage string, w io.Writer) (*flag.FlagSet, *commonFlags) {
	cf := &commonFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&cf.configPath, "c", "", "path to JSON config file (short)")
	fs.StringVar(&cf.configPath, "config", "", "path to JSON config file")
	fs.BoolVar(&cf.verbose, "v", false, "log debug details to stderr (short)")
	fs.BoolVar(&cf.verbose, "verbose", false, "log debug details to stderr")
	fs.Usage = func() {
		fmt.Fprintln(w, usage)
		fs.PrintDefaults()
	}
	return fs, cf
}

// parseArgs parses flags and positionals. On failure the flag package has
// already reported the problem; the returned code is the exit status.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, int, bool) {
	pos, err := flagx.ParseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, 0, false
		}
		return nil, 1, false
	}
	return pos, 0, true
}

// loadConfig builds the run configuration: defaults, then the JSON file at
// path (if any), then whatever apply changes from explicit flags.
func loadConfig(path string, apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
