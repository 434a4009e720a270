package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mordor-tools/internal/common"
	"github.com/dmitrijs2005/mordor-tools/internal/config"
	"github.com/dmitrijs2005/mordor-tools/internal/cryptox"
)

const genPasswordUsage = "Usage: genpassword [password]"

// RunGenPassword implements the genpassword command and returns its exit
// status. It prints one digest line to Out and nothing else.
//
// Arguments are not parsed as flags: a single argument is the password
// whatever it looks like ("-h", "--" included), no argument prompts, and two
// or more print the usage line and hash nothing.
func RunGenPassword(_ context.Context, args []string, s Streams) int {
	if len(args) > 1 {
		fmt.Fprintln(s.Err, genPasswordUsage)
		return 1
	}

	// the command line is reserved for the password
	path, err := config.ConfigPathFromEnv()
	if err != nil {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		return 1
	}
	cfg, err := loadConfig(path, nil)
	if err != nil {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		return 1
	}

	pw, err := passwordSource(args, s).Password()
	if err != nil {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		return 1
	}
	defer common.WipeByteArray(pw)

	digest, err := cryptox.NewPasswordHasher(cfg.Argon2).Hash(string(pw))
	if err != nil {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(s.Out, digest)
	return 0
}
