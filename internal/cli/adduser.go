package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/mordor-tools/internal/common"
	"github.com/dmitrijs2005/mordor-tools/internal/config"
	"github.com/dmitrijs2005/mordor-tools/internal/cryptox"
	"github.com/dmitrijs2005/mordor-tools/internal/dbx"
	"github.com/dmitrijs2005/mordor-tools/internal/flagx"
	"github.com/dmitrijs2005/mordor-tools/internal/logging"
	"github.com/dmitrijs2005/mordor-tools/internal/repomanager"
	"github.com/dmitrijs2005/mordor-tools/internal/services"
)

const addUserUsage = "Usage: adduser [-d database-file] [-c config] [-v] username [password]"

// RunAddUser implements the adduser command and returns its exit status.
//
//	adduser [flags] <username> [password]
//
// The password is prompted for when omitted. Prints the target, inserts one
// basic_login_user row and prints the id the store assigned to it.
func RunAddUser(ctx context.Context, args []string, s Streams) int {
	fs, cf := newFlagSet("adduser", addUserUsage, s.Err)

	var databaseFile string
	fs.StringVar(&databaseFile, "d", "", "the database file to use (short)")
	fs.StringVar(&databaseFile, "database-file", "", "the database file to use (default from config)")

	pos, code, ok := parseArgs(fs, args)
	if !ok {
		return code
	}

	if len(pos) < 1 || len(pos) > 2 {
		fmt.Fprintln(s.Err, addUserUsage)
		return 1
	}
	username := pos[0]
	if strings.TrimSpace(username) == "" {
		fmt.Fprintf(s.Err, "Error: %v\n", fmt.Errorf("%w: %w", common.ErrUsage, common.ErrEmptyUsername))
		fmt.Fprintln(s.Err, addUserUsage)
		return 1
	}

	cfg, err := loadConfig(cf.configPath, func(c *config.Config) {
		if flagx.AnySet(fs, "d", "database-file") {
			c.DatabaseFile = databaseFile
		}
	})
	if err != nil {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		return 1
	}

	log := logging.New(s.Err, cf.verbose)

	pw, err := passwordSource(pos[1:], s).Password()
	if err != nil {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		return 1
	}
	defer common.WipeByteArray(pw)

	fmt.Fprintf(s.Out, "Adding user %s to database %s\n", username, displayLocation(cfg.DatabaseFile))

	id, err := addUser(ctx, cfg, username, string(pw), log)
	if err != nil {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(s.Out, "User ID %d has been created\n", id)
	return 0
}

// addUser owns the store connection for the duration of one insert.
func addUser(ctx context.Context, cfg *config.Config, username, password string, log logging.Logger) (int64, error) {
	db, dialect, err := dbx.Open(ctx, cfg.DatabaseFile)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	m, err := repomanager.ForDialect(dialect)
	if err != nil {
		return 0, err
	}

	log = log.With("dialect", string(dialect))
	log.Debug(ctx, "store opened", "argon2", cfg.Argon2.String())

	svc := services.NewUserService(db, m, cryptox.NewPasswordHasher(cfg.Argon2), log)
	return svc.AddUser(ctx, username, password)
}

// displayLocation hides the password of a DSN before it is printed.
func displayLocation(location string) string {
	if dbx.DetectDialect(location) != dbx.DialectPostgres {
		return location
	}
	u, err := url.Parse(location)
	if err != nil {
		return location
	}
	return u.Redacted()
}
