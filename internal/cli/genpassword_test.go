package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mordor-tools/internal/config"
	"github.com/dmitrijs2005/mordor-tools/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	code int
	out  string
	err  string
}

func run(t *testing.T, fn func(context.Context, []string, Streams) int, stdin string, args ...string) runResult {
	t.Helper()
	var out, errOut bytes.Buffer
	s := Streams{In: strings.NewReader(stdin), Out: &out, Err: &errOut}
	code := fn(context.Background(), args, s)
	return runResult{code: code, out: out.String(), err: errOut.String()}
}

// cheapConfig writes a config with fast Argon2 parameters and returns its path.
func cheapConfig(t *testing.T, extra map[string]any) string {
	t.Helper()
	data := map[string]any{
		"argon2": map[string]any{
			"memory":      1024,
			"iterations":  1,
			"parallelism": 1,
		},
	}
	for k, v := range extra {
		data[k] = v
	}
	b, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func verifyDigest(t *testing.T, password, digest string) {
	t.Helper()
	ok, err := cryptox.VerifyPassword(password, digest)
	require.NoError(t, err)
	assert.True(t, ok, "digest %q does not verify", digest)
}

// useCheapConfig points genpassword at a fast-parameter config for this test.
func useCheapConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, cheapConfig(t, nil))
}

func TestGenPassword_Argument(t *testing.T) {
	useCheapConfig(t)
	res := run(t, RunGenPassword, "", "hunter2")

	require.Equal(t, 0, res.code, res.err)
	assert.NotContains(t, res.out, "hunter2")
	assert.NotContains(t, res.err, "hunter2")
	assert.Empty(t, res.err)

	lines := strings.Split(strings.TrimSuffix(res.out, "\n"), "\n")
	require.Len(t, lines, 1, "exactly one line on stdout")
	assert.True(t, strings.HasPrefix(lines[0], "$argon2id$v=19$m=1024,t=1,p=1$"))
	verifyDigest(t, "hunter2", lines[0])
}

func TestGenPassword_DefaultParams(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	res := run(t, RunGenPassword, "", "hunter2")

	require.Equal(t, 0, res.code, res.err)
	digest := strings.TrimSpace(res.out)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$m=65536,t=3,p=4$"))
	verifyDigest(t, "hunter2", digest)
}

func TestGenPassword_SoleArgumentIsAlwaysThePassword(t *testing.T) {
	tests := []string{"-x", "-h", "--help", "--foo", "-v", "-c", "--", "-", ""}

	for _, pw := range tests {
		t.Run(fmt.Sprintf("%q", pw), func(t *testing.T) {
			useCheapConfig(t)
			res := run(t, RunGenPassword, "", pw)

			require.Equal(t, 0, res.code, res.err)
			assert.Empty(t, res.err)
			verifyDigest(t, pw, strings.TrimSpace(res.out))
		})
	}
}

func TestGenPassword_TwoOrMoreArgumentsIsUsageError(t *testing.T) {
	tests := [][]string{
		{"hunter2", "extra"},
		{"a", "b", "c"},
		{"--", "x"},
		{"-c", "cfg.json"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			res := run(t, RunGenPassword, "", args...)

			assert.Equal(t, 1, res.code)
			assert.Empty(t, res.out, "nothing may be hashed or printed")
			assert.Equal(t, "Usage: genpassword [password]\n", res.err)
		})
	}
}

func TestGenPassword_PromptsWhenOmitted(t *testing.T) {
	useCheapConfig(t)
	res := run(t, RunGenPassword, "hunter2\n")

	require.Equal(t, 0, res.code, res.err)
	assert.Equal(t, "Password: ", res.err, "prompt goes to stderr")
	verifyDigest(t, "hunter2", strings.TrimSpace(res.out))
}

func TestGenPassword_PromptEOFFails(t *testing.T) {
	useCheapConfig(t)
	res := run(t, RunGenPassword, "")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.out, "must not hash an empty default password")
	assert.Contains(t, res.err, ErrNoPassword.Error())
}

func TestGenPassword_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"argon2": {"iterations": 0}}`), 0o600))
	t.Setenv(config.EnvConfigPath, path)

	res := run(t, RunGenPassword, "", "hunter2")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.out)
	assert.Contains(t, res.err, "invalid config")
}

func TestGenPassword_MissingConfigFile(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.json"))

	res := run(t, RunGenPassword, "", "hunter2")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.out)
	assert.Contains(t, res.err, "read config")
}
