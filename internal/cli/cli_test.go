package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return ExitMatch
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		args []string
		out  string
		code int
	}{
		{[]string{"match", "(ab)*", "ababab"}, "accept\n", ExitMatch},
		{[]string{"match", "ab*", ""}, "reject\n", ExitNoMatch},
		{[]string{"match", "--accept_walk", "a|b", "b"}, "accept\n", ExitMatch},
		{[]string{"match", "--trace", "--log_level", "debug", "a+", "aa"}, "accept\n", ExitMatch},
	}
	for _, tc := range tests {
		out, err := execute(t, tc.args...)
		require.Equal(t, tc.out, out, "%v", tc.args)
		require.Equal(t, tc.code, exitCode(err), "%v", tc.args)
	}
}

func TestMatchCommandErrors(t *testing.T) {
	_, err := execute(t, "match", "a#b", "a")
	require.Equal(t, ExitError, exitCode(err))
	require.Contains(t, err.Error(), `'#' at position 1`)

	_, err = execute(t, "match", "(a", "a")
	require.Equal(t, ExitError, exitCode(err))
	require.Contains(t, err.Error(), "expected GROUP_END, found END_OF_INPUT at position 2")

	_, err = execute(t, "match", "a")
	require.Equal(t, ExitError, exitCode(err))

	_, err = execute(t, "--log_level", "loud", "match", "a", "a")
	require.Equal(t, ExitError, exitCode(err))
}

func TestTokensCommand(t *testing.T) {
	out, err := execute(t, "tokens", "a|b*")
	require.NoError(t, err)
	require.Equal(t,
		"LITERAL      a 0\n"+
			"ALTERNATION  | 1\n"+
			"LITERAL      b 2\n"+
			"KLEENE_STAR  * 3\n", out)
}

func TestASTCommand(t *testing.T) {
	out, err := execute(t, "ast", "ab|c")
	require.NoError(t, err)
	require.Equal(t, "ALTERNATION\n  CONCAT\n    LITERAL a\n    LITERAL b\n  LITERAL c\n", out)

	out, err = execute(t, "ast", "--format", "sexpr", "(a)+")
	require.NoError(t, err)
	require.Equal(t, "(plus (group a))\n", out)

	out, err = execute(t, "ast", "--format", "yaml", "a*")
	require.NoError(t, err)
	require.Equal(t, "kind: KLEENE_STAR\nchildren:\n  - kind: LITERAL\n    value: a\n", out)

	_, err = execute(t, "ast", "--format", "xml", "a")
	require.Error(t, err)
}

func TestDotCommand(t *testing.T) {
	out, err := execute(t, "dot", "a")
	require.NoError(t, err)
	require.Contains(t, out, `n0 -> n1 [label="a"];`)

	path := filepath.Join(t.TempDir(), "a.dot")
	out, err = execute(t, "dot", "-o", path, "a")
	require.NoError(t, err)
	require.Equal(t, "DOT written to "+path+"\n", out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph G {")
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	pass := filepath.Join(dir, "pass.rx")
	require.NoError(t, os.WriteFile(pass, []byte(`
pattern ab = "(ab)*";
expect ab "abab" accept;
expect "a?" "aa" reject;
`), 0o644))

	out, err := execute(t, "run", pass)
	require.NoError(t, err)
	require.Equal(t, "2 passed, 0 failed\n", out)

	fail := filepath.Join(dir, "fail.rx")
	require.NoError(t, os.WriteFile(fail, []byte(`expect "a+" "" accept;`), 0o644))
	out, err = execute(t, "run", pass, fail)
	require.Equal(t, ExitNoMatch, exitCode(err))
	require.Contains(t, out, "2 passed, 1 failed\n")

	_, err = execute(t, "run", filepath.Join(dir, "missing.rx"))
	require.Equal(t, ExitError, exitCode(err))
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "regexnfa.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: sexpr\n"), 0o644))

	out, err := execute(t, "--config", cfg, "ast", "ab")
	require.NoError(t, err)
	require.Equal(t, "(concat a b)\n", out)
}
