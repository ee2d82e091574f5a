package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hbslint/internal/runner"
)

func execute(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	code = runner.ExitOK
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.ExecuteContext(t.Context())
	return code, out.String(), errOut.String(), err
}

func TestRootLintsStdin(t *testing.T) {
	code, stdout, _, err := execute(t, "this.render(hbs`{{a b=b c=c}}`);", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, runner.ExitLintErrors, code)
	assert.Contains(t, stdout, "<stdin>:1:1: error:")
	assert.Contains(t, stdout, "4 problems (4 errors, 0 warnings)")
}

func TestRootUnknownFormat(t *testing.T) {
	_, _, stderr, err := execute(t, "", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, stderr, "unknown format")
}

func TestRootVersion(t *testing.T) {
	_, stdout, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "hbslint dev (none) unknown\n", stdout)
}

func TestRulesCommand(t *testing.T) {
	_, stdout, _, err := execute(t, "", "rules")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"RULE", "SEVERITY", "DESCRIPTION"}, strings.Fields(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "template-render-format"))
	assert.Contains(t, lines[1], "error")
}

func TestRulesCommandUsesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "hbslint.yml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("lint:\n  rules:\n    template-render-format: \"off\"\n"), 0o644))

	_, stdout, _, err := execute(t, "", "rules", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, " off ")
}
