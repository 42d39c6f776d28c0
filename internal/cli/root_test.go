package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/store"
	"github.com/idilsaglam/todos/internal/store/jsonstore"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "todo", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"add", "ls", "done", "rm", "tui"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "storage", "data", "key", "theme", "color"} {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "", f.DefValue)
	}
	v := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
}

// sandbox isolates config discovery and returns a data file path.
func sandbox(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"TODOS_STORAGE", "TODOS_DATA", "TODOS_KEY", "TODOS_THEME", "TODOS_LOG_LEVEL", "TODOS_COLOR"} {
		t.Setenv(k, "")
	}
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("NO_COLOR", "")
	dir := t.TempDir()
	chdir(t, dir)
	return filepath.Join(dir, "todos.json")
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(append([]string{"--theme", "mono"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestAddListToggleRemove(t *testing.T) {
	data := sandbox(t)

	code, out, _ := run(t, "add", "buy", "milk")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "added")

	code, _, _ = run(t, "add", "walk the dog")
	require.Equal(t, ExitOK, code)

	code, out, _ = run(t, "ls")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, " 1. [ ] buy milk")
	assert.Contains(t, out, " 2. [ ] walk the dog")
	assert.Contains(t, out, "Total 2")

	code, out, _ = run(t, "done", "2")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "toggled")

	code, out, _ = run(t, "ls", "--group")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, " 2. [x] walk the dog")

	code, _, _ = run(t, "rm", "1")
	require.Equal(t, ExitOK, code)

	todos, err := store.NewAdapter(jsonstore.Open(data), "", nil).Load()
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "walk the dog", todos[0].Todo)
	assert.True(t, todos[0].Complete)
}

func TestStorageFileFormat(t *testing.T) {
	data := sandbox(t)
	code, _, _ := run(t, "add", "x")
	require.Equal(t, ExitOK, code)

	b, err := os.ReadFile(data)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"_$-todos_"`)
	assert.Contains(t, string(b), `\"todo\":\"x\"`)
	assert.Contains(t, string(b), `\"complete\":false`)
}

func TestSQLiteBackend(t *testing.T) {
	sandbox(t)
	db := filepath.Join(t.TempDir(), "list.sqlite")

	code, _, errOut := run(t, "--storage", "sqlite", "--data", db, "add", "from sqlite")
	require.Equal(t, ExitOK, code, errOut)

	code, out, _ := run(t, "--storage", "sqlite", "--data", db, "ls")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "from sqlite")
}

func TestUsageErrors(t *testing.T) {
	sandbox(t)
	run(t, "add", "only one")

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, ""},
		{"unknown subcommand", []string{"frobnicate"}, "unknown subcommand: frobnicate"},
		{"add nothing", []string{"add"}, "usage: todo add"},
		{"add blank", []string{"add", "   "}, "add: empty text"},
		{"done not a number", []string{"done", "two"}, "done: not a number: two"},
		{"rm out of range", []string{"rm", "5"}, "index out of range: have 1, got 5"},
		{"done zero", []string{"done", "0"}, "index out of range"},
		{"bad storage", []string{"--storage", "redis", "ls"}, "invalid storage"},
		{"bad flag", []string{"ls", "--nope"}, "unknown flag"},
		{"bad color", []string{"--color", "sometimes", "ls"}, "invalid color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := run(t, tc.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, errOut, tc.want)
		})
	}

	code, out, _ := run(t, "ls")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Total 1")
}

func TestOutOfRangeHint(t *testing.T) {
	sandbox(t)
	_, _, errOut := run(t, "done", "3")
	assert.Contains(t, errOut, "Hint: run `todo ls`")
}

func TestInvalidStoredDataIsEmpty(t *testing.T) {
	data := sandbox(t)
	require.NoError(t, os.WriteFile(data, []byte(`{"_$-todos_": "not json"}`), 0o644))

	code, out, errOut := run(t, "ls")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "no todos")
	assert.Contains(t, errOut, "ignoring stored todos")
}

func TestCorruptFileIsRuntimeError(t *testing.T) {
	data := sandbox(t)
	require.NoError(t, os.WriteFile(data, []byte(`{`), 0o644))
	code, _, errOut := run(t, "ls")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "json unmarshal")
}

func TestConfigFileSelectsKey(t *testing.T) {
	sandbox(t)
	require.NoError(t, os.WriteFile("todos.toml", []byte(`key = "work"`), 0o644))

	code, _, _ := run(t, "add", "ship it")
	require.Equal(t, ExitOK, code)

	todos, err := store.NewAdapter(jsonstore.Open("todos.json"), "work", nil).Load()
	require.NoError(t, err)
	require.Len(t, todos, 1)

	other, err := store.NewAdapter(jsonstore.Open("todos.json"), "", nil).Load()
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestColorFlag(t *testing.T) {
	sandbox(t)
	colored := func(args ...string) string {
		var out, errOut bytes.Buffer
		code := Run(append([]string{"--theme", "classic"}, args...), &out, &errOut)
		require.Equal(t, ExitOK, code, errOut.String())
		return out.String()
	}

	assert.Contains(t, colored("--color", "always", "add", "tea"), "\033[")
	assert.NotContains(t, colored("add", "cake"), "\033[", "a buffer is not a terminal")

	t.Setenv("CLICOLOR_FORCE", "1")
	assert.Contains(t, colored("ls"), "\033[")
	assert.NotContains(t, colored("--color", "never", "ls"), "\033[")
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() { _ = os.Chdir(old) })
}
