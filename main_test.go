package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	color.NoColor = true
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"cslim"}, args...))
	return out.String(), err
}

func writeSource(t *testing.T, dir, name, src string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func exitCode(err error) int {
	if ec, ok := err.(cli.ExitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}

func TestBuildSuccess(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.cs", "#include \"std.cs\";\n{\n\tbreak;\n}\n")
	b := writeSource(t, dir, "b.cs", "// nothing but a comment\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	out, err := runApp(t, "build", "-v", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS! Compiled all 2 input files")

	out, err = runApp(t, "build", a, b)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBuildMissingConfig(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.cs", "break;\n")

	_, err := runApp(t, "build", "-c", dir, a)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, err.Error(), "Error loading config")
}

func TestBuildFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.cs", "{ break; }\n")
	bad := writeSource(t, dir, "bad.cs", "\n}\n")
	missing := filepath.Join(dir, "missing.cs")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	out, err := runApp(t, "build", "--verbose", good, bad, missing)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, err.Error(), "FAILURE! Successfully compiled 1 out of 3 input files")
	assert.Contains(t, out, "bad.cs:2:")
	assert.Contains(t, out, "failed to open file")

	_, err = runApp(t, "build", good, bad)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Empty(t, err.Error())
}

func TestBuildNoInput(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	_, err = runApp(t, "build")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No input files specified")
}

func TestInitThenBuildProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")

	out, err := runApp(t, "init", "-y", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized project demo")
	writeSource(t, dir, "src/main.cs", "{\n\tbreak;\n}\n")

	out, err = runApp(t, "build", "-c", dir, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS! Compiled all 1 input files")
}

func TestTokens(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "t.cs", "x = 1.5;\n")

	out, err := runApp(t, "tokens", path)
	require.NoError(t, err)
	assert.Contains(t, out, `@1 Ident   "x"`)
	assert.Contains(t, out, `@1 Float   "1.5"`)
	assert.Contains(t, out, `@1 End     ";"`)

	bad := writeSource(t, dir, "bad.cs", "x;\n@\n")
	_, err = runApp(t, "tokens", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid expression")

	_, err = runApp(t, "tokens")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No file specified")
}
