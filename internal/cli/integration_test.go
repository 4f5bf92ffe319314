package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/internal/cli"
)

// project creates a directory holding the given files and an empty config
// file, so tests do not depend on configuration found around the temp dir.
func project(t *testing.T, files map[string]string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfgPath := filepath.Join(t.TempDir(), "jlpp.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("end_of_line: lf\n"), 0o644))
	return dir, cfgPath
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test-version", Commit: "abc123", Date: "today"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestIntegration_Print(t *testing.T) {
	t.Parallel()

	const src = "class A{ int   a ;\n}"
	dir, cfg := project(t, map[string]string{"A.java": src})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "preserved", args: []string{"print", "A.java"}, want: src},
		{name: "canonical", args: []string{"print", "--canonical", "A.java"}, want: "class A {\n    int a;\n}\n"},
		{name: "canonical with tabs", args: []string{"print", "--canonical", "--indent", "tab", "A.java"}, want: "class A {\n\tint a;\n}\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"-C", dir, "--config", cfg, "--color", "never"}, testCase.args...)
			out, err := execute(t, "", args...)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, out)
		})
	}
}

func TestIntegration_PrintMemberFromStdin(t *testing.T) {
	t.Parallel()

	dir, cfg := project(t, nil)

	out, err := execute(t, "int x = 1 ;", "-C", dir, "--config", cfg, "print", "--member", "-")
	require.NoError(t, err)
	assert.Equal(t, "int x = 1 ;", out)
}

func TestIntegration_PrintSyntaxError(t *testing.T) {
	t.Parallel()

	dir, cfg := project(t, map[string]string{"Bad.java": "class {"})

	_, err := execute(t, "", "-C", dir, "--config", cfg, "print", "Bad.java")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad.java:1:7")
	assert.Equal(t, cli.ExitInternalError, cli.ExitCodeFromError(err))
}

func TestIntegration_RoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()

		dir, cfg := project(t, map[string]string{
			"src/A.java": "package p;\n\nclass A {\n  int a = 1;\n}\n",
			"src/B.java": "class B{void f(int x){if(x>0){return;}else{x++;}}}",
			"README.md":  "# not java\n",
		})

		out, err := execute(t, "", "-C", dir, "--config", cfg, "--color", "never", "roundtrip")
		require.NoError(t, err)
		assert.Equal(t, "All files passed (2 files checked)\n", out)
	})

	t.Run("verbose summary", func(t *testing.T) {
		t.Parallel()

		dir, cfg := project(t, map[string]string{"A.java": "class A {}\n"})

		out, err := execute(t, "", "-C", dir, "--config", cfg, "--color", "never", "roundtrip", "-v", "--summary")
		require.NoError(t, err)
		assert.Contains(t, out, "  ok    A.java\n")
		assert.Contains(t, out, "Files checked:     1")
		assert.Contains(t, out, "Check passed")
	})

	t.Run("syntax error fails the run", func(t *testing.T) {
		t.Parallel()

		dir, cfg := project(t, map[string]string{
			"Good.java": "class Good {}\n",
			"Bad.java":  "class Bad {\n",
		})

		out, err := execute(t, "", "-C", dir, "--config", cfg, "--color", "never", "roundtrip", "--canonical")
		require.ErrorIs(t, err, cli.ErrCheckFailed)
		assert.Contains(t, out, "FAIL  Bad.java:")
		assert.NotContains(t, out, "Good.java")
		assert.Contains(t, out, "1 of 2 files failed\n")
	})

	t.Run("ignore patterns", func(t *testing.T) {
		t.Parallel()

		dir, cfg := project(t, map[string]string{
			"A.java":          "class A {}\n",
			"gen/Broken.java": "class {",
		})

		out, err := execute(t, "", "-C", dir, "--config", cfg, "--color", "never",
			"roundtrip", "--ignore", "gen/**")
		require.NoError(t, err)
		assert.Equal(t, "All files passed (1 file checked)\n", out)
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		dir, cfg := project(t, map[string]string{
			"Good.java": "class Good {}\n",
			"Bad.java":  "class Bad {\n",
		})

		out, err := execute(t, "", "-C", dir, "--config", cfg, "roundtrip", "--format", "json", "--compact")
		require.ErrorIs(t, err, cli.ErrCheckFailed)
		assert.Contains(t, out, `"path":"Bad.java"`)
		assert.Contains(t, out, `"kind":"syntax"`)
		assert.Contains(t, out, `"filesChecked":2`)
		assert.NotContains(t, out, "Good.java")
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		dir, cfg := project(t, map[string]string{"A.java": "class A {}\n"})

		_, err := execute(t, "", "-C", dir, "--config", cfg, "roundtrip", "--format", "xml")
		require.ErrorIs(t, err, cli.ErrInvalidUsage)
	})
}

func TestIntegration_Diff(t *testing.T) {
	t.Parallel()

	dir, cfg := project(t, map[string]string{
		"A.java":         "class A{}",
		"Canonical.java": "class Canonical {\n}\n",
	})
	base := []string{"-C", dir, "--config", cfg, "--color", "never", "diff"}

	out, err := execute(t, "", base...)
	require.NoError(t, err)
	assert.Equal(t, "diff --git a/A.java b/A.java\n"+
		"--- a/A.java\n"+
		"+++ b/A.java\n"+
		"@@ -1,1 +1,2 @@\n"+
		"-class A{}\n"+
		"+class A {\n"+
		"+}\n", out)

	_, err = execute(t, "", append(base, "--exit-code")...)
	require.ErrorIs(t, err, cli.ErrCheckFailed)

	out, err = execute(t, "", append(base, "--exit-code", "Canonical.java")...)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestIntegration_Format(t *testing.T) {
	t.Parallel()

	t.Run("check leaves files alone", func(t *testing.T) {
		t.Parallel()

		dir, cfg := project(t, map[string]string{"A.java": "class A{}"})

		out, err := execute(t, "", "-C", dir, "--config", cfg, "--color", "never", "format", "--check")
		require.ErrorIs(t, err, cli.ErrCheckFailed)
		assert.Equal(t, "would reformat A.java\n", out)
		assert.Equal(t, "class A{}", readFile(t, filepath.Join(dir, "A.java")))
	})

	t.Run("rewrites with backup", func(t *testing.T) {
		t.Parallel()

		dir, cfg := project(t, map[string]string{
			"A.java": "class A{int a;}",
			"B.java": "class B {\n}\n",
		})

		out, err := execute(t, "", "-C", dir, "--config", cfg, "--color", "never", "format", "--backup")
		require.NoError(t, err)
		assert.Equal(t, "formatted A.java\n", out)
		assert.Equal(t, "class A {\n    int a;\n}\n", readFile(t, filepath.Join(dir, "A.java")))
		assert.Equal(t, "class A{int a;}", readFile(t, filepath.Join(dir, "A.java.jlpp.orig")))
		assert.Equal(t, "class B {\n}\n", readFile(t, filepath.Join(dir, "B.java")))

		out, err = execute(t, "", "-C", dir, "--config", cfg, "--color", "never", "format", "--check")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := execute(t, "", "-C", dir, "init")
	require.NoError(t, err)
	assert.Equal(t, "created .jlpp.yml\n", out)
	assert.Contains(t, readFile(t, filepath.Join(dir, ".jlpp.yml")), "# jlpp configuration")

	_, err = execute(t, "", "-C", dir, "init")
	require.ErrorIs(t, err, cli.ErrInvalidUsage)

	_, err = execute(t, "", "-C", dir, "init", "--force", "--full")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, filepath.Join(dir, ".jlpp.yml")), "\nindent: \"    \"\n")

	// The generated file is picked up by the project config search.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.java"), []byte("class A{int a;}"), 0o644))
	out, err = execute(t, "", "-C", dir, "print", "--canonical", "A.java")
	require.NoError(t, err)
	assert.Equal(t, "class A {\n    int a;\n}\n", out)
}

func TestIntegration_Errors(t *testing.T) {
	t.Parallel()

	dir, cfg := project(t, map[string]string{"A.java": "class A {}\n"})

	badConfig := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(badConfig, []byte("indent: \"x\"\n"), 0o644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "bad color", args: []string{"--config", cfg, "--color", "sometimes", "roundtrip"}, want: cli.ExitInvalidUsage},
		{name: "bad eol", args: []string{"--config", cfg, "print", "--eol", "lfcr", "A.java"}, want: cli.ExitInvalidUsage},
		{name: "invalid config", args: []string{"--config", badConfig, "roundtrip"}, want: cli.ExitConfigError},
		{name: "missing config", args: []string{"--config", filepath.Join(dir, "nope.yml"), "roundtrip"}, want: cli.ExitConfigError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "", append([]string{"-C", dir}, testCase.args...)...)
			require.Error(t, err)
			assert.Equal(t, testCase.want, cli.ExitCodeFromError(err))
		})
	}
}

func TestIntegration_Version(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "jlpp")
	assert.Contains(t, out, "test-version")
	assert.Contains(t, out, "abc123")
}
