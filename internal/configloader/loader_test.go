package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/internal/configloader"
	"github.com/ftomassetti/javaparser/pkg/config"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func baseOptions(dir string) configloader.LoadOptions {
	return configloader.LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		LookupEnv:        noEnv,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	result, err := configloader.Load(context.Background(), baseOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, ".jlpp.yml"), "indent: \"\\t\"\nend_of_line: crlf\nindent_inserted: false\n")

	nested := filepath.Join(root, "src", "main", "java")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := configloader.Load(context.Background(), baseOptions(nested))
	require.NoError(t, err)

	assert.Equal(t, "\t", result.Config.Indent)
	assert.Equal(t, config.EOLCRLF, result.Config.EndOfLine)
	assert.False(t, result.Config.IndentInserted)
	assert.Equal(t, []string{filepath.Join(root, ".jlpp.yml")}, result.LoadedFrom)
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".jlpp.yml"), "indent: \"\\t\"\n")
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	path, err := configloader.FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeFile(t, filepath.Join(dir, ".jlpp.yml"), "indent: \"  \"\nend_of_line: cr\nignore: [\"a/**\"]\n")
	explicit := filepath.Join(dir, "other.yml")
	writeFile(t, explicit, "end_of_line: crlf\n")

	jobs := 2
	opts := baseOptions(dir)
	opts.ExplicitPath = explicit
	opts.LookupEnv = envOf(map[string]string{"JLPP_INDENT": "tab", "JLPP_JOBS": "4"})
	opts.Flags = &configloader.Overrides{Jobs: &jobs}

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "\t", result.Config.Indent)
	assert.Equal(t, config.EOLCRLF, result.Config.EndOfLine)
	assert.Equal(t, []string{"a/**"}, result.Config.Ignore)
	assert.Equal(t, 2, result.Config.Jobs)
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{name: "unknown key", file: "flavor: gfm\n", wantErr: "flavor"},
		{name: "bad eol in file", file: "end_of_line: native\n", wantErr: ".jlpp.yml: end_of_line"},
		{name: "bad indent", file: "indent: \"x\"\n", wantErr: "only spaces and tabs"},
		{name: "bad glob", file: "ignore: [\"[\"]\n", wantErr: "ignore[0]"},
		{name: "bad env eol", env: map[string]string{"JLPP_EOL": "native"}, wantErr: "JLPP_EOL"},
		{name: "bad env jobs", env: map[string]string{"JLPP_JOBS": "many"}, wantErr: "JLPP_JOBS"},
		{name: "negative jobs", env: map[string]string{"JLPP_JOBS": "-1"}, wantErr: "jobs must be >= 0"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
			if testCase.file != "" {
				writeFile(t, filepath.Join(dir, ".jlpp.yml"), testCase.file)
			}

			opts := baseOptions(dir)
			opts.LookupEnv = envOf(testCase.env)

			_, err := configloader.Load(context.Background(), opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.wantErr)
		})
	}
}

func TestLoad_ValidationErrorsAreTyped(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Indent = ""
	cfg.Jobs = -1

	err := configloader.Validate(cfg)
	require.ErrorIs(t, err, configloader.ErrInvalidConfig)

	var validationErr *configloader.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "indent", validationErr.Field)
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := configloader.Load(ctx, baseOptions(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	overrides, err := configloader.FromEnv(envOf(map[string]string{
		"JLPP_INDENT":          "2",
		"JLPP_INDENT_INSERTED": "false",
		"JLPP_IGNORE":          " gen/** , ,build/**",
		"JLPP_EOL":             "",
	}))
	require.NoError(t, err)

	cfg := overrides.Apply(config.NewConfig())
	assert.Equal(t, "  ", cfg.Indent)
	assert.False(t, cfg.IndentInserted)
	assert.Equal(t, []string{"gen/**", "build/**"}, cfg.Ignore)
	assert.Equal(t, config.EOLLF, cfg.EndOfLine)
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	first, second := "\t", "  "
	off := false

	base := config.NewConfig()
	merged := configloader.MergeAll(base,
		&configloader.Overrides{Indent: &first, Ignore: []string{"a"}},
		nil,
		&configloader.Overrides{Indent: &second, IndentInserted: &off},
	)

	assert.Equal(t, "  ", merged.Indent)
	assert.False(t, merged.IndentInserted)
	assert.Equal(t, []string{"a"}, merged.Ignore)
	assert.Equal(t, config.DefaultIndent, base.Indent)
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := configloader.ListEnvVars()
	for _, name := range []string{"JLPP_INDENT", "JLPP_EOL", "JLPP_JOBS", "JLPP_INDENT_INSERTED", "JLPP_IGNORE"} {
		assert.Contains(t, vars, name)
	}
}
