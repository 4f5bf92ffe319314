package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/runner"
)

func writeFiles(t *testing.T, dir string, files ...string) {
	t.Helper()

	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("class A {}\n"), 0o644))
	}
}

func relPaths(t *testing.T, dir string, files []string) []string {
	t.Helper()

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "Main.java")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"Main.java"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "Main.java")}, files)
}

func TestDiscover_ExplicitFileIsKeptWhateverItsName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "snippet.txt")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"snippet.txt"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"Main.java",
		"src/com/example/Util.java",
		"src/com/example/util.go",
		"README.md",
		"notes.txt",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Main.java", "src/com/example/Util.java"}, relPaths(t, dir, files))
}

func TestDiscover_DefaultsToCurrentDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "A.java")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"A.java"}, relPaths(t, dir, files))
}

func TestDiscover_SkipsVendorBuildAndHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"src/A.java",
		"vendor/lib/B.java",
		"build/classes/C.java",
		"target/D.java",
		".git/E.java",
		".hidden/F.java",
		"src/.G.java",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/A.java"}, relPaths(t, dir, files))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{
			name:    "no excludes",
			exclude: nil,
			want:    []string{"gen/Gen.java", "src/A.java", "src/ATest.java"},
		},
		{
			name:    "directory prefix",
			exclude: []string{"gen/**"},
			want:    []string{"src/A.java", "src/ATest.java"},
		},
		{
			name:    "base name pattern",
			exclude: []string{"*Test.java"},
			want:    []string{"gen/Gen.java", "src/A.java"},
		},
		{
			name:    "double star suffix",
			exclude: []string{"**/A.java"},
			want:    []string{"gen/Gen.java", "src/ATest.java"},
		},
		{
			name:    "directory name",
			exclude: []string{"src"},
			want:    []string{"gen/Gen.java"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFiles(t, dir, "src/A.java", "src/ATest.java", "gen/Gen.java")

			files, err := runner.Discover(context.Background(), runner.Options{
				Paths:        []string{"."},
				WorkingDir:   dir,
				ExcludeGlobs: testCase.exclude,
			})
			require.NoError(t, err)
			assert.Equal(t, testCase.want, relPaths(t, dir, files))
		})
	}
}

func TestDiscover_DeterministicOrderingAndDeduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "z/Z.java", "a/A.java", "m/M.java")

	opts := runner.Options{
		Paths:      []string{"z", ".", "a/A.java", "a"},
		WorkingDir: dir,
	}

	first, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	second, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"a/A.java", "m/M.java", "z/Z.java"}, relPaths(t, dir, first))
	assert.Equal(t, first, second)
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "A.java")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{Paths: []string{"."}, WorkingDir: dir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	outside := t.TempDir()
	writeFiles(t, outside, "Linked.java")

	dir := t.TempDir()
	writeFiles(t, dir, "A.java")
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "linked")))

	tests := []struct {
		name   string
		follow bool
		want   int
	}{
		{name: "not followed", follow: false, want: 1},
		{name: "followed", follow: true, want: 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			files, err := runner.Discover(context.Background(), runner.Options{
				Paths:          []string{"."},
				WorkingDir:     dir,
				FollowSymlinks: testCase.follow,
			})
			require.NoError(t, err)
			assert.Len(t, files, testCase.want)
		})
	}
}
