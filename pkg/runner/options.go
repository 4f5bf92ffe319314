// Package runner checks many Java files concurrently.
package runner

// Options controls discovery and checking.
type Options struct {
	// Paths are the files or directories to process. Defaults to ".".
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// to match ExcludeGlobs. Defaults to the process working directory.
	WorkingDir string

	// ExcludeGlobs skip files or directories, relative to WorkingDir.
	ExcludeGlobs []string

	// IncludeGenerated checks files that look machine-generated too.
	IncludeGenerated bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs bounds the number of files checked at once. 0 or negative means
	// runtime.NumCPU().
	Jobs int
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
