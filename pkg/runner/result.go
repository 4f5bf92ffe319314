package runner

import "time"

// FileOutcome is the result of checking one file.
type FileOutcome struct {
	// Path is the absolute path of the file.
	Path string

	// Error is the checker's finding, or nil if the file passed.
	Error error

	// ReadError is set when the file could not be read at all.
	ReadError error

	// Duration is how long the check took.
	Duration time.Duration
}

// Passed reports whether the file was read and checked without findings.
func (o FileOutcome) Passed() bool {
	return o.Error == nil && o.ReadError == nil
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesChecked is the number of files the checker ran on.
	FilesChecked int

	// FilesFailed is the number of checked files with a finding.
	FilesFailed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed or could not be read.
func (r *Result) HasFailures() bool {
	return r.Stats.FilesFailed > 0 || r.Stats.FilesErrored > 0
}

// Failed returns the outcomes that did not pass, in path order.
func (r *Result) Failed() []FileOutcome {
	var failed []FileOutcome
	for _, outcome := range r.Files {
		if !outcome.Passed() {
			failed = append(failed, outcome)
		}
	}
	return failed
}

func (r *Result) accumulate(outcome FileOutcome) {
	if outcome.ReadError != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesChecked++
	if outcome.Error != nil {
		r.Stats.FilesFailed++
	}
}
