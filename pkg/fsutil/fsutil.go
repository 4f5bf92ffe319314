// Package fsutil rewrites source files in place without losing edits made
// by someone else in the meantime.
package fsutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	// ErrModified is returned when a file changed between Read and Replace.
	ErrModified = errors.New("file modified since it was read")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Snapshot is the content and state of a file at the time it was read.
type Snapshot struct {
	Path    string
	Content []byte
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
	Hash    [sha256.Size]byte
}

// Read captures a file for a later Replace.
func Read(ctx context.Context, path string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Snapshot{
		Path:    path,
		Content: content,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// Modified reports whether the file on disk no longer matches the snapshot.
// A deleted file counts as modified.
func (s *Snapshot) Modified() (bool, error) {
	stat, err := os.Stat(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", s.Path, err)
	}

	if !stat.ModTime().Equal(s.ModTime) || stat.Size() != s.Size {
		return true, nil
	}

	// Same size and time can still hide an edit on coarse-grained clocks.
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return sha256.Sum256(content) != s.Hash, nil
}

// ReplaceOptions controls Replace.
type ReplaceOptions struct {
	// Backup keeps the original next to the file as Path+BackupSuffix.
	// An existing backup is never overwritten.
	Backup bool
}

// Replace writes content over the snapshotted file. It returns false without
// touching the disk when content equals what was read, and ErrModified when
// the file changed after Read.
func Replace(ctx context.Context, snap *Snapshot, content []byte, opts ReplaceOptions) (bool, error) {
	if bytes.Equal(snap.Content, content) {
		return false, nil
	}

	modified, err := snap.Modified()
	if err != nil {
		return false, err
	}
	if modified {
		return false, fmt.Errorf("%w: %s", ErrModified, snap.Path)
	}

	if opts.Backup {
		if err := createBackup(ctx, snap); err != nil {
			return false, err
		}
	}

	if err := WriteAtomic(ctx, snap.Path, content, snap.Mode); err != nil {
		return false, err
	}
	return true, nil
}
