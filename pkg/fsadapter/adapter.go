// Package fsadapter defines the capability interface between the tree
// builder and its storage backend, plus the two stock implementations
// (real disk and afero-backed memory).
package fsadapter

import (
	"context"
	"io/fs"
)

// 📁 Entry is a single directory listing entry.
type Entry struct {
	Name  string // base name, no path separators
	IsDir bool   // whether the entry is a directory
}

// 🔌 Adapter is the only boundary a host environment must implement to
// retarget the tree builder to a different storage backend. Methods are
// uniformly synchronous from the caller's perspective; implementations that
// talk to remote storage should honor ctx.
type Adapter interface {
	// Exists reports whether anything (file or directory) is at path
	Exists(ctx context.Context, path string) (bool, error)
	// MkdirAll creates the directory at path along with missing ancestors
	MkdirAll(ctx context.Context, path string) error
	// WriteFile writes data to path, creating or truncating it
	WriteFile(ctx context.Context, path string, data []byte) error
	// Stat returns file info for path; callers mostly care about IsDir
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	// CopyFile copies the bytes of the file at src to dst
	CopyFile(ctx context.Context, src, dst string) error
	// Remove deletes the file or empty directory at path
	Remove(ctx context.Context, path string) error
	// RemoveAll deletes path and everything under it
	RemoveAll(ctx context.Context, path string) error
	// Rename moves src to dst; may fail across devices
	Rename(ctx context.Context, src, dst string) error
	// ReadDir lists the entries of the directory at path
	ReadDir(ctx context.Context, path string) ([]Entry, error)
}
