package fsadapter

import (
	"context"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🧠 Afero wraps any afero.Fs behind the Adapter interface. It is the
// backend of choice for tests and sandboxed runs.
type Afero struct {
	fs afero.Fs
}

// 🏭 NewAfero creates an adapter over an arbitrary afero filesystem.
func NewAfero(afs afero.Fs) *Afero {
	return &Afero{fs: afs}
}

// 🏭 NewMemory creates an adapter over a fresh in-memory filesystem.
func NewMemory() *Afero {
	return &Afero{fs: afero.NewMemMapFs()}
}

// Fs exposes the underlying afero filesystem, mainly for test setup.
func (a *Afero) Fs() afero.Fs {
	return a.fs
}

func (a *Afero) Exists(ctx context.Context, path string) (bool, error) {
	ok, err := afero.Exists(a.fs, path)
	if err != nil {
		return false, errors.Errorf("statting %s: %w", path, err)
	}
	return ok, nil
}

func (a *Afero) MkdirAll(ctx context.Context, path string) error {
	return a.fs.MkdirAll(path, 0755)
}

func (a *Afero) WriteFile(ctx context.Context, path string, data []byte) error {
	return afero.WriteFile(a.fs, path, data, 0644)
}

func (a *Afero) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	return a.fs.Stat(path)
}

func (a *Afero) CopyFile(ctx context.Context, src, dst string) error {
	in, err := a.fs.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := a.fs.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying bytes: %w", err)
	}

	if err := out.Close(); err != nil {
		return errors.Errorf("closing destination: %w", err)
	}
	return nil
}

func (a *Afero) Remove(ctx context.Context, path string) error {
	return a.fs.Remove(path)
}

func (a *Afero) RemoveAll(ctx context.Context, path string) error {
	return a.fs.RemoveAll(path)
}

func (a *Afero) Rename(ctx context.Context, src, dst string) error {
	return a.fs.Rename(src, dst)
}

func (a *Afero) ReadDir(ctx context.Context, path string) ([]Entry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", path, err)
	}
	entries := make([]Entry, 0, len(infos))
	for _, fi := range infos {
		entries = append(entries, Entry{Name: fi.Name(), IsDir: fi.IsDir()})
	}
	return entries, nil
}
