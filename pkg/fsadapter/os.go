package fsadapter

import (
	"context"
	"io"
	"io/fs"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 💾 OS is the production adapter, delegating to the os package.
type OS struct{}

// 🏭 NewOS creates an adapter backed by the real filesystem.
func NewOS() *OS {
	return &OS{}
}

func (*OS) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("statting %s: %w", path, err)
}

func (*OS) MkdirAll(ctx context.Context, path string) error {
	return os.MkdirAll(path, 0755)
}

func (*OS) WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func (*OS) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (*OS) CopyFile(ctx context.Context, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
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

func (*OS) Remove(ctx context.Context, path string) error {
	return os.Remove(path)
}

func (*OS) RemoveAll(ctx context.Context, path string) error {
	return os.RemoveAll(path)
}

func (*OS) Rename(ctx context.Context, src, dst string) error {
	return os.Rename(src, dst)
}

func (*OS) ReadDir(ctx context.Context, path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", path, err)
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{Name: d.Name(), IsDir: d.IsDir()})
	}
	return entries, nil
}
