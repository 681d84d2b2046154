package operation

import (
	"context"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// copy copies the source entry to targetPath. A missing source is an error
// here; the attempt combinator turns it into the fallback empty file.
func (e *Executor) copy(ctx context.Context, source, targetPath string) (Status, error) {
	src := e.resolveSource(source)

	exists, err := e.fs.Exists(ctx, src)
	if err != nil {
		return StatusFallback, err
	}
	if !exists {
		return StatusFallback, errors.Errorf("copy source not found: %s", src)
	}

	info, err := e.fs.Stat(ctx, src)
	if err != nil {
		return StatusFallback, err
	}

	if info.IsDir() {
		if err := e.copyDir(ctx, src, targetPath); err != nil {
			return StatusFallback, errors.Errorf("copying directory: %w", err)
		}
		return StatusCreated, nil
	}

	if err := e.fs.CopyFile(ctx, src, targetPath); err != nil {
		return StatusFallback, errors.Errorf("copying file: %w", err)
	}
	return StatusCreated, nil
}

// copyDir recursively copies the contents of src into dst, depth-first and
// one entry at a time.
func (e *Executor) copyDir(ctx context.Context, src, dst string) error {
	if err := e.fs.MkdirAll(ctx, dst); err != nil {
		return errors.Errorf("creating %s: %w", dst, err)
	}

	entries, err := e.fs.ReadDir(ctx, src)
	if err != nil {
		return errors.Errorf("listing %s: %w", src, err)
	}

	for _, entry := range entries {
		srcEntry := filepath.Join(src, entry.Name)
		dstEntry := filepath.Join(dst, entry.Name)
		if entry.IsDir {
			if err := e.copyDir(ctx, srcEntry, dstEntry); err != nil {
				return err
			}
			continue
		}
		if err := e.fs.CopyFile(ctx, srcEntry, dstEntry); err != nil {
			return errors.Errorf("copying %s: %w", srcEntry, err)
		}
	}
	return nil
}
