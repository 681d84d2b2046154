package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// move relocates the source entry to targetPath. Anything already at the
// target is removed first to make room. The original source is deleted only
// after the data has fully landed at the target, so a failed move leaves the
// source intact and retryable.
func (e *Executor) move(ctx context.Context, source, targetPath string) (Status, error) {
	src := e.resolveSource(source)

	exists, err := e.fs.Exists(ctx, src)
	if err != nil {
		return StatusFallback, err
	}
	if !exists {
		return StatusFallback, errors.Errorf("move source not found: %s", src)
	}

	info, err := e.fs.Stat(ctx, src)
	if err != nil {
		return StatusFallback, err
	}

	targetExists, err := e.fs.Exists(ctx, targetPath)
	if err != nil {
		return StatusFallback, err
	}
	if targetExists {
		if err := e.fs.RemoveAll(ctx, targetPath); err != nil {
			return StatusFallback, errors.Errorf("clearing move target: %w", err)
		}
	}

	if info.IsDir() {
		if err := e.copyDir(ctx, src, targetPath); err != nil {
			return StatusFallback, errors.Errorf("moving directory: %w", err)
		}
		if err := e.fs.RemoveAll(ctx, src); err != nil {
			return StatusFallback, errors.Errorf("removing moved source: %w", err)
		}
		return StatusCreated, nil
	}

	// Fast path first, copy+delete when rename cannot cross the boundary.
	if err := e.fs.Rename(ctx, src, targetPath); err == nil {
		return StatusCreated, nil
	}
	if err := e.fs.CopyFile(ctx, src, targetPath); err != nil {
		return StatusFallback, errors.Errorf("moving file: %w", err)
	}
	if err := e.fs.Remove(ctx, src); err != nil {
		return StatusFallback, errors.Errorf("removing moved source: %w", err)
	}
	return StatusCreated, nil
}
