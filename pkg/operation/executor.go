package operation

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/mktree/mktree/pkg/fsadapter"
	"github.com/mktree/mktree/pkg/parser"
)

// 🔧 Executor performs one filesystem operation at a resolved target path.
// WorkDir anchors relative copy/move sources; it is injected so the executor
// never reads process globals.
type Executor struct {
	fs      fsadapter.Adapter
	workDir string
}

// 🏭 NewExecutor creates an executor over the given adapter.
func NewExecutor(fs fsadapter.Adapter, workDir string) *Executor {
	return &Executor{fs: fs, workDir: workDir}
}

// 🏃 Execute runs op against targetPath. It never returns an error: every
// failure is converted into a fallback empty file at targetPath and surfaced
// through the Result's Warning field.
func (e *Executor) Execute(ctx context.Context, op *parser.Op, targetPath string) Result {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("kind", op.Kind.String()).
		Str("target", targetPath).
		Str("source", op.SourcePath).
		Msg("executing operation")

	return e.attempt(ctx, targetPath, func() (Status, error) {
		// Every kind wants its parent directory chain in place first.
		if err := e.fs.MkdirAll(ctx, filepath.Dir(targetPath)); err != nil {
			return StatusFallback, errors.Errorf("creating parent directories: %w", err)
		}

		switch op.Kind {
		case parser.KindCreateFile:
			return e.createFile(ctx, targetPath)
		case parser.KindCreateDirectory:
			return e.createDirectory(ctx, targetPath)
		case parser.KindCopy:
			return e.copy(ctx, op.SourcePath, targetPath)
		case parser.KindMove:
			return e.move(ctx, op.SourcePath, targetPath)
		default:
			return StatusFallback, errors.Errorf("unknown operation kind: %d", op.Kind)
		}
	})
}

// 🛟 attempt runs fn and applies the uniform fallback policy: on any error
// an empty file is left at targetPath (best effort, existing entries are
// never clobbered) and the error comes back as a warning, never as a
// run-aborting failure.
func (e *Executor) attempt(ctx context.Context, targetPath string, fn func() (Status, error)) Result {
	status, err := fn()
	if err == nil {
		return Result{Path: targetPath, Status: status}
	}

	if fberr := e.ensureEmptyFile(ctx, targetPath); fberr != nil {
		err = errors.Errorf("%w (fallback file failed too: %v)", err, fberr)
	}
	return Result{Path: targetPath, Status: StatusFallback, Warning: err}
}

// createFile creates an empty file unless something is already there.
func (e *Executor) createFile(ctx context.Context, targetPath string) (Status, error) {
	exists, err := e.fs.Exists(ctx, targetPath)
	if err != nil {
		return StatusFallback, err
	}
	if exists {
		return StatusSkipped, nil
	}
	if err := e.fs.WriteFile(ctx, targetPath, nil); err != nil {
		return StatusFallback, errors.Errorf("creating file: %w", err)
	}
	return StatusCreated, nil
}

// createDirectory creates the directory if absent. Both the created and the
// already-there case count as success so the runner can nest under it.
func (e *Executor) createDirectory(ctx context.Context, targetPath string) (Status, error) {
	exists, err := e.fs.Exists(ctx, targetPath)
	if err != nil {
		return StatusFallback, err
	}
	if exists {
		info, err := e.fs.Stat(ctx, targetPath)
		if err != nil {
			return StatusFallback, err
		}
		if !info.IsDir() {
			return StatusFallback, errors.Errorf("%s exists and is not a directory", targetPath)
		}
		return StatusSkipped, nil
	}
	if err := e.fs.MkdirAll(ctx, targetPath); err != nil {
		return StatusFallback, errors.Errorf("creating directory: %w", err)
	}
	return StatusCreated, nil
}

// ensureEmptyFile is the fallback artifact: an empty file at targetPath,
// written only when nothing exists there yet.
func (e *Executor) ensureEmptyFile(ctx context.Context, targetPath string) error {
	if err := e.fs.MkdirAll(ctx, filepath.Dir(targetPath)); err != nil {
		return err
	}
	exists, err := e.fs.Exists(ctx, targetPath)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return e.fs.WriteFile(ctx, targetPath, nil)
}

// resolveSource anchors a relative source path against the injected working
// directory. Home expansion already happened at parse time.
func (e *Executor) resolveSource(source string) string {
	if filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(e.workDir, source)
}

// 🔍 SourceIsDir reports whether op's source resolves to an existing
// directory. A missing or unreadable source counts as a file, which matches
// the fallback the executor would take anyway.
func (e *Executor) SourceIsDir(ctx context.Context, op *parser.Op) bool {
	if op.SourcePath == "" {
		return false
	}
	info, err := e.fs.Stat(ctx, e.resolveSource(op.SourcePath))
	if err != nil {
		return false
	}
	return info.IsDir()
}
