package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/mktree/mktree/pkg/config"
	"github.com/mktree/mktree/pkg/fsadapter"
	"github.com/mktree/mktree/pkg/log"
	"github.com/mktree/mktree/pkg/parser"
)

// 🔧 Options contains configuration for the runner
type Options struct {
	// FS is the storage backend (required)
	FS fsadapter.Adapter
	// Config is the per-run options record (defaults to zero config)
	Config *config.Config
	// Logger is the console logger (defaults to discard)
	Logger *log.Logger
	// HomeDir anchors "~" sources (defaults to the process home)
	HomeDir string
	// WorkDir anchors relative copy/move sources (defaults to the process cwd)
	WorkDir string
}

// 🎮 Runner interprets parsed lines against a directory stack and hands each
// operation to the executor. The stack is the only state carried across
// lines and lives only for the duration of one Run call.
type Runner struct {
	fs       fsadapter.Adapter
	cfg      *config.Config
	logger   *log.Logger
	parser   *parser.Parser
	executor *Executor
}

// 🏭 NewRunner creates a new runner with the given options.
func NewRunner(opts Options) (*Runner, error) {
	if opts.FS == nil {
		return nil, errors.Errorf("fs adapter is required")
	}
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewDiscard()
	}
	if opts.HomeDir == "" {
		opts.HomeDir, _ = os.UserHomeDir()
	}
	if opts.WorkDir == "" {
		opts.WorkDir, _ = os.Getwd()
	}
	return &Runner{
		fs:       opts.FS,
		cfg:      opts.Config,
		logger:   opts.Logger,
		parser:   parser.New(opts.HomeDir),
		executor: NewExecutor(opts.FS, opts.WorkDir),
	}, nil
}

// 🏃 Run processes the whole input against root. The returned error is
// non-nil only when the root directory itself cannot be created; every
// per-line failure is recovered and recorded in the report instead.
func (r *Runner) Run(ctx context.Context, input, root string) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	if err := r.fs.MkdirAll(ctx, root); err != nil {
		return nil, errors.Errorf("creating root directory %s: %w", root, err)
	}

	report := &Report{}
	stack := []string{root}

	for i, raw := range strings.Split(input, "\n") {
		lineNum := i + 1
		raw = strings.TrimSuffix(raw, "\r")

		line := r.parser.Parse(raw)
		if line.Op == nil {
			continue
		}
		report.Lines++

		// An operation at level L always lands inside stack[L]. Deeper
		// branches abandoned by this line are dropped from bookkeeping
		// only; nothing is removed from disk. The root never pops, and a
		// level deeper than the stack resolves against the current top.
		for len(stack) > line.Level+1 {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]

		name := r.substituteName(ctx, line.Op)
		target := filepath.Join(parent, name)

		rel, err := filepath.Rel(root, target)
		if err != nil {
			rel = target
		}

		if r.cfg.Ignored(rel) {
			logger.Debug().Str("entry", rel).Msg("entry matches ignore pattern")
			r.logger.Infof("ignoring %s", rel)
			// The path still occupies its stack slot so deeper lines keep
			// their meaning; it is only materialized if a child needs it.
			if line.Op.Kind == parser.KindCreateDirectory {
				stack = append(stack, target)
			}
			continue
		}

		res := r.executor.Execute(ctx, line.Op, target)
		report.Executed++

		r.logger.LogEntryOperation(ctx, log.EntryOperation{
			Path:       rel,
			Kind:       line.Op.Kind.String(),
			IsCreated:  res.Status == StatusCreated,
			IsSkipped:  res.Status == StatusSkipped,
			IsFallback: res.Status == StatusFallback,
		})

		if res.Warning != nil {
			warning := Warning{Line: lineNum, Path: target, Err: res.Warning}
			report.Warnings = append(report.Warnings, warning)
			r.logger.Warning(warning.String())
			logger.Warn().Int("line", lineNum).Str("target", target).Err(res.Warning).Msg("operation recovered with fallback")
		}

		// Only a directory that actually materialized opens a new level.
		if line.Op.Kind == parser.KindCreateDirectory && res.Status != StatusFallback {
			stack = append(stack, res.Path)
		}
	}

	logger.Debug().
		Int("lines", report.Lines).
		Int("executed", report.Executed).
		Int("warnings", len(report.Warnings)).
		Msg("run complete")
	return report, nil
}

// substituteName applies the configured search/replace to the entry name,
// picking the file or folder flag by what the entry will become. Copy and
// move targets take their identity from the source: a directory source makes
// a directory entry.
func (r *Runner) substituteName(ctx context.Context, op *parser.Op) string {
	switch op.Kind {
	case parser.KindCreateDirectory:
		return r.cfg.SubstituteFolderName(op.Name)
	case parser.KindCreateFile:
		return r.cfg.SubstituteFileName(op.Name)
	default:
		if r.executor.SourceIsDir(ctx, op) {
			return r.cfg.SubstituteFolderName(op.Name)
		}
		return r.cfg.SubstituteFileName(op.Name)
	}
}

// 🎯 Run is the programmatic entry point: it builds the tree described by
// input under root on the real filesystem. Per-line failures never surface
// as an error, only in the report.
func Run(ctx context.Context, input, root string, cfg *config.Config) (*Report, error) {
	runner, err := NewRunner(Options{FS: fsadapter.NewOS(), Config: cfg})
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, input, root)
}
