package commands

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/mktree/mktree/cmd/mktree/opts"
	"github.com/mktree/mktree/pkg/fsadapter"
	"github.com/mktree/mktree/pkg/operation"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [tree-file]",
		Short: "Build the tree described by a file (or stdin) under --root",
		Long: `Apply reads tree notation from the given file, or from stdin when the
argument is omitted or "-", and creates the described entries under the
root directory. Failing lines are recovered with an empty file at their
target and reported as warnings; they never abort the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			runner, err := operation.NewRunner(operation.Options{
				FS:      fsadapter.NewOS(),
				Config:  o.Config,
				Logger:  o.Logger,
				HomeDir: o.HomeDir,
				WorkDir: o.WorkDir,
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			o.Logger.Header("building " + o.Root)

			report, err := runner.Run(ctx, input, o.Root)
			if err != nil {
				return errors.Errorf("building tree: %w", err)
			}

			// Warnings are a normal outcome, not a command failure.
			if report.OK() {
				o.Logger.Successf("built %d entries under %s", report.Executed, o.Root)
			} else {
				o.Logger.Warningf("completed with %d warnings", len(report.Warnings))
			}
			return nil
		},
	}

	return cmd
}

// readInput reads the tree notation from the file argument or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Errorf("reading tree file: %w", err)
	}
	return string(data), nil
}
