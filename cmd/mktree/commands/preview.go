package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/mktree/mktree/cmd/mktree/opts"
	"github.com/mktree/mktree/pkg/preview"
)

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [tree-file]",
		Short: "Show the tree an input would build, without creating anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			rendered, err := preview.Render(input, o.Root, o.Config, o.HomeDir)
			if err != nil {
				return errors.Errorf("rendering preview: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	return cmd
}
