// Copyright 2025 mktree authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mktree/mktree/cmd/mktree/commands"
	"github.com/mktree/mktree/cmd/mktree/opts"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	// Shared options, filled in once flags are parsed
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "mktree",
		Short: "Build directory trees from indented text",
		Long: `mktree turns an indentation-based text notation into a directory tree.
Plain lines become directories or empty files, [source] lines copy an
existing entry into the tree, and (source) lines move one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			built, err := newRootOpts(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			*o = *built
			return nil
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewPreviewCmd(o),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
