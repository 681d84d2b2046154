package opts

import (
	"github.com/mktree/mktree/pkg/config"
	"github.com/mktree/mktree/pkg/log"
)

// RootOpts contains shared options used by all commands. It is populated
// once the root command's flags have been parsed.
type RootOpts struct {
	Config  *config.Config
	Logger  *log.Logger
	Root    string // directory the tree is built under
	HomeDir string // anchors "~" sources
	WorkDir string // anchors relative copy/move sources
}
