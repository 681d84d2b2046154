// Package preview renders the tree an input would build, without touching
// the filesystem.
package preview

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/mktree/mktree/pkg/config"
	"github.com/mktree/mktree/pkg/parser"
)

// node mirrors the directory stack while the preview tree is assembled.
type node struct {
	text     string
	children []*node
}

// 🌳 Render parses input and returns a printable tree of the entries it
// would create under root. Nothing is executed: copy and move sources are
// not stat'ed, so their file-or-directory identity is approximated from the
// target name's extension.
func Render(input, root string, cfg *config.Config, homeDir string) (string, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}

	p := parser.New(homeDir)
	top := &node{text: pterm.Bold.Sprint(root)}
	stack := []*node{top}

	for _, raw := range strings.Split(input, "\n") {
		line := p.Parse(strings.TrimSuffix(raw, "\r"))
		if line.Op == nil {
			continue
		}

		for len(stack) > line.Level+1 {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]

		n := &node{text: describe(line.Op, cfg)}
		parent.children = append(parent.children, n)

		if line.Op.Kind == parser.KindCreateDirectory {
			stack = append(stack, n)
		}
	}

	return pterm.DefaultTree.WithRoot(toPterm(top)).Srender()
}

// describe formats one entry, annotating copy and move lines with their
// source.
func describe(op *parser.Op, cfg *config.Config) string {
	name := op.Name
	switch op.Kind {
	case parser.KindCreateDirectory:
		return pterm.Cyan(cfg.SubstituteFolderName(name) + "/")
	case parser.KindCreateFile:
		return cfg.SubstituteFileName(name)
	default:
		if looksLikeFile(name) {
			name = cfg.SubstituteFileName(name)
		} else {
			name = cfg.SubstituteFolderName(name)
		}
		return fmt.Sprintf("%s %s", name, pterm.Gray(fmt.Sprintf("(%s %s)", op.Kind, op.SourcePath)))
	}
}

// looksLikeFile mirrors the parser's plain-entry rule: a final segment with
// a dot followed by at least one character.
func looksLikeFile(name string) bool {
	segment := name
	if i := strings.LastIndexByte(segment, '/'); i >= 0 {
		segment = segment[i+1:]
	}
	i := strings.LastIndexByte(segment, '.')
	return i >= 0 && i < len(segment)-1
}

func toPterm(n *node) pterm.TreeNode {
	out := pterm.TreeNode{Text: n.text}
	for _, c := range n.children {
		out.Children = append(out.Children, toPterm(c))
	}
	return out
}
