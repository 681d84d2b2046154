// Package parser turns one raw line of tree notation into an indentation
// level and a typed operation descriptor.
package parser

import (
	"path/filepath"
	"strings"
)

// 🎯 Kind identifies what an operation does to the filesystem.
type Kind int

const (
	KindCreateFile Kind = iota
	KindCreateDirectory
	KindCopy
	KindMove
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCreateFile:
		return "create-file"
	case KindCreateDirectory:
		return "create-directory"
	case KindCopy:
		return "copy"
	case KindMove:
		return "move"
	default:
		return "unknown"
	}
}

// 📦 Op is a single parsed instruction. SourcePath is set iff Kind is
// KindCopy or KindMove. Name is never empty.
type Op struct {
	Kind       Kind
	Name       string // final path segment to create under the current directory
	SourcePath string // existing entry to copy or move, home-expanded
}

// 📄 Line is the result of parsing one raw input line. A nil Op means the
// line was blank and contributes no filesystem action.
type Line struct {
	Level int
	Op    *Op
}

// 🔧 Parser parses tree notation lines. HomeDir is injected rather than read
// from the process environment so parsing stays deterministic.
type Parser struct {
	HomeDir string
}

// 🏭 New creates a parser that expands "~" against homeDir.
func New(homeDir string) *Parser {
	return &Parser{HomeDir: homeDir}
}

// 📝 Parse converts one raw line into its level and operation. It never
// fails: malformed move/copy syntax falls through to the plain rule, and a
// blank line yields a nil Op.
func (p *Parser) Parse(raw string) Line {
	level := indentLevel(raw)

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Level: level}
	}

	// Move and copy patterns win over the plain rule, in that order.
	if op, ok := p.parseTransfer(trimmed, '(', ')', KindMove); ok {
		return Line{Level: level, Op: op}
	}
	if op, ok := p.parseTransfer(trimmed, '[', ']', KindCopy); ok {
		return Line{Level: level, Op: op}
	}

	return Line{Level: level, Op: plainOp(trimmed)}
}

// indentLevel measures nesting depth from leading whitespace. Any tab makes
// the line tab-indented (level = tab count); otherwise leading spaces are
// integer-divided by 4, so 1-3 stray spaces still count as level 0.
func indentLevel(raw string) int {
	tabs, spaces := 0, 0
	for _, r := range raw {
		switch r {
		case '\t':
			tabs++
		case ' ':
			spaces++
		default:
			if tabs > 0 {
				return tabs
			}
			return spaces / 4
		}
	}
	if tabs > 0 {
		return tabs
	}
	return spaces / 4
}

// parseTransfer matches "<open>source<close>" optionally followed by
// "> target". A bracket that never closes does not match, so the line falls
// through to the plain rule instead of erroring.
func (p *Parser) parseTransfer(trimmed string, openCh, closeCh byte, kind Kind) (*Op, bool) {
	if len(trimmed) == 0 || trimmed[0] != openCh {
		return nil, false
	}
	end := strings.IndexByte(trimmed, closeCh)
	if end < 0 {
		return nil, false
	}

	source := strings.TrimSpace(trimmed[1:end])
	if source == "" {
		return nil, false
	}

	rest := strings.TrimSpace(trimmed[end+1:])
	var target string
	switch {
	case rest == "":
		target = filepath.Base(source)
	case strings.HasPrefix(rest, ">"):
		target = strings.TrimSpace(rest[1:])
		if target == "" {
			target = filepath.Base(source)
		}
	default:
		// Trailing junk after the bracket, treat the whole line as plain.
		return nil, false
	}

	return &Op{Kind: kind, Name: target, SourcePath: p.expandHome(source)}, true
}

// plainOp classifies bare text as a file or directory entry. A final segment
// with a dot followed by at least one character counts as a file.
func plainOp(trimmed string) *Op {
	segment := trimmed
	if i := strings.LastIndexByte(segment, '/'); i >= 0 {
		segment = segment[i+1:]
	}

	kind := KindCreateDirectory
	if i := strings.LastIndexByte(segment, '.'); i >= 0 && i < len(segment)-1 {
		kind = KindCreateFile
	}

	return &Op{Kind: kind, Name: trimmed}
}

// expandHome substitutes a leading "~" with the configured home directory.
func (p *Parser) expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	rest := strings.TrimPrefix(path, "~")
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return p.HomeDir
	}
	return filepath.Join(p.HomeDir, rest)
}
