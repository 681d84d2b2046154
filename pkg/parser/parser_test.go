package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Kinds(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantKind   Kind
		wantName   string
		wantSource string
	}{
		{
			name:     "plain_directory",
			raw:      "src",
			wantKind: KindCreateDirectory,
			wantName: "src",
		},
		{
			name:     "plain_file_with_extension",
			raw:      "index.js",
			wantKind: KindCreateFile,
			wantName: "index.js",
		},
		{
			name:     "no_extension_is_directory",
			raw:      "data",
			wantKind: KindCreateDirectory,
			wantName: "data",
		},
		{
			name:     "trailing_dot_is_directory",
			raw:      "weird.",
			wantKind: KindCreateDirectory,
			wantName: "weird.",
		},
		{
			name:     "multi_dot_file",
			raw:      "archive.tar.gz",
			wantKind: KindCreateFile,
			wantName: "archive.tar.gz",
		},
		{
			name:       "copy_with_target",
			raw:        "[/tmp/notes.txt] > archive/notes-copy.txt",
			wantKind:   KindCopy,
			wantName:   "archive/notes-copy.txt",
			wantSource: "/tmp/notes.txt",
		},
		{
			name:       "copy_without_target_uses_basename",
			raw:        "[/tmp/notes.txt]",
			wantKind:   KindCopy,
			wantName:   "notes.txt",
			wantSource: "/tmp/notes.txt",
		},
		{
			name:       "move_with_target",
			raw:        "(/var/old) > fresh",
			wantKind:   KindMove,
			wantName:   "fresh",
			wantSource: "/var/old",
		},
		{
			name:       "move_without_target_uses_basename",
			raw:        "(/var/old/thing)",
			wantKind:   KindMove,
			wantName:   "thing",
			wantSource: "/var/old/thing",
		},
		{
			name:       "target_is_trimmed",
			raw:        "[/a/b.txt] >    spaced.txt   ",
			wantKind:   KindCopy,
			wantName:   "spaced.txt",
			wantSource: "/a/b.txt",
		},
		{
			name:     "unclosed_bracket_falls_through_to_plain",
			raw:      "[broken.txt",
			wantKind: KindCreateFile,
			wantName: "[broken.txt",
		},
		{
			name:     "unclosed_paren_falls_through_to_plain",
			raw:      "(broken",
			wantKind: KindCreateDirectory,
			wantName: "(broken",
		},
		{
			name:     "trailing_junk_after_bracket_is_plain",
			raw:      "[x.txt] oops",
			wantKind: KindCreateFile,
			wantName: "[x.txt] oops",
		},
		{
			name:     "empty_brackets_are_plain",
			raw:      "[]",
			wantKind: KindCreateDirectory,
			wantName: "[]",
		},
		{
			name:       "brackets_win_over_extension_rule",
			raw:        "[name.txt]",
			wantKind:   KindCopy,
			wantName:   "name.txt",
			wantSource: "name.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("/home/someone")
			line := p.Parse(tt.raw)

			require.NotNil(t, line.Op)
			assert.Equal(t, tt.wantKind, line.Op.Kind)
			assert.Equal(t, tt.wantName, line.Op.Name)
			assert.Equal(t, tt.wantSource, line.Op.SourcePath)
			assert.NotEmpty(t, line.Op.Name)
		})
	}
}

func TestParser_Parse_HomeExpansion(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSource string
	}{
		{
			name:       "tilde_slash",
			raw:        "[~/notes.txt]",
			wantSource: "/home/someone/notes.txt",
		},
		{
			name:       "bare_tilde",
			raw:        "(~) > stuff",
			wantSource: "/home/someone",
		},
		{
			name:       "tilde_nested_path",
			raw:        "[~/a/b/c.txt] > c.txt",
			wantSource: "/home/someone/a/b/c.txt",
		},
		{
			name:       "no_tilde_untouched",
			raw:        "[relative/path.txt]",
			wantSource: "relative/path.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("/home/someone")
			line := p.Parse(tt.raw)

			require.NotNil(t, line.Op)
			assert.Equal(t, tt.wantSource, line.Op.SourcePath)
		})
	}
}

func TestParser_Parse_Indentation(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantLevel int
	}{
		{name: "no_indent", raw: "src", wantLevel: 0},
		{name: "one_tab", raw: "\tsrc", wantLevel: 1},
		{name: "two_tabs", raw: "\t\tindex.js", wantLevel: 2},
		{name: "four_spaces", raw: "    src", wantLevel: 1},
		{name: "eight_spaces", raw: "        src", wantLevel: 2},
		{name: "three_spaces_truncate_to_zero", raw: "   src", wantLevel: 0},
		{name: "seven_spaces_truncate_to_one", raw: "       src", wantLevel: 1},
		{name: "tab_wins_over_spaces", raw: "    \tsrc", wantLevel: 1},
		{name: "tabs_mixed_with_spaces_count_tabs", raw: "\t  \tsrc", wantLevel: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("/home/someone")
			line := p.Parse(tt.raw)

			assert.Equal(t, tt.wantLevel, line.Level)
		})
	}
}

func TestParser_Parse_BlankLines(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\t", " \t "} {
		p := New("/home/someone")
		line := p.Parse(raw)
		assert.Nil(t, line.Op, "raw=%q", raw)
	}
}
