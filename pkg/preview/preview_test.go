package preview

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mktree/mktree/pkg/config"
)

func init() {
	pterm.DisableStyling()
}

func TestRender_BasicTree(t *testing.T) {
	out, err := Render("project\n\tsrc\n\t\tindex.js\n\tdata\n", "/root", nil, "/home/tester")
	require.NoError(t, err)

	assert.Contains(t, out, "/root")
	assert.Contains(t, out, "project/")
	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "index.js")
	assert.Contains(t, out, "data/")
}

func TestRender_AnnotatesTransfers(t *testing.T) {
	out, err := Render("[~/notes.txt] > copy.txt\n(/var/old) > fresh", "/root", nil, "/home/tester")
	require.NoError(t, err)

	assert.Contains(t, out, "copy.txt")
	assert.Contains(t, out, "copy /home/tester/notes.txt")
	assert.Contains(t, out, "fresh")
	assert.Contains(t, out, "move /var/old")
}

func TestRender_AppliesSubstitution(t *testing.T) {
	cfg := &config.Config{Search: "old", Replace: "new", ReplaceFileNames: true}
	out, err := Render("old-name.txt", "/root", cfg, "/home/tester")
	require.NoError(t, err)

	assert.Contains(t, out, "new-name.txt")
	assert.NotContains(t, out, "old-name.txt")
}

func TestRender_SkipsBlankLines(t *testing.T) {
	out, err := Render("a\n\n   \n\tb.txt", "/root", nil, "/home/tester")
	require.NoError(t, err)

	assert.Contains(t, out, "a/")
	assert.Contains(t, out, "b.txt")
}
