package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeTempConfig(t, "mktree.yaml", `
verbose: true
search: old
replace: new
replace_file_names: true
ignore_patterns:
  - "**/*.log"
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "old", cfg.Search)
	assert.Equal(t, "new", cfg.Replace)
	assert.True(t, cfg.ReplaceFileNames)
	assert.False(t, cfg.ReplaceFolderNames)
	assert.Equal(t, []string{"**/*.log"}, cfg.IgnorePatterns)
}

func TestLoad_HCL(t *testing.T) {
	path := writeTempConfig(t, "mktree.hcl", `
search               = "old"
replace              = "new"
replace_folder_names = true
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "old", cfg.Search)
	assert.Equal(t, "new", cfg.Replace)
	assert.True(t, cfg.ReplaceFolderNames)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := writeTempConfig(t, "mktree.toml", "x = 1")
	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "valid",
			cfg:  Config{Search: "a", Replace: "b", IgnorePatterns: []string{"**/*.log"}},
		},
		{
			name:      "bad_ignore_pattern",
			cfg:       Config{IgnorePatterns: []string{"[unclosed"}},
			wantError: "invalid ignore pattern",
		},
		{
			name:      "replace_without_search",
			cfg:       Config{Replace: "new"},
			wantError: "search is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_Substitution(t *testing.T) {
	cfg := Config{Search: "old", Replace: "new", ReplaceFileNames: true}

	assert.Equal(t, "new-name.txt", cfg.SubstituteFileName("old-name.txt"))
	assert.Equal(t, "new-old.txt", cfg.SubstituteFileName("old-old.txt"), "only the first occurrence is replaced")
	assert.Equal(t, "old-dir", cfg.SubstituteFolderName("old-dir"), "folder flag is off")

	off := Config{Search: "old", Replace: "new"}
	assert.Equal(t, "old-name.txt", off.SubstituteFileName("old-name.txt"), "both flags off leaves names alone")
}

func TestConfig_Ignored(t *testing.T) {
	cfg := Config{IgnorePatterns: []string{"**/*.log", "tmp/**"}}

	assert.True(t, cfg.Ignored("debug.log"))
	assert.True(t, cfg.Ignored("nested/deep/app.log"))
	assert.True(t, cfg.Ignored("tmp/scratch.txt"))
	assert.False(t, cfg.Ignored("keep.txt"))
	assert.False(t, cfg.Ignored("logs"))
}
