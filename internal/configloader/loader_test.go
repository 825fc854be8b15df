package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdindex/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	cfg := result.Config
	assert.Equal(t, config.DefaultNotesDir, cfg.NotesDir)
	assert.Equal(t, config.DefaultNavFile, cfg.NavFile)
	assert.Equal(t, config.DefaultNavGroup, cfg.NavGroup)
	assert.Equal(t, config.TitleModeFilename, cfg.TitleMode)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configContent := `
title_mode: heading
nav_file: site.yml
descriptions:
  strategy: 自定义简介。
`
	configPath := filepath.Join(tmpDir, ".mdindex.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, config.TitleModeHeading, cfg.TitleMode)
	assert.Equal(t, "site.yml", cfg.NavFile)
	assert.Equal(t, "自定义简介。", cfg.Descriptions["strategy"])
	// Unset fields keep their defaults.
	assert.Equal(t, config.DefaultNotesDir, cfg.NotesDir)
	assert.Equal(t, []string{configPath}, result.LoadedFrom)
}

func TestLoad_ProjectConfigUpwardSearch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mdindex.yml"), []byte("nav_group: sections\n"), 0644))

	nested := filepath.Join(tmpDir, "notes", "strategy")
	require.NoError(t, os.MkdirAll(nested, 0755))

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "sections", result.Config.NavGroup)
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mdindex.yml"), []byte("nav_group: sections\n"), 0644))

	repo := filepath.Join(tmpDir, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: repo,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultNavGroup, result.Config.NavGroup)
}

func TestLoad_ExplicitPathSkipsDiscovery(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mdindex.yml"), []byte("nav_file: project.yml\n"), 0644))

	explicit := filepath.Join(tmpDir, "other.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("nav_file: explicit.yml\n"), 0644))

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:   tmpDir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "explicit.yml", result.Config.NavFile)
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mdindex.yml"), []byte("title_mode: filename\n"), 0644))

	t.Setenv("MDINDEX_TITLE_MODE", "heading")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: tmpDir})
	require.NoError(t, err)
	assert.Equal(t, config.TitleModeHeading, result.Config.TitleMode)
}

func TestLoad_CLIHasHighestPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mdindex.yml"), []byte("title_mode: filename\n"), 0644))

	t.Setenv("MDINDEX_TITLE_MODE", "filename")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		CLIConfig:  &config.Config{TitleMode: config.TitleModeHeading, Check: true},
	})
	require.NoError(t, err)
	assert.Equal(t, config.TitleModeHeading, result.Config.TitleMode)
	assert.True(t, result.Config.Check)
}

func TestLoad_InvalidTitleMode(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mdindex.yml"), []byte("title_mode: bogus\n"), 0644))

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title_mode")
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mdindex.yml"), []byte("nav_file: [\n"), 0644))

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	require.Error(t, err)
}

func TestMergeDescriptions(t *testing.T) {
	t.Parallel()

	base := &config.Config{Descriptions: map[string]string{"a": "1", "b": "2"}}
	override := &config.Config{Descriptions: map[string]string{"b": "3"}}

	merged := merge(base, override)
	assert.Equal(t, "1", merged.Descriptions["a"])
	assert.Equal(t, "3", merged.Descriptions["b"])
}
