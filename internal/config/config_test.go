package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagesync/internal/application"
	"pagesync/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvToken, EnvTokenLegacy, EnvWorkspace, EnvConfig, EnvLedger} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultWorkspace, cfg.Workspace)
	assert.Equal(t, 350*time.Millisecond, cfg.Delay)
	assert.Equal(t, 5, cfg.SampleSize)
	require.Len(t, cfg.Parents, 20)
	assert.Equal(t, domain.ParentPageRef{ID: "3132484b-84ae-81b8-a2cb-deff086bb4d0", Name: "TASK_1", Dir: "TASK_1"}, cfg.Parents[0])
	assert.Equal(t, "TASK_20", cfg.Parents[19].Name)
	assert.Equal(t, []string{"model_a.txt", "model_b.txt"}, []string{cfg.Files[0].Title, cfg.Files[1].Title})

	assert.Empty(t, cfg.LedgerPath)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultNotionVersion, cfg.NotionVersion)

	require.NoError(t, application.ValidateParents(cfg.Parents))
	require.NoError(t, application.ValidateSourceFiles(cfg.Files))
}

func TestToken(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, "", Token())

	t.Setenv(EnvTokenLegacy, "legacy")
	assert.Equal(t, "legacy", Token())

	t.Setenv(EnvToken, "primary")
	assert.Equal(t, "primary", Token())
}

func TestRequireToken(t *testing.T) {
	cfg := Default()
	err := cfg.RequireToken()
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrConfiguration)
	assert.Contains(t, err.Error(), EnvToken)

	cfg.Token = "secret"
	assert.NoError(t, cfg.RequireToken())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvToken, "secret")
	t.Setenv(EnvWorkspace, "/tmp/ws")
	t.Setenv(EnvLedger, "/tmp/ledger.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "/tmp/ws", cfg.Workspace)
	assert.Equal(t, "/tmp/ledger.db", cfg.LedgerPath)
}

func TestLoad_NoLedgerUnlessConfigured(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.LedgerPath)

	path := writeConfig(t, "pagesync.toml", `ledger = "/tmp/runs.db"`)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/runs.db", cfg.LedgerPath)
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "pagesync.toml", `
workspace = "/data"
delay_ms = 0
sample_size = 2

[[parents]]
id = "3132484b-84ae-81b8-a2cb-deff086bb4d0"
name = "first"

[[files]]
title = "notes.txt"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.Workspace)
	assert.Equal(t, time.Duration(0), cfg.Delay)
	assert.Equal(t, 2, cfg.SampleSize)
	assert.Equal(t, []domain.ParentPageRef{{ID: "3132484b-84ae-81b8-a2cb-deff086bb4d0", Name: "first"}}, cfg.Parents)
	assert.Equal(t, []domain.SourceFile{{Title: "notes.txt", Path: "notes.txt"}}, cfg.Files)
	assert.Equal(t, "2022-06-28", cfg.NotionVersion)
}

func TestLoad_YAMLFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "pagesync.yaml", `
base_url: http://localhost:9999/v1
parents:
  - id: 3132484b84ae81568da3d147e36748ea
files:
  - title: model_a.txt
    path: out/a.txt
`)
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v1", cfg.BaseURL)
	assert.Equal(t, 350*time.Millisecond, cfg.Delay)
	require.Len(t, cfg.Files, 1)
	assert.Equal(t, "out/a.txt", cfg.Files[0].Path)
	assert.Len(t, cfg.Parents, 1)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeConfig(t, "bad.toml", "workspace = ["))
	assert.ErrorContains(t, err, "failed to parse TOML")

	_, err = Load(writeConfig(t, "bad.yml", "parents: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse YAML")

	_, err = Load(writeConfig(t, "pagesync.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NOTION_KEY=from-dotenv\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// t.Setenv above left NOTION_KEY set to "", which godotenv treats as present.
	os.Unsetenv(EnvTokenLegacy)

	require.NoError(t, LoadDotEnv())
	assert.Equal(t, "from-dotenv", Token())
}

func TestLoadDotEnv_Missing(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.NoError(t, LoadDotEnv())
}
