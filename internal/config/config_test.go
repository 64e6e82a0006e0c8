package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
	require.Equal(t, filepath.Join(home, ".local", "share", "contactbook", "contactbook.db"), cfg.Storage.Path)
	require.Equal(t, "contacts", cfg.Storage.Key)
	require.Equal(t, 5, cfg.UI.PageSize)
	require.False(t, cfg.UI.DarkMode)
	require.Equal(t, "en", cfg.UI.Locale)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Log.Path)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	body := []byte(`[storage]
driver = "file"
path = "/tmp/contacts.json"

[ui]
page_size = 12
dark_mode = true
locale = "sv"
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))
	t.Setenv(EnvConfig, path)
	t.Setenv("CONTACTBOOK_UI_PAGE_SIZE", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "file", cfg.Storage.Driver)
	require.Equal(t, "/tmp/contacts.json", cfg.Storage.Path)
	require.Equal(t, 7, cfg.UI.PageSize)
	require.True(t, cfg.UI.DarkMode)
	require.Equal(t, "sv", cfg.UI.Locale)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, 5, cfg.UI.PageSize)
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")
	t.Setenv("CONTACTBOOK_UI_PAGE_SIZE", "0")

	_, err := Load("")
	require.ErrorContains(t, err, "page_size")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.UI.DarkMode = true
	cfg.Storage.Driver = "memory"
	require.NoError(t, Save(cfg, path))

	again, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestPathPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfig, "")
	require.Equal(t, filepath.Join(home, ".config", "contactbook", "config.toml"), Path(""))

	t.Setenv(EnvConfig, "/etc/contactbook.toml")
	require.Equal(t, "/etc/contactbook.toml", Path(""))
	require.Equal(t, "/x.toml", Path("/x.toml"))
}
