package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfig names the environment variable pointing at an explicit config file.
const EnvConfig = "CONTACTBOOK_CONFIG"

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	UI      UIConfig
	Log     LogConfig
}

// StorageConfig selects where the contact list is persisted.
type StorageConfig struct {
	Driver string // sqlite, file or memory
	Path   string
	Key    string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PageSize int  `mapstructure:"page_size"`
	DarkMode bool `mapstructure:"dark_mode"`
	Locale   string
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level string
	Path  string
}

// DataDir is where the default database and log files live.
func DataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "contactbook")
}

// Load reads configuration from file and env. Env var overrides use prefix CONTACTBOOK_.
// path, when non-empty, wins over CONTACTBOOK_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", filepath.Join(DataDir(), "contactbook.db"))
	v.SetDefault("storage.key", "contacts")
	v.SetDefault("ui.page_size", 5)
	v.SetDefault("ui.dark_mode", false)
	v.SetDefault("ui.locale", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	explicit := path
	if explicit == "" {
		explicit = os.Getenv(EnvConfig)
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "contactbook"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CONTACTBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case explicit != "" && errors.Is(err, fs.ErrNotExist):
			// an explicit file that doesn't exist yet is created by Save
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.PageSize < 1 {
		return Config{}, fmt.Errorf("ui.page_size must be at least 1, got %d", c.UI.PageSize)
	}
	return c, nil
}

// Path returns the file Save writes to: path if set, else CONTACTBOOK_CONFIG,
// else ~/.config/contactbook/config.toml.
func Path(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "contactbook", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
// The TUI uses it to remember the dark mode preference.
func Save(cfg Config, path string) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.driver", cfg.Storage.Driver)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("storage.key", cfg.Storage.Key)
	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.dark_mode", cfg.UI.DarkMode)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
