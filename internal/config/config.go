package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pagesync/internal/application"
	"pagesync/internal/domain"
)

// Environment variables
const (
	EnvToken       = "NOTION_API_KEY"
	EnvTokenLegacy = "NOTION_KEY"
	EnvWorkspace   = "PAGESYNC_WORKSPACE"
	EnvConfig      = "PAGESYNC_CONFIG"
	EnvLedger      = "PAGESYNC_LEDGER"
)

// Config holds everything a run needs
type Config struct {
	Token         string
	Workspace     string
	LedgerPath    string
	BaseURL       string
	NotionVersion string
	Delay         time.Duration
	SampleSize    int
	Parents       []domain.ParentPageRef
	Files         []domain.SourceFile
}

// ParentEntry is a parent page as written in a config file
type ParentEntry struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
	Dir  string `toml:"dir" yaml:"dir"`
}

// FileEntry is a source file as written in a config file
type FileEntry struct {
	Title string `toml:"title" yaml:"title"`
	Path  string `toml:"path" yaml:"path"`
}

// File is the on-disk config format. Unset fields keep their defaults.
type File struct {
	Workspace     string        `toml:"workspace" yaml:"workspace"`
	Ledger        string        `toml:"ledger" yaml:"ledger"`
	BaseURL       string        `toml:"base_url" yaml:"base_url"`
	NotionVersion string        `toml:"notion_version" yaml:"notion_version"`
	DelayMS       *int          `toml:"delay_ms" yaml:"delay_ms"`
	SampleSize    *int          `toml:"sample_size" yaml:"sample_size"`
	Parents       []ParentEntry `toml:"parents" yaml:"parents"`
	Files         []FileEntry   `toml:"files" yaml:"files"`
}

// Default returns the built-in configuration without a token. No ledger is
// configured, so runs leave nothing on disk unless one is asked for.
func Default() *Config {
	return &Config{
		Workspace:     DefaultWorkspace,
		BaseURL:       DefaultBaseURL,
		NotionVersion: DefaultNotionVersion,
		Delay:         DefaultDelay,
		SampleSize:    DefaultSampleMax,
		Parents:       DefaultParents(),
		Files:         DefaultFiles(),
	}
}

// LoadDotEnv loads .env from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load builds the configuration from defaults, the optional config file at
// path (or $PAGESYNC_CONFIG when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		f, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		cfg.apply(f)
	}

	if env := os.Getenv(EnvWorkspace); env != "" {
		cfg.Workspace = env
	}
	if env := os.Getenv(EnvLedger); env != "" {
		cfg.LedgerPath = env
	}
	cfg.Token = Token()

	return cfg, nil
}

// ReadFile parses a TOML or YAML config file, chosen by extension
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (expected .toml, .yaml or .yml)", filepath.Ext(path))
	}
	return &f, nil
}

func (c *Config) apply(f *File) {
	if f.Workspace != "" {
		c.Workspace = f.Workspace
	}
	if f.Ledger != "" {
		c.LedgerPath = f.Ledger
	}
	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.NotionVersion != "" {
		c.NotionVersion = f.NotionVersion
	}
	if f.DelayMS != nil {
		c.Delay = time.Duration(*f.DelayMS) * time.Millisecond
	}
	if f.SampleSize != nil {
		c.SampleSize = *f.SampleSize
	}
	if len(f.Parents) > 0 {
		c.Parents = make([]domain.ParentPageRef, len(f.Parents))
		for i, p := range f.Parents {
			c.Parents[i] = domain.ParentPageRef{ID: p.ID, Name: p.Name, Dir: p.Dir}
		}
	}
	if len(f.Files) > 0 {
		c.Files = make([]domain.SourceFile, len(f.Files))
		for i, s := range f.Files {
			path := s.Path
			if path == "" {
				path = s.Title
			}
			c.Files[i] = domain.SourceFile{Title: s.Title, Path: path}
		}
	}
}

// Token returns the integration token from NOTION_API_KEY, falling back to NOTION_KEY
func Token() string {
	if env := os.Getenv(EnvToken); env != "" {
		return env
	}
	return os.Getenv(EnvTokenLegacy)
}

// RequireToken fails with a ConfigurationError when no token is set
func (c *Config) RequireToken() error {
	if strings.TrimSpace(c.Token) == "" {
		return &application.ConfigurationError{
			Setting: EnvToken,
			Reason:  fmt.Sprintf("or %s environment variable required", EnvTokenLegacy),
		}
	}
	return nil
}
