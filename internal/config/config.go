package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"pixgallery/internal/eventbus"
)

// Pixabay limits
const (
	DefaultBaseURL           = "https://pixabay.com/api/"
	DefaultPerPage           = 12
	MinPerPage               = 3
	MaxPerPage               = 200
	DefaultTimeoutSeconds    = 15
	DefaultRequestsPerMinute = 100
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version int        `toml:"version"`
	API     APIConfig  `toml:"api"`
	UI      UISettings `toml:"ui"`
	Log     LogConfig  `toml:"log"`
}

// APIConfig holds the image provider settings
type APIConfig struct {
	Key               string `toml:"key"`
	BaseURL           string `toml:"base_url"`
	PerPage           int    `toml:"per_page"`
	ImageType         string `toml:"image_type"`  // all, photo, illustration, vector
	Orientation       string `toml:"orientation"` // all, horizontal, vertical
	SafeSearch        bool   `toml:"safe_search"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	RequestsPerMinute int    `toml:"requests_per_minute"` // 0 disables client side limiting
}

// Timeout returns the HTTP timeout
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// UISettings represents UI-related configuration
type UISettings struct {
	Columns    int  `toml:"columns"` // 0 picks a column count from the terminal width
	ShowAuthor bool `toml:"show_author"`
}

// LogConfig controls the log file
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pixgallery", "config.toml")
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return NewConfigServiceAt("")
}

// NewConfigServiceAt creates a config service for path, or the default location when empty
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigServiceAt(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Validate()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600: the file holds an API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:           DefaultBaseURL,
			PerPage:           DefaultPerPage,
			ImageType:         "photo",
			Orientation:       "horizontal",
			SafeSearch:        true,
			TimeoutSeconds:    DefaultTimeoutSeconds,
			RequestsPerMinute: DefaultRequestsPerMinute,
		},
		UI: UISettings{
			ShowAuthor: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate normalises out of range values in place
func (c *Config) Validate() {
	c.API.Validate()
	if c.UI.Columns < 0 {
		c.UI.Columns = 0
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate normalises the API settings in place
func (a *APIConfig) Validate() {
	def := DefaultConfig().API

	a.Key = strings.TrimSpace(a.Key)
	if strings.TrimSpace(a.BaseURL) == "" {
		a.BaseURL = def.BaseURL
	}
	switch {
	case a.PerPage == 0:
		a.PerPage = def.PerPage
	case a.PerPage < MinPerPage:
		a.PerPage = MinPerPage
	case a.PerPage > MaxPerPage:
		a.PerPage = MaxPerPage
	}
	if !oneOf(a.ImageType, "all", "photo", "illustration", "vector") {
		a.ImageType = def.ImageType
	}
	if !oneOf(a.Orientation, "all", "horizontal", "vertical") {
		a.Orientation = def.Orientation
	}
	if a.TimeoutSeconds <= 0 {
		a.TimeoutSeconds = def.TimeoutSeconds
	}
	if a.RequestsPerMinute < 0 {
		a.RequestsPerMinute = 0
	}
}

func oneOf(v string, options ...string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
