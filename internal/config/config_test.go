package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixgallery/internal/eventbus"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigServiceAt("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.API.Key = "secret"
	cfg.API.PerPage = 20
	cfg.UI.Columns = 4
	require.NoError(t, svc.Save(cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nkey = \"abc\"\n"), 0600))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.API.Key)
	assert.Equal(t, DefaultPerPage, cfg.API.PerPage)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\nkey="), 0600))

	_, err := NewConfigServiceAt(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidateClampsValues(t *testing.T) {
	cfg := &Config{
		API: APIConfig{
			Key:               "  padded  ",
			PerPage:           1000,
			ImageType:         "gif",
			Orientation:       "diagonal",
			TimeoutSeconds:    -1,
			RequestsPerMinute: -5,
		},
		UI: UISettings{Columns: -2},
	}
	cfg.Validate()

	assert.Equal(t, "padded", cfg.API.Key)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, MaxPerPage, cfg.API.PerPage)
	assert.Equal(t, "photo", cfg.API.ImageType)
	assert.Equal(t, "horizontal", cfg.API.Orientation)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	assert.Equal(t, 0, cfg.API.RequestsPerMinute)
	assert.Equal(t, 0, cfg.UI.Columns)
	assert.Equal(t, "info", cfg.Log.Level)

	cfg.API.PerPage = 1
	cfg.Validate()
	assert.Equal(t, MinPerPage, cfg.API.PerPage)
}

func TestBusReceivesLoadAndSaveEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	var mu sync.Mutex
	var seen []eventbus.EventType
	record := func(e eventbus.DomainEvent) {
		mu.Lock()
		seen = append(seen, e.Type())
		mu.Unlock()
	}
	bus.Subscribe(eventbus.EventConfigLoaded, record)
	bus.Subscribe(eventbus.EventConfigSaved, record)

	svc := NewConfigServiceWithBus(filepath.Join(t.TempDir(), "config.toml"), bus)
	cfg, err := svc.Load()
	require.NoError(t, err)
	require.NoError(t, svc.Save(cfg))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []eventbus.EventType{eventbus.EventConfigLoaded, eventbus.EventConfigSaved}, seen)
}
