package cmd

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pixgallery/internal/config"
	"pixgallery/internal/eventbus"
	"pixgallery/internal/logging"
	"pixgallery/internal/pixabay"
	"pixgallery/internal/search"
	"pixgallery/internal/ui"
)

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with its own viper instance
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "pixgallery [query]",
		Short: "Search Pixabay images from the terminal",
		Long: `pixgallery searches Pixabay and shows the results as a paged gallery.

Pass a query to start searching right away, or press / inside the
gallery. The API key is read from PIXABAY_API_KEY or the config file.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig(v)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd.Context(), v, strings.Join(args, " "))
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is "+config.DefaultPath()+")")
	flags.Int("per-page", 0, "results per page (3-200)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "log file (default is "+logging.DefaultPath()+")")
	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("api.per_page", flags.Lookup("per-page"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.path", flags.Lookup("log-file"))

	rootCmd.AddCommand(newSearchCmd(v), newConfigCmd(v))
	return rootCmd
}

func initConfig(v *viper.Viper) {
	v.SetEnvPrefix("PIXGALLERY")
	// PIXGALLERY_API_PER_PAGE for api.per_page
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api.key", "PIXGALLERY_API_KEY", "PIXABAY_API_KEY")
}

// loadConfig reads the TOML file and layers env and flag overrides on top
func loadConfig(v *viper.Viper, bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigServiceWithBus(v.GetString("config"), bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	applyOverrides(cfg, v)
	cfg.Validate()
	return cfg, svc, nil
}

// applyOverrides copies every key viper has a value for into cfg
func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if v.IsSet("api.key") {
		cfg.API.Key = v.GetString("api.key")
	}
	if v.IsSet("api.base_url") {
		cfg.API.BaseURL = v.GetString("api.base_url")
	}
	if v.IsSet("api.per_page") {
		cfg.API.PerPage = v.GetInt("api.per_page")
	}
	if v.IsSet("api.image_type") {
		cfg.API.ImageType = v.GetString("api.image_type")
	}
	if v.IsSet("api.orientation") {
		cfg.API.Orientation = v.GetString("api.orientation")
	}
	if v.IsSet("api.safe_search") {
		cfg.API.SafeSearch = v.GetBool("api.safe_search")
	}
	if v.IsSet("api.timeout_seconds") {
		cfg.API.TimeoutSeconds = v.GetInt("api.timeout_seconds")
	}
	if v.IsSet("api.requests_per_minute") {
		cfg.API.RequestsPerMinute = v.GetInt("api.requests_per_minute")
	}
	if v.IsSet("ui.columns") {
		cfg.UI.Columns = v.GetInt("ui.columns")
	}
	if v.IsSet("ui.show_author") {
		cfg.UI.ShowAuthor = v.GetBool("ui.show_author")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.path") {
		cfg.Log.Path = v.GetString("log.path")
	}
}

// forwardedEvents are the bus events the status bar reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventSearchSubmitted,
	eventbus.EventPageRequested,
	eventbus.EventFetchSucceeded,
	eventbus.EventFetchFailed,
	eventbus.EventError,
}

func runGallery(ctx context.Context, v *viper.Viper, query string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	cfg, svc, err := loadConfig(v, bus)
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.Log.Path, cfg.Log.Level); err != nil {
		return err
	}
	defer logging.Close()
	logging.Info("starting pixgallery", "config", svc.Path(), "per_page", cfg.API.PerPage)

	client := pixabay.NewClient(cfg.API)
	if !client.Available() {
		logging.Warn("no API key configured")
	}

	lifecycle := search.New(client, search.WithBus(bus), search.WithContext(ctx))
	model := ui.NewModel(bus, cfg, lifecycle, query)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward events to the UI
	for _, eventType := range forwardedEvents {
		unsubscribe := bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	if _, err := p.Run(); err != nil {
		logging.Error("program failed", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logging.Info("UI exited normally")
	return nil
}
