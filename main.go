package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"partscope/internal/config"
	"partscope/internal/eventbus"
	"partscope/internal/loader"
	"partscope/internal/logging"
	"partscope/internal/search"
	"partscope/internal/ui"
)

func main() {
	var configPath string
	var dataPath string
	flag.StringVar(&configPath, "config", "", "Path to a partscope.toml config file")
	flag.StringVar(&dataPath, "data", "", "Path to the inventory data file (.xlsx or .json)")
	flag.Parse()

	// The terminal belongs to the TUI; logs go to a file
	logging.Init("partscope.log")
	defer logging.Sync()

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, cfgPath, err := loadConfig(configSvc, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if dataPath == "" {
		dataPath = cfg.DataFile
	}

	// Create event bus and the search engine
	bus := eventbus.New()
	svc := search.NewService(cfg.SearchPolicy(), bus)

	// Search activity and errors are observable only through the log
	// file, so the bus subscribers here are the audit trail.
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			logging.Debug("search completed",
				"query", event.Query,
				"tokens", event.TokenCount,
				"total", event.Total,
				"shown", event.Shown)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logging.Error(event.Message, "error", event.Err)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logging.Info("config loaded", "path", event.Path)
		}
	})
	bus.Publish(eventbus.ConfigLoadedEvent{Path: cfgPath})

	uiModel := ui.NewModel(cfg, svc, bus)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// The loader plays the surrounding page's role: it re-reads the
	// data file and re-supplies the records on every reload request.
	load := func() {
		records, err := loader.Load(dataPath)
		if err != nil {
			bus.Publish(eventbus.ErrorEvent{Message: "data load failed", Err: err})
			p.Send(ui.LoadFailedMsg{Err: err})
			return
		}
		bus.Publish(eventbus.ItemsLoadedEvent{Records: records, SourcePath: dataPath})
		p.Send(ui.ItemsLoadedMsg{Records: records, SourcePath: dataPath})
	}

	bus.Subscribe(eventbus.EventReloadRequested, func(e eventbus.DomainEvent) {
		load()
	})

	// Initial load in the background so the UI comes up immediately
	go load()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads from an explicit path when given, otherwise from the
// user config dir, falling back to defaults for a missing file.
func loadConfig(configSvc config.ConfigService, path string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		return cfg, path, err
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, configSvc.DefaultPath(), nil
}
