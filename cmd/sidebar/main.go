package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"sheetforecast.app/internal/adapters/bridge"
	"sheetforecast.app/internal/adapters/infrastructure"
	"sheetforecast.app/internal/app"
	"sheetforecast.app/internal/config"
	"sheetforecast.app/internal/core/autocomplete"
	"sheetforecast.app/internal/core/sidebar"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/logger"
)

const requestTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	cfg, err := config.LoadSidebarConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.NewWithWriter(os.Stderr, logger.ParseLevel(cfg.LogLevel)).WithField("component", "sidebar").SetDefault()

	if err := run(cfg); err != nil {
		slog.Error("Sidebar stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.SidebarConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host, keys, closeHost, err := openBridge(cfg)
	if err != nil {
		return err
	}
	defer closeHost()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return err
	}

	log := infrastructure.NewSlogLoggerAdapter(slog.Default())

	ctl, err := autocomplete.NewController(autocomplete.Dependencies{
		Lookup:    host,
		Scheduler: infrastructure.SystemScheduler{},
		Logger:    log,
		Metrics:   infrastructure.NewPrometheusMetrics(),
		Debounce:  cfg.Debounce(),
	})
	if err != nil {
		return err
	}
	defer ctl.Close()

	form, err := sidebar.NewForm(sidebar.Dependencies{
		Bridge:   host,
		Clock:    infrastructure.SystemClock{},
		Location: loc,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	s := newSession(ctl, form, keys, os.Stdout, requestTimeout)
	s.printf("%s\n", helpText)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok || !s.handle(ctx, line) {
				return nil
			}
		}
	}
}

// openBridge connects to the host over HTTP or embeds it in-process
func openBridge(cfg *config.SidebarConfig) (ports.HostBridge, KeySetter, func(), error) {
	if cfg.Bridge == config.BridgeDirect {
		application, err := app.NewApplication()
		if err != nil {
			return nil, nil, nil, err
		}
		direct, err := application.Bridge()
		if err != nil {
			application.Close()
			return nil, nil, nil, err
		}
		return direct, application.Settings(), application.Close, nil
	}

	httpBridge, err := bridge.NewHTTPBridge(cfg.HostURL, requestTimeout)
	if err != nil {
		return nil, nil, nil, err
	}
	return httpBridge, httpBridge, func() {}, nil
}
