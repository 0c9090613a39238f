package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"recruit/config"
	"recruit/internal/client"
	"recruit/internal/client/cli"
	"recruit/internal/client/session"
	"recruit/internal/errors"
)

const (
	defaultServerURL   = "http://localhost:8080"
	defaultSessionFile = "~/.recruitctl/session.json"
	defaultTimeout     = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "recruitctl:", err)
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg := loadClientConfig()

	sessionFile, err := expandHome(cfg.SessionFile)
	if err != nil {
		return err
	}

	api, err := client.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return err
	}

	app := cli.NewApp(api, session.NewFileStore(sessionFile), os.Stdin, os.Stdout)

	return app.Run(ctx, args)
}

// loadClientConfig reads the client section of config.yaml when one is found
// (CLIENT_BASEURL and friends override it) and falls back to defaults.
func loadClientConfig() config.ClientConfig {
	out := config.ClientConfig{
		BaseURL:     defaultServerURL,
		SessionFile: defaultSessionFile,
		Timeout:     defaultTimeout,
	}

	cfg, err := config.LoadWithEnv[config.Config]("config", "config")
	if err != nil || cfg.Client == nil {
		return out
	}
	if cfg.Client.BaseURL != "" {
		out.BaseURL = cfg.Client.BaseURL
	}
	if cfg.Client.SessionFile != "" {
		out.SessionFile = cfg.Client.SessionFile
	}
	if cfg.Client.Timeout > 0 {
		out.Timeout = cfg.Client.Timeout
	}

	return out
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
