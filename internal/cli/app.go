package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bjornmorten/stoat-wh/internal/config"
	"github.com/bjornmorten/stoat-wh/internal/httpclient"
	"github.com/bjornmorten/stoat-wh/internal/logger"
	"github.com/bjornmorten/stoat-wh/internal/webhook"
)

// appContext holds the per-invocation collaborators each command needs.
type appContext struct {
	cfg    *config.Config
	logger zerolog.Logger
	client *webhook.Client
	url    string
}

// buildApp loads configuration, builds the logger and HTTP client, and
// resolves the positional webhook reference. Locator failures map to a
// usage error before any network activity.
func (o *options) buildApp(args []string) (*appContext, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogConfig, o.debug)
	if err != nil {
		return nil, err
	}

	url, err := webhook.ResolveLocator(args, cfg.APIBaseURL)
	if err != nil {
		return nil, Exitf(ExitUsage, "Error: %s.", err)
	}

	hc, err := httpclient.NewClientBuilder(log).
		WithTimeout(cfg.Timeout()).
		WithUserAgent(config.UserAgent).
		Build()
	if err != nil {
		return nil, err
	}

	return &appContext{
		cfg:    cfg,
		logger: log,
		client: webhook.NewClient(hc, log, o.debug),
		url:    url,
	}, nil
}

// readStdin returns text piped to stdin, trimmed, or "" when stdin is a
// terminal.
func readStdin() string {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
