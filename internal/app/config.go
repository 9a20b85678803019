package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Built-in defaults, applied when neither the defaults file nor a flag says
// otherwise.
const (
	DefaultRequests = 50
	MinRequests     = 10
	MaxRequests     = 200
	DefaultTimeout  = 15 * time.Second
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string        // state dir, e.g. $HOME/.cookietrace
	Requests  int           // sessions per capture run
	Timeout   time.Duration // per-request timeout
	UserAgent string        // optional User-Agent override
	Charts    bool          // render PNG charts during analysis
	HTTP      *http.Client  // optional; defaults to http.DefaultClient
}

// fileConfig is the on-disk shape of <home>/config.toml.
type fileConfig struct {
	Requests       int    `toml:"requests"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
	Charts         *bool  `toml:"charts"`
}

// Load builds a Config from built-in defaults overlaid with <home>/config.toml.
// A missing defaults file is fine.
func Load(home string) (Config, error) {
	cfg := Config{
		Home:     home,
		Requests: DefaultRequests,
		Timeout:  DefaultTimeout,
		Charts:   true,
	}

	raw, err := os.ReadFile(filepath.Join(home, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("config.toml: %w", err)
	}
	if fc.Requests != 0 {
		cfg.Requests = fc.Requests
	}
	if fc.TimeoutSeconds != 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.Charts != nil {
		cfg.Charts = *fc.Charts
	}
	return cfg, nil
}
