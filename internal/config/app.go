// Package config loads the parser's application configuration.
// Values come from an optional YAML file and are then overridden by environment
// variables, so a deployment can run with no file at all.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"articles-parser/internal/infra/fetcher"
	"articles-parser/internal/infra/loader"
	"articles-parser/internal/observability/logging"
	"articles-parser/internal/usecase/ingest"
	"articles-parser/internal/usecase/parse"
	pkgconfig "articles-parser/pkg/config"
)

// Names of the default inputs. Environment overrides target them by name.
const (
	InputNewsAPIFile = "newsapi-file"
	InputSimpleFile  = "simple-file"
	InputNewsAPIURL  = "newsapi-url"
)

// AppConfig represents the parser configuration.
type AppConfig struct {
	NewsAPI struct {
		// APIKey is appended to NewsAPI URL inputs as the apiKey query parameter.
		APIKey string `yaml:"api_key"`
	} `yaml:"newsapi"`

	Inputs []InputConfig `yaml:"inputs"`

	Log struct {
		// File is the append-only log destination; "-" means stderr.
		File string `yaml:"file"`
	} `yaml:"log"`

	Metrics struct {
		// Textfile receives a Prometheus textfile dump at exit when set.
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`

	Tracing struct {
		// Export writes finished spans to the log sink.
		Export bool `yaml:"export"`
	} `yaml:"tracing"`

	Fetch struct {
		Timeout        time.Duration `yaml:"timeout"`
		MaxBodySize    int64         `yaml:"max_body_size"`
		MaxRedirects   int           `yaml:"max_redirects"`
		DenyPrivateIPs bool          `yaml:"deny_private_ips"`
	} `yaml:"fetch"`
}

// InputConfig describes one input as written in the YAML file.
type InputConfig struct {
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Format   string `yaml:"format"`
	Location string `yaml:"location"`
}

// Default returns the configuration used when no file is given:
// a local NewsAPI file, a local Simple file and the NewsAPI top headlines URL.
func Default() *AppConfig {
	cfg := &AppConfig{
		Inputs: []InputConfig{
			{Name: InputNewsAPIFile, Source: "file", Format: "newsapi", Location: "inputs/newsapi.txt"},
			{Name: InputSimpleFile, Source: "file", Format: "simple", Location: "inputs/simple.txt"},
			{Name: InputNewsAPIURL, Source: "url", Format: "newsapi", Location: "https://newsapi.org/v2/top-headlines?country=us"},
		},
	}
	cfg.Log.File = logging.DefaultLogFile

	fc := fetcher.DefaultConfig()
	cfg.Fetch.Timeout = fc.Timeout
	cfg.Fetch.MaxBodySize = fc.MaxBodySize
	cfg.Fetch.MaxRedirects = fc.MaxRedirects
	cfg.Fetch.DenyPrivateIPs = fc.DenyPrivateIPs
	return cfg
}

// Load builds the configuration from the YAML file at path (skipped when path
// is empty), applies environment overrides and validates the result.
//
// Environment variables:
//   - NEWSAPI_API_KEY: NewsAPI key
//   - NEWSAPI_FILE, SIMPLE_FILE, NEWSAPI_URL: locations of the default inputs
//   - LOG_FILE: log destination
//   - METRICS_TEXTFILE: Prometheus textfile path
//   - TRACE_EXPORT: write spans to the log sink
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI flag or env)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	c.NewsAPI.APIKey = pkgconfig.GetEnvString("NEWSAPI_API_KEY", c.NewsAPI.APIKey)
	c.Log.File = pkgconfig.GetEnvString("LOG_FILE", c.Log.File)
	c.Metrics.Textfile = pkgconfig.GetEnvString("METRICS_TEXTFILE", c.Metrics.Textfile)
	c.Tracing.Export = pkgconfig.GetEnvBool("TRACE_EXPORT", c.Tracing.Export)

	overrides := map[string]string{
		InputNewsAPIFile: "NEWSAPI_FILE",
		InputSimpleFile:  "SIMPLE_FILE",
		InputNewsAPIURL:  "NEWSAPI_URL",
	}
	for i := range c.Inputs {
		if key, ok := overrides[c.Inputs[i].Name]; ok {
			c.Inputs[i].Location = pkgconfig.GetEnvString(key, c.Inputs[i].Location)
		}
	}
}

// Validate checks the inputs and the fetch settings.
func (c *AppConfig) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("at least one input is required")
	}
	for i, in := range c.Inputs {
		if _, err := in.resolve(); err != nil {
			return fmt.Errorf("inputs[%d]: %w", i, err)
		}
	}
	fc := c.baseFetchConfig()
	if err := fc.Validate(); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	return nil
}

// FetchConfig returns the HTTP fetch settings, with FETCH_* environment overrides applied.
func (c *AppConfig) FetchConfig() (fetcher.Config, error) {
	return fetcher.LoadConfigFromEnv(c.baseFetchConfig())
}

func (c *AppConfig) baseFetchConfig() fetcher.Config {
	fc := fetcher.DefaultConfig()
	fc.Timeout = c.Fetch.Timeout
	fc.MaxBodySize = c.Fetch.MaxBodySize
	fc.MaxRedirects = c.Fetch.MaxRedirects
	fc.DenyPrivateIPs = c.Fetch.DenyPrivateIPs
	return fc
}

// IngestInputs converts the configured inputs for the ingest service.
// NewsAPI URL inputs get the API key added as the apiKey query parameter.
// A malformed URL does not fail the conversion: it is reported when that input loads.
func (c *AppConfig) IngestInputs() ([]ingest.Input, error) {
	out := make([]ingest.Input, 0, len(c.Inputs))
	for _, in := range c.Inputs {
		resolved, err := in.resolve()
		if err != nil {
			return nil, err
		}
		if resolved.Source == loader.SourceURL && resolved.Format == parse.FormatNewsAPI && c.NewsAPI.APIKey != "" {
			// An unparseable URL is left as written; the fetcher rejects it for this input only.
			if keyed, err := WithAPIKey(resolved.Location, c.NewsAPI.APIKey); err == nil {
				resolved.Location = keyed
			}
		}
		out = append(out, resolved)
	}
	return out, nil
}

// NeedsAPIKey reports whether a NewsAPI URL input is configured without a key.
func (c *AppConfig) NeedsAPIKey() bool {
	if c.NewsAPI.APIKey != "" {
		return false
	}
	for _, in := range c.Inputs {
		resolved, err := in.resolve()
		if err == nil && resolved.Source == loader.SourceURL && resolved.Format == parse.FormatNewsAPI {
			return true
		}
	}
	return false
}

func (in InputConfig) resolve() (ingest.Input, error) {
	source, err := loader.ParseSourceKind(in.Source)
	if err != nil {
		return ingest.Input{}, err
	}
	format, err := parse.ParseFormatKind(in.Format)
	if err != nil {
		return ingest.Input{}, err
	}
	name := in.Name
	if name == "" {
		name = source.String() + ":" + format.String()
	}
	return ingest.Input{Name: name, Source: source, Format: format, Location: in.Location}, nil
}

// WithAPIKey returns rawURL with the apiKey query parameter set to key.
func WithAPIKey(rawURL, key string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	q := u.Query()
	q.Set("apiKey", key)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
