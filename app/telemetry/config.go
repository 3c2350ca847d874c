package telemetry

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config selects what the feeds module exports.
type Config struct {
	// Enabled turns on span export to OTLPEndpoint.
	Enabled      bool
	OTLPEndpoint string
	SampleRate   float64
	Environment  string
	ChainID      string

	// PrometheusEnabled exposes the OTel instruments on the Prometheus
	// registry.
	PrometheusEnabled bool
}

// Validate checks the settings span export depends on.
func (c Config) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("sample rate %v outside [0, 1]", c.SampleRate)
	}
	if !c.Enabled {
		return nil
	}
	if c.OTLPEndpoint == "" {
		return fmt.Errorf("otlp endpoint is required when tracing is enabled")
	}
	if _, err := url.Parse(c.OTLPEndpoint); err != nil {
		return fmt.Errorf("invalid otlp endpoint: %w", err)
	}
	return nil
}

// otlpHost strips the scheme, which the OTLP/HTTP client does not accept.
func (c Config) otlpHost() string {
	host := strings.TrimPrefix(c.OTLPEndpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}

// Config keys under the [feeds.telemetry] table of app.toml. Each may be
// overridden by an environment variable such as FEEDS_TELEMETRY_ENABLED.
const (
	keyEnabled           = "feeds.telemetry.enabled"
	keyOTLPEndpoint      = "feeds.telemetry.otlp-endpoint"
	keySampleRate        = "feeds.telemetry.sample-rate"
	keyEnvironment       = "feeds.telemetry.environment"
	keyChainID           = "feeds.telemetry.chain-id"
	keyPrometheusEnabled = "feeds.telemetry.prometheus-enabled"
)

// DefaultConfig returns telemetry disabled with a full sample rate.
func DefaultConfig() Config {
	return Config{
		SampleRate:  1.0,
		Environment: "development",
	}
}

// LoadConfig reads the telemetry table from a TOML file. An empty path reads
// only defaults and environment overrides.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault(keyEnabled, def.Enabled)
	v.SetDefault(keyOTLPEndpoint, def.OTLPEndpoint)
	v.SetDefault(keySampleRate, def.SampleRate)
	v.SetDefault(keyEnvironment, def.Environment)
	v.SetDefault(keyChainID, def.ChainID)
	v.SetDefault(keyPrometheusEnabled, def.PrometheusEnabled)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read telemetry config %s: %w", path, err)
		}
	}

	cfg := Config{
		Enabled:           v.GetBool(keyEnabled),
		OTLPEndpoint:      v.GetString(keyOTLPEndpoint),
		SampleRate:        v.GetFloat64(keySampleRate),
		Environment:       v.GetString(keyEnvironment),
		ChainID:           v.GetString(keyChainID),
		PrometheusEnabled: v.GetBool(keyPrometheusEnabled),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
