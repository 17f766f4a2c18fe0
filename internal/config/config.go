package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config holds the ambient settings for the cmd/ driver binaries. The
// core dmbc package itself takes no configuration; everything here
// governs logging and the optional relay publisher.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Relay   RelayConfig   `yaml:"relay"`
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LOGGING_LEVEL"`
}

// RelayConfig configures the NATS publisher that broadcasts encoded
// transactions to a node cluster; left unset, the relay is not used.
type RelayConfig struct {
	URL     string `yaml:"url" envconfig:"RELAY_URL"`
	Subject string `yaml:"subject" envconfig:"RELAY_SUBJECT"`
}

var globalConfig = &Config{
	Logging: LoggingConfig{
		Level: "info",
	},
	Relay: RelayConfig{
		Subject: "dmbc.transactions",
	},
}

// Load reads configFile as YAML (if non-empty) and then overlays
// environment variables on top, matching the two-phase precedence the
// rest of this system's configuration uses.
func Load(configFile string) (*Config, error) {
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %s", err)
		}
		if err := yaml.Unmarshal(buf, globalConfig); err != nil {
			return nil, fmt.Errorf("error parsing config file: %s", err)
		}
	}
	if err := envconfig.Process("dmbc", globalConfig); err != nil {
		return nil, fmt.Errorf("error processing environment: %s", err)
	}
	return globalConfig, nil
}

// GetConfig returns the process-wide config instance.
func GetConfig() *Config {
	return globalConfig
}
