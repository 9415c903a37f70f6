package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads client configuration from a YAML file
func LoadConfig(configPath string) (*Config, error) {
	logrus.Infof("Loading configuration from: %s", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file: %v", err)
	}

	setDefaults(&config)
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return &config, nil
}

// setDefaults sets default values for configuration fields if they are not provided
func setDefaults(config *Config) {
	if config.Agent.LogLevel == "" {
		config.Agent.LogLevel = "INFO"
	}
	if config.Jira.ClientType == "" {
		config.Jira.ClientType = "default"
	}
	if config.Jira.TimeoutSeconds == 0 {
		config.Jira.TimeoutSeconds = 30
	}
}

func validateConfig(config *Config) error {
	switch config.Jira.ClientType {
	case "default":
		if config.Jira.BaseURL == "" {
			return fmt.Errorf("jira base_url is required for the default client type")
		}
	case "oauth":
		if config.Jira.CloudID == "" {
			return fmt.Errorf("jira cloud_id is required for the oauth client type")
		}
	default:
		return fmt.Errorf("unknown client_type: %s", config.Jira.ClientType)
	}
	return nil
}

// SetupLogging applies the configured log level to logrus
func SetupLogging(config *Config) {
	level, err := logrus.ParseLevel(config.Agent.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown log level '%s', falling back to INFO", config.Agent.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
