package config

type Config struct {
	Jira  JiraConfig  `yaml:"jira"`
	Agent AgentConfig `yaml:"agent"`
}

type JiraConfig struct {
	BaseURL        string `yaml:"base_url"`
	ClientType     string `yaml:"client_type"` // "default" or "oauth"
	CloudID        string `yaml:"cloud_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	VerifySSL      bool   `yaml:"verify_ssl"`
}

type AgentConfig struct {
	LogLevel string `yaml:"log_level"`
}
