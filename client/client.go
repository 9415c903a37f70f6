// Package client carries the shared HTTP plumbing for the Jira Cloud REST
// services: one request descriptor, one dispatcher, one error taxonomy.
package client

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	config "github.com/narthia/jira-client/configs"
)

// Type selects how the base URL for requests is resolved.
type Type string

const (
	// TypeDefault targets a site directly, e.g. https://your-site.atlassian.net.
	TypeDefault Type = "default"
	// TypeOAuth targets the OAuth 2.0 gateway, which routes by cloud id.
	TypeOAuth Type = "oauth"
)

const oauthAPIBase = "https://api.atlassian.com/ex/jira"

type Config struct {
	BaseURL    string
	Type       Type
	CloudID    string
	HTTPClient *http.Client
}

// Client holds the resolved base URL and transport shared by every service.
// It keeps no per-call state; all methods are safe for concurrent use.
type Client struct {
	baseURL    string
	clientType Type
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	baseURL, err := resolveBaseURL(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	clientType := cfg.Type
	if clientType == "" {
		clientType = TypeDefault
	}

	return &Client{
		baseURL:    baseURL,
		clientType: clientType,
		httpClient: httpClient,
	}, nil
}

// NewFromConfig builds a client from a loaded YAML configuration file.
func NewFromConfig(cfg *config.Config) (*Client, error) {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.Jira.VerifySSL},
	}
	httpClient := &http.Client{
		Transport: tr,
		Timeout:   time.Duration(cfg.Jira.TimeoutSeconds) * time.Second,
	}

	return New(Config{
		BaseURL:    cfg.Jira.BaseURL,
		Type:       Type(cfg.Jira.ClientType),
		CloudID:    cfg.Jira.CloudID,
		HTTPClient: httpClient,
	})
}

// BaseURL returns the resolved base URL requests are issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func resolveBaseURL(cfg Config) (string, error) {
	if cfg.BaseURL != "" {
		return strings.TrimRight(cfg.BaseURL, "/"), nil
	}
	switch cfg.Type {
	case TypeOAuth:
		if cfg.CloudID == "" {
			return "", fmt.Errorf("client: cloud id is required for the oauth client type")
		}
		return fmt.Sprintf("%s/%s", oauthAPIBase, cfg.CloudID), nil
	default:
		return "", fmt.Errorf("client: base URL is required")
	}
}
