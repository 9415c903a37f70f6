// Package jira is a typed client for the Jira Cloud REST API. Each API area
// lives in its own service package; this package wires them to one shared
// dispatcher so callers configure the client once.
//
// Every operation is stateless and safe to call concurrently. The client
// performs no token acquisition: each call carries a pre-built authorization
// value that is attached to the request unchanged.
package jira

import (
	"github.com/narthia/jira-client/builds"
	"github.com/narthia/jira-client/client"
	config "github.com/narthia/jira-client/configs"
	"github.com/narthia/jira-client/deployments"
	"github.com/narthia/jira-client/devinfo"
	"github.com/narthia/jira-client/issues"
	"github.com/narthia/jira-client/permissions"
	"github.com/narthia/jira-client/workflows"
)

// Client bundles one service per Jira API area, all sharing a base
// configuration.
type Client struct {
	Builds      *builds.Service
	DevInfo     *devinfo.Service
	Deployments *deployments.Service
	Issues      *issues.Service
	Permissions *permissions.Service
	Workflows   *workflows.Service
}

func New(cfg client.Config) (*Client, error) {
	c, err := client.New(cfg)
	if err != nil {
		return nil, err
	}
	return newClient(c), nil
}

// NewFromConfigFile builds a client from a YAML configuration file and
// applies its log level.
func NewFromConfigFile(path string) (*Client, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	config.SetupLogging(cfg)

	c, err := client.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return newClient(c), nil
}

func newClient(c *client.Client) *Client {
	return &Client{
		Builds:      builds.NewService(c),
		DevInfo:     devinfo.NewService(c),
		Deployments: deployments.NewService(c),
		Issues:      issues.NewService(c),
		Permissions: permissions.NewService(c),
		Workflows:   workflows.NewService(c),
	}
}
