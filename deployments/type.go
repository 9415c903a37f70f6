package deployments

import (
	"encoding/json"

	"github.com/narthia/jira-client/client"
	"github.com/narthia/jira-client/pkg/models"
)

// Deployment states accepted by the submit endpoint.
const (
	StateUnknown    = "unknown"
	StatePending    = "pending"
	StateInProgress = "in_progress"
	StateCancelled  = "cancelled"
	StateFailed     = "failed"
	StateRolledBack = "rolled_back"
	StateSuccessful = "successful"
)

// Environment types.
const (
	EnvProduction  = "production"
	EnvStaging     = "staging"
	EnvTesting     = "testing"
	EnvDevelopment = "development"
	EnvUnmapped    = "unmapped"
)

// Gating statuses.
const (
	GatingAllowed   = "allowed"
	GatingPrevented = "prevented"
	GatingAwaiting  = "awaiting"
)

// DeploymentData is one deployment in a submit payload. Like builds, the
// shape is extensible: unrecognized top-level fields survive in Extra.
type DeploymentData struct {
	DeploymentSequenceNumber int64                `json:"deploymentSequenceNumber"`
	UpdateSequenceNumber     int64                `json:"updateSequenceNumber"`
	Associations             []models.Association `json:"associations"`
	DisplayName              string               `json:"displayName"`
	URL                      string               `json:"url"`
	Description              string               `json:"description"`
	LastUpdated              string               `json:"lastUpdated"`
	Label                    string               `json:"label,omitempty"`
	State                    string               `json:"state"`
	Pipeline                 Pipeline             `json:"pipeline"`
	Environment              Environment          `json:"environment"`
	SchemaVersion            string               `json:"schemaVersion,omitempty"`

	// Extra holds top-level fields outside the documented shape.
	Extra map[string]any `json:"-"`
}

var deploymentDataKnownKeys = map[string]struct{}{
	"deploymentSequenceNumber": {}, "updateSequenceNumber": {},
	"associations": {}, "displayName": {}, "url": {}, "description": {},
	"lastUpdated": {}, "label": {}, "state": {}, "pipeline": {},
	"environment": {}, "schemaVersion": {},
}

type deploymentDataAlias DeploymentData

func (d DeploymentData) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(deploymentDataAlias(d))
	if err != nil {
		return nil, err
	}
	return models.MergeExtra(data, d.Extra)
}

func (d *DeploymentData) UnmarshalJSON(data []byte) error {
	var alias deploymentDataAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*d = DeploymentData(alias)
	d.Extra = models.SplitExtra(data, deploymentDataKnownKeys)
	return nil
}

type Pipeline struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	URL         string `json:"url"`
}

type Environment struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
}

type SubmitDeploymentsPayload struct {
	Properties       map[string]string        `json:"properties,omitempty"`
	ProviderMetadata *models.ProviderMetadata `json:"providerMetadata,omitempty"`
	Deployments      []DeploymentData         `json:"deployments"`
}

// SubmitDeploymentsResponse reports per-item acceptance; accepted and
// rejected deployments coexist in a 2xx response.
type SubmitDeploymentsResponse struct {
	AcceptedDeployments []DeploymentKey      `json:"acceptedDeployments"`
	RejectedDeployments []RejectedDeployment `json:"rejectedDeployments"`
	UnknownAssociations []models.Association `json:"unknownAssociations"`
}

type DeploymentKey struct {
	PipelineID               string `json:"pipelineId"`
	EnvironmentID            string `json:"environmentId"`
	DeploymentSequenceNumber int64  `json:"deploymentSequenceNumber"`
}

type RejectedDeployment struct {
	Key    DeploymentKey         `json:"key"`
	Errors []models.ErrorMessage `json:"errors"`
}

// GatingStatus is the deployment gating state for one deployment.
type GatingStatus struct {
	DeploymentSequenceNumber int64           `json:"deploymentSequenceNumber"`
	UpdateSequenceNumber     int64           `json:"updateSequenceNumber"`
	PipelineID               string          `json:"pipelineId"`
	EnvironmentID            string          `json:"environmentId"`
	GatingStatus             string          `json:"gatingStatus"`
	Details                  json.RawMessage `json:"details,omitempty"`
}

type SubmitDeploymentsParams struct {
	Payload       SubmitDeploymentsPayload
	Authorization string
	Options       *client.CallOptions
}

type DeploymentKeyParams struct {
	PipelineID               string
	EnvironmentID            string
	DeploymentSequenceNumber int64
	Authorization            string
	Options                  *client.CallOptions
}

type DeleteDeploymentByKeyParams struct {
	PipelineID               string
	EnvironmentID            string
	DeploymentSequenceNumber int64
	// UpdateSequenceNumber is no longer supported by Jira; compatibility
	// pass-through only. Unset sends no query key.
	UpdateSequenceNumber *int64
	Authorization        string
	Options              *client.CallOptions
}

type DeleteDeploymentsByPropertyParams struct {
	Properties           map[string]string
	UpdateSequenceNumber *int64
	Authorization        string
	Options              *client.CallOptions
}

type compatQuery struct {
	UpdateSequenceNumber *int64 `url:"_updateSequenceNumber,omitempty"`
}
