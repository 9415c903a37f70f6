package builds

import (
	"encoding/json"

	"github.com/narthia/jira-client/client"
	"github.com/narthia/jira-client/pkg/models"
)

// Build states accepted by the submit endpoint.
const (
	StatePending    = "pending"
	StateInProgress = "in_progress"
	StateSuccessful = "successful"
	StateFailed     = "failed"
	StateCancelled  = "cancelled"
	StateUnknown    = "unknown"
)

// BuildData is one build in a submit payload. Jira documents the shape as
// extensible, so provider-specific top-level fields survive in Extra and are
// merged back at the top level when the build is serialized.
type BuildData struct {
	SchemaVersion        string           `json:"schemaVersion,omitempty"`
	PipelineID           string           `json:"pipelineId"`
	BuildNumber          int64            `json:"buildNumber"`
	UpdateSequenceNumber int64            `json:"updateSequenceNumber"`
	DisplayName          string           `json:"displayName"`
	Description          string           `json:"description,omitempty"`
	Label                string           `json:"label,omitempty"`
	URL                  string           `json:"url"`
	State                string           `json:"state"`
	LastUpdated          string           `json:"lastUpdated"`
	IssueKeys            []string         `json:"issueKeys"`
	TestInfo             *TestInfo        `json:"testInfo,omitempty"`
	References           []BuildReference `json:"references,omitempty"`

	// Extra holds top-level fields outside the documented shape.
	Extra map[string]any `json:"-"`
}

var buildDataKnownKeys = map[string]struct{}{
	"schemaVersion": {}, "pipelineId": {}, "buildNumber": {},
	"updateSequenceNumber": {}, "displayName": {}, "description": {},
	"label": {}, "url": {}, "state": {}, "lastUpdated": {},
	"issueKeys": {}, "testInfo": {}, "references": {},
}

type buildDataAlias BuildData

func (b BuildData) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(buildDataAlias(b))
	if err != nil {
		return nil, err
	}
	return models.MergeExtra(data, b.Extra)
}

func (b *BuildData) UnmarshalJSON(data []byte) error {
	var alias buildDataAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*b = BuildData(alias)
	b.Extra = models.SplitExtra(data, buildDataKnownKeys)
	return nil
}

type TestInfo struct {
	TotalNumber   int64 `json:"totalNumber"`
	NumberPassed  int64 `json:"numberPassed"`
	NumberFailed  int64 `json:"numberFailed"`
	NumberSkipped int64 `json:"numberSkipped,omitempty"`
}

// BuildReference points a build at the commit and ref it was built from.
type BuildReference struct {
	Commit *CommitReference `json:"commit,omitempty"`
	Ref    *RefReference    `json:"ref,omitempty"`
}

type CommitReference struct {
	ID            string `json:"id"`
	RepositoryURI string `json:"repositoryUri"`
}

type RefReference struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SubmitBuildsPayload is the bulk submit body. Properties tag the submission
// for later deletion by property filter; the server, not this client,
// validates key charset and count.
type SubmitBuildsPayload struct {
	Properties       map[string]string        `json:"properties,omitempty"`
	ProviderMetadata *models.ProviderMetadata `json:"providerMetadata,omitempty"`
	Builds           []BuildData              `json:"builds"`
}

// SubmitBuildsResponse reports per-item acceptance. Builds are validated
// independently: accepted and rejected entries coexist in a 2xx response.
type SubmitBuildsResponse struct {
	AcceptedBuilds   []BuildKey      `json:"acceptedBuilds"`
	RejectedBuilds   []RejectedBuild `json:"rejectedBuilds"`
	UnknownIssueKeys []string        `json:"unknownIssueKeys"`
}

type BuildKey struct {
	PipelineID  string `json:"pipelineId"`
	BuildNumber int64  `json:"buildNumber"`
}

type RejectedBuild struct {
	Key    BuildKey              `json:"key"`
	Errors []models.ErrorMessage `json:"errors"`
}

type SubmitBuildsParams struct {
	Payload       SubmitBuildsPayload
	Authorization string
	Options       *client.CallOptions
}

type GetBuildByKeyParams struct {
	PipelineID    string
	BuildNumber   int64
	Authorization string
	Options       *client.CallOptions
}

type DeleteBuildByKeyParams struct {
	PipelineID  string
	BuildNumber int64
	// UpdateSequenceNumber is no longer supported by Jira. It is still
	// accepted and transmitted for compatibility; unset sends no query key.
	UpdateSequenceNumber *int64
	Authorization        string
	Options              *client.CallOptions
}

type DeleteBuildsByPropertyParams struct {
	// Properties filter which previously-submitted builds get deleted.
	Properties map[string]string
	// UpdateSequenceNumber is no longer supported by Jira; compatibility
	// pass-through only.
	UpdateSequenceNumber *int64
	Authorization        string
	Options              *client.CallOptions
}

type compatQuery struct {
	UpdateSequenceNumber *int64 `url:"_updateSequenceNumber,omitempty"`
}
