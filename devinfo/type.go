package devinfo

import (
	"github.com/narthia/jira-client/client"
	"github.com/narthia/jira-client/pkg/models"
)

// Entity types addressable by DeleteEntity.
const (
	EntityCommit      = "commit"
	EntityBranch      = "branch"
	EntityPullRequest = "pull_request"
	EntityRepository  = "repository"
)

// Pull request states.
const (
	PullRequestOpen     = "OPEN"
	PullRequestMerged   = "MERGED"
	PullRequestDeclined = "DECLINED"
	PullRequestUnknown  = "UNKNOWN"
)

// RepositoryData is one repository with its contained entities. Every entity
// carries an updateSequenceId the server uses to discard out-of-order stale
// writes; the client transmits the value unchanged.
type RepositoryData struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	URL               string        `json:"url"`
	AvatarURL         string        `json:"avatar,omitempty"`
	AvatarDescription string        `json:"avatarDescription,omitempty"`
	ForkOf            string        `json:"forkOf,omitempty"`
	Commits           []Commit      `json:"commits,omitempty"`
	Branches          []Branch      `json:"branches,omitempty"`
	PullRequests      []PullRequest `json:"pullRequests,omitempty"`
	UpdateSequenceID  int64         `json:"updateSequenceId"`
}

type Commit struct {
	ID               string       `json:"id"`
	IssueKeys        []string     `json:"issueKeys"`
	DisplayID        string       `json:"displayId"`
	Message          string       `json:"message"`
	Author           *Author      `json:"author,omitempty"`
	FileCount        int          `json:"fileCount"`
	URL              string       `json:"url"`
	Files            []CommitFile `json:"files,omitempty"`
	AuthorTimestamp  string       `json:"authorTimestamp"`
	UpdateSequenceID int64        `json:"updateSequenceId"`
}

type CommitFile struct {
	Path         string `json:"path"`
	URL          string `json:"url"`
	ChangeType   string `json:"changeType"`
	LinesAdded   int    `json:"linesAdded"`
	LinesRemoved int    `json:"linesRemoved"`
}

type Author struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type Branch struct {
	ID                   string   `json:"id"`
	IssueKeys            []string `json:"issueKeys"`
	Name                 string   `json:"name"`
	LastCommit           *Commit  `json:"lastCommit,omitempty"`
	URL                  string   `json:"url"`
	CreatePullRequestURL string   `json:"createPullRequestUrl,omitempty"`
	UpdateSequenceID     int64    `json:"updateSequenceId"`
}

type PullRequest struct {
	ID                   string   `json:"id"`
	IssueKeys            []string `json:"issueKeys"`
	DisplayID            string   `json:"displayId"`
	Title                string   `json:"title"`
	Author               *Author  `json:"author,omitempty"`
	Reviewers            []Author `json:"reviewers,omitempty"`
	CommentCount         int      `json:"commentCount"`
	SourceBranch         string   `json:"sourceBranch"`
	SourceBranchURL      string   `json:"sourceBranchUrl,omitempty"`
	DestinationBranch    string   `json:"destinationBranch,omitempty"`
	DestinationBranchURL string   `json:"destinationBranchUrl,omitempty"`
	Status               string   `json:"status"`
	LastUpdate           string   `json:"lastUpdate"`
	URL                  string   `json:"url"`
	UpdateSequenceID     int64    `json:"updateSequenceId"`
}

// StorePayload is the bulk store body. PreventTransitions suppresses the
// workflow transitions the stored data would otherwise trigger.
type StorePayload struct {
	Repositories       []RepositoryData         `json:"repositories"`
	PreventTransitions bool                     `json:"preventTransitions,omitempty"`
	OperationType      string                   `json:"operationType,omitempty"`
	Properties         map[string]string        `json:"properties,omitempty"`
	ProviderMetadata   *models.ProviderMetadata `json:"providerMetadata,omitempty"`
}

// StoreResponse reports per-entity acceptance, keyed by repository id. A 2xx
// response can carry accepted and failed entities at the same time.
type StoreResponse struct {
	AcceptedDevinfoEntities map[string]EntityIDs      `json:"acceptedDevinfoEntities"`
	FailedDevinfoEntities   map[string]FailedEntities `json:"failedDevinfoEntities"`
	UnknownIssueKeys        []string                  `json:"unknownIssueKeys"`
}

// EntityIDs lists the entity ids of one repository by kind.
type EntityIDs struct {
	Commits      []string `json:"commits"`
	Branches     []string `json:"branches"`
	PullRequests []string `json:"pullRequests"`
}

type FailedEntities struct {
	Commits      []FailedEntity        `json:"commits,omitempty"`
	Branches     []FailedEntity        `json:"branches,omitempty"`
	PullRequests []FailedEntity        `json:"pullRequests,omitempty"`
	Errors       []models.ErrorMessage `json:"errors,omitempty"`
}

type FailedEntity struct {
	ID     string                `json:"id"`
	Errors []models.ErrorMessage `json:"errors"`
}

// ExistsResponse answers whether any stored data matches a property filter.
type ExistsResponse struct {
	HasDataMatchingProperties bool `json:"hasDataMatchingProperties"`
}

type StoreParams struct {
	Payload       StorePayload
	Authorization string
	Options       *client.CallOptions
}

type GetRepositoryParams struct {
	RepositoryID  string
	Authorization string
	Options       *client.CallOptions
}

type DeleteRepositoryParams struct {
	RepositoryID string
	// UpdateSequenceID is no longer supported by Jira; compatibility
	// pass-through only. Unset sends no query key.
	UpdateSequenceID *int64
	Authorization    string
	Options          *client.CallOptions
}

type DeleteByPropertiesParams struct {
	Properties       map[string]string
	UpdateSequenceID *int64
	Authorization    string
	Options          *client.CallOptions
}

type ExistsByPropertiesParams struct {
	Properties    map[string]string
	Authorization string
	Options       *client.CallOptions
}

type DeleteEntityParams struct {
	RepositoryID     string
	EntityType       string
	EntityID         string
	UpdateSequenceID *int64
	Authorization    string
	Options          *client.CallOptions
}

type compatQuery struct {
	UpdateSequenceID *int64 `url:"_updateSequenceId,omitempty"`
}
