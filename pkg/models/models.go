// Package models holds the wire shapes shared across the Jira service
// packages.
package models

// Page is the paged collection shape Jira uses for list endpoints.
// Values never exceeds MaxResults; IsLast true means no page exists at
// StartAt + len(Values).
type Page[T any] struct {
	StartAt    int  `json:"startAt"`
	MaxResults int  `json:"maxResults"`
	Total      int  `json:"total"`
	IsLast     bool `json:"isLast"`
	Values     []T  `json:"values"`
}

// NextStartAt returns the offset of the page after this one.
func (p Page[T]) NextStartAt() int {
	return p.StartAt + len(p.Values)
}

const (
	// AssociationTypeIssueIDOrKeys links an entity to issues by id or key.
	AssociationTypeIssueIDOrKeys = "issueIdOrKeys"
	// AssociationTypeServiceIDOrKeys links an entity to services.
	AssociationTypeServiceIDOrKeys = "serviceIdOrKeys"
)

// Association links a submitted entity to Jira issues or services.
type Association struct {
	AssociationType string   `json:"associationType"`
	Values          []string `json:"values"`
}

// IssueIDOrKeysAssociation builds the common issue-key association.
func IssueIDOrKeysAssociation(issueIDOrKeys ...string) Association {
	return Association{
		AssociationType: AssociationTypeIssueIDOrKeys,
		Values:          issueIDOrKeys,
	}
}

// ProviderMetadata describes the system that produced submitted data.
type ProviderMetadata struct {
	Product string `json:"product,omitempty"`
}

// ErrorMessage is the per-item error shape submit endpoints attach to
// rejected entities.
type ErrorMessage struct {
	Message      string `json:"message"`
	ErrorTraceID string `json:"errorTraceId,omitempty"`
}
