package workflows

import "github.com/narthia/jira-client/client"

// Workflow is one entry of the workflow search page.
type Workflow struct {
	ID          WorkflowID `json:"id"`
	Description string     `json:"description,omitempty"`
	Created     string     `json:"created,omitempty"`
	Updated     string     `json:"updated,omitempty"`
	IsDefault   bool       `json:"isDefault,omitempty"`
}

type WorkflowID struct {
	Name     string `json:"name"`
	EntityID string `json:"entityId,omitempty"`
}

type SearchParams struct {
	StartAt       int
	MaxResults    int
	WorkflowName  []string
	Expand        []string
	Authorization string
	Options       *client.CallOptions
}

type searchQuery struct {
	StartAt      int      `url:"startAt,omitempty"`
	MaxResults   int      `url:"maxResults,omitempty"`
	WorkflowName []string `url:"workflowName,omitempty"`
	Expand       []string `url:"expand,omitempty,comma"`
}
