package issues

import (
	"encoding/json"

	"github.com/narthia/jira-client/client"
)

// Issue is a Jira issue. Fields stays a map: which fields exist depends on
// screen configuration and custom fields, so a fixed catalog would lose data.
type Issue struct {
	ID     string         `json:"id"`
	Key    string         `json:"key"`
	Self   string         `json:"self"`
	Fields map[string]any `json:"fields"`
}

// CreatedIssue is the create endpoint's response.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// SearchResponse is the JQL search page. Search uses issues/total naming
// rather than the values/isLast paged-collection shape.
type SearchResponse struct {
	Expand     string  `json:"expand,omitempty"`
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

type Transition struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	To     json.RawMessage `json:"to,omitempty"`
	Fields json.RawMessage `json:"fields,omitempty"`
}

type TransitionsResponse struct {
	Expand      string       `json:"expand,omitempty"`
	Transitions []Transition `json:"transitions"`
}

type Comment struct {
	ID      string          `json:"id"`
	Self    string          `json:"self,omitempty"`
	Body    json.RawMessage `json:"body"`
	Created string          `json:"created,omitempty"`
	Updated string          `json:"updated,omitempty"`
}

type IssuePayload struct {
	Fields     map[string]any `json:"fields,omitempty"`
	Update     map[string]any `json:"update,omitempty"`
	Transition *struct {
		ID string `json:"id"`
	} `json:"transition,omitempty"`
}

type GetIssueParams struct {
	IssueIDOrKey  string
	Fields        []string
	Expand        []string
	Authorization string
	Options       *client.CallOptions
}

type getIssueQuery struct {
	Fields []string `url:"fields,omitempty,comma"`
	Expand []string `url:"expand,omitempty,comma"`
}

type CreateIssueParams struct {
	Payload       IssuePayload
	UpdateHistory bool
	Authorization string
	Options       *client.CallOptions
}

type createIssueQuery struct {
	UpdateHistory bool `url:"updateHistory,omitempty"`
}

type EditIssueParams struct {
	IssueIDOrKey  string
	Payload       IssuePayload
	NotifyUsers   *bool
	Authorization string
	Options       *client.CallOptions
}

type editIssueQuery struct {
	NotifyUsers *bool `url:"notifyUsers,omitempty"`
}

type DeleteIssueParams struct {
	IssueIDOrKey   string
	DeleteSubtasks bool
	Authorization  string
	Options        *client.CallOptions
}

type deleteIssueQuery struct {
	DeleteSubtasks bool `url:"deleteSubtasks,omitempty"`
}

type SearchParams struct {
	JQL           string
	StartAt       int
	MaxResults    int
	Fields        []string
	Expand        []string
	Authorization string
	Options       *client.CallOptions
}

type searchPayload struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults,omitempty"`
	Fields     []string `json:"fields,omitempty"`
	Expand     []string `json:"expand,omitempty"`
}

type GetTransitionsParams struct {
	IssueIDOrKey  string
	Authorization string
	Options       *client.CallOptions
}

type TransitionIssueParams struct {
	IssueIDOrKey  string
	TransitionID  string
	Fields        map[string]any
	Update        map[string]any
	Authorization string
	Options       *client.CallOptions
}

type AddCommentParams struct {
	IssueIDOrKey  string
	Body          any
	Authorization string
	Options       *client.CallOptions
}
