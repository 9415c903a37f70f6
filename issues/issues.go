// Package issues covers the core issue operations of the Jira platform
// api/3 REST surface: CRUD, JQL search, transitions and comments.
package issues

import (
	"context"
	"net/http"

	"github.com/narthia/jira-client/client"
)

const apiBase = "/rest/api/3"

type Service struct {
	client *client.Client
}

func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// GetIssue fetches one issue by id or key.
func (s *Service) GetIssue(ctx context.Context, params GetIssueParams) (*Issue, error) {
	q, err := client.QueryValues(getIssueQuery{Fields: params.Fields, Expand: params.Expand})
	if err != nil {
		return nil, err
	}
	return client.Dispatch[Issue](ctx, s.client, client.Request{
		Path:          apiBase + "/issue/{issueIdOrKey}",
		Method:        http.MethodGet,
		PathParams:    map[string]string{"issueIdOrKey": params.IssueIDOrKey},
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// CreateIssue creates an issue from the given fields.
func (s *Service) CreateIssue(ctx context.Context, params CreateIssueParams) (*CreatedIssue, error) {
	q, err := client.QueryValues(createIssueQuery{UpdateHistory: params.UpdateHistory})
	if err != nil {
		return nil, err
	}
	return client.Dispatch[CreatedIssue](ctx, s.client, client.Request{
		Path:          apiBase + "/issue",
		Method:        http.MethodPost,
		Query:         q,
		Body:          params.Payload,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// EditIssue applies field and update operations to an issue. The endpoint
// returns no body on success.
func (s *Service) EditIssue(ctx context.Context, params EditIssueParams) error {
	q, err := client.QueryValues(editIssueQuery{NotifyUsers: params.NotifyUsers})
	if err != nil {
		return err
	}
	return s.client.Do(ctx, client.Request{
		Path:          apiBase + "/issue/{issueIdOrKey}",
		Method:        http.MethodPut,
		PathParams:    map[string]string{"issueIdOrKey": params.IssueIDOrKey},
		Query:         q,
		Body:          params.Payload,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	}, nil)
}

// DeleteIssue deletes an issue, optionally with its subtasks.
func (s *Service) DeleteIssue(ctx context.Context, params DeleteIssueParams) error {
	q, err := client.QueryValues(deleteIssueQuery{DeleteSubtasks: params.DeleteSubtasks})
	if err != nil {
		return err
	}
	return s.client.Do(ctx, client.Request{
		Path:          apiBase + "/issue/{issueIdOrKey}",
		Method:        http.MethodDelete,
		PathParams:    map[string]string{"issueIdOrKey": params.IssueIDOrKey},
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	}, nil)
}

// Search runs a JQL search via the POST endpoint, which has no query-length
// limit.
func (s *Service) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	return client.Dispatch[SearchResponse](ctx, s.client, client.Request{
		Path:   apiBase + "/search",
		Method: http.MethodPost,
		Body: searchPayload{
			JQL:        params.JQL,
			StartAt:    params.StartAt,
			MaxResults: params.MaxResults,
			Fields:     params.Fields,
			Expand:     params.Expand,
		},
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// GetTransitions lists the transitions currently available on an issue.
func (s *Service) GetTransitions(ctx context.Context, params GetTransitionsParams) (*TransitionsResponse, error) {
	return client.Dispatch[TransitionsResponse](ctx, s.client, client.Request{
		Path:          apiBase + "/issue/{issueIdOrKey}/transitions",
		Method:        http.MethodGet,
		PathParams:    map[string]string{"issueIdOrKey": params.IssueIDOrKey},
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// TransitionIssue performs a workflow transition. No body on success.
func (s *Service) TransitionIssue(ctx context.Context, params TransitionIssueParams) error {
	payload := IssuePayload{
		Fields: params.Fields,
		Update: params.Update,
		Transition: &struct {
			ID string `json:"id"`
		}{ID: params.TransitionID},
	}
	return s.client.Do(ctx, client.Request{
		Path:          apiBase + "/issue/{issueIdOrKey}/transitions",
		Method:        http.MethodPost,
		PathParams:    map[string]string{"issueIdOrKey": params.IssueIDOrKey},
		Body:          payload,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	}, nil)
}

// AddComment adds a comment to an issue. Body takes an Atlassian document
// node; it is transmitted as given.
func (s *Service) AddComment(ctx context.Context, params AddCommentParams) (*Comment, error) {
	return client.Dispatch[Comment](ctx, s.client, client.Request{
		Path:          apiBase + "/issue/{issueIdOrKey}/comment",
		Method:        http.MethodPost,
		PathParams:    map[string]string{"issueIdOrKey": params.IssueIDOrKey},
		Body:          map[string]any{"body": params.Body},
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}
