// Package workflows covers workflow lookups on the api/3 REST surface.
package workflows

import (
	"context"
	"net/http"

	"github.com/narthia/jira-client/client"
	"github.com/narthia/jira-client/pkg/models"
)

const apiBase = "/rest/api/3"

type Service struct {
	client *client.Client
}

func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// Search pages through the workflow catalog.
func (s *Service) Search(ctx context.Context, params SearchParams) (*models.Page[Workflow], error) {
	q, err := client.QueryValues(searchQuery{
		StartAt:      params.StartAt,
		MaxResults:   params.MaxResults,
		WorkflowName: params.WorkflowName,
		Expand:       params.Expand,
	})
	if err != nil {
		return nil, err
	}
	return client.Dispatch[models.Page[Workflow]](ctx, s.client, client.Request{
		Path:          apiBase + "/workflow/search",
		Method:        http.MethodGet,
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}
