// Package builds covers the Jira Software builds 0.1 REST API: submitting
// build results for issue linking and managing previously stored builds.
package builds

import (
	"context"
	"net/http"
	"strconv"

	"github.com/narthia/jira-client/client"
)

const apiBase = "/rest/builds/0.1"

type Service struct {
	client *client.Client
}

func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// SubmitBuilds stores build data against the issue keys each build names.
// Builds are validated independently; the response carries accepted and
// rejected entries side by side and is returned whole.
func (s *Service) SubmitBuilds(ctx context.Context, params SubmitBuildsParams) (*SubmitBuildsResponse, error) {
	return client.Dispatch[SubmitBuildsResponse](ctx, s.client, client.Request{
		Path:          apiBase + "/bulk",
		Method:        http.MethodPost,
		Body:          params.Payload,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// GetBuildByKey fetches one build by pipeline id and build number.
func (s *Service) GetBuildByKey(ctx context.Context, params GetBuildByKeyParams) (*BuildData, error) {
	return client.Dispatch[BuildData](ctx, s.client, client.Request{
		Path:   apiBase + "/pipelines/{pipelineId}/builds/{buildNumber}",
		Method: http.MethodGet,
		PathParams: map[string]string{
			"pipelineId":  params.PipelineID,
			"buildNumber": strconv.FormatInt(params.BuildNumber, 10),
		},
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// DeleteBuildByKey deletes one build. Deletion is asynchronous on the Jira
// side: success means the delete was accepted, not completed.
func (s *Service) DeleteBuildByKey(ctx context.Context, params DeleteBuildByKeyParams) error {
	q, err := client.QueryValues(compatQuery{UpdateSequenceNumber: params.UpdateSequenceNumber})
	if err != nil {
		return err
	}
	return s.client.Do(ctx, client.Request{
		Path:   apiBase + "/pipelines/{pipelineId}/builds/{buildNumber}",
		Method: http.MethodDelete,
		PathParams: map[string]string{
			"pipelineId":  params.PipelineID,
			"buildNumber": strconv.FormatInt(params.BuildNumber, 10),
		},
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	}, nil)
}

// DeleteBuildsByProperty deletes all builds whose submission properties match
// every given filter. Accept-only, like DeleteBuildByKey.
func (s *Service) DeleteBuildsByProperty(ctx context.Context, params DeleteBuildsByPropertyParams) error {
	q, err := client.QueryValues(compatQuery{UpdateSequenceNumber: params.UpdateSequenceNumber})
	if err != nil {
		return err
	}
	for key, value := range params.Properties {
		q.Set(key, value)
	}
	return s.client.Do(ctx, client.Request{
		Path:          apiBase + "/bulkByProperties",
		Method:        http.MethodDelete,
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	}, nil)
}
