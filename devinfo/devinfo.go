// Package devinfo covers the Jira development-information 0.10 REST API:
// storing repositories, commits, branches and pull requests against issues.
package devinfo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/narthia/jira-client/client"
)

const apiBase = "/rest/devinfo/0.10"

type Service struct {
	client *client.Client
}

func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// Store submits development information in bulk. Entities are validated
// independently; accepted and failed entities coexist in the response, which
// is returned whole.
func (s *Service) Store(ctx context.Context, params StoreParams) (*StoreResponse, error) {
	return client.Dispatch[StoreResponse](ctx, s.client, client.Request{
		Path:          apiBase + "/bulk",
		Method:        http.MethodPost,
		Body:          params.Payload,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// GetRepository fetches one stored repository with its entities.
func (s *Service) GetRepository(ctx context.Context, params GetRepositoryParams) (*RepositoryData, error) {
	return client.Dispatch[RepositoryData](ctx, s.client, client.Request{
		Path:          apiBase + "/repository/{repositoryId}",
		Method:        http.MethodGet,
		PathParams:    map[string]string{"repositoryId": params.RepositoryID},
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// DeleteRepository deletes a repository and all entities it contains.
// Deletion is asynchronous: success means accepted, not completed.
func (s *Service) DeleteRepository(ctx context.Context, params DeleteRepositoryParams) error {
	q, err := client.QueryValues(compatQuery{UpdateSequenceID: params.UpdateSequenceID})
	if err != nil {
		return err
	}
	return s.client.Do(ctx, client.Request{
		Path:          apiBase + "/repository/{repositoryId}",
		Method:        http.MethodDelete,
		PathParams:    map[string]string{"repositoryId": params.RepositoryID},
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	}, nil)
}

// DeleteByProperties deletes all stored entities whose submission properties
// match every given filter.
func (s *Service) DeleteByProperties(ctx context.Context, params DeleteByPropertiesParams) error {
	q, err := client.QueryValues(compatQuery{UpdateSequenceID: params.UpdateSequenceID})
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

// ExistsByProperties reports whether any stored entity matches the filter.
func (s *Service) ExistsByProperties(ctx context.Context, params ExistsByPropertiesParams) (*ExistsResponse, error) {
	q := make(url.Values, len(params.Properties))
	for key, value := range params.Properties {
		q.Set(key, value)
	}
	return client.Dispatch[ExistsResponse](ctx, s.client, client.Request{
		Path:          apiBase + "/existsByProperties",
		Method:        http.MethodGet,
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// DeleteEntity deletes one commit, branch or pull request from a repository.
func (s *Service) DeleteEntity(ctx context.Context, params DeleteEntityParams) error {
	q, err := client.QueryValues(compatQuery{UpdateSequenceID: params.UpdateSequenceID})
	if err != nil {
		return err
	}
	return s.client.Do(ctx, client.Request{
		Path:   apiBase + "/repository/{repositoryId}/{entityType}/{entityId}",
		Method: http.MethodDelete,
		PathParams: map[string]string{
			"repositoryId": params.RepositoryID,
			"entityType":   params.EntityType,
			"entityId":     params.EntityID,
		},
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	}, nil)
}
