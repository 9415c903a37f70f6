// Package deployments covers the Jira Software deployments 0.1 REST API.
package deployments

import (
	"context"
	"net/http"
	"strconv"

	"github.com/narthia/jira-client/client"
)

const apiBase = "/rest/deployments/0.1"

type Service struct {
	client *client.Client
}

func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// SubmitDeployments stores deployment data against the issues and services
// each deployment's associations name. The full per-item acceptance response
// is returned whole.
func (s *Service) SubmitDeployments(ctx context.Context, params SubmitDeploymentsParams) (*SubmitDeploymentsResponse, error) {
	return client.Dispatch[SubmitDeploymentsResponse](ctx, s.client, client.Request{
		Path:          apiBase + "/bulk",
		Method:        http.MethodPost,
		Body:          params.Payload,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// GetDeploymentByKey fetches one deployment by pipeline, environment and
// deployment sequence number.
func (s *Service) GetDeploymentByKey(ctx context.Context, params DeploymentKeyParams) (*DeploymentData, error) {
	return client.Dispatch[DeploymentData](ctx, s.client, client.Request{
		Path:          apiBase + "/pipelines/{pipelineId}/environments/{environmentId}/deployments/{deploymentSequenceNumber}",
		Method:        http.MethodGet,
		PathParams:    keyPathParams(params.PipelineID, params.EnvironmentID, params.DeploymentSequenceNumber),
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// DeleteDeploymentByKey deletes one deployment. Accept-only: success means
// the delete was accepted, not completed.
func (s *Service) DeleteDeploymentByKey(ctx context.Context, params DeleteDeploymentByKeyParams) error {
	q, err := client.QueryValues(compatQuery{UpdateSequenceNumber: params.UpdateSequenceNumber})
	if err != nil {
		return err
	}
	return s.client.Do(ctx, client.Request{
		Path:          apiBase + "/pipelines/{pipelineId}/environments/{environmentId}/deployments/{deploymentSequenceNumber}",
		Method:        http.MethodDelete,
		PathParams:    keyPathParams(params.PipelineID, params.EnvironmentID, params.DeploymentSequenceNumber),
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	}, nil)
}

// DeleteDeploymentsByProperty deletes all deployments whose submission
// properties match every given filter.
func (s *Service) DeleteDeploymentsByProperty(ctx context.Context, params DeleteDeploymentsByPropertyParams) error {
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

// GetDeploymentGatingStatusByKey fetches the gating status of one deployment.
func (s *Service) GetDeploymentGatingStatusByKey(ctx context.Context, params DeploymentKeyParams) (*GatingStatus, error) {
	return client.Dispatch[GatingStatus](ctx, s.client, client.Request{
		Path:          apiBase + "/pipelines/{pipelineId}/environments/{environmentId}/deployments/{deploymentSequenceNumber}/gating-status",
		Method:        http.MethodGet,
		PathParams:    keyPathParams(params.PipelineID, params.EnvironmentID, params.DeploymentSequenceNumber),
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

func keyPathParams(pipelineID, environmentID string, sequenceNumber int64) map[string]string {
	return map[string]string{
		"pipelineId":               pipelineID,
		"environmentId":            environmentID,
		"deploymentSequenceNumber": strconv.FormatInt(sequenceNumber, 10),
	}
}
