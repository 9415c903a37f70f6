// Package permissions covers permission lookups on the api/3 REST surface.
package permissions

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

// GetMyPermissions checks the given permission keys for the calling user,
// optionally scoped to a project or issue.
func (s *Service) GetMyPermissions(ctx context.Context, params GetMyPermissionsParams) (*MyPermissionsResponse, error) {
	q, err := client.QueryValues(myPermissionsQuery{
		Permissions: params.Permissions,
		ProjectKey:  params.ProjectKey,
		IssueKey:    params.IssueKey,
	})
	if err != nil {
		return nil, err
	}
	return client.Dispatch[MyPermissionsResponse](ctx, s.client, client.Request{
		Path:          apiBase + "/mypermissions",
		Method:        http.MethodGet,
		Query:         q,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}

// GetAllPermissions lists every permission the Jira instance knows about.
func (s *Service) GetAllPermissions(ctx context.Context, params GetAllPermissionsParams) (*AllPermissionsResponse, error) {
	return client.Dispatch[AllPermissionsResponse](ctx, s.client, client.Request{
		Path:          apiBase + "/permissions",
		Method:        http.MethodGet,
		Headers:       client.MergeHeaders(nil, params.Options),
		Authorization: params.Authorization,
	})
}
