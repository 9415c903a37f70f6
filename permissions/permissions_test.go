package permissions

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narthia/jira-client/client"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return NewService(c)
}

func TestGetMyPermissions(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/mypermissions", r.URL.Path)
		assert.Equal(t, "BROWSE_PROJECTS,EDIT_ISSUES", r.URL.Query().Get("permissions"))
		assert.Equal(t, "TEST", r.URL.Query().Get("projectKey"))
		io.WriteString(w, `{"permissions": {"BROWSE_PROJECTS": {"key": "BROWSE_PROJECTS", "havePermission": true}}}`)
	}))

	resp, err := svc.GetMyPermissions(context.Background(), GetMyPermissionsParams{
		Permissions:   []string{"BROWSE_PROJECTS", "EDIT_ISSUES"},
		ProjectKey:    "TEST",
		Authorization: "Bearer token",
	})
	require.NoError(t, err)
	assert.True(t, resp.Permissions["BROWSE_PROJECTS"].HavePermission)
}

func TestGetAllPermissions(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/permissions", r.URL.Path)
		io.WriteString(w, `{"permissions": {"ADMINISTER": {"key": "ADMINISTER", "type": "GLOBAL"}}}`)
	}))

	resp, err := svc.GetAllPermissions(context.Background(), GetAllPermissionsParams{
		Authorization: "Bearer token",
	})
	require.NoError(t, err)
	assert.Equal(t, "GLOBAL", resp.Permissions["ADMINISTER"].Type)
}
