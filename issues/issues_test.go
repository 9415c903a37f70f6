package issues

import (
	"context"
	"encoding/json"
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

func TestGetIssue(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/TEST-1", r.URL.Path)
		assert.Equal(t, "summary,status", r.URL.Query().Get("fields"))
		io.WriteString(w, `{"id": "10001", "key": "TEST-1", "fields": {"summary": "fix the build"}}`)
	}))

	issue, err := svc.GetIssue(context.Background(), GetIssueParams{
		IssueIDOrKey:  "TEST-1",
		Fields:        []string{"summary", "status"},
		Authorization: "Bearer token",
	})
	require.NoError(t, err)
	assert.Equal(t, "TEST-1", issue.Key)
	assert.Equal(t, "fix the build", issue.Fields["summary"])
}

func TestCreateIssue(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		fields := payload["fields"].(map[string]any)
		assert.Equal(t, "fix the build", fields["summary"])
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id": "10002", "key": "TEST-2", "self": "https://example.atlassian.net/rest/api/3/issue/10002"}`)
	}))

	created, err := svc.CreateIssue(context.Background(), CreateIssueParams{
		Payload: IssuePayload{Fields: map[string]any{
			"summary": "fix the build",
			"project": map[string]string{"key": "TEST"},
		}},
		Authorization: "Bearer token",
	})
	require.NoError(t, err)
	assert.Equal(t, "TEST-2", created.Key)
}

func TestSearchPostsJQL(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, `project = TEST ORDER BY created DESC`, payload["jql"])
		io.WriteString(w, `{"startAt": 0, "maxResults": 50, "total": 1, "issues": [{"key": "TEST-1"}]}`)
	}))

	resp, err := svc.Search(context.Background(), SearchParams{
		JQL:           "project = TEST ORDER BY created DESC",
		MaxResults:    50,
		Authorization: "Bearer token",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "TEST-1", resp.Issues[0].Key)
}

func TestEditIssueNoResponseBody(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "false", r.URL.Query().Get("notifyUsers"))
		w.WriteHeader(http.StatusNoContent)
	}))

	notify := false
	err := svc.EditIssue(context.Background(), EditIssueParams{
		IssueIDOrKey:  "TEST-1",
		Payload:       IssuePayload{Fields: map[string]any{"summary": "updated"}},
		NotifyUsers:   &notify,
		Authorization: "Bearer token",
	})
	require.NoError(t, err)
}

func TestTransitionIssue(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/TEST-1/transitions", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		transition := payload["transition"].(map[string]any)
		assert.Equal(t, "31", transition["id"])
		w.WriteHeader(http.StatusNoContent)
	}))

	err := svc.TransitionIssue(context.Background(), TransitionIssueParams{
		IssueIDOrKey:  "TEST-1",
		TransitionID:  "31",
		Authorization: "Bearer token",
	})
	require.NoError(t, err)
}

func TestDeleteIssueNotFound(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"errorMessages": ["Issue does not exist"]}`)
	}))

	err := svc.DeleteIssue(context.Background(), DeleteIssueParams{
		IssueIDOrKey:  "TEST-404",
		Authorization: "Bearer token",
	})
	var httpErr *client.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, []string{"Issue does not exist"}, httpErr.Messages())
}
