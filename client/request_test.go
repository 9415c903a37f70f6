package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL})
	require.NoError(t, err)
	return c
}

func TestExpandPath(t *testing.T) {
	got, err := expandPath(
		"/rest/builds/0.1/pipelines/{pipelineId}/builds/{buildNumber}",
		map[string]string{"pipelineId": "pipe-1", "buildNumber": "42"},
	)
	require.NoError(t, err)
	assert.Equal(t, "/rest/builds/0.1/pipelines/pipe-1/builds/42", got)
	assert.NotContains(t, got, "{")
	assert.NotContains(t, got, "}")
}

func TestExpandPathEscapesValues(t *testing.T) {
	got, err := expandPath(
		"/rest/devinfo/0.10/repository/{repositoryId}",
		map[string]string{"repositoryId": "team/repo one"},
	)
	require.NoError(t, err)
	assert.Equal(t, "/rest/devinfo/0.10/repository/team%2Frepo%20one", got)
}

func TestExpandPathMissingParam(t *testing.T) {
	_, err := expandPath(
		"/rest/builds/0.1/pipelines/{pipelineId}/builds/{buildNumber}",
		map[string]string{"pipelineId": "pipe-1"},
	)
	var missing *MissingPathParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "buildNumber", missing.Name)
}

func TestMissingPathParamFailsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Do(context.Background(), Request{
		Path:   "/rest/api/3/issue/{issueIdOrKey}",
		Method: http.MethodGet,
	}, nil)

	var missing *MissingPathParameterError
	require.ErrorAs(t, err, &missing)
	assert.False(t, called, "no request should be issued for a missing path parameter")
}

func TestUnsetQueryParamsOmitted(t *testing.T) {
	type q struct {
		UpdateSequenceNumber *int64 `url:"_updateSequenceNumber,omitempty"`
		Label                string `url:"label,omitempty"`
	}

	values, err := QueryValues(q{})
	require.NoError(t, err)
	_, present := values["_updateSequenceNumber"]
	assert.False(t, present)
	assert.Empty(t, values.Encode())

	n := int64(7)
	values, err = QueryValues(q{UpdateSequenceNumber: &n})
	require.NoError(t, err)
	assert.Equal(t, "7", values.Get("_updateSequenceNumber"))
}

func TestAuthorizationHeaderAlwaysPresent(t *testing.T) {
	var gotAuth, gotCustom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCustom = r.Header.Get("X-Custom")
		io.WriteString(w, "{}")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	headers := MergeHeaders(nil, &CallOptions{Headers: map[string]string{
		"Authorization": "Bearer attacker",
		"X-Custom":      "custom-value",
	}})
	err := c.Do(context.Background(), Request{
		Path:          "/rest/api/3/myself",
		Method:        http.MethodGet,
		Headers:       headers,
		Authorization: "Bearer real-token",
		ExpectBody:    true,
	}, &map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer real-token", gotAuth)
	assert.Equal(t, "custom-value", gotCustom)
}

func TestDispatchIsIdempotent(t *testing.T) {
	type seen struct {
		method string
		uri    string
		body   string
		auth   string
	}
	var requests []seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, seen{
			method: r.Method,
			uri:    r.URL.String(),
			body:   string(body),
			auth:   r.Header.Get("Authorization"),
		})
		io.WriteString(w, "{}")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	call := func() {
		err := c.Do(context.Background(), Request{
			Path:          "/rest/builds/0.1/bulk",
			Method:        http.MethodPost,
			Query:         url.Values{"a": {"1"}},
			Body:          map[string]string{"k": "v"},
			Authorization: "Bearer token",
			ExpectBody:    true,
		}, &map[string]any{})
		require.NoError(t, err)
	}
	call()
	call()

	require.Len(t, requests, 2)
	assert.Equal(t, requests[0], requests[1])
}

func TestNon2xxSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"errorMessages":["pipelineId is required"],"errors":{"state":"unknown value"}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Do(context.Background(), Request{
		Path:          "/rest/builds/0.1/bulk",
		Method:        http.MethodPost,
		Authorization: "Bearer token",
		ExpectBody:    true,
	}, &map[string]any{})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Contains(t, string(httpErr.Body), "pipelineId is required")
	assert.Equal(t, []string{"pipelineId is required", "state: unknown value"}, httpErr.Messages())
}

func TestMalformedBodySurfacesParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Do(context.Background(), Request{
		Path:          "/rest/api/3/myself",
		Method:        http.MethodGet,
		Authorization: "Bearer token",
		ExpectBody:    true,
	}, &map[string]any{})

	var parseErr *ResponseParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, string(parseErr.Body), "not json")
}

func TestNoBodyExpectedIgnoresResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>unexpected but harmless</html>")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out := map[string]any{}
	err := c.Do(context.Background(), Request{
		Path:          "/rest/builds/0.1/bulkByProperties",
		Method:        http.MethodDelete,
		Authorization: "Bearer token",
		ExpectBody:    false,
	}, &out)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTransportErrorPassesThrough(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:0")
	err := c.Do(context.Background(), Request{
		Path:          "/rest/api/3/myself",
		Method:        http.MethodGet,
		Authorization: "Bearer token",
		ExpectBody:    true,
	}, &map[string]any{})
	require.Error(t, err)

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr), "transport failure must not look like an HTTP status failure")
}
