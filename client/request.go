package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/google/go-querystring/query"
	"github.com/sirupsen/logrus"
)

// Request describes a single outbound call. Path holds an URL template with
// {name} placeholders resolved from PathParams before dispatch.
type Request struct {
	Path          string
	Method        string
	PathParams    map[string]string
	Query         url.Values
	Body          any
	Headers       map[string]string
	Authorization string
	ExpectBody    bool
}

var pathPlaceholder = regexp.MustCompile(`\{([^{}]+)\}`)

// expandPath substitutes every {name} placeholder in the template. A
// placeholder with no matching parameter fails before any network call.
func expandPath(template string, params map[string]string) (string, error) {
	var missing *MissingPathParameterError
	expanded := pathPlaceholder.ReplaceAllStringFunc(template, func(match string) string {
		name := strings.Trim(match, "{}")
		value, ok := params[name]
		if !ok {
			if missing == nil {
				missing = &MissingPathParameterError{Name: name, Template: template}
			}
			return match
		}
		return url.PathEscape(value)
	})
	if missing != nil {
		return "", missing
	}
	return expanded, nil
}

// QueryValues encodes a struct with url tags into query parameters. Nil
// pointer fields are omitted entirely rather than sent empty.
func QueryValues(v any) (url.Values, error) {
	if v == nil {
		return nil, nil
	}
	return query.Values(v)
}

// Do dispatches the request and, when the request expects a body, decodes the
// JSON response into out. A non-2xx status surfaces as *HTTPError and a body
// that fails to decode as *ResponseParseError; transport failures pass
// through as produced by the HTTP layer. One attempt per call, no retries.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	path, err := expandPath(req.Path, req.PathParams)
	if err != nil {
		return err
	}

	rb := requests.
		URL(c.baseURL + path).
		Client(c.httpClient).
		Method(req.Method)

	if len(req.Query) > 0 {
		rb.Params(req.Query)
	}
	for key, value := range req.Headers {
		if http.CanonicalHeaderKey(key) == "Authorization" {
			continue
		}
		rb.Header(key, value)
	}
	// Authorization is attached per call, never from client state.
	rb.Header("Authorization", req.Authorization)
	if req.Body != nil {
		rb.BodyJSON(req.Body)
	}

	logrus.Debugf("jira: %s %s%s", req.Method, c.baseURL, path)

	rb.AddValidator(nil).Handle(func(res *http.Response) error {
		body, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return readErr
		}
		logrus.Debugf("jira: %s %s -> %d (%d bytes)", req.Method, path, res.StatusCode, len(body))

		if res.StatusCode < 200 || res.StatusCode > 299 {
			return &HTTPError{
				StatusCode: res.StatusCode,
				Status:     res.Status,
				Body:       body,
			}
		}
		if !req.ExpectBody || out == nil {
			return nil
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &ResponseParseError{Body: body, Err: err}
		}
		return nil
	})

	return rb.Fetch(ctx)
}

// Dispatch is the typed form of Do for operations that return a body.
func Dispatch[T any](ctx context.Context, c *Client, req Request) (*T, error) {
	req.ExpectBody = true
	var out T
	if err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
