package client

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// MissingPathParameterError reports a {placeholder} in an URL template with no
// matching path parameter. It is returned before any network I/O happens.
type MissingPathParameterError struct {
	Name     string
	Template string
}

func (e *MissingPathParameterError) Error() string {
	return fmt.Sprintf("client: missing path parameter %q for template %s", e.Name, e.Template)
}

// HTTPError is a non-2xx response. The raw body is kept so callers can branch
// on status and inspect whatever the server sent. Use errors.As to recover it
// from a dispatch error.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("client: request failed with status %s", e.Status)
}

// Messages extracts Jira's errorMessages and errors fields from the body,
// when the body is the standard Jira error shape. Returns nil otherwise.
func (e *HTTPError) Messages() []string {
	if !gjson.ValidBytes(e.Body) {
		return nil
	}
	var messages []string
	for _, m := range gjson.GetBytes(e.Body, "errorMessages").Array() {
		messages = append(messages, m.String())
	}
	gjson.GetBytes(e.Body, "errors").ForEach(func(key, value gjson.Result) bool {
		messages = append(messages, fmt.Sprintf("%s: %s", key.String(), value.String()))
		return true
	})
	return messages
}

// ResponseParseError is a 2xx response whose body was not valid JSON when one
// was expected. Distinct from transport failure: the request itself succeeded.
type ResponseParseError struct {
	Body []byte
	Err  error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("client: failed to parse response body: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}
