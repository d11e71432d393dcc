package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// errorBody represents the error envelope returned by the Web API.
type errorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// get issues a single GET request against the Web API and decodes the JSON
// response into out.
//
// There is no retry: a failure is returned to the caller as-is, wrapped
// with the endpoint path. Non-200 responses become *Error.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := strings.TrimRight(c.baseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	c.logDebugf("spotify: GET %s", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("spotify: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "bandsearch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: GET %s failed: %w", path, err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return fmt.Errorf("spotify: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := parseError(resp.StatusCode, body)
		c.logDebugf("spotify: GET %s returned %v", path, apiErr)
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("spotify: failed to parse response: %w", err)
	}

	c.logDebugf("spotify: GET %s succeeded", path)
	return nil
}

// parseError builds an *Error from a non-200 response. Bodies that are not
// the documented error envelope fall back to the HTTP status text.
func parseError(status int, body []byte) *Error {
	apiErr := &Error{Status: status}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		if envelope.Error.Status != 0 {
			apiErr.Status = envelope.Error.Status
		}
		return apiErr
	}

	apiErr.Message = http.StatusText(status)
	return apiErr
}
