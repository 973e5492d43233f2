package kimloan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// apiPrefix is prepended to every endpoint path.
const apiPrefix = "/api/v1"

// Client talks to the Kim Loans REST API. Construct one with NewClient
// using a plain http.Client for the unauthenticated auth endpoints, or an
// http.Client carrying an AuthTransport for everything that requires a
// bearer token. Pages and CLI commands never attach tokens themselves.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an API client for the backend at baseURL.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// do sends a JSON request and decodes the response into result.
// Non-2xx responses become *APIError with the backend's "detail" message
// extracted when present; the error body shape is never trusted beyond that.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, result any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + apiPrefix + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %w", method, endpoint, newAPIError(resp.StatusCode, respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response from %s: %w", endpoint, err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, endpoint, query, nil, result)
}

func (c *Client) post(ctx context.Context, endpoint string, body, result any) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, result)
}

func (c *Client) put(ctx context.Context, endpoint string, body, result any) error {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, result)
}

// newAPIError builds an APIError from a non-2xx response. FastAPI error
// bodies carry a "detail" field, but nothing about an error body can be
// assumed, so it is probed with gjson rather than unmarshalled into a
// struct that might not match.
func newAPIError(status int, body []byte) *APIError {
	detail := gjson.GetBytes(body, "detail").Str
	if detail == "" && len(body) > 0 && len(body) <= 512 && !gjson.ValidBytes(body) {
		detail = strings.TrimSpace(string(body))
	}

	return &APIError{StatusCode: status, Detail: detail}
}

// paging encodes the common skip/limit query parameters.
func paging(skip, limit int) url.Values {
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", fmt.Sprint(skip))
	}

	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}

	return q
}
