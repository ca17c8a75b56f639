package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/CrestNiraj12/postboard/domain"
	"github.com/CrestNiraj12/postboard/infra/auth"
)

// Client is a thin JSON-over-HTTP wrapper for the post board API.
// It handles base URL construction, bearer token injection and maps
// non-2xx responses to *domain.SubmissionError.
type Client struct {
	baseURL       string
	tokenProvider auth.TokenProvider
	http          *http.Client
}

// NewClient creates a backend API client. tp may be nil for anonymous access.
func NewClient(baseURL string, tp auth.TokenProvider) *Client {
	return &Client{
		baseURL:       baseURL,
		tokenProvider: tp,
		http:          &http.Client{},
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post encodes in as JSON, POSTs it and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	url := c.baseURL + path

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokenProvider != nil {
		token, err := c.tokenProvider.AccessToken()
		if err != nil {
			return fmt.Errorf("auth: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return &domain.SubmissionError{
			StatusText: "Unknown Error",
			Message:    fmt.Sprintf("Http failure response for %s: 0 Unknown Error", url),
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(url, resp, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing response from %s: %w", path, err)
	}
	return nil
}

// responseError builds a SubmissionError from a failed response. A JSON
// body with a "message" or "error" field wins over the generic text.
func responseError(url string, resp *http.Response, data []byte) *domain.SubmissionError {
	statusText := http.StatusText(resp.StatusCode)
	// resp.Status is "404 Not Found"; prefer the server's own reason phrase.
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		statusText = reason
	}

	se := &domain.SubmissionError{
		Status:     resp.StatusCode,
		StatusText: statusText,
		Message:    fmt.Sprintf("Http failure response for %s: %d %s", url, resp.StatusCode, statusText),
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		switch {
		case payload.Message != "":
			se.Message = payload.Message
		case payload.Error != "":
			se.Message = payload.Error
		}
	}
	return se
}
