// Package predictclient is the HTTP client wrapper (spec §4.6): typed
// POST against the inference server, response-shape validation, and
// structured error classification into TransportError, ValidationError,
// or a successfully-decoded (possibly filtered) result list.
package predictclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/phunguyenpt/admitpredict/pkg/perr"
)

// Client is a small JSON-first HTTP helper for the inference server,
// grounded on the teacher's pkg/lib/http.Client shape.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client (e.g. to inject a
// fake transport in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger overrides the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New constructs a Client pointed at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    baseURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// validationDetail mirrors the inference server's HTTP 422 body shape
// (spec §4.6): {detail: [{loc: [...], msg: string}, ...]}.
type validationDetail struct {
	Detail []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	} `json:"detail"`
}

// post sends a JSON POST to path (optionally with query params) and
// returns the raw response body, classifying failures per spec §4.6/§7:
// a 422 with a decodable detail body becomes *perr.ValidationError,
// anything else non-2xx or a transport-level failure becomes
// *perr.TransportError.
func (c *Client) post(ctx context.Context, path string, query url.Values, payload any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("predictclient: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("predictclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &perr.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &perr.TransportError{Endpoint: endpoint, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var vd validationDetail
		if jerr := json.Unmarshal(respBody, &vd); jerr == nil && len(vd.Detail) > 0 {
			fields := make([]perr.FieldError, 0, len(vd.Detail))
			for _, d := range vd.Detail {
				locParts := make([]string, 0, len(d.Loc))
				for _, l := range d.Loc {
					locParts = append(locParts, fmt.Sprint(l))
				}
				fields = append(fields, perr.FieldError{Loc: locParts, Msg: d.Msg})
			}
			return nil, &perr.ValidationError{Endpoint: endpoint, Fields: fields}
		}
		return nil, &perr.TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &perr.TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

func concurrencyQuery(n int) url.Values {
	v := url.Values{}
	v.Set("concurrency", strconv.Itoa(n))
	return v
}
