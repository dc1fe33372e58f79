/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//go:generate mockgen -source=client.go -destination=mock/interfaces.go -package=mock

package client

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"

	wrikeerrors "github.com/nscaledev/wrike-comments/pkg/errors"
)

// Interface performs authenticated requests against the API.
type Interface interface {
	// Do issues a request to path, relative to the base URL.  query is appended
	// to the URL, and form, if not nil, is sent as a URL encoded body.  The
	// response body is returned for 2XX statuses, otherwise an error from the
	// errors package.
	Do(ctx context.Context, method, path string, query, form url.Values) ([]byte, error)
}

// Option modifies client construction.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, the configured timeout is
// not applied to it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// Client is the default Interface implementation.
type Client struct {
	baseURL string
	client  *http.Client
	token   string
}

// Ensure the interface is implemented.
var _ Interface = &Client{}

// New creates a new client.
func New(options *Options, opts ...Option) (*Client, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimSuffix(options.BaseURL, "/"),
		client: &http.Client{
			Timeout: options.Timeout,
		},
		token: options.Token,
	}

	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// createTraceParent creates a W3C traceparent header value so a failing request
// can be found in the service's logs.
func createTraceParent() string {
	traceID := make([]byte, 16)
	_, _ = rand.Read(traceID)

	spanID := make([]byte, 8)
	_, _ = rand.Read(spanID)

	return fmt.Sprintf("00-%s-%s-01", hex.EncodeToString(traceID), hex.EncodeToString(spanID))
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func (c *Client) newRequest(ctx context.Context, method, path string, query, form url.Values) (*http.Request, error) {
	fullURL := c.baseURL + path

	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var body io.Reader

	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, wrikeerrors.Argument("creating request: %v", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return req, nil
}

func (c *Client) Do(ctx context.Context, method, path string, query, form url.Values) ([]byte, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("method", method, "path", path)

	req, err := c.newRequest(ctx, method, path, query, form)
	if err != nil {
		return nil, err
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)

	log = log.WithValues("traceID", extractTraceID(traceParent))

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "duration", duration)

		return nil, wrikeerrors.Transport(err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "status", resp.StatusCode, "duration", duration)

		return nil, wrikeerrors.Transport(fmt.Errorf("reading response body: %w", err))
	}

	log.V(1).Info("http request complete", "status", resp.StatusCode, "duration", duration)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := wrikeerrors.FromResponse(resp.StatusCode, body)

		log.V(1).Info("http request rejected", "status", resp.StatusCode, "error", err.Error())

		return nil, err
	}

	return body, nil
}
