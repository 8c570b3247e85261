// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package azure

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
)

const (
	// DefaultUserAgent identifies outbound requests.
	DefaultUserAgent = "AI102-CommandCenter/1.0"

	// HeaderSubscriptionKey carries the resource key for Cognitive Services.
	HeaderSubscriptionKey = "Ocp-Apim-Subscription-Key"

	// HeaderSubscriptionRegion carries the resource region for
	// multi-service and regional resources.
	HeaderSubscriptionRegion = "Ocp-Apim-Subscription-Region"

	// HeaderAPIKey carries the key for Azure OpenAI and AI Search.
	HeaderAPIKey = "api-key"

	// maxErrorBody bounds how much of a failed response is retained.
	maxErrorBody = 4 << 10

	// maxResponseBody bounds successful responses.
	maxResponseBody = 16 << 20
)

// Option configures a Client.
type Option func(*Client)

// Client sends JSON requests to Azure REST endpoints.
type Client struct {
	UserAgent string
	Timeout   time.Duration
	HTTP      *http.Client
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.UserAgent = ua
	}
}

// WithTimeout sets the total per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.Timeout = d
	}
}

// WithHTTPClient replaces the underlying client, typically in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTP = hc
	}
}

// NewClient returns a Client with pooled transport defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		UserAgent: DefaultUserAgent,
		Timeout:   defaults.HTTPClientTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.HTTP == nil {
		c.HTTP = &http.Client{Transport: newTransport()}
	}
	if c.Timeout > 0 {
		c.HTTP.Timeout = c.Timeout
	}
	return c
}

func newTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,

		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,

		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// DoJSON sends body (JSON-encoded, omitted when nil) to url and decodes a
// successful response into out (skipped when nil).
func (c *Client) DoJSON(ctx context.Context, method, url string, header http.Header, body, out any) error {
	if url == "" {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "url is empty")
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to encode request body", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to create request", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return cnserrors.Wrap(cnserrors.ErrCodeTimeout, "request canceled", err)
		}
		return cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return cnserrors.NewWithContext(codeForStatus(resp.StatusCode),
			fmt.Sprintf("upstream returned %d", resp.StatusCode),
			map[string]any{
				"status": resp.StatusCode,
				"body":   string(snippet),
			})
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(out); err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to decode response", err)
	}
	return nil
}

func codeForStatus(status int) cnserrors.ErrorCode {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return cnserrors.ErrCodeUnauthorized
	case status == http.StatusNotFound:
		return cnserrors.ErrCodeNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return cnserrors.ErrCodeInvalidRequest
	case status == http.StatusRequestTimeout:
		return cnserrors.ErrCodeTimeout
	case status == http.StatusTooManyRequests:
		return cnserrors.ErrCodeRateLimitExceeded
	case status >= 500:
		return cnserrors.ErrCodeUnavailable
	default:
		return cnserrors.ErrCodeInternal
	}
}
