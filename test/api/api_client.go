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

package api

import (
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nscaledev/wrike-comments/pkg/client"
	"github.com/nscaledev/wrike-comments/pkg/comments"
	"github.com/nscaledev/wrike-comments/pkg/testing/fake"
)

// APIClient wraps a comments client with the target it talks to.
type APIClient struct {
	*comments.Client

	config  *TestConfig
	baseURL string
	server  *httptest.Server
}

// NewAPIClientWithConfig creates a client for the configured service, starting
// the in-memory service if none is configured.  Close must be called to stop it.
func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	c := &APIClient{
		config:  config,
		baseURL: config.BaseURL,
	}

	if config.UseFake() {
		s, err := fake.New(
			fake.WithToken(FakeAuthToken),
			fake.WithTasks(FakeTaskID),
			fake.WithFolders(FakeFolderID),
		)
		if err != nil {
			return nil, fmt.Errorf("starting fake service: %w", err)
		}

		c.server = httptest.NewServer(s)
		c.baseURL = c.server.URL
	}

	client, err := c.newClient(config.AuthToken)
	if err != nil {
		c.Close()

		return nil, err
	}

	c.Client = client

	return c, nil
}

func (c *APIClient) newClient(token string) (*comments.Client, error) {
	options := client.NewOptions()
	options.BaseURL = c.baseURL
	options.Token = token
	options.Timeout = c.config.RequestTimeout

	transport, err := client.New(options)
	if err != nil {
		return nil, err
	}

	return comments.New(transport), nil
}

// WithAuthToken returns a client for the same target using another token.
func (c *APIClient) WithAuthToken(token string) (*comments.Client, error) {
	return c.newClient(token)
}

// Close stops the in-memory service, if any.
func (c *APIClient) Close() {
	if c.server != nil {
		c.server.Close()
	}
}

// NewContext returns the context requests are made with, it carries a logger
// writing to the GinkgoWriter when request logging is enabled.
func NewContext(config *TestConfig) context.Context {
	ctx := context.Background()

	if !config.LogRequests {
		return ctx
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(ginkgo.GinkgoWriter), zapcore.DebugLevel)

	return logr.NewContext(ctx, zapr.NewLogger(zap.New(core)))
}
