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

package client

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultBaseURL is the public Wrike API endpoint.
	DefaultBaseURL = "https://www.wrike.com/api/v4"

	// DefaultTimeout bounds a single request round trip.
	DefaultTimeout = 30 * time.Second
)

var (
	ErrMissingToken = errors.New("an access token is required")
	ErrBaseURL      = errors.New("base URL must be an absolute http(s) URL")
)

// Options configure access to the service.
type Options struct {
	// BaseURL is the API root, all resource paths are appended to it.
	BaseURL string
	// Token is a permanent access token or OAuth2 bearer token.
	Token string
	// Timeout bounds each request, zero means no timeout.
	Timeout time.Duration
}

// NewOptions returns options populated with defaults.
func NewOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// AddFlags registers the options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "wrike-base-url", DefaultBaseURL, "Wrike API base URL.")
	f.StringVar(&o.Token, "wrike-token", "", "Wrike access token.")
	f.DurationVar(&o.Timeout, "wrike-timeout", DefaultTimeout, "Timeout for a single API request.")
}

// Validate checks the options are usable.
func (o *Options) Validate() error {
	if o.Token == "" {
		return ErrMissingToken
	}

	u, err := url.Parse(o.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrBaseURL, o.BaseURL)
	}

	return nil
}
