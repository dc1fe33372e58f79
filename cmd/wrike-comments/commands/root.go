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

// Package commands implements the wrike-comments command line.
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nscaledev/wrike-comments/pkg/client"
	"github.com/nscaledev/wrike-comments/pkg/comments"
)

// Configuration keys, each may be set by flag or WRIKE_ prefixed environment
// variable, flags take precedence.
const (
	keyBaseURL = "base_url"
	keyToken   = "token"
	keyTimeout = "timeout"
)

// root holds state shared by all subcommands.
type root struct {
	options *client.Options
	viper   *viper.Viper
	verbose int
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	r := &root{
		options: client.NewOptions(),
		viper:   viper.New(),
	}

	rootCmd := &cobra.Command{
		Use:               "wrike-comments",
		Short:             "Manage comments on Wrike tasks and folders",
		SilenceUsage:      true,
		PersistentPreRunE: r.setup,
	}

	flags := rootCmd.PersistentFlags()

	r.options.AddFlags(flags)
	flags.CountVarP(&r.verbose, "verbose", "v", "increase log verbosity, may be repeated")

	r.viper.SetEnvPrefix("WRIKE")
	r.viper.AutomaticEnv()

	// Binding only fails for a nil flag.
	_ = r.viper.BindPFlag(keyBaseURL, flags.Lookup("wrike-base-url"))
	_ = r.viper.BindPFlag(keyToken, flags.Lookup("wrike-token"))
	_ = r.viper.BindPFlag(keyTimeout, flags.Lookup("wrike-timeout"))

	rootCmd.AddCommand(
		newListCommand(r),
		newCreateCommand(r),
		newUpdateCommand(r),
		newDeleteCommand(r),
	)

	return rootCmd
}

// setup resolves configuration and installs a logger in the command context.
func (r *root) setup(cmd *cobra.Command, _ []string) error {
	r.options.BaseURL = r.viper.GetString(keyBaseURL)
	r.options.Token = r.viper.GetString(keyToken)
	r.options.Timeout = r.viper.GetDuration(keyTimeout)

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(cmd.ErrOrStderr()), zapcore.Level(-r.verbose))

	logger := zapr.NewLogger(zap.New(core)).WithName("wrike-comments")

	cmd.SetContext(logr.NewContext(cmd.Context(), logger))

	return nil
}

// client returns a comments client from the resolved configuration.
func (r *root) client() (*comments.Client, error) {
	transport, err := client.New(r.options)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return comments.New(transport), nil
}

// writeJSON writes v to standard output as indented JSON.
func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	return nil
}
