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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Resources the in-memory service is seeded with.
	FakeAuthToken = "integration-token"
	FakeTaskID    = "IEACGXLUKQFAKE01"
	FakeFolderID  = "IEACGXLUI4FAKE01"
)

type TestConfig struct {
	BaseURL        string
	AuthToken      string
	TaskID         string
	FolderID       string
	RequestTimeout time.Duration
	LogRequests    bool
}

// UseFake is true when no live service has been configured.
func (c *TestConfig) UseFake() bool {
	return c.BaseURL == ""
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a live service is configured without the values needed
// to test against it.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:        os.Getenv("API_BASE_URL"),
		AuthToken:      os.Getenv("API_AUTH_TOKEN"),
		TaskID:         os.Getenv("TEST_TASK_ID"),
		FolderID:       os.Getenv("TEST_FOLDER_ID"),
		RequestTimeout: getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		LogRequests:    getBoolWithDefault("LOG_REQUESTS", false),
	}

	if config.UseFake() {
		config.AuthToken = FakeAuthToken
		config.TaskID = FakeTaskID
		config.FolderID = FakeFolderID

		return config, nil
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api directory
		"../../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// Not an error, CI sets the environment directly.
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := []struct {
		envVar string
		value  string
	}{
		{"API_AUTH_TOKEN", config.AuthToken},
		{"TEST_TASK_ID", config.TaskID},
		{"TEST_FOLDER_ID", config.FolderID},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.envVar)
		}
	}

	if len(missing) > 0 {
		//nolint:err113
		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to test/.env", strings.Join(missing, ", "))
	}

	return nil
}
