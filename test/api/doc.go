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

// Package api provides integration test utilities for the comments client.
//
// # Targets
//
// When API_BASE_URL is set the suites run against that account, and require
// API_AUTH_TOKEN, TEST_TASK_ID and TEST_FOLDER_ID to name a token and existing
// resources it may comment on.  Otherwise an in-memory service is started
// for the duration of the run, seeded with a task and a folder.
//
// # Logging
//
// LOG_REQUESTS=true attaches a logger to the test context so every request,
// its status, duration and trace ID are written to the GinkgoWriter.  The
// trace ID is sent as a W3C traceparent header and can be used to find the
// request on the service side.
package api
