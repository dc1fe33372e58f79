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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"

	wrikeerrors "github.com/nscaledev/wrike-comments/pkg/errors"
	"github.com/nscaledev/wrike-comments/pkg/openapi"
)

var _ = Describe("Security and Authentication", func() {
	Context("When accessing API with different authentication states", func() {
		Describe("Given an invalid token", func() {
			It("should reject reads", func() {
				unauthorized, err := client.WithAuthToken("invalid-token")
				Expect(err).NotTo(HaveOccurred())

				_, err = unauthorized.List(ctx, nil)
				Expect(err).To(MatchError(wrikeerrors.ErrAuth), "Should be rejected as unauthorized")
				GinkgoWriter.Printf("Expected auth error for invalid token: %v\n", err)
			})

			It("should reject writes", func() {
				unauthorized, err := client.WithAuthToken("invalid-token")
				Expect(err).NotTo(HaveOccurred())

				comment, err := openapi.NewTaskComment("unauthorized", config.TaskID)
				Expect(err).NotTo(HaveOccurred())

				_, err = unauthorized.Create(ctx, comment, true)
				Expect(err).To(MatchError(wrikeerrors.ErrAuth), "Should be rejected as unauthorized")
			})
		})

		Describe("Given no token", func() {
			It("should fail before making a request", func() {
				_, err := client.WithAuthToken("")
				Expect(err).To(HaveOccurred(), "A token is required")
			})
		})
	})

	Context("When submitting invalid input", func() {
		Describe("Given empty identifiers", func() {
			It("should reject them locally", func() {
				_, err := client.ListInTask(ctx, "", nil)
				Expect(err).To(MatchError(wrikeerrors.ErrArgument))

				_, err = client.ListInFolder(ctx, "", nil)
				Expect(err).To(MatchError(wrikeerrors.ErrArgument))

				_, err = client.ListByIDs(ctx, set.New[string](), nil)
				Expect(err).To(MatchError(wrikeerrors.ErrArgument))

				Expect(client.Delete(ctx, "")).To(MatchError(wrikeerrors.ErrArgument))
			})
		})

		Describe("Given unknown resources", func() {
			It("should reject updates to an unknown comment", func() {
				_, err := client.Update(ctx, "IEACGXLUIMNOSUCH", "text", true)
				Expect(err).To(Or(MatchError(wrikeerrors.ErrNotFound), MatchError(wrikeerrors.ErrValidation)))
			})
		})
	})
})
