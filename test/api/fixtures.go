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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	wrikeerrors "github.com/nscaledev/wrike-comments/pkg/errors"
	"github.com/nscaledev/wrike-comments/pkg/openapi"
)

// CreateCommentWithCleanup creates a comment and schedules its deletion.
func CreateCommentWithCleanup(client *APIClient, ctx context.Context, builder *CommentBuilder) *openapi.Comment {
	comment, err := builder.Build()
	Expect(err).NotTo(HaveOccurred(), "Should build a valid comment")

	created, err := client.Create(ctx, comment, true)
	Expect(err).NotTo(HaveOccurred(), "Should create comment")
	Expect(created.ID).NotTo(BeEmpty(), "Created comment should have an ID")

	GinkgoWriter.Printf("Created %s comment with ID: %s\n", created.Parent.Kind, created.ID)

	// Runs whether the test passes or fails, a comment already deleted by the
	// test is fine.
	DeferCleanup(func() {
		DeleteCommentIfExists(client, ctx, created.ID)
	})

	return created
}

// CreateTaskCommentWithCleanup creates a comment on the configured task.
func CreateTaskCommentWithCleanup(client *APIClient, ctx context.Context, config *TestConfig) *openapi.Comment {
	return CreateCommentWithCleanup(client, ctx, NewCommentPayload(config).InTask(config.TaskID))
}

// CreateFolderCommentWithCleanup creates a comment on the configured folder.
func CreateFolderCommentWithCleanup(client *APIClient, ctx context.Context, config *TestConfig) *openapi.Comment {
	return CreateCommentWithCleanup(client, ctx, NewCommentPayload(config).InFolder(config.FolderID))
}

// DeleteCommentIfExists deletes a comment, logging rather than failing.
func DeleteCommentIfExists(client *APIClient, ctx context.Context, id string) {
	GinkgoWriter.Printf("Cleaning up comment: %s\n", id)

	err := client.Delete(ctx, id)

	switch {
	case err == nil:
		GinkgoWriter.Printf("Successfully deleted comment: %s\n", id)
	case errors.Is(err, wrikeerrors.ErrNotFound):
		GinkgoWriter.Printf("Comment %s already deleted\n", id)
	default:
		GinkgoWriter.Printf("Warning: Failed to delete comment %s: %v\n", id, err)
	}
}

// CommentIDs returns the IDs of a comment list.
func CommentIDs(comments []openapi.Comment) []string {
	ids := make([]string, len(comments))

	for i := range comments {
		ids[i] = comments[i].ID
	}

	return ids
}

// VerifyCommentPresence checks whether a comment ID appears in a list.
func VerifyCommentPresence(comments []openapi.Comment, id string, shouldBePresent bool) {
	if shouldBePresent {
		Expect(CommentIDs(comments)).To(ContainElement(id), "Comment %s should be listed", id)
		return
	}

	Expect(CommentIDs(comments)).NotTo(ContainElement(id), "Comment %s should not be listed", id)
}
