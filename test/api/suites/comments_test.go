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

	"github.com/nscaledev/wrike-comments/pkg/comments"
	wrikeerrors "github.com/nscaledev/wrike-comments/pkg/errors"
	"github.com/nscaledev/wrike-comments/pkg/openapi"
	"github.com/nscaledev/wrike-comments/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Comment Management", Ordered, func() {
	var (
		taskComment   *openapi.Comment
		folderComment *openapi.Comment
	)

	// Comments are shared by the ordered tests, so cleanup waits for the
	// whole container.
	AfterAll(func() {
		for _, comment := range []*openapi.Comment{taskComment, folderComment} {
			if comment != nil {
				api.DeleteCommentIfExists(client, ctx, comment.ID)
			}
		}
	})

	Context("When creating comments", func() {
		It("should create a comment in a task", func() {
			comment, err := api.NewCommentPayload(config).InTask(config.TaskID).Build()
			Expect(err).NotTo(HaveOccurred())

			created, err := client.Create(ctx, comment, true)
			Expect(err).NotTo(HaveOccurred(), "Should create task comment")
			Expect(created.ID).NotTo(BeEmpty(), "Created comment should have an ID")
			Expect(created.Text).To(Equal(comment.Text), "Text should be preserved")

			taskID, ok := created.TaskID()
			Expect(ok).To(BeTrue(), "Comment should be attached to a task")
			Expect(taskID).To(Equal(config.TaskID))

			_, ok = created.FolderID()
			Expect(ok).To(BeFalse(), "Comment should not be attached to a folder")

			taskComment = created

			GinkgoWriter.Printf("Created task comment %s\n", created.ID)
		})

		It("should create a comment in a folder", func() {
			comment, err := api.NewCommentPayload(config).InFolder(config.FolderID).Build()
			Expect(err).NotTo(HaveOccurred())

			created, err := client.Create(ctx, comment, true)
			Expect(err).NotTo(HaveOccurred(), "Should create folder comment")
			Expect(created.ID).NotTo(BeEmpty(), "Created comment should have an ID")
			Expect(created.Text).To(Equal(comment.Text), "Text should be preserved")

			folderID, ok := created.FolderID()
			Expect(ok).To(BeTrue(), "Comment should be attached to a folder")
			Expect(folderID).To(Equal(config.FolderID))

			folderComment = created

			GinkgoWriter.Printf("Created folder comment %s\n", created.ID)
		})
	})

	Context("When reading comments", func() {
		It("should list all comments", func() {
			all, err := client.List(ctx, nil)
			Expect(err).NotTo(HaveOccurred(), "Should list comments")

			api.VerifyCommentPresence(all, taskComment.ID, true)
			api.VerifyCommentPresence(all, folderComment.ID, true)
		})

		It("should list comments in a task", func() {
			inTask, err := client.ListInTask(ctx, config.TaskID, nil)
			Expect(err).NotTo(HaveOccurred(), "Should list task comments")

			api.VerifyCommentPresence(inTask, taskComment.ID, true)
			api.VerifyCommentPresence(inTask, folderComment.ID, false)
		})

		It("should list comments in a folder", func() {
			inFolder, err := client.ListInFolder(ctx, config.FolderID, nil)
			Expect(err).NotTo(HaveOccurred(), "Should list folder comments")

			api.VerifyCommentPresence(inFolder, folderComment.ID, true)
			api.VerifyCommentPresence(inFolder, taskComment.ID, false)
		})

		It("should list comments by ID", func() {
			byID, err := client.ListByIDs(ctx, set.New[string](taskComment.ID), nil)
			Expect(err).NotTo(HaveOccurred(), "Should list comment by ID")
			Expect(byID).To(HaveLen(1), "Exactly one comment should be returned")
			Expect(byID[0].ID).To(Equal(taskComment.ID))

			both, err := client.ListByIDs(ctx, set.New[string](taskComment.ID, folderComment.ID), &comments.ListOptions{PlainText: ptr.To(true)})
			Expect(err).NotTo(HaveOccurred(), "Should list comments by ID")
			Expect(api.CommentIDs(both)).To(ConsistOf(taskComment.ID, folderComment.ID))
		})
	})

	Context("When updating a comment", func() {
		It("should replace the text and keep the ID", func() {
			text := taskComment.Text + " [Updated]"

			updated, err := client.Update(ctx, taskComment.ID, text, true)
			Expect(err).NotTo(HaveOccurred(), "Should update comment")
			Expect(updated.ID).To(Equal(taskComment.ID), "ID should not change")
			Expect(updated.Text).To(Equal(text))
			Expect(updated.Parent).To(Equal(taskComment.Parent), "Parent should not change")

			byID, err := client.ListByIDs(ctx, set.New[string](taskComment.ID), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(byID[0].Text).To(Equal(text), "Update should be visible to subsequent reads")

			taskComment = updated
		})
	})

	Context("When deleting comments", func() {
		It("should delete both comments", func() {
			Expect(client.Delete(ctx, taskComment.ID)).To(Succeed(), "Should delete task comment")
			Expect(client.Delete(ctx, folderComment.ID)).To(Succeed(), "Should delete folder comment")

			all, err := client.List(ctx, nil)
			Expect(err).NotTo(HaveOccurred())

			api.VerifyCommentPresence(all, taskComment.ID, false)
			api.VerifyCommentPresence(all, folderComment.ID, false)
		})

		It("should report deleted comments as not found", func() {
			err := client.Delete(ctx, taskComment.ID)
			Expect(err).To(MatchError(wrikeerrors.ErrNotFound))

			_, err = client.ListByIDs(ctx, set.New[string](folderComment.ID), nil)
			Expect(err).To(MatchError(wrikeerrors.ErrNotFound))
		})
	})
})

var _ = Describe("Comment Fixtures", func() {
	Context("When a comment is created with cleanup", func() {
		It("should be removed by whichever runs first, the test or the cleanup", func() {
			comment := api.CreateTaskCommentWithCleanup(client, ctx, config)

			inTask, err := client.ListInTask(ctx, config.TaskID, nil)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyCommentPresence(inTask, comment.ID, true)

			Expect(client.Delete(ctx, comment.ID)).To(Succeed())
		})

		It("should create folder comments", func() {
			comment := api.CreateFolderCommentWithCleanup(client, ctx, config)

			inFolder, err := client.ListInFolder(ctx, config.FolderID, nil)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyCommentPresence(inFolder, comment.ID, true)
		})
	})
})
