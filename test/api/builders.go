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
	"time"

	"github.com/nscaledev/wrike-comments/pkg/openapi"
)

// CommentBuilder builds comments for testing.
type CommentBuilder struct {
	text   string
	parent openapi.Parent
}

// NewCommentPayload creates a comment with unique text, attached to the
// configured task.
func NewCommentPayload(config *TestConfig) *CommentBuilder {
	return &CommentBuilder{
		text: generateText("My new test comment"),
		parent: openapi.Parent{
			Kind: openapi.ParentTask,
			ID:   config.TaskID,
		},
	}
}

// generateText appends a timestamp so comments from concurrent runs on the
// same account can be told apart.
func generateText(prefix string) string {
	return fmt.Sprintf("%s %s", prefix, time.Now().Format("20060102-150405.000"))
}

// WithText sets the comment text.
func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.text = text
	return b
}

// InTask attaches the comment to a task.
func (b *CommentBuilder) InTask(taskID string) *CommentBuilder {
	b.parent = openapi.Parent{Kind: openapi.ParentTask, ID: taskID}
	return b
}

// InFolder attaches the comment to a folder.
func (b *CommentBuilder) InFolder(folderID string) *CommentBuilder {
	b.parent = openapi.Parent{Kind: openapi.ParentFolder, ID: folderID}
	return b
}

// Build returns the comment, ready to create.
func (b *CommentBuilder) Build() (*openapi.Comment, error) {
	switch b.parent.Kind {
	case openapi.ParentTask:
		return openapi.NewTaskComment(b.text, b.parent.ID)
	case openapi.ParentFolder:
		return openapi.NewFolderComment(b.text, b.parent.ID)
	}

	return nil, openapi.ErrInvalidParent
}
