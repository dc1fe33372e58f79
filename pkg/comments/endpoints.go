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

package comments

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoints contains all comment endpoint patterns, relative to the API root.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func (e *Endpoints) ListComments() string {
	return "/comments"
}

// ListCommentsByID accepts many identifiers, they are escaped individually
// so the separating commas survive.
func (e *Endpoints) ListCommentsByID(commentIDs []string) string {
	escaped := make([]string, len(commentIDs))

	for i := range commentIDs {
		escaped[i] = url.PathEscape(commentIDs[i])
	}

	return fmt.Sprintf("/comments/%s", strings.Join(escaped, ","))
}

func (e *Endpoints) UpdateComment(commentID string) string {
	return fmt.Sprintf("/comments/%s", url.PathEscape(commentID))
}

func (e *Endpoints) DeleteComment(commentID string) string {
	return fmt.Sprintf("/comments/%s", url.PathEscape(commentID))
}

// Task scoped endpoints.
func (e *Endpoints) ListTaskComments(taskID string) string {
	return fmt.Sprintf("/tasks/%s/comments", url.PathEscape(taskID))
}

func (e *Endpoints) CreateTaskComment(taskID string) string {
	return fmt.Sprintf("/tasks/%s/comments", url.PathEscape(taskID))
}

// Folder scoped endpoints.
func (e *Endpoints) ListFolderComments(folderID string) string {
	return fmt.Sprintf("/folders/%s/comments", url.PathEscape(folderID))
}

func (e *Endpoints) CreateFolderComment(folderID string) string {
	return fmt.Sprintf("/folders/%s/comments", url.PathEscape(folderID))
}
