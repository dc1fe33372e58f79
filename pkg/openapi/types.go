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

package openapi

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidParent = errors.New("comment must reference exactly one of a task or a folder")

// KindComments is the envelope kind of every comment response.
const KindComments = "comments"

// ParentKind discriminates what a comment is attached to.
type ParentKind int

const (
	ParentTask ParentKind = iota + 1
	ParentFolder
)

func (k ParentKind) String() string {
	switch k {
	case ParentTask:
		return "task"
	case ParentFolder:
		return "folder"
	}

	return "unknown"
}

// Parent is the resource a comment is attached to.
type Parent struct {
	Kind ParentKind
	ID   string
}

// Valid is true when the parent has a known kind and an identifier.
func (p Parent) Valid() bool {
	return (p.Kind == ParentTask || p.Kind == ParentFolder) && p.ID != ""
}

// Comment is a text annotation on a task or a folder.
type Comment struct {
	// ID is assigned by the service, and empty until the comment is created.
	ID          string
	Text        string
	AuthorID    string
	CreatedDate time.Time
	UpdatedDate time.Time
	Parent      Parent
}

// TaskID returns the parent task, if the comment is attached to one.
func (c *Comment) TaskID() (string, bool) {
	if c.Parent.Kind != ParentTask {
		return "", false
	}

	return c.Parent.ID, true
}

// FolderID returns the parent folder, if the comment is attached to one.
func (c *Comment) FolderID() (string, bool) {
	if c.Parent.Kind != ParentFolder {
		return "", false
	}

	return c.Parent.ID, true
}

// commentRecord is the wire representation of a comment.
type commentRecord struct {
	ID          string     `json:"id,omitempty"`
	AuthorID    string     `json:"authorId,omitempty"`
	Text        string     `json:"text"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
	TaskID      string     `json:"taskId,omitempty"`
	FolderID    string     `json:"folderId,omitempty"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func (c Comment) MarshalJSON() ([]byte, error) {
	if !c.Parent.Valid() {
		return nil, ErrInvalidParent
	}

	record := commentRecord{
		ID:          c.ID,
		AuthorID:    c.AuthorID,
		Text:        c.Text,
		CreatedDate: optionalTime(c.CreatedDate),
		UpdatedDate: optionalTime(c.UpdatedDate),
	}

	switch c.Parent.Kind {
	case ParentTask:
		record.TaskID = c.Parent.ID
	case ParentFolder:
		record.FolderID = c.Parent.ID
	}

	return json.Marshal(record)
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	var record commentRecord

	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	var parent Parent

	switch {
	case record.TaskID != "" && record.FolderID == "":
		parent = Parent{Kind: ParentTask, ID: record.TaskID}
	case record.FolderID != "" && record.TaskID == "":
		parent = Parent{Kind: ParentFolder, ID: record.FolderID}
	default:
		return ErrInvalidParent
	}

	*c = Comment{
		ID:       record.ID,
		Text:     record.Text,
		AuthorID: record.AuthorID,
		Parent:   parent,
	}

	if record.CreatedDate != nil {
		c.CreatedDate = *record.CreatedDate
	}

	if record.UpdatedDate != nil {
		c.UpdatedDate = *record.UpdatedDate
	}

	return nil
}

// CommentList is the envelope every comment endpoint responds with.
type CommentList struct {
	Kind string    `json:"kind"`
	Data []Comment `json:"data"`
}

// Error is the document returned by the service on failure.
type Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"errorDescription,omitempty"`
}
