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

// Package comments is a client for comments attached to tasks and folders.
// Every operation is a single request, nothing is cached or retried, and any
// failure is returned to the caller as-is.
package comments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"

	"github.com/google/go-querystring/query"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/wrike-comments/pkg/client"
	wrikeerrors "github.com/nscaledev/wrike-comments/pkg/errors"
	"github.com/nscaledev/wrike-comments/pkg/openapi"
)

// ListOptions modify read operations.
type ListOptions struct {
	// PlainText asks for comment text with markup removed.
	PlainText *bool `url:"plainText,omitempty"`
}

// writeParams are sent as the body of create and update requests.
type writeParams struct {
	Text      string `url:"text"`
	PlainText bool   `url:"plainText"`
}

// Client provides access to comments.
type Client struct {
	client    client.Interface
	endpoints *Endpoints
}

// New returns a new client.
func New(client client.Interface) *Client {
	return &Client{
		client:    client,
		endpoints: NewEndpoints(),
	}
}

func encode(v any) (url.Values, error) {
	values, err := query.Values(v)
	if err != nil {
		return nil, wrikeerrors.Argument("encoding parameters: %v", err)
	}

	return values, nil
}

func listQuery(options *ListOptions) (url.Values, error) {
	if options == nil {
		return nil, nil
	}

	return encode(options)
}

func decode(data []byte) ([]openapi.Comment, error) {
	var list openapi.CommentList

	if err := json.Unmarshal(data, &list); err != nil {
		return nil, wrikeerrors.UnexpectedResponse("decoding comments: %v", err)
	}

	if list.Data == nil {
		return []openapi.Comment{}, nil
	}

	return list.Data, nil
}

func decodeOne(data []byte) (*openapi.Comment, error) {
	comments, err := decode(data)
	if err != nil {
		return nil, err
	}

	if len(comments) != 1 {
		return nil, wrikeerrors.UnexpectedResponse("expected 1 comment, got %d", len(comments))
	}

	return &comments[0], nil
}

func (c *Client) list(ctx context.Context, path string, options *ListOptions) ([]openapi.Comment, error) {
	params, err := listQuery(options)
	if err != nil {
		return nil, err
	}

	data, err := c.client.Do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}

	return decode(data)
}

func (c *Client) write(ctx context.Context, method, path, text string, plainText bool) (*openapi.Comment, error) {
	form, err := encode(&writeParams{Text: text, PlainText: plainText})
	if err != nil {
		return nil, err
	}

	data, err := c.client.Do(ctx, method, path, nil, form)
	if err != nil {
		return nil, err
	}

	return decodeOne(data)
}

// List returns every comment visible to the caller, in the order the service
// returns them.
func (c *Client) List(ctx context.Context, options *ListOptions) ([]openapi.Comment, error) {
	return c.list(ctx, c.endpoints.ListComments(), options)
}

// ListByIDs returns the comments with the given identifiers.  Which of them
// exist is left entirely to the service.
func (c *Client) ListByIDs(ctx context.Context, ids set.Set[string], options *ListOptions) ([]openapi.Comment, error) {
	var commentIDs []string

	for id := range ids.All() {
		if id == "" {
			return nil, wrikeerrors.Argument("comment IDs must not be empty")
		}

		commentIDs = append(commentIDs, id)
	}

	if len(commentIDs) == 0 {
		return nil, wrikeerrors.Argument("at least one comment ID is required")
	}

	slices.Sort(commentIDs)

	return c.list(ctx, c.endpoints.ListCommentsByID(commentIDs), options)
}

// ListInTask returns the comments attached to a task.
func (c *Client) ListInTask(ctx context.Context, taskID string, options *ListOptions) ([]openapi.Comment, error) {
	if taskID == "" {
		return nil, wrikeerrors.Argument("taskID must not be empty")
	}

	return c.list(ctx, c.endpoints.ListTaskComments(taskID), options)
}

// ListInFolder returns the comments attached to a folder.
func (c *Client) ListInFolder(ctx context.Context, folderID string, options *ListOptions) ([]openapi.Comment, error) {
	if folderID == "" {
		return nil, wrikeerrors.Argument("folderID must not be empty")
	}

	return c.list(ctx, c.endpoints.ListFolderComments(folderID), options)
}

// Create submits a new comment to whichever resource it is attached to, and
// returns the service's copy with its assigned ID.  plainText controls whether
// the text is interpreted as markup by the service.
func (c *Client) Create(ctx context.Context, comment *openapi.Comment, plainText bool) (*openapi.Comment, error) {
	if comment == nil {
		return nil, wrikeerrors.Argument("comment must not be nil")
	}

	if comment.ID != "" {
		return nil, wrikeerrors.Argument("comment %s already exists", comment.ID)
	}

	if !comment.Parent.Valid() {
		return nil, wrikeerrors.Argument("%v", openapi.ErrInvalidParent)
	}

	var path string

	switch comment.Parent.Kind {
	case openapi.ParentTask:
		path = c.endpoints.CreateTaskComment(comment.Parent.ID)
	case openapi.ParentFolder:
		path = c.endpoints.CreateFolderComment(comment.Parent.ID)
	}

	return c.write(ctx, http.MethodPost, path, comment.Text, plainText)
}

// Update replaces the text of a comment, returning the new version.
func (c *Client) Update(ctx context.Context, id, text string, plainText bool) (*openapi.Comment, error) {
	if id == "" {
		return nil, wrikeerrors.Argument("comment ID must not be empty")
	}

	return c.write(ctx, http.MethodPut, c.endpoints.UpdateComment(id), text, plainText)
}

// Delete removes a comment.  Deleting a comment that does not exist is an
// error, callers wanting idempotency should ignore errors.ErrNotFound.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return wrikeerrors.Argument("comment ID must not be empty")
	}

	if _, err := c.client.Do(ctx, http.MethodDelete, c.endpoints.DeleteComment(id), nil, nil); err != nil {
		return err
	}

	return nil
}
