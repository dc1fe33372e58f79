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

package openapi_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	wrikeerrors "github.com/nscaledev/wrike-comments/pkg/errors"
	"github.com/nscaledev/wrike-comments/pkg/openapi"
)

const (
	taskID   = "IEACGXLUKQO6DCNW"
	folderID = "IEACGXLUI4O6C46Q"
)

func TestNewTaskComment(t *testing.T) {
	t.Parallel()

	comment, err := openapi.NewTaskComment("My new test comment", taskID)
	require.NoError(t, err)
	require.Empty(t, comment.ID)
	require.Equal(t, "My new test comment", comment.Text)

	id, ok := comment.TaskID()
	require.True(t, ok)
	require.Equal(t, taskID, id)

	_, ok = comment.FolderID()
	require.False(t, ok)
}

func TestNewFolderComment(t *testing.T) {
	t.Parallel()

	comment, err := openapi.NewFolderComment("My new test comment", folderID)
	require.NoError(t, err)

	id, ok := comment.FolderID()
	require.True(t, ok)
	require.Equal(t, folderID, id)

	_, ok = comment.TaskID()
	require.False(t, ok)
}

// TestNewCommentArguments ensures empty arguments are rejected and named.
func TestNewCommentArguments(t *testing.T) {
	t.Parallel()

	_, err := openapi.NewTaskComment("", taskID)
	require.ErrorIs(t, err, wrikeerrors.ErrArgument)
	require.ErrorContains(t, err, "text must not be empty")

	_, err = openapi.NewTaskComment("text", "")
	require.ErrorIs(t, err, wrikeerrors.ErrArgument)
	require.ErrorContains(t, err, "taskID must not be empty")

	_, err = openapi.NewFolderComment("", "")
	require.ErrorIs(t, err, wrikeerrors.ErrArgument)
	require.ErrorContains(t, err, "text, folderID must not be empty")
}

func TestCommentMarshal(t *testing.T) {
	t.Parallel()

	comment, err := openapi.NewFolderComment("hello", folderID)
	require.NoError(t, err)

	data, err := json.Marshal(comment)
	require.NoError(t, err)
	require.JSONEq(t, `{"text":"hello","folderId":"`+folderID+`"}`, string(data))

	// An unattached comment cannot be serialized.
	_, err = json.Marshal(&openapi.Comment{Text: "orphan"})
	require.ErrorIs(t, err, openapi.ErrInvalidParent)

	_, err = json.Marshal(&openapi.Comment{Text: "orphan", Parent: openapi.Parent{Kind: openapi.ParentTask}})
	require.ErrorIs(t, err, openapi.ErrInvalidParent)
}

func TestCommentUnmarshal(t *testing.T) {
	t.Parallel()

	data := `{
		"kind": "comments",
		"data": [
			{
				"id": "IEACGXLUIMHLQB2D",
				"authorId": "KUAFY3BJ",
				"text": "on a task",
				"createdDate": "2018-10-04T11:38:42Z",
				"updatedDate": "2018-10-05T09:00:00Z",
				"taskId": "` + taskID + `"
			},
			{
				"id": "IEACGXLUIMHLQB2E",
				"authorId": "KUAFY3BJ",
				"text": "on a folder",
				"createdDate": "2018-10-04T11:38:42Z",
				"updatedDate": "2018-10-04T11:38:42Z",
				"folderId": "` + folderID + `"
			}
		]
	}`

	var list openapi.CommentList

	require.NoError(t, json.Unmarshal([]byte(data), &list))
	require.Equal(t, openapi.KindComments, list.Kind)
	require.Len(t, list.Data, 2)

	task := list.Data[0]
	require.Equal(t, "IEACGXLUIMHLQB2D", task.ID)
	require.Equal(t, "KUAFY3BJ", task.AuthorID)
	require.Equal(t, "on a task", task.Text)
	require.Equal(t, time.Date(2018, 10, 4, 11, 38, 42, 0, time.UTC), task.CreatedDate.UTC())
	require.Equal(t, time.Date(2018, 10, 5, 9, 0, 0, 0, time.UTC), task.UpdatedDate.UTC())
	require.Equal(t, openapi.Parent{Kind: openapi.ParentTask, ID: taskID}, task.Parent)

	folder := list.Data[1]
	require.Equal(t, openapi.Parent{Kind: openapi.ParentFolder, ID: folderID}, folder.Parent)
}

// TestCommentUnmarshalParent ensures records must carry exactly one parent.
func TestCommentUnmarshalParent(t *testing.T) {
	t.Parallel()

	var comment openapi.Comment

	require.ErrorIs(t, json.Unmarshal([]byte(`{"id":"x","text":"y"}`), &comment), openapi.ErrInvalidParent)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"id":"x","text":"y","taskId":"a","folderId":"b"}`), &comment), openapi.ErrInvalidParent)
}

func TestParentKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "task", openapi.ParentTask.String())
	require.Equal(t, "folder", openapi.ParentFolder.String())
	require.Equal(t, "unknown", openapi.ParentKind(0).String())
}

func TestGetSwagger(t *testing.T) {
	t.Parallel()

	doc, err := openapi.GetSwagger()
	require.NoError(t, err)
	require.NotNil(t, doc.Paths.Find("/comments"))
	require.NotNil(t, doc.Paths.Find("/comments/{commentId}"))
	require.NotNil(t, doc.Paths.Find("/tasks/{taskId}/comments"))
	require.NotNil(t, doc.Paths.Find("/folders/{folderId}/comments"))
}
