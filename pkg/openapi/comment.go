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
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	wrikeerrors "github.com/nscaledev/wrike-comments/pkg/errors"
)

//nolint:gochecknoglobals
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report argument names rather than Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("arg")
	})

	return v
}

type taskCommentArgs struct {
	Text   string `arg:"text" validate:"required"`
	TaskID string `arg:"taskID" validate:"required"`
}

type folderCommentArgs struct {
	Text     string `arg:"text" validate:"required"`
	FolderID string `arg:"folderID" validate:"required"`
}

func validateArgs(args any) error {
	err := validate.Struct(args)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors

	if !errors.As(err, &validationErrs) {
		return wrikeerrors.Argument("%v", err)
	}

	fields := make([]string, len(validationErrs))

	for i, e := range validationErrs {
		fields[i] = e.Field()
	}

	return wrikeerrors.Argument("%s must not be empty", strings.Join(fields, ", "))
}

// NewTaskComment returns an unsaved comment attached to a task.
func NewTaskComment(text, taskID string) (*Comment, error) {
	if err := validateArgs(&taskCommentArgs{Text: text, TaskID: taskID}); err != nil {
		return nil, err
	}

	comment := &Comment{
		Text: text,
		Parent: Parent{
			Kind: ParentTask,
			ID:   taskID,
		},
	}

	return comment, nil
}

// NewFolderComment returns an unsaved comment attached to a folder.
func NewFolderComment(text, folderID string) (*Comment, error) {
	if err := validateArgs(&folderCommentArgs{Text: text, FolderID: folderID}); err != nil {
		return nil, err
	}

	comment := &Comment{
		Text: text,
		Parent: Parent{
			Kind: ParentFolder,
			ID:   folderID,
		},
	}

	return comment, nil
}
