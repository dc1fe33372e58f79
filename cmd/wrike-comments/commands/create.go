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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nscaledev/wrike-comments/pkg/openapi"
)

func newCreateCommand(r *root) *cobra.Command {
	var (
		taskID    string
		folderID  string
		text      string
		plainText bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Comment on a task or folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				comment *openapi.Comment
				err     error
			)

			if taskID != "" {
				comment, err = openapi.NewTaskComment(text, taskID)
			} else {
				comment, err = openapi.NewFolderComment(text, folderID)
			}

			if err != nil {
				return err
			}

			client, err := r.client()
			if err != nil {
				return err
			}

			created, err := client.Create(cmd.Context(), comment, plainText)
			if err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}

			return writeJSON(cmd, created)
		},
	}

	flags := cmd.Flags()

	flags.StringVar(&taskID, "task", "", "task to comment on")
	flags.StringVar(&folderID, "folder", "", "folder to comment on")
	flags.StringVar(&text, "text", "", "comment text")
	flags.BoolVar(&plainText, "plain-text", false, "treat the text as plain text rather than markup")

	cmd.MarkFlagsMutuallyExclusive("task", "folder")
	cmd.MarkFlagsOneRequired("task", "folder")

	if err := cmd.MarkFlagRequired("text"); err != nil {
		panic(err)
	}

	return cmd
}
