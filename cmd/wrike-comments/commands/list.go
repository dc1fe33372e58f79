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
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/wrike-comments/pkg/comments"
	"github.com/nscaledev/wrike-comments/pkg/openapi"

	"k8s.io/utils/ptr"
)

func newListCommand(r *root) *cobra.Command {
	var (
		ids       []string
		taskID    string
		folderID  string
		plainText bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List comments, optionally by ID or parent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := r.client()
			if err != nil {
				return err
			}

			var options *comments.ListOptions

			if cmd.Flags().Changed("plain-text") {
				options = &comments.ListOptions{
					PlainText: ptr.To(plainText),
				}
			}

			ctx := cmd.Context()

			var result []openapi.Comment

			switch {
			case len(ids) > 0:
				result, err = client.ListByIDs(ctx, set.New[string](ids...), options)
			case taskID != "":
				result, err = client.ListInTask(ctx, taskID, options)
			case folderID != "":
				result, err = client.ListInFolder(ctx, folderID, options)
			default:
				result, err = client.List(ctx, options)
			}

			if err != nil {
				return fmt.Errorf("listing comments: %w", err)
			}

			return writeJSON(cmd, result)
		},
	}

	flags := cmd.Flags()

	flags.StringArrayVar(&ids, "id", nil, "comment ID to list, may be repeated")
	flags.StringVar(&taskID, "task", "", "list comments on this task")
	flags.StringVar(&folderID, "folder", "", "list comments on this folder")
	flags.BoolVar(&plainText, "plain-text", false, "return text with markup removed")

	cmd.MarkFlagsMutuallyExclusive("id", "task", "folder")

	return cmd
}
