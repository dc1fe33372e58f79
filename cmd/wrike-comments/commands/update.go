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
)

func newUpdateCommand(r *root) *cobra.Command {
	var (
		text      string
		plainText bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace the text of a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := r.client()
			if err != nil {
				return err
			}

			updated, err := client.Update(cmd.Context(), args[0], text, plainText)
			if err != nil {
				return fmt.Errorf("updating comment: %w", err)
			}

			return writeJSON(cmd, updated)
		},
	}

	flags := cmd.Flags()

	flags.StringVar(&text, "text", "", "new comment text")
	flags.BoolVar(&plainText, "plain-text", false, "treat the text as plain text rather than markup")

	if err := cmd.MarkFlagRequired("text"); err != nil {
		panic(err)
	}

	return cmd
}
