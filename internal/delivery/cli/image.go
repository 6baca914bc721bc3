package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newImageCmd(deps Dependencies) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Convert a single image to a data URI on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("converting image", "input", input)

			uri, err := deps.ImageConverter.Convert(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path or URL of the image")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
