// Package cli wires the conversion use cases to the convert command
// line surface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/user/image-inliner/internal/usecase"
)

// Dependencies carries the use cases the commands delegate to.
type Dependencies struct {
	ImageConverter usecase.ImageConverter
	HTMLConverter  usecase.HTMLConverter
}

// NewRootCmd builds the convert command with its subcommands.
func NewRootCmd(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert external image references into self-contained data URIs",
		Long: `Convert inlines external images as base64 data URIs.

The image subcommand converts a single image and prints the data URI.
The html subcommand rewrites every img and embed element of a document
and saves the result as a new file.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newImageCmd(deps))
	cmd.AddCommand(newHTMLCmd(deps))

	return cmd
}
