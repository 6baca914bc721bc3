package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// outputTimestampLayout is sortable and filesystem-safe.
const outputTimestampLayout = "2006-01-02 15.04.05"

func newHTMLCmd(deps Dependencies) *cobra.Command {
	var (
		input        string
		output       string
		useScripting bool
	)

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Inline every image of an HTML document and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("converting document", "input", input, "js", useScripting)

			doc, err := deps.HTMLConverter.Convert(cmd.Context(), input, useScripting)
			if err != nil {
				return err
			}

			outPath := output
			if outPath == "" {
				outPath = fmt.Sprintf("%s %s.html", time.Now().Format(outputTimestampLayout), doc.Title)
			}

			if err := os.WriteFile(outPath, []byte(doc.HTML), 0o644); err != nil {
				return fmt.Errorf("write output file: %w", err)
			}

			inlined := 0
			for _, asset := range doc.Assets {
				if asset.Inlined {
					inlined++
				}
			}
			slog.Info("document converted",
				"output", outPath,
				"title", doc.Title,
				"assets_inlined", inlined,
				"assets_total", len(doc.Assets),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path or URL of the document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: \"{timestamp} {title}.html\")")
	cmd.Flags().BoolVar(&useScripting, "js", false, "execute page scripts in a headless browser before scraping")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
