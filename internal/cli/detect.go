package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedmill.app/internal/reader/parser"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file|-]...",
		Short: "Print the syntax family of documents",

		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocuments(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			for _, doc := range docs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", doc.Name,
					parser.DetectFormat(doc.Data))
			}
			return nil
		},
	}
}
