package cmd

import (
	"github.com/spf13/cobra"
)

var authorCmd = &cobra.Command{
	Use:   "author [file]",
	Short: "Print the author and core properties of a document",
	Long:  "Print the author and core properties of a document. Without an argument the configured document_file is read.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showAuthor(cmd.OutOrStdout(), documentArg(args))
	},
}

var textCmd = &cobra.Command{
	Use:   "text [file]",
	Short: "Print the plain text of a document",
	Long: `Print the plain text of a document. Paragraphs end with a blank line, tabs
and breaks are kept. Without an argument the configured document_file is read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showText(cmd.OutOrStdout(), documentArg(args))
	},
}

func documentArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg != nil && cfg.DocumentFile != "" {
		return cfg.DocumentFile
	}
	return "Hallo Basta.docx"
}

func init() {
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(textCmd)
}
