package cmd

import (
	"github.com/spf13/cobra"
)

var (
	newText string
	newDir  string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new document with a single paragraph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := findWorkspace(false)
		if err != nil {
			return err
		}
		_, err = createDocument(cmd.OutOrStdout(), ws, newDir, newText)
		return err
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newText, "text", "Hallo Welt", "paragraph text")
	newCmd.Flags().StringVarP(&newDir, "dir", "o", "", "output directory (default: workspace output, else current directory)")
}
