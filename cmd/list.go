package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents generated in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := findWorkspace(true)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		outputs := ws.List()
		if len(outputs) == 0 {
			fmt.Fprintln(out, "(no documents)")
			return nil
		}
		for _, o := range outputs {
			if o.Note != "" {
				fmt.Fprintf(out, "- %s [%s] %s (%s)\n", o.ID, o.Kind, o.Path, o.Note)
			} else {
				fmt.Fprintf(out, "- %s [%s] %s\n", o.ID, o.Kind, o.Path)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
