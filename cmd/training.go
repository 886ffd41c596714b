package cmd

import (
	"fmt"

	"github.com/KaramelBytes/docmerge-cli/internal/merge"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var trainingCmd = &cobra.Command{
	Use:   "training",
	Short: "Show or export the training data",
}

var trainingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective training data as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := findWorkspace(false)
		if err != nil {
			return err
		}
		t, source, err := loadTraining(ws)
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(t)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# source: %s\n", source)
		_, err = out.Write(b)
		return err
	},
}

var trainingExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the effective training data to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := findWorkspace(false)
		if err != nil {
			return err
		}
		t, _, err := loadTraining(ws)
		if err != nil {
			return err
		}
		if err := merge.SaveTraining(args[0], t); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Training exported: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trainingCmd)
	trainingCmd.AddCommand(trainingShowCmd)
	trainingCmd.AddCommand(trainingExportCmd)
}
