package cmd

import (
	"fmt"

	cfgpkg "github.com/KaramelBytes/docmerge-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set docmerge configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "workspace_dir: %s\n", cfg.WorkspaceDir)
		fmt.Fprintf(out, "training_file: %s\n", cfg.TrainingFile)
		fmt.Fprintf(out, "date_layout: %s\n", cfg.DateLayout)
		fmt.Fprintf(out, "parallel: %d\n", cfg.Parallel)
		fmt.Fprintf(out, "open_after_create: %t\n", cfg.OpenAfterCreate)
		fmt.Fprintf(out, "document_file: %s\n", cfg.DocumentFile)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a config value and save to disk",
	Args:      cobra.ExactArgs(2),
	ValidArgs: cfgpkg.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Start from the file on disk so flag overrides are not persisted.
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
