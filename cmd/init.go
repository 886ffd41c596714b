package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/docmerge-cli/internal/docpkg"
	"github.com/KaramelBytes/docmerge-cli/internal/merge"
	"github.com/KaramelBytes/docmerge-cli/internal/utils"
	"github.com/KaramelBytes/docmerge-cli/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	initDescription string
)

var initCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Initialize a workspace with templates and sample training data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := expandHome(args[0])
		if err != nil {
			return err
		}
		dir, err = filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve dir: %w", err)
		}
		// Refuse to overwrite an existing workspace.
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if _, err := os.Stat(filepath.Join(dir, utils.WorkspaceFileName)); err == nil {
				return fmt.Errorf("workspace already exists at %s", dir)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("inspect workspace directory: %w", err)
			}
			if len(entries) > 0 {
				return fmt.Errorf("directory %s already exists and is not empty; refusing to initialize workspace", dir)
			}
		} else if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("stat workspace directory: %w", err)
		}

		ws := workspace.New(filepath.Base(dir), initDescription, dir)
		if err := ws.Save(); err != nil {
			return err
		}
		templates, err := docpkg.WriteDemoTemplates(filepath.Join(dir, workspace.TemplatesDir))
		if err != nil {
			return fmt.Errorf("write templates: %w", err)
		}
		if err := merge.SaveTraining(ws.TrainingPath(), merge.SampleTraining(now())); err != nil {
			return fmt.Errorf("write training: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ Workspace initialized: %s\n", dir)
		for _, t := range templates {
			fmt.Fprintf(out, "  template: %s\n", filepath.Base(t))
		}
		fmt.Fprintf(out, "  training: %s\n", workspace.TrainingFileName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initDescription, "desc", "d", "", "workspace description")
}
