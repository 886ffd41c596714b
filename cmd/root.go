package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/KaramelBytes/docmerge-cli/internal/config"
	"github.com/KaramelBytes/docmerge-cli/internal/merge"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	// Workspace and data overrides (take precedence over config)
	flagWorkspace string
	flagTraining  string
	flagOpen      bool

	// Loaded configuration
	cfg    *cfgpkg.Global
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var rootCmd = &cobra.Command{
	Use:   "docmerge",
	Short: "docmerge: read, build and mail-merge Word documents",
	Long: `docmerge reads author metadata and plain text from .docx files, creates new
documents and attendee lists, and fills certificate templates for every attendee
of a training. Run without a subcommand for the interactive menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.docmerge/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&flagWorkspace, "workspace", "w", "", "workspace directory (overrides config and lookup from the current directory)")
	rootCmd.PersistentFlags().StringVar(&flagTraining, "training", "", "training data file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&flagOpen, "open", false, "open created documents with the default application")
}

func loadConfig() {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DateLayout: merge.DefaultDateLayout, Parallel: 1}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("workspace") {
		cfg.WorkspaceDir = flagWorkspace
	}
	if f.Changed("training") {
		cfg.TrainingFile = flagTraining
	}
	if f.Changed("open") {
		cfg.OpenAfterCreate = flagOpen
	}
	logger.Debug("config loaded", "workspace_dir", cfg.WorkspaceDir, "training_file", cfg.TrainingFile, "parallel", cfg.Parallel)
}
