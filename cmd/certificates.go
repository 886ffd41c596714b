package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var certParallel int

var certificatesCmd = &cobra.Command{
	Use:   "certificates",
	Short: "Create one certificate per attendee",
	Long: `Create one certificate per attendee from the workspace's certificate template.
Placeholders such as SeminartitelFeld, Punkt1Feld..Punkt5Feld, DatumFeld,
AnredeFeld, VornameFeld, NachnameFeld, VonFeld and BisFeld are replaced
case-insensitively. The training needs at least five content lines.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := findWorkspace(true)
		if err != nil {
			return err
		}
		t, source, err := loadTraining(ws)
		if err != nil {
			return err
		}
		logger.Debug("training loaded", "source", source, "attendees", len(t.Attendees))
		parallel := cfg.Parallel
		if cmd.Flags().Changed("parallel") {
			parallel = certParallel
		}
		results, err := createCertificates(cmd.Context(), cmd.OutOrStdout(), ws, t, parallel)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d certificate(s) for %s\n", len(results), t.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(certificatesCmd)
	certificatesCmd.Flags().IntVarP(&certParallel, "parallel", "j", 1, "number of certificates written concurrently (overrides config)")
}
