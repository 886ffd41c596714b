package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attendeesFill bool

var attendeesCmd = &cobra.Command{
	Use:   "attendees",
	Short: "Create an attendee list for the training",
	Long: `Create an attendee list for the training. By default a table is appended to
template 1; with --fill the table row of template 2 is repeated per attendee.`,
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
		if len(t.Attendees) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "⚠ Warning: training has no attendees")
		}
		_, err = createAttendeeList(cmd.OutOrStdout(), ws, t, attendeesFill)
		return err
	},
}

func init() {
	rootCmd.AddCommand(attendeesCmd)
	attendeesCmd.Flags().BoolVar(&attendeesFill, "fill", false, "fill the table row of template 2 instead of appending a table to template 1")
}
