package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/KaramelBytes/docmerge-cli/internal/menu"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// runMenu shows the menu until the user quits. The output of each action is
// shown below the menu on the next round.
func runMenu(cmd *cobra.Command) error {
	ctx := cmd.Context()
	status, failed := "", false
	for {
		action, err := menu.Choose(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), status, failed)
		if err != nil {
			return err
		}
		if action == menu.ActionQuit || action == menu.ActionNone {
			return nil
		}
		var buf bytes.Buffer
		err = runAction(ctx, &buf, action)
		status, failed = strings.TrimRight(buf.String(), "\n"), err != nil
		if err != nil {
			logger.Debug("menu action failed", "action", int(action), "err", err)
			if status != "" {
				status += "\n"
			}
			status += "✗ Error: " + err.Error()
		}
	}
}

func runAction(ctx context.Context, w io.Writer, action menu.Action) error {
	switch action {
	case menu.ActionAuthor:
		return showAuthor(w, documentArg(nil))
	case menu.ActionPlainText:
		return showText(w, documentArg(nil))
	case menu.ActionNewDocument:
		ws, err := findWorkspace(false)
		if err != nil {
			return err
		}
		_, err = createDocument(w, ws, "", "Hallo Welt")
		return err
	}

	ws, err := findWorkspace(true)
	if err != nil {
		return err
	}
	t, _, err := loadTraining(ws)
	if err != nil {
		return err
	}
	switch action {
	case menu.ActionAttendeeTable:
		_, err = createAttendeeList(w, ws, t, false)
	case menu.ActionAttendeeRows:
		_, err = createAttendeeList(w, ws, t, true)
	case menu.ActionCertificates:
		_, err = createCertificates(ctx, w, ws, t, cfg.Parallel)
	}
	return err
}
