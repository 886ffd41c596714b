package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/docmerge-cli/internal/docpkg"
	"github.com/KaramelBytes/docmerge-cli/internal/merge"
	"github.com/KaramelBytes/docmerge-cli/internal/parser"
	"github.com/KaramelBytes/docmerge-cli/internal/roster"
	"github.com/KaramelBytes/docmerge-cli/internal/utils"
	"github.com/KaramelBytes/docmerge-cli/internal/workspace"
)

// The operations below back both the subcommands and the interactive menu.

func showAuthor(w io.Writer, path string) error {
	props, err := docpkg.ReadCoreProperties(path)
	if err != nil {
		return err
	}
	if props.Creator == "" {
		fmt.Fprintf(w, "⚠ Warning: %s has no author\n", filepath.Base(path))
	} else {
		fmt.Fprintln(w, props.Creator)
	}
	if props.Title != "" {
		fmt.Fprintf(w, "title: %s\n", props.Title)
	}
	if props.LastModifiedBy != "" {
		fmt.Fprintf(w, "last modified by: %s\n", props.LastModifiedBy)
	}
	if !props.Created.IsZero() {
		fmt.Fprintf(w, "created: %s\n", props.Created.Format(time.RFC3339))
	}
	if !props.Modified.IsZero() {
		fmt.Fprintf(w, "modified: %s\n", props.Modified.Format(time.RFC3339))
	}
	return nil
}

func showText(w io.Writer, path string) error {
	text, err := parser.ParseFile(path)
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}
	_, err = io.WriteString(w, text)
	return err
}

// createDocument writes a new single-paragraph document named after a fresh
// UUID into dir, or into the workspace output directory when dir is empty.
func createDocument(w io.Writer, ws *workspace.Workspace, dir, text string) (string, error) {
	if dir == "" {
		dir = "."
		if ws != nil {
			dir = ws.OutputDir()
		}
	}
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure dir: %w", err)
	}
	dest := filepath.Join(dir, uuid.NewString()+".docx")
	if err := docpkg.NewGreeting(dest, text); err != nil {
		return "", err
	}
	fmt.Fprintf(w, "✓ Document created: %s\n", dest)
	return dest, finish(w, ws, workspace.KindDocument, "", dest)
}

// createAttendeeList builds an attendee list in the workspace output
// directory, either by appending a table to template 1 or by filling the
// table row of template 2.
func createAttendeeList(w io.Writer, ws *workspace.Workspace, t merge.Training, fill bool) (string, error) {
	name, build := docpkg.AttendeeListTemplate, roster.AppendTable
	if fill {
		name, build = docpkg.AttendeeRowTemplate, roster.FillTemplateRow
	}
	template := ws.TemplatePath(name)
	unlock, err := utils.LockDir(ws.OutputDir())
	if err != nil {
		return "", err
	}
	defer unlock()

	dest := filepath.Join(ws.OutputDir(), roster.OutputName(template, t))
	logger.Debug("building attendee list", "template", template, "dest", dest, "attendees", len(t.Attendees))
	if err := build(template, dest, t); err != nil {
		return "", fmt.Errorf("attendee list: %w", err)
	}
	fmt.Fprintf(w, "✓ Attendee list created: %s\n", dest)
	return dest, finish(w, ws, workspace.KindAttendees, t.Title, dest)
}

func createCertificates(ctx context.Context, w io.Writer, ws *workspace.Workspace, t merge.Training, parallel int) ([]merge.Result, error) {
	r := &merge.CertificateRunner{
		Template:   ws.TemplatePath(docpkg.CertificateTemplate),
		OutputDir:  ws.OutputDir(),
		DateLayout: dateLayout(),
		Parallel:   parallel,
		Now:        now,
		Log:        logger,
	}
	results, runErr := r.Run(ctx, t)
	paths := make([]string, len(results))
	for i, res := range results {
		fmt.Fprintf(w, "✓ Certificate created: %s\n", res.Path)
		ws.Record(workspace.KindCertificate, res.Path, res.Attendee.FirstName+" "+res.Attendee.LastName)
		paths[i] = res.Path
	}
	if len(results) > 0 {
		if err := ws.Save(); err != nil {
			return results, errors.Join(runErr, fmt.Errorf("save workspace: %w", err))
		}
	}
	if runErr != nil {
		return results, runErr
	}
	// recorded above with per-attendee notes
	return results, finish(w, nil, workspace.KindCertificate, "", paths...)
}
