// Package roster produces attendee lists for a training from .docx templates.
package roster

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	godocx "github.com/fumiama/go-docx"

	"github.com/KaramelBytes/docmerge-cli/internal/docpkg"
	"github.com/KaramelBytes/docmerge-cli/internal/markup"
	"github.com/KaramelBytes/docmerge-cli/internal/merge"
	"github.com/KaramelBytes/docmerge-cli/internal/utils"
)

// FileDateLayout is used for dates in generated file names.
const FileDateLayout = "2006-01-02"

var (
	// ErrNoTable is returned when a row template has no table or the table has no rows.
	ErrNoTable = errors.New("template has no table with rows")
	// ErrTooFewCells is returned when the template row cannot hold salutation and names.
	ErrTooFewCells = errors.New("template row has fewer than three cells")
)

// OutputName derives the file name of a generated list from its template:
// the template's base name, the training title and the first day of the
// training. Lists built from different templates do not collide.
func OutputName(template string, t merge.Training) string {
	base := strings.TrimSuffix(filepath.Base(template), filepath.Ext(template))
	return utils.SafeFileName(fmt.Sprintf("%s %s %s.docx", base, t.Title, t.From.Format(FileDateLayout)))
}

func attendeeRow(a merge.Attendee) []string {
	return []string{a.Salutation, a.FirstName, a.LastName, ""}
}

// Attendee table layout: 6000 dxa per cell, single borders of size 6 with a
// dashed inside vertical border.
const (
	cellWidth  = 6000
	borderSize = 6
)

// AppendTable copies template to dest and appends a table with a bold header
// row and one row per attendee. The signature column stays empty.
func AppendTable(template, dest string, t merge.Training) error {
	doc, f, err := docpkg.Open(template)
	if err != nil {
		return err
	}
	defer f.Close()

	widths := make([]int64, len(docpkg.AttendeeColumns))
	for i := range widths {
		widths[i] = cellWidth
	}
	tbl := doc.AddTableTwips(make([]int64, len(t.Attendees)+1), widths, 0, nil)
	styleBorders(tbl.TableProperties.TableBorders)
	for i, h := range docpkg.AttendeeColumns {
		tbl.TableRows[0].TableCells[i].AddParagraph().AddText(h).Bold()
	}
	for r, a := range t.Attendees {
		cells := tbl.TableRows[r+1].TableCells
		for i, v := range attendeeRow(a) {
			p := cells[i].AddParagraph()
			if v != "" {
				p.AddText(v)
			}
		}
	}
	return docpkg.Save(doc, dest)
}

// FillTemplateRow copies template to dest and fills the first table of the
// body: its last row is cloned once per attendee with salutation, first and
// last name in the first three cells, then the template row is removed.
func FillTemplateRow(template, dest string, t merge.Training) error {
	mp, err := docpkg.OpenMainPart(template)
	if err != nil {
		return err
	}
	defer mp.Close()

	doc, err := markup.ParseString(mp.Content())
	if err != nil {
		return fmt.Errorf("parse main part: %w", err)
	}
	if err := fillFirstTable(doc, t); err != nil {
		return err
	}
	var sb strings.Builder
	if err := doc.Encode(&sb); err != nil {
		return fmt.Errorf("encode main part: %w", err)
	}
	mp.SetContent(sb.String())
	return mp.WriteFile(dest)
}

func styleBorders(b *godocx.WTableBorders) {
	for _, border := range []*godocx.WTableBorder{b.Top, b.Left, b.Bottom, b.Right, b.InsideH, b.InsideV} {
		border.Val = "single"
		border.Size = borderSize
	}
	b.InsideV.Val = "dashed"
}

func fillFirstTable(doc *markup.Document, t merge.Training) error {
	body := doc.Body()
	if body == nil {
		return ErrNoTable
	}
	tbl := body.First("tbl")
	if tbl == nil {
		return ErrNoTable
	}
	rows := tbl.Elements("tr")
	if len(rows) == 0 {
		return ErrNoTable
	}
	tmpl := rows[len(rows)-1]
	if len(tmpl.Descendants("tc")) < 3 {
		return ErrTooFewCells
	}
	prefix := tmpl.Name.Space

	for _, a := range t.Attendees {
		row := tmpl.Clone()
		cells := row.Descendants("tc")
		for i, v := range attendeeRow(a)[:3] {
			cells[i].RemoveChildren("p")
			cells[i].Append(markup.Paragraph(prefix, v))
		}
		tbl.Append(row)
	}
	tbl.RemoveChild(tmpl)
	return nil
}
