package docpkg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	godocx "github.com/fumiama/go-docx"

	"github.com/KaramelBytes/docmerge-cli/internal/utils"
)

// Template file names created by WriteDemoTemplates.
const (
	CertificateTemplate  = "Zertifikat.docx"
	AttendeeListTemplate = "Teilnehmerliste1.docx"
	AttendeeRowTemplate  = "Teilnehmerliste2.docx"
)

// AttendeeColumns are the column headers of attendee tables.
var AttendeeColumns = []string{"Titel", "Vorname", "Nachname", "Unterschrift"}

// Open parses the package at path with the document builder. The caller must
// keep the returned file open until the document has been written.
func Open(path string) (*godocx.Docx, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open docx: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat docx: %w", err)
	}
	doc, err := godocx.Parse(f, info.Size())
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("parse docx: %w", err)
	}
	return doc, f, nil
}

// Save writes doc to path atomically.
func Save(doc *godocx.Docx, path string) error {
	return utils.SafeWriteFunc(path, func(w io.Writer) error {
		if _, err := doc.WriteTo(w); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		return nil
	})
}

// NewGreeting creates a document holding a single paragraph with text.
func NewGreeting(path, text string) error {
	doc := godocx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(text)
	return Save(doc, path)
}

// WriteDemoTemplates writes the certificate and attendee list templates into
// dir and returns their paths.
func WriteDemoTemplates(dir string) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	builders := []struct {
		name  string
		build func() *godocx.Docx
	}{
		{CertificateTemplate, certificateTemplate},
		{AttendeeListTemplate, attendeeListTemplate},
		{AttendeeRowTemplate, attendeeRowTemplate},
	}
	paths := make([]string, 0, len(builders))
	for _, b := range builders {
		p := filepath.Join(dir, b.name)
		if err := Save(b.build(), p); err != nil {
			return paths, fmt.Errorf("%s: %w", b.name, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func certificateTemplate() *godocx.Docx {
	doc := godocx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Teilnahmebestätigung").Bold()
	doc.AddParagraph().AddText("AnredeFeld VornameFeld NachnameFeld")
	doc.AddParagraph().AddText("hat vom VonFeld bis zum BisFeld an der Schulung")
	doc.AddParagraph().AddText("SeminartitelFeld").Bold()
	doc.AddParagraph().AddText("teilgenommen. Inhalte der Schulung waren:")
	for _, p := range []string{"Punkt1Feld", "Punkt2Feld", "Punkt3Feld", "Punkt4Feld", "Punkt5Feld"} {
		doc.AddParagraph().AddText(p)
	}
	doc.AddParagraph().AddText("Ausgestellt am DatumFeld")
	return doc
}

func attendeeListTemplate() *godocx.Docx {
	doc := godocx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Teilnehmerliste").Bold()
	return doc
}

func attendeeRowTemplate() *godocx.Docx {
	doc := godocx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Teilnehmerliste").Bold()
	tbl := doc.AddTable(2, len(AttendeeColumns), 0, nil)
	for i, h := range AttendeeColumns {
		tbl.TableRows[0].TableCells[i].AddParagraph().AddText(h).Bold()
	}
	for _, c := range tbl.TableRows[1].TableCells {
		c.AddParagraph()
	}
	return doc
}
