package roster_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/docmerge-cli/internal/docpkg"
	"github.com/KaramelBytes/docmerge-cli/internal/docpkg/docpkgtest"
	"github.com/KaramelBytes/docmerge-cli/internal/markup"
	"github.com/KaramelBytes/docmerge-cli/internal/merge"
	"github.com/KaramelBytes/docmerge-cli/internal/roster"
)

const rowTemplateBody = `<w:p><w:r><w:t>Teilnehmer</w:t></w:r></w:p>` +
	`<w:tbl><w:tblPr><w:tblBorders/></w:tblPr>` +
	`<w:tr><w:tc><w:p><w:r><w:t>Titel</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Vorname</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Nachname</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Unterschrift</w:t></w:r></w:p></w:tc></w:tr>` +
	`<w:tr><w:tc><w:tcPr><w:tcW w:w="2000" w:type="dxa"/></w:tcPr><w:p><w:r><w:t>x</w:t></w:r></w:p></w:tc><w:tc><w:p/></w:tc><w:tc><w:p/></w:tc><w:tc><w:p/></w:tc></w:tr>` +
	`</w:tbl>`

func training() merge.Training {
	return merge.SampleTraining(time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC))
}

func flattenFile(t *testing.T, path string) string {
	t.Helper()
	mp, err := docpkg.OpenMainPart(path)
	require.NoError(t, err)
	defer mp.Close()
	doc, err := markup.ParseString(mp.Content())
	require.NoError(t, err)
	text, err := markup.Flatten(doc.Body())
	require.NoError(t, err)
	return text
}

func writeTemplate(t *testing.T, body string) string {
	t.Helper()
	data, err := docpkgtest.BuildPackage(docpkgtest.WordDocument(body), nil)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "Teilnehmerliste2.docx")
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestOutputName(t *testing.T) {
	tr := training()
	assert.Equal(t, "Teilnehmerliste1 OpenXML SDK 2024-01-01.docx", roster.OutputName("/tmp/templates/Teilnehmerliste1.docx", tr))
	assert.NotEqual(t, roster.OutputName("Teilnehmerliste1.docx", tr), roster.OutputName("Teilnehmerliste2.docx", tr))
	assert.Equal(t, "Liste OpenXML SDK 2024-01-01.docx", roster.OutputName("Liste.docx", tr))
}

func TestFillTemplateRow(t *testing.T) {
	tmpl := writeTemplate(t, rowTemplateBody)
	dest := filepath.Join(t.TempDir(), "out.docx")

	require.NoError(t, roster.FillTemplateRow(tmpl, dest, training()))

	text := flattenFile(t, dest)
	assert.Equal(t,
		"Teilnehmer\n\n"+
			"Titel\n\nVorname\n\nNachname\n\nUnterschrift\n\n"+
			"Herr\n\nWilhelm\n\nBrause\n\n\n\n"+
			"Herr\n\nPeter\n\nSchmitz\n\n\n\n"+
			"Frau\n\nLaura\n\nBuitoni\n\n\n\n",
		text)

	mp, err := docpkg.OpenMainPart(dest)
	require.NoError(t, err)
	defer mp.Close()
	content := mp.Content()
	assert.Equal(t, 4, strings.Count(content, "<w:tr>"), "header plus three attendees")
	assert.Equal(t, 3, strings.Count(content, `<w:tcW w:w="2000" w:type="dxa"/>`), "cell properties cloned")
	assert.NotContains(t, content, "<w:t>x</w:t>", "template row removed")
}

func TestFillTemplateRow_Errors(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.docx")

	err := roster.FillTemplateRow(writeTemplate(t, `<w:p/>`), dest, training())
	require.ErrorIs(t, err, roster.ErrNoTable)

	err = roster.FillTemplateRow(writeTemplate(t, `<w:tbl><w:tr><w:tc><w:p/></w:tc></w:tr></w:tbl>`), dest, training())
	require.ErrorIs(t, err, roster.ErrTooFewCells)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no output on failure")
}

func TestAppendTable(t *testing.T) {
	paths, err := docpkg.WriteDemoTemplates(t.TempDir())
	require.NoError(t, err)
	dest := filepath.Join(t.TempDir(), "list.docx")

	require.NoError(t, roster.AppendTable(paths[1], dest, training()))

	text := flattenFile(t, dest)
	assert.True(t, strings.HasPrefix(text, "Teilnehmerliste\n\n"), text)
	for _, s := range []string{"Titel", "Unterschrift", "Wilhelm", "Schmitz", "Buitoni", "Frau"} {
		assert.Contains(t, text, s)
	}
	assert.Less(t, strings.Index(text, "Unterschrift"), strings.Index(text, "Wilhelm"))

	mp, err := docpkg.OpenMainPart(dest)
	require.NoError(t, err)
	defer mp.Close()
	content := mp.Content()
	assert.Contains(t, content, `<w:insideV w:val="dashed" w:sz="6"`)
	assert.Contains(t, content, `<w:top w:val="single" w:sz="6"`)
	assert.Equal(t, 4*4, strings.Count(content, `<w:tcW w:w="6000" w:type="dxa"`), "four columns, header plus three attendees")
}

func TestFillDemoTemplate(t *testing.T) {
	paths, err := docpkg.WriteDemoTemplates(t.TempDir())
	require.NoError(t, err)
	dest := filepath.Join(t.TempDir(), "list.docx")

	require.NoError(t, roster.FillTemplateRow(paths[2], dest, training()))

	text := flattenFile(t, dest)
	assert.Contains(t, text, "Laura")
	assert.Contains(t, text, "Unterschrift")
}
