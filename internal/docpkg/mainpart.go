// Package docpkg opens and writes .docx packages. Zip container handling is
// left to the docx libraries; this package only exposes the parts docmerge
// works with.
package docpkg

import (
	"bytes"
	"fmt"
	"io"

	rawdocx "github.com/nguyenthenguyen/docx"

	"github.com/KaramelBytes/docmerge-cli/internal/utils"
)

// MainPart gives whole-blob access to the serialized word/document.xml of a
// package. The rest of the package is carried over unchanged on write.
type MainPart struct {
	r   *rawdocx.ReplaceDocx
	doc *rawdocx.Docx
}

// OpenMainPart opens the package at path.
func OpenMainPart(path string) (*MainPart, error) {
	r, err := rawdocx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("open docx %s: %w", path, err)
	}
	return &MainPart{r: r, doc: r.Editable()}, nil
}

// ReadMainPart opens a package held in memory.
func ReadMainPart(data []byte) (*MainPart, error) {
	r, err := rawdocx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	return &MainPart{r: r, doc: r.Editable()}, nil
}

// Content returns the raw XML of the main document part.
func (m *MainPart) Content() string { return m.doc.GetContent() }

// SetContent replaces the raw XML of the main document part.
func (m *MainPart) SetContent(content string) { m.doc.SetContent(content) }

// Write writes the whole package to w.
func (m *MainPart) Write(w io.Writer) error {
	if err := m.doc.Write(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

// WriteFile writes the whole package to path. The file only appears once it
// is complete.
func (m *MainPart) WriteFile(path string) error {
	return utils.SafeWriteFunc(path, m.Write)
}

// Close releases the underlying package.
func (m *MainPart) Close() error {
	return m.r.Close()
}
