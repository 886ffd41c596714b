package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KaramelBytes/docmerge-cli/internal/docpkg"
	"github.com/KaramelBytes/docmerge-cli/internal/markup"
)

// ErrNoBody is returned when the main document part has no body element.
var ErrNoBody = errors.New("document has no body")

type docxParser struct{}

func (docxParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".docx")
}

// Parse flattens the body of the main document part. Every paragraph ends
// with two newlines; tabs and breaks keep their meaning.
func (docxParser) Parse(content []byte) (string, error) {
	mp, err := docpkg.ReadMainPart(content)
	if err != nil {
		return "", err
	}
	defer mp.Close()

	doc, err := markup.ParseString(mp.Content())
	if err != nil {
		return "", fmt.Errorf("parse document.xml: %w", err)
	}
	body := doc.Body()
	if body == nil {
		return "", ErrNoBody
	}
	return markup.Flatten(body)
}
