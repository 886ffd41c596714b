// Package parser turns document files into plain text.
package parser

import (
	"errors"
	"fmt"
	"os"
)

// Parser defines a document parser implementation.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) (string, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and returns parsed text content.
func ParseFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	for _, p := range registry {
		if p.CanParse(path) {
			return p.Parse(data)
		}
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupported)
}

func init() {
	Register(txtParser{})
	Register(docxParser{})
}

// ErrUnsupported indicates a format is not supported.
var ErrUnsupported = errors.New("unsupported document format")
