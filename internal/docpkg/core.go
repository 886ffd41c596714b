package docpkg

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"time"
)

const corePropertiesPart = "docProps/core.xml"

// CoreProperties is the subset of the package's core properties docmerge shows.
type CoreProperties struct {
	Creator        string    `xml:"http://purl.org/dc/elements/1.1/ creator" json:"creator"`
	Title          string    `xml:"http://purl.org/dc/elements/1.1/ title" json:"title,omitempty"`
	LastModifiedBy string    `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties lastModifiedBy" json:"last_modified_by,omitempty"`
	Created        time.Time `xml:"http://purl.org/dc/terms/ created" json:"created,omitempty"`
	Modified       time.Time `xml:"http://purl.org/dc/terms/ modified" json:"modified,omitempty"`
}

// ReadCoreProperties reads docProps/core.xml from the package at path. A
// package without core properties yields the zero value.
func ReadCoreProperties(path string) (CoreProperties, error) {
	var props CoreProperties
	zr, err := zip.OpenReader(path)
	if err != nil {
		return props, fmt.Errorf("open docx %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != corePropertiesPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return props, fmt.Errorf("open %s: %w", corePropertiesPart, err)
		}
		defer rc.Close()
		if err := xml.NewDecoder(rc).Decode(&props); err != nil {
			return props, fmt.Errorf("parse %s: %w", corePropertiesPart, err)
		}
		return props, nil
	}
	return props, nil
}
