package merge

import (
	"fmt"
	"os"
	"time"

	"github.com/KaramelBytes/docmerge-cli/internal/utils"
	"gopkg.in/yaml.v3"
)

// Attendee is one participant of a training.
type Attendee struct {
	Salutation string `yaml:"salutation" json:"salutation"`
	FirstName  string `yaml:"first_name" json:"first_name"`
	LastName   string `yaml:"last_name" json:"last_name"`
}

// Training is the data source for attendee lists and certificates.
type Training struct {
	Title     string     `yaml:"title" json:"title"`
	From      time.Time  `yaml:"from" json:"from"`
	To        time.Time  `yaml:"to" json:"to"`
	Contents  []string   `yaml:"contents" json:"contents"`
	Attendees []Attendee `yaml:"attendees" json:"attendees"`
}

// SampleTraining returns the built-in demo training relative to today.
func SampleTraining(today time.Time) Training {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return Training{
		Title: "OpenXML SDK",
		From:  day.AddDate(0, 0, -2),
		To:    day.AddDate(0, 0, -1),
		Contents: []string{
			"Überblick Open XML SDK",
			"Lesen von Dokumenteigenschaften",
			"Erstellen von neuen Dokumenten",
			"Lesen von bestehenden Dokumenten",
			"Verändern bestehender Dokumente",
		},
		Attendees: []Attendee{
			{Salutation: "Herr", FirstName: "Wilhelm", LastName: "Brause"},
			{Salutation: "Herr", FirstName: "Peter", LastName: "Schmitz"},
			{Salutation: "Frau", FirstName: "Laura", LastName: "Buitoni"},
		},
	}
}

// LoadTraining reads a training from a YAML file.
func LoadTraining(path string) (Training, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Training{}, fmt.Errorf("read training: %w", err)
	}
	var t Training
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Training{}, fmt.Errorf("parse training: %w", err)
	}
	return t, nil
}

// SaveTraining writes a training as YAML using an atomic write.
func SaveTraining(path string, t Training) error {
	b, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return utils.SafeWriteFile(path, b)
}
