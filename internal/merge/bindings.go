package merge

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Placeholder names used by the certificate template.
const (
	FieldTitle      = "SeminartitelFeld"
	FieldDate       = "DatumFeld"
	FieldSalutation = "AnredeFeld"
	FieldFirstName  = "VornameFeld"
	FieldLastName   = "NachnameFeld"
	FieldFrom       = "VonFeld"
	FieldTo         = "BisFeld"
)

// ContentFieldCount is the number of PunktNFeld placeholders.
const ContentFieldCount = 5

// DefaultDateLayout renders dates the way German short dates look.
const DefaultDateLayout = "02.01.2006"

// ErrOutOfRange is returned when a training has fewer content lines than the
// template has PunktNFeld placeholders.
var ErrOutOfRange = errors.New("training has too few content lines")

// ContentField returns the placeholder for content line i (0-based).
func ContentField(i int) string {
	return fmt.Sprintf("Punkt%dFeld", i+1)
}

// TrainingBindings returns the bindings shared by all attendees of t.
func TrainingBindings(t Training, today time.Time, layout string) ([]FieldBinding, error) {
	if len(t.Contents) < ContentFieldCount {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrOutOfRange, ContentFieldCount, len(t.Contents))
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	out := make([]FieldBinding, 0, ContentFieldCount+4)
	out = append(out, FieldBinding{FieldTitle, t.Title})
	for i := 0; i < ContentFieldCount; i++ {
		out = append(out, FieldBinding{ContentField(i), t.Contents[i]})
	}
	out = append(out,
		FieldBinding{FieldDate, today.Format(layout)},
		FieldBinding{FieldFrom, t.From.Format(layout)},
		FieldBinding{FieldTo, t.To.Format(layout)},
	)
	return out, nil
}

// AttendeeBindings returns the bindings specific to a.
func AttendeeBindings(a Attendee) []FieldBinding {
	return []FieldBinding{
		{FieldSalutation, a.Salutation},
		{FieldFirstName, a.FirstName},
		{FieldLastName, a.LastName},
	}
}

// Bindings returns the complete binding list for one certificate in the
// canonical order: title, content lines, date, salutation, first name, last
// name, from, to.
func Bindings(t Training, a Attendee, today time.Time, layout string) ([]FieldBinding, error) {
	shared, err := TrainingBindings(t, today, layout)
	if err != nil {
		return nil, err
	}
	return combine(shared, a), nil
}

// combine interleaves the shared bindings (title, contents, date, from, to)
// with the attendee bindings in canonical order.
func combine(shared []FieldBinding, a Attendee) []FieldBinding {
	head := shared[:len(shared)-2] // title, contents, date
	tail := shared[len(shared)-2:] // from, to
	out := make([]FieldBinding, 0, len(shared)+3)
	out = append(out, head...)
	out = append(out, AttendeeBindings(a)...)
	out = append(out, tail...)
	return out
}

// EscapeXML returns a copy of bindings whose values are escaped for insertion
// into XML character data.
func EscapeXML(bindings []FieldBinding) []FieldBinding {
	out := make([]FieldBinding, len(bindings))
	for i, b := range bindings {
		var sb strings.Builder
		_ = xml.EscapeText(&sb, []byte(b.Value))
		out[i] = FieldBinding{b.Placeholder, sb.String()}
	}
	return out
}
