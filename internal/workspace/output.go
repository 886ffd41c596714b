package workspace

import "time"

// Kind names the operation that produced an output.
type Kind string

const (
	KindDocument    Kind = "document"
	KindAttendees   Kind = "attendees"
	KindCertificate Kind = "certificate"
)

// Output holds metadata for a generated document.
type Output struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Path      string    `json:"path"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
