package merge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/docmerge-cli/internal/docpkg"
	"github.com/KaramelBytes/docmerge-cli/internal/utils"
)

const fileDateLayout = "2006-01-02"

// CertificateRunner writes one certificate per attendee from a template.
type CertificateRunner struct {
	Template   string
	OutputDir  string
	DateLayout string
	// Parallel bounds the number of certificates written concurrently; values
	// below 1 mean sequential.
	Parallel int
	Now      func() time.Time
	Log      *slog.Logger
}

// Result describes one written certificate.
type Result struct {
	Attendee Attendee
	Path     string
}

// CertificateName is the file name of a's certificate.
func CertificateName(template string, t Training, a Attendee) string {
	base := strings.TrimSuffix(filepath.Base(template), filepath.Ext(template))
	name := fmt.Sprintf("%s %s %s %s %s.docx", base, t.Title, a.FirstName, a.LastName, t.From.Format(fileDateLayout))
	return utils.SafeFileName(name)
}

// Run writes the certificates of all attendees of t and returns them in
// attendee order. Training-level validation happens before any file is
// touched; each certificate file appears only once it is complete. When a
// certificate fails, Run returns the error together with the certificates
// written so far.
func (r *CertificateRunner) Run(ctx context.Context, t Training) ([]Result, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	log := r.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	shared, err := TrainingBindings(t, now(), r.DateLayout)
	if err != nil {
		return nil, err
	}

	unlock, err := utils.LockDir(r.OutputDir)
	if err != nil {
		return nil, err
	}
	defer unlock()

	results := make([]Result, len(t.Attendees))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.Parallel))
	for i, a := range t.Attendees {
		i, a := i, a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bindings := combine(shared, a)
			if c := Conflicts(bindings); len(c) > 0 {
				log.Warn("placeholder bindings overlap", "attendee", a.FirstName+" "+a.LastName, "conflicts", c)
			}
			dest := filepath.Join(r.OutputDir, CertificateName(r.Template, t, a))
			if err := r.write(dest, bindings); err != nil {
				return fmt.Errorf("certificate for %s %s: %w", a.FirstName, a.LastName, err)
			}
			log.Debug("certificate written", "attendee", a.FirstName+" "+a.LastName, "path", dest)
			results[i] = Result{Attendee: a, Path: dest}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		done := results[:0]
		for _, res := range results {
			if res.Path != "" {
				done = append(done, res)
			}
		}
		return done, err
	}
	return results, nil
}

func (r *CertificateRunner) write(dest string, bindings []FieldBinding) error {
	mp, err := docpkg.OpenMainPart(r.Template)
	if err != nil {
		return err
	}
	defer mp.Close()

	// values land in serialized XML
	mp.SetContent(Substitute(mp.Content(), EscapeXML(bindings)))
	return mp.WriteFile(dest)
}
