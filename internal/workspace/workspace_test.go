package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/docmerge-cli/internal/workspace"
)

func TestSaveLoadRecord(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")
	w := workspace.New("seminar", "demo", root)
	if err := w.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	for _, dir := range []string{filepath.Join(root, workspace.TemplatesDir), w.OutputDir()} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected dir %s: %v", dir, err)
		}
	}

	a := w.Record(workspace.KindCertificate, filepath.Join(w.OutputDir(), "b.docx"), "Laura Buitoni")
	b := w.Record(workspace.KindDocument, "/elsewhere/a.docx", "")
	b.CreatedAt = a.CreatedAt
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q %q", a.ID, b.ID)
	}
	if a.Path != filepath.Join(workspace.OutputsDir, "b.docx") {
		t.Fatalf("expected relative path, got %s", a.Path)
	}
	if b.Path != "/elsewhere/a.docx" {
		t.Fatalf("outside path rewritten: %s", b.Path)
	}
	if err := w.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := workspace.Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "seminar" || got.RootDir() != root {
		t.Fatalf("unexpected workspace: %+v", got)
	}
	list := got.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(list))
	}
	// same timestamp: ordered by path
	if list[0].Path != "/elsewhere/a.docx" || list[1].Kind != workspace.KindCertificate {
		t.Fatalf("unexpected order: %+v %+v", list[0], list[1])
	}
	if got.TemplatePath("Zertifikat.docx") != filepath.Join(root, "templates", "Zertifikat.docx") {
		t.Fatalf("template path: %s", got.TemplatePath("Zertifikat.docx"))
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := workspace.Load(t.TempDir()); err == nil {
		t.Fatal("expected error")
	}
}

func TestSaveWithoutRoot(t *testing.T) {
	if err := (&workspace.Workspace{}).Save(); err == nil {
		t.Fatal("expected error")
	}
}
