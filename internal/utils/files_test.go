package utils_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/docmerge-cli/internal/utils"
)

func TestSafeWriteFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	if err := utils.SafeWriteFile(p, []byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil || string(b) != "hello" {
		t.Fatalf("unexpected content %q (%v)", b, err)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestSafeWriteFuncKeepsOldFileOnError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(p, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	err := utils.SafeWriteFunc(p, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	b, _ := os.ReadFile(p)
	if string(b) != "old" {
		t.Fatalf("file was modified: %q", b)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestFindWorkspaceRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, utils.WorkspaceFileName), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "output", "deep")
	if err := utils.EnsureDir(nested); err != nil {
		t.Fatal(err)
	}
	got, err := utils.FindWorkspaceRoot(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != root {
		t.Fatalf("got %s, want %s", got, root)
	}
}

func TestLockDir(t *testing.T) {
	dir := t.TempDir()
	unlock, err := utils.LockDir(dir)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	if _, err := utils.LockDir(dir); !errors.Is(err, utils.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if err := unlock(); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	unlock, err = utils.LockDir(dir)
	if err != nil {
		t.Fatalf("relock: %v", err)
	}
	_ = unlock()
}

func TestSafeFileName(t *testing.T) {
	if got := utils.SafeFileName(`Go/Rust: a*b?`); got != "Go-Rust- a-b-" {
		t.Fatalf("got %q", got)
	}
	if got := utils.SafeFileName("Zertifikat OpenXML SDK"); got != "Zertifikat OpenXML SDK" {
		t.Fatalf("got %q", got)
	}
}
