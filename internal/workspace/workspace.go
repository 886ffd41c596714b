// Package workspace keeps the on-disk manifest of a docmerge workspace: its
// templates, its training data and every document generated from them.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/KaramelBytes/docmerge-cli/internal/utils"
	"github.com/google/uuid"
)

const (
	// TemplatesDir holds the .docx templates below the workspace root.
	TemplatesDir = "templates"
	// OutputsDir receives generated documents.
	OutputsDir = "output"
	// TrainingFileName is the default training data file.
	TrainingFileName = "training.yaml"
)

// Workspace represents a docmerge workspace persisted on disk.
type Workspace struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Outputs     map[string]*Output `json:"outputs"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// Not serialized: on-disk location of the workspace.json
	rootDir string `json:"-"`
}

// New constructs an in-memory workspace. Call Save() to persist.
func New(name, description, rootDir string) *Workspace {
	return &Workspace{
		Name:        name,
		Description: description,
		Outputs:     make(map[string]*Output),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		rootDir:     rootDir,
	}
}

// Load loads a workspace.json from the provided directory.
func Load(dir string) (*Workspace, error) {
	path := filepath.Join(dir, utils.WorkspaceFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("workspace not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read workspace: %w", err)
	}
	var w Workspace
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("parse workspace: %w", err)
	}
	if w.Outputs == nil {
		w.Outputs = make(map[string]*Output)
	}
	w.rootDir = dir
	return &w, nil
}

// RootDir returns the on-disk workspace directory path.
func (w *Workspace) RootDir() string { return w.rootDir }

// TemplatePath returns the path of the named template.
func (w *Workspace) TemplatePath(name string) string {
	return filepath.Join(w.rootDir, TemplatesDir, name)
}

// OutputDir returns the directory generated documents are written to.
func (w *Workspace) OutputDir() string {
	return filepath.Join(w.rootDir, OutputsDir)
}

// TrainingPath returns the path of the workspace's training data.
func (w *Workspace) TrainingPath() string {
	return filepath.Join(w.rootDir, TrainingFileName)
}

// Save writes workspace.json using atomic write and makes sure the template
// and output directories exist.
func (w *Workspace) Save() error {
	if w.rootDir == "" {
		return errors.New("workspace root directory not set")
	}
	for _, dir := range []string{w.rootDir, filepath.Join(w.rootDir, TemplatesDir), w.OutputDir()} {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("ensure dir: %w", err)
		}
	}
	w.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(w)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(w.rootDir, utils.WorkspaceFileName), data)
}

// Record adds a generated document to the manifest. Paths inside the
// workspace are stored relative to its root.
func (w *Workspace) Record(kind Kind, path, note string) *Output {
	if rel, err := filepath.Rel(w.rootDir, path); err == nil && filepath.IsLocal(rel) {
		path = rel
	}
	o := &Output{
		ID:        uuid.NewString(),
		Kind:      kind,
		Path:      path,
		Note:      note,
		CreatedAt: time.Now(),
	}
	if w.Outputs == nil {
		w.Outputs = make(map[string]*Output)
	}
	w.Outputs[o.ID] = o
	w.UpdatedAt = time.Now()
	return o
}

// List returns the recorded outputs ordered by creation time, then path.
func (w *Workspace) List() []*Output {
	out := make([]*Output, 0, len(w.Outputs))
	for _, o := range w.Outputs {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Path < out[j].Path
	})
	return out
}
