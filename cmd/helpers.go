package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KaramelBytes/docmerge-cli/internal/merge"
	"github.com/KaramelBytes/docmerge-cli/internal/utils"
	"github.com/KaramelBytes/docmerge-cli/internal/workspace"
)

var errNoWorkspace = errors.New("no workspace found; run `docmerge init <dir>` or pass --workspace")

// now and openDocument are replaced in tests.
var (
	now          = time.Now
	openDocument = utils.OpenWithDefaultApp
)

func expandHome(dir string) (string, error) {
	if !strings.HasPrefix(dir, "~") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir = strings.TrimPrefix(dir, "~")
	dir = strings.TrimPrefix(dir, string(os.PathSeparator))
	dir = strings.TrimPrefix(dir, "/")
	return filepath.Join(home, dir), nil
}

// findWorkspace resolves the workspace from --workspace or config, then from
// the current directory upwards. It returns nil without error when there is
// none and required is false.
func findWorkspace(required bool) (*workspace.Workspace, error) {
	dir := ""
	if cfg != nil {
		dir = cfg.WorkspaceDir
	}
	if dir != "" {
		d, err := expandHome(dir)
		if err != nil {
			return nil, err
		}
		return workspace.Load(filepath.Clean(d))
	}
	root, err := utils.FindWorkspaceRoot("")
	if err != nil {
		if required {
			return nil, errNoWorkspace
		}
		return nil, nil
	}
	return workspace.Load(root)
}

// loadTraining returns the training to work on and a description of where it
// came from: --training or config, the workspace's training.yaml, or the
// built-in sample.
func loadTraining(ws *workspace.Workspace) (merge.Training, string, error) {
	path := ""
	if cfg != nil {
		path = cfg.TrainingFile
	}
	if path == "" && ws != nil {
		if _, err := os.Stat(ws.TrainingPath()); err == nil {
			path = ws.TrainingPath()
		}
	}
	if path == "" {
		return merge.SampleTraining(now()), "built-in sample", nil
	}
	t, err := merge.LoadTraining(path)
	if err != nil {
		return merge.Training{}, "", err
	}
	return t, path, nil
}

func dateLayout() string {
	if cfg != nil && cfg.DateLayout != "" {
		return cfg.DateLayout
	}
	return merge.DefaultDateLayout
}

// finish records created files in the workspace and opens them if asked to.
func finish(w io.Writer, ws *workspace.Workspace, kind workspace.Kind, note string, paths ...string) error {
	if ws != nil {
		for _, p := range paths {
			ws.Record(kind, p, note)
		}
		if err := ws.Save(); err != nil {
			return fmt.Errorf("save workspace: %w", err)
		}
	}
	if cfg == nil || !cfg.OpenAfterCreate {
		return nil
	}
	for _, p := range paths {
		if err := openDocument(p); err != nil {
			fmt.Fprintf(w, "⚠ Warning: could not open %s: %v\n", p, err)
		}
	}
	return nil
}
