package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// InvalidError reports a descriptor that failed schema validation.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
		} else {
			msgs = append(msgs, issue.Message)
		}
	}
	return fmt.Sprintf("workspace %s is invalid: %s", e.Path, strings.Join(msgs, "; "))
}

// Load reads a descriptor, validates it against the schema and decodes it.
// The returned workspace has Dir set to the descriptor's absolute directory.
func Load(path string) (*Workspace, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating workspace %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Issues: result.Issues}
	}

	ws, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace %s: %w", path, err)
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving workspace directory: %w", err)
	}
	ws.Dir = abs
	return ws, nil
}

// Parse decodes descriptor bytes without schema validation and checks the
// invariants the schema cannot express.
func Parse(data []byte) (*Workspace, error) {
	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	if err := ws.check(); err != nil {
		return nil, err
	}
	return &ws, nil
}

// check enforces unique subproject names and output-safe paths.
func (w *Workspace) check() error {
	seen := make(map[string]bool, len(w.Subprojects))
	for _, s := range w.Subprojects {
		if s.Name == "" {
			return fmt.Errorf("subproject with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate subproject %q", s.Name)
		}
		seen[s.Name] = true
		for _, dep := range s.DependsOn {
			if dep == s.Name {
				return fmt.Errorf("subproject %q depends on itself", s.Name)
			}
		}
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
