package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/buildpin-labs/buildpin/internal/configure"
	"github.com/buildpin-labs/buildpin/internal/override"
	"github.com/google/renameio/v2"
)

// FileName is the report's name inside the shared output root.
const FileName = "buildpin-configuration.json"

// Report is the serialized form of a pass.
type Report struct {
	Workspace  string         `json:"workspace"`
	SharedRoot string         `json:"shared_root"`
	CompileSDK int            `json:"compile_sdk"`
	Extension  string         `json:"extension"`
	Aggregator string         `json:"aggregator,omitempty"`
	Order      []string       `json:"evaluation_order"`
	Projects   []Project      `json:"projects"`
	Tasks      []string       `json:"tasks"`
	Summary    map[string]int `json:"summary"`
}

// Project is one subproject's entry.
type Project struct {
	Name           string           `json:"name"`
	Dir            string           `json:"dir"`
	OutputDir      string           `json:"output_dir"`
	Extensions     []string         `json:"extensions"`
	Repositories   []string         `json:"repositories"`
	CompileVersion int              `json:"compile_version,omitempty"`
	Outcome        override.Outcome `json:"outcome"`
	Reason         string           `json:"reason,omitempty"`
}

// New builds a Report from a pass result.
func New(res *configure.Result) *Report {
	r := &Report{
		Workspace:  res.Workspace.Name,
		SharedRoot: res.SharedRoot,
		CompileSDK: res.Settings.CompileSDK,
		Extension:  res.Settings.Extension,
		Aggregator: res.Settings.Aggregator,
		Order:      res.Build.Order(),
		Tasks:      res.Tasks.Names(),
		Summary:    make(map[string]int),
	}

	for _, p := range res.Build.Projects {
		entry := Project{
			Name:           p.Name,
			Dir:            p.Dir,
			OutputDir:      p.OutputDir,
			Extensions:     p.Extensions().Names(),
			Repositories:   p.Repositories,
			CompileVersion: p.CompileVersion(res.Settings.Extension),
		}
		if o, ok := res.Override(p.Name); ok {
			entry.Outcome = o.Outcome
			if o.Reason != nil {
				entry.Reason = o.Reason.Error()
			}
		}
		r.Projects = append(r.Projects, entry)
	}

	for outcome, n := range override.Summarize(res.Overrides) {
		r.Summary[outcome.String()] = n
	}
	return r
}

// Encode writes r as indented JSON.
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// WriteFile atomically replaces path with the JSON report, creating parent
// directories as needed.
func WriteFile(path string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := renameio.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a report previously written by WriteFile.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}
