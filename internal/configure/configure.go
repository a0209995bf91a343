package configure

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/buildpin-labs/buildpin/internal/config"
	"github.com/buildpin-labs/buildpin/internal/lifecycle"
	"github.com/buildpin-labs/buildpin/internal/override"
	"github.com/buildpin-labs/buildpin/internal/plugin"
	"github.com/buildpin-labs/buildpin/internal/project"
	"github.com/buildpin-labs/buildpin/internal/task"
	"github.com/buildpin-labs/buildpin/internal/workspace"
	"github.com/rs/zerolog"
)

// ErrUnsafeSharedRoot is returned when the shared root would contain the
// workspace or one of its subprojects, so that clean would delete sources.
var ErrUnsafeSharedRoot = errors.New("unsafe shared root")

// Options controls a pass.
type Options struct {
	Settings config.Settings
	Catalog  *plugin.Catalog // nil means plugin.Default()
	Log      zerolog.Logger
}

// Result is everything a pass produced.
type Result struct {
	Workspace  *workspace.Workspace
	Settings   config.Settings
	SharedRoot string
	Build      *lifecycle.Build
	Overrides  []override.Result // in evaluation order
	Tasks      *task.Registry
}

// Run evaluates ws with the override hook installed. Extension
// incompatibilities never fail the pass; descriptor problems do.
func Run(ws *workspace.Workspace, opts Options) (*Result, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = plugin.Default()
	}

	sharedRoot := project.SharedRoot(ws.RootOutputDir(), opts.Settings.OutputOffset)
	if err := checkSharedRoot(ws, sharedRoot); err != nil {
		return nil, err
	}

	applicator := &override.Applicator{
		SharedRoot: sharedRoot,
		Extension:  opts.Settings.Extension,
		Version:    opts.Settings.CompileSDK,
		Log:        opts.Log,
	}

	evaluator := lifecycle.New(ws, catalog,
		lifecycle.WithAggregator(opts.Settings.Aggregator),
		lifecycle.WithLogger(opts.Log),
	)
	evaluator.AfterEvaluate(applicator.Hook())

	build, err := evaluator.Run()
	if err != nil {
		return nil, err
	}

	tasks := task.NewRegistry()
	if err := tasks.Register(task.NewClean(sharedRoot)); err != nil {
		return nil, fmt.Errorf("registering tasks: %w", err)
	}

	results := applicator.Results()
	opts.Log.Debug().
		Str("shared_root", sharedRoot).
		Stringer("summary", override.Summarize(results)).
		Msg("configuration pass complete")

	return &Result{
		Workspace:  ws,
		Settings:   opts.Settings,
		SharedRoot: sharedRoot,
		Build:      build,
		Overrides:  results,
		Tasks:      tasks,
	}, nil
}

// Override returns the override result for the named subproject.
func (r *Result) Override(name string) (override.Result, bool) {
	for _, o := range r.Overrides {
		if o.Project == name {
			return o, true
		}
	}
	return override.Result{}, false
}

// checkSharedRoot refuses a root that is, or encloses, the workspace
// directory or any subproject directory.
func checkSharedRoot(ws *workspace.Workspace, root string) error {
	if contains(root, ws.Dir) {
		return fmt.Errorf("%w: %s contains workspace %s", ErrUnsafeSharedRoot, root, ws.Dir)
	}
	for _, s := range ws.Subprojects {
		if dir := ws.ProjectDir(s); contains(root, dir) {
			return fmt.Errorf("%w: %s contains subproject %q at %s", ErrUnsafeSharedRoot, root, s.Name, dir)
		}
	}
	return nil
}

// contains reports whether path is dir or lies beneath it.
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
