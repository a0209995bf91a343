package lifecycle

import (
	"fmt"

	"github.com/buildpin-labs/buildpin/internal/plugin"
	"github.com/buildpin-labs/buildpin/internal/project"
	"github.com/buildpin-labs/buildpin/internal/workspace"
	"github.com/rs/zerolog"
)

// Hook runs against a subproject once its own configuration is complete.
type Hook func(p *project.Subproject)

// Evaluator runs one configuration pass over a workspace.
type Evaluator struct {
	ws         *workspace.Workspace
	catalog    *plugin.Catalog
	aggregator string
	hooks      []Hook
	log        zerolog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithAggregator names the subproject evaluated after all others.
func WithAggregator(name string) Option {
	return func(e *Evaluator) { e.aggregator = name }
}

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Evaluator) { e.log = l }
}

// New returns an Evaluator for ws that applies plugins from catalog.
func New(ws *workspace.Workspace, catalog *plugin.Catalog, opts ...Option) *Evaluator {
	e := &Evaluator{
		ws:      ws,
		catalog: catalog,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AfterEvaluate registers h to run against every subproject right after it
// is evaluated. Hooks run in registration order.
func (e *Evaluator) AfterEvaluate(h Hook) {
	e.hooks = append(e.hooks, h)
}

// Build is the outcome of a configuration pass.
type Build struct {
	Projects []*project.Subproject // in evaluation order
	byName   map[string]*project.Subproject
}

// Order returns the names of the evaluated subprojects, in evaluation order.
func (b *Build) Order() []string {
	names := make([]string, len(b.Projects))
	for i, p := range b.Projects {
		names[i] = p.Name
	}
	return names
}

// Project returns the evaluated subproject with the given name, or nil.
func (b *Build) Project(name string) *project.Subproject {
	return b.byName[name]
}

// Run evaluates every subproject in order and fires the hooks after each.
// A subproject that fails to evaluate aborts the pass.
func (e *Evaluator) Run() (*Build, error) {
	order, err := EvaluationOrder(e.ws, e.aggregator)
	if err != nil {
		return nil, fmt.Errorf("ordering subprojects: %w", err)
	}

	b := &Build{byName: make(map[string]*project.Subproject, len(order))}
	for _, name := range order {
		p, err := e.evaluate(*e.ws.Find(name))
		if err != nil {
			return nil, fmt.Errorf("evaluating subproject %q: %w", name, err)
		}
		e.log.Debug().Str("project", name).Strs("extensions", p.Extensions().Names()).Msg("evaluated")

		for _, h := range e.hooks {
			h(p)
		}

		b.Projects = append(b.Projects, p)
		b.byName[name] = p
	}
	return b, nil
}

func (e *Evaluator) evaluate(spec workspace.SubprojectSpec) (*project.Subproject, error) {
	p := project.New(spec.Name, e.ws.ProjectDir(spec))
	p.Repositories = e.ws.RepositoryList()
	p.DependsOn = append([]string(nil), spec.DependsOn...)

	if err := e.catalog.Apply(p, spec.Plugins, spec.Extensions); err != nil {
		return nil, err
	}
	p.MarkEvaluated()
	return p, nil
}
