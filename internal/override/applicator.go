package override

import (
	"errors"
	"fmt"

	"github.com/buildpin-labs/buildpin/internal/project"
	"github.com/rs/zerolog"
)

// ErrNoCapability is the Reason of an Unsupported result.
var ErrNoCapability = errors.New("extension has no compile version capability")

// Applicator redirects output directories and overrides compile versions.
type Applicator struct {
	SharedRoot string // output root shared by every subproject
	Extension  string // extension to look up, e.g. "android"
	Version    int    // compile version to force

	// Log receives one diagnostic event per non-applied result. The zero
	// value discards them.
	Log zerolog.Logger

	results []Result
}

// Apply configures p and returns what happened. It never returns an error;
// incompatibilities are reported through the Result.
func (a *Applicator) Apply(p *project.Subproject) Result {
	p.OutputDir = project.OutputDirFor(a.SharedRoot, p.Name)

	r := Result{
		Project:   p.Name,
		OutputDir: p.OutputDir,
		Extension: a.Extension,
	}

	if ext := p.Extensions().FindByName(a.Extension); ext != nil {
		r.Outcome, r.Reason = a.setVersion(ext)
	} else {
		r.Outcome = Skipped
	}

	a.record(r)
	return r
}

// Hook returns a post-evaluation hook that applies the override and keeps
// the result for Results.
func (a *Applicator) Hook() func(*project.Subproject) {
	return func(p *project.Subproject) { a.Apply(p) }
}

// Results returns every result recorded so far, in application order.
func (a *Applicator) Results() []Result {
	return append([]Result(nil), a.results...)
}

func (a *Applicator) setVersion(ext project.Extension) (outcome Outcome, reason error) {
	vc, ok := ext.(project.VersionConfigurable)
	if !ok {
		return Unsupported, fmt.Errorf("%w (%T)", ErrNoCapability, ext)
	}

	defer func() {
		if rec := recover(); rec != nil {
			outcome, reason = Failed, fmt.Errorf("setting compile version panicked: %v", rec)
		}
	}()
	if err := vc.SetCompileVersion(a.Version); err != nil {
		return Failed, err
	}
	return Applied, nil
}

func (a *Applicator) record(r Result) {
	a.results = append(a.results, r)

	var ev *zerolog.Event
	switch r.Outcome {
	case Applied, Skipped:
		ev = a.Log.Debug()
	case Unsupported:
		ev = a.Log.Info().Err(r.Reason)
	case Failed:
		ev = a.Log.Warn().Err(r.Reason)
	}
	ev.Str("project", r.Project).
		Str("extension", r.Extension).
		Str("output_dir", r.OutputDir).
		Int("version", a.Version).
		Msg("override " + r.Outcome.String())
}
