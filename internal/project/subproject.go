package project

// Subproject is one independently configurable unit of a workspace.
type Subproject struct {
	Name         string
	Dir          string   // absolute project directory
	OutputDir    string   // where build outputs land
	Repositories []string // artifact repositories, in lookup order
	DependsOn    []string // subprojects that must be evaluated first

	extensions ExtensionContainer
	evaluated  bool
}

// New returns an unevaluated subproject whose output directory defaults to
// <dir>/build.
func New(name, dir string) *Subproject {
	return &Subproject{
		Name:      name,
		Dir:       dir,
		OutputDir: DefaultOutputDir(dir),
	}
}

// Extensions returns the subproject's extension registry.
func (p *Subproject) Extensions() *ExtensionContainer { return &p.extensions }

// Evaluated reports whether the subproject's own configuration has run.
func (p *Subproject) Evaluated() bool { return p.evaluated }

// MarkEvaluated records that the subproject's own configuration has run.
func (p *Subproject) MarkEvaluated() { p.evaluated = true }

// CompileVersion returns the compile version reported by the named
// extension, or 0 when the extension is absent or does not report one.
func (p *Subproject) CompileVersion(extension string) int {
	r, ok := p.extensions.FindByName(extension).(VersionReporter)
	if !ok {
		return 0
	}
	return r.CompileVersion()
}
