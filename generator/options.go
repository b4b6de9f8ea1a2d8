package generator

// Options controls code generation.
type Options struct {
	// DslName names the instance DSL entry point and its scope type,
	// e.g. "People" yields BuildPeople and type People.
	DslName string

	// PackageName is the package clause of every emitted file.
	PackageName string

	// OutputDir is the directory emitted files are written into.
	OutputDir string

	// DisableValidation suppresses the per-class validation routines
	// and the builders' deferred Validate methods. The zero value keeps
	// validation on. Immediate setter checks are always emitted.
	DisableValidation bool

	// SupportLanguageTags adds an optional language-tag parameter to
	// setters of string properties.
	SupportLanguageTags bool
}

// ValidationEnabled reports whether validation routines are emitted.
func (o Options) ValidationEnabled() bool {
	return !o.DisableValidation
}

// DefaultOptions returns the option defaults: validation on, language
// tags off.
func DefaultOptions() Options {
	return Options{
		DslName:     "Instances",
		PackageName: "ontology",
		OutputDir:   ".",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.DslName == "" {
		o.DslName = def.DslName
	}
	if o.PackageName == "" {
		o.PackageName = def.PackageName
	}
	if o.OutputDir == "" {
		o.OutputDir = def.OutputDir
	}
	return o
}
