package model

import "github.com/forgeutil/deobf/pkg/types"

// MainSourceSetName is the source set that owns the bare scope names.
const MainSourceSetName = "main"

// SourceSet is an in-memory source set following the host's conventional
// configuration naming: the main source set owns the bare scope names, every
// other source set prefixes them with its own name.
type SourceSet struct {
	name string
}

// NewSourceSet creates a source set with the given name.
func NewSourceSet(name string) *SourceSet {
	return &SourceSet{name: name}
}

// Name returns the source set's name
func (s *SourceSet) Name() string { return s.name }

// CompileConfigurationName returns the compile scope name
func (s *SourceSet) CompileConfigurationName() string { return s.scopeName("compile") }

// RuntimeConfigurationName returns the runtime scope name
func (s *SourceSet) RuntimeConfigurationName() string { return s.scopeName("runtime") }

// CompileOnlyConfigurationName returns the compileOnly scope name
func (s *SourceSet) CompileOnlyConfigurationName() string { return s.scopeName("compileOnly") }

// RuntimeOnlyConfigurationName returns the runtimeOnly scope name
func (s *SourceSet) RuntimeOnlyConfigurationName() string { return s.scopeName("runtimeOnly") }

// ImplementationConfigurationName returns the implementation scope name
func (s *SourceSet) ImplementationConfigurationName() string { return s.scopeName("implementation") }

// ApiConfigurationName returns the api scope name
func (s *SourceSet) ApiConfigurationName() string { return s.scopeName("api") }

func (s *SourceSet) scopeName(scope string) string {
	if s.name == MainSourceSetName {
		return scope
	}
	return s.name + types.Capitalize(scope)
}

var _ types.SourceSet = (*SourceSet)(nil)
