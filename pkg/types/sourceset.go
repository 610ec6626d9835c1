package types

// SourceSet is a host-defined grouping of sources with its own dependency
// scopes. The conventional configuration names follow the host's scheme: the
// main source set owns the bare scope names ("api", "implementation", ...),
// every other source set prefixes its own name ("testApi",
// "testImplementation", ...).
// Capitalize upper-cases the first byte of a scope or configuration name,
// as the host's configuration naming scheme does. Scope names are plain
// ASCII by convention.
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	if name[0] >= 'a' && name[0] <= 'z' {
		return string(name[0]-'a'+'A') + name[1:]
	}
	return name
}

type SourceSet interface {
	// Name returns the source set's name (e.g. "main", "test").
	Name() string

	// CompileConfigurationName returns the name of the compile scope.
	CompileConfigurationName() string

	// RuntimeConfigurationName returns the name of the runtime scope.
	RuntimeConfigurationName() string

	// CompileOnlyConfigurationName returns the name of the compileOnly scope.
	CompileOnlyConfigurationName() string

	// RuntimeOnlyConfigurationName returns the name of the runtimeOnly scope.
	RuntimeOnlyConfigurationName() string

	// ImplementationConfigurationName returns the name of the implementation scope.
	ImplementationConfigurationName() string

	// ApiConfigurationName returns the name of the api scope.
	ApiConfigurationName() string
}
