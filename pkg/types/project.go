package types

// Configuration is a named bucket of dependencies owned by the host build
// tool. deobf never resolves configurations, it only reads and adds
// dependencies.
type Configuration interface {
	// Name returns the configuration's name within its project.
	Name() string

	// Dependencies returns a snapshot of the dependencies currently in the
	// configuration.
	Dependencies() []Dependency

	// Add adds a dependency to the configuration.
	Add(dep Dependency)
}

// ConfigurationContainer is the host's per-project configuration registry.
type ConfigurationContainer interface {
	// MaybeCreate returns the configuration with the given name, creating it
	// if it does not exist yet.
	MaybeCreate(name string) Configuration

	// Get returns the configuration with the given name, or an error if it
	// does not exist.
	Get(name string) (Configuration, error)

	// Names returns the names of all configurations, sorted.
	Names() []string
}

// Project is the host build tool's project handle. deobf uses the project
// name as an identity key and never constructs or destroys projects.
type Project interface {
	// Name returns the project's unique name.
	Name() string

	// Configurations returns the project's configuration container.
	Configurations() ConfigurationContainer

	// SourceSets enumerates the project's source sets. It returns an error
	// when the project does not carry the source-set convention; the error
	// is the host's own and is not translated.
	SourceSets() ([]SourceSet, error)
}
