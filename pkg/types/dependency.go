package types

import "fmt"

// Artifact describes a single artifact requested from a dependency.
// A zero Classifier means the main artifact.
type Artifact struct {
	Name       string
	Type       string
	Extension  string
	Classifier string
}

// Dependency is a reference to a library held by a configuration.
type Dependency interface {
	// Group returns the dependency's group (e.g. "com.example").
	Group() string

	// Name returns the dependency's module name.
	Name() string

	// Version returns the dependency's version string.
	Version() string

	// String returns the group:name:version coordinate.
	String() string
}

// ExternalDependency is a dependency resolved from an external module
// repository, as opposed to a project or file dependency. Only external
// dependencies participate in the remap pass.
type ExternalDependency interface {
	Dependency

	// Artifacts returns the artifact descriptors attached to this dependency.
	Artifacts() []Artifact

	// AddArtifact attaches an artifact descriptor to this dependency.
	AddArtifact(artifact Artifact)

	// WithCoordinates returns a copy of this dependency with the given
	// coordinates, keeping existing artifacts.
	WithCoordinates(group, name, version string) ExternalDependency
}

// Coordinate formats a group/name/version triple the way the host tool
// prints dependency coordinates.
func Coordinate(group, name, version string) string {
	return fmt.Sprintf("%s:%s:%s", group, name, version)
}
