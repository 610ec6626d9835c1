package model

import (
	"sync"

	"github.com/forgeutil/deobf/pkg/types"
)

// ModuleDependency is an in-memory external module dependency.
type ModuleDependency struct {
	group   string
	name    string
	version string

	mu        sync.Mutex
	artifacts []types.Artifact
}

// NewModuleDependency creates an external module dependency with the given
// coordinates and no artifacts.
func NewModuleDependency(group, name, version string) *ModuleDependency {
	return &ModuleDependency{
		group:   group,
		name:    name,
		version: version,
	}
}

// Group returns the dependency's group
func (d *ModuleDependency) Group() string { return d.group }

// Name returns the dependency's module name
func (d *ModuleDependency) Name() string { return d.name }

// Version returns the dependency's version
func (d *ModuleDependency) Version() string { return d.version }

// String returns the group:name:version coordinate
func (d *ModuleDependency) String() string {
	return types.Coordinate(d.group, d.name, d.version)
}

// Artifacts returns a snapshot of the attached artifact descriptors
func (d *ModuleDependency) Artifacts() []types.Artifact {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]types.Artifact, len(d.artifacts))
	copy(out, d.artifacts)
	return out
}

// AddArtifact attaches an artifact descriptor to the dependency
func (d *ModuleDependency) AddArtifact(artifact types.Artifact) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.artifacts = append(d.artifacts, artifact)
}

// WithCoordinates returns a copy with new coordinates and the same artifacts
func (d *ModuleDependency) WithCoordinates(group, name, version string) types.ExternalDependency {
	out := NewModuleDependency(group, name, version)
	out.artifacts = d.Artifacts()
	return out
}

// FileDependency is an in-memory dependency on a local file. It is not
// external, so the remap pass leaves it alone.
type FileDependency struct {
	Path string
}

// Group returns an empty group; file dependencies carry no coordinates
func (d *FileDependency) Group() string { return "" }

// Name returns the file path
func (d *FileDependency) Name() string { return d.Path }

// Version returns an empty version
func (d *FileDependency) Version() string { return "" }

// String returns the file path
func (d *FileDependency) String() string { return d.Path }
