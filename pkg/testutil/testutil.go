// Package testutil provides build-model builders shared by tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/forgeutil/deobf/pkg/model"
	"github.com/forgeutil/deobf/pkg/types"
)

// NewProject creates an in-memory project with the given source sets.
func NewProject(t *testing.T, name string, sourceSets ...string) *model.Project {
	t.Helper()

	project := model.NewProject(name)
	for _, ss := range sourceSets {
		project.AddSourceSet(ss)
	}
	return project
}

// External creates an external module dependency from a group:name:version
// coordinate string, with optional artifact names attached as jar artifacts.
func External(t *testing.T, coordinate string, artifactNames ...string) *model.ModuleDependency {
	t.Helper()

	parts := strings.Split(coordinate, ":")
	if len(parts) != 3 {
		t.Fatalf("invalid test coordinate %q, want group:name:version", coordinate)
	}
	dep := model.NewModuleDependency(parts[0], parts[1], parts[2])
	for _, name := range artifactNames {
		dep.AddArtifact(types.Artifact{Name: name, Type: "jar", Extension: "jar"})
	}
	return dep
}

// PrefixRemapper returns a remapper that prefixes the module name, making
// remap results easy to assert on.
func PrefixRemapper(prefix string) types.Remapper {
	return types.RemapperFunc(func(dep types.ExternalDependency) (types.ExternalDependency, error) {
		return dep.WithCoordinates(dep.Group(), prefix+dep.Name(), dep.Version()), nil
	})
}
