// Package pom attaches synthesized POM artifact descriptors to dependencies
// and renders minimal POM documents for them.
package pom

import (
	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/logging"
	"github.com/forgeutil/deobf/pkg/types"
)

// AttachArtifact attaches a synthesized "pom" artifact descriptor to the
// dependency, named after its existing artifact.
//
// A dependency without artifacts, or with artifacts that disagree on the
// name, cannot yield an unambiguous pom artifact: the dependency is left
// untouched, one error line is logged, and a typed error is returned.
func AttachArtifact(dep types.ExternalDependency) error {
	logger := logging.GetLogger("pom")

	artifacts := dep.Artifacts()
	if len(artifacts) == 0 {
		logger.Error().
			Str("dependency", dep.String()).
			Msgf("No artifacts found. The dependency: %s contains no artifacts. POM resolution not possible.", dep.String())
		return errors.Newf(errors.ErrNoArtifacts,
			"dependency %s has no artifacts", dep.String())
	}

	if len(artifacts) > 1 && distinctNames(artifacts) > 1 {
		logger.Error().
			Str("dependency", dep.String()).
			Msgf("Multiple different artifact names found. The dependency: %s contains multiple artifacts with different names. POM resolution not possible.", dep.String())
		return errors.Newf(errors.ErrAmbiguousArtifact,
			"dependency %s has artifacts with conflicting names", dep.String())
	}

	dep.AddArtifact(types.Artifact{
		Name:       artifacts[0].Name,
		Type:       "pom",
		Extension:  "pom",
		Classifier: "",
	})
	return nil
}

func distinctNames(artifacts []types.Artifact) int {
	seen := make(map[string]struct{}, len(artifacts))
	for _, artifact := range artifacts {
		seen[artifact.Name] = struct{}{}
	}
	return len(seen)
}
