// Package manifest loads build-model manifests for the deobf CLI: a TOML or
// YAML description of projects, their source sets, and the dependencies
// sitting in their configurations.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/logging"
	"github.com/forgeutil/deobf/pkg/model"
	"github.com/forgeutil/deobf/pkg/types"
)

// Dependency describes one dependency entry in a manifest. Either Coordinate
// (group:name:version) or File must be set; file dependencies are not
// external and are ignored by the remap pass.
type Dependency struct {
	Configuration string   `toml:"configuration" yaml:"configuration"`
	Coordinate    string   `toml:"coordinate" yaml:"coordinate"`
	File          string   `toml:"file" yaml:"file"`
	Artifacts     []string `toml:"artifacts" yaml:"artifacts"`
}

// Project describes one project in a manifest.
type Project struct {
	Name         string       `toml:"name" yaml:"name"`
	SourceSets   []string     `toml:"source_sets" yaml:"source_sets"`
	Dependencies []Dependency `toml:"dependencies" yaml:"dependencies"`
}

// Manifest is the root of a manifest file.
type Manifest struct {
	Projects []Project `toml:"projects" yaml:"projects"`
}

// Load reads and decodes a manifest file. The format follows the file
// extension: .toml, .yaml, or .yml.
func Load(path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to read manifest %s", path)
	}

	var m Manifest
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse TOML manifest %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse YAML manifest %s", path)
		}
	default:
		return nil, errors.Newf(errors.ErrManifestValid, "unsupported manifest format '%s'", ext)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Int("projects", len(m.Projects)).Msg("Manifest loaded")
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Projects) == 0 {
		return errors.New(errors.ErrManifestValid, "manifest declares no projects")
	}
	seen := make(map[string]struct{})
	for _, project := range m.Projects {
		if project.Name == "" {
			return errors.New(errors.ErrManifestValid, "manifest project without a name")
		}
		if _, dup := seen[project.Name]; dup {
			return errors.Newf(errors.ErrManifestValid, "duplicate project '%s' in manifest", project.Name)
		}
		seen[project.Name] = struct{}{}

		for _, dep := range project.Dependencies {
			if dep.Configuration == "" {
				return errors.Newf(errors.ErrManifestValid,
					"project '%s' has a dependency without a configuration", project.Name)
			}
			if (dep.Coordinate == "") == (dep.File == "") {
				return errors.Newf(errors.ErrManifestValid,
					"project '%s': dependency needs exactly one of coordinate or file", project.Name)
			}
		}
	}
	return nil
}

// Build turns the manifest into in-memory projects with their source sets
// and configuration contents.
func (m *Manifest) Build() ([]*model.Project, error) {
	projects := make([]*model.Project, 0, len(m.Projects))
	for _, entry := range m.Projects {
		project := model.NewProject(entry.Name)

		sourceSets := entry.SourceSets
		if len(sourceSets) == 0 {
			sourceSets = []string{model.MainSourceSetName}
		}
		for _, name := range sourceSets {
			project.AddSourceSet(name)
		}

		for _, dep := range entry.Dependencies {
			config := project.Configurations().MaybeCreate(dep.Configuration)
			if dep.File != "" {
				config.Add(&model.FileDependency{Path: dep.File})
				continue
			}
			module, err := parseCoordinate(dep.Coordinate)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrManifestValid,
					"project '%s', configuration '%s'", entry.Name, dep.Configuration)
			}
			for _, name := range dep.Artifacts {
				module.AddArtifact(types.Artifact{Name: name, Type: "jar", Extension: "jar"})
			}
			config.Add(module)
		}

		projects = append(projects, project)
	}
	return projects, nil
}

func parseCoordinate(coordinate string) (*model.ModuleDependency, error) {
	parts := strings.Split(coordinate, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, errors.Newf(errors.ErrDependencyInvalid,
			"invalid coordinate '%s', want group:name:version", coordinate)
	}
	return model.NewModuleDependency(parts[0], parts[1], parts[2]), nil
}
