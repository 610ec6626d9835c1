package model

import (
	"sync"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/types"
)

// Project is an in-memory build project. The zero value is not usable; use
// NewProject.
type Project struct {
	name    string
	configs *ConfigurationContainer

	mu         sync.Mutex
	sourceSets []*SourceSet
}

// NewProject creates a project with an empty configuration container and no
// source sets.
func NewProject(name string) *Project {
	return &Project{
		name:    name,
		configs: NewConfigurationContainer(),
	}
}

// Name returns the project's name
func (p *Project) Name() string { return p.name }

// Configurations returns the project's configuration container
func (p *Project) Configurations() types.ConfigurationContainer { return p.configs }

// AddSourceSet registers a source set with the project and returns it.
func (p *Project) AddSourceSet(name string) *SourceSet {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ss := range p.sourceSets {
		if ss.Name() == name {
			return ss
		}
	}
	ss := NewSourceSet(name)
	p.sourceSets = append(p.sourceSets, ss)
	return ss
}

// SourceSets returns the project's source sets in registration order. A
// project without source sets does not carry the source-set convention, so
// enumeration fails.
func (p *Project) SourceSets() ([]types.SourceSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.sourceSets) == 0 {
		return nil, errors.Newf(errors.ErrSourceSetsMissing,
			"project '%s' has no source sets", p.name)
	}
	out := make([]types.SourceSet, len(p.sourceSets))
	for i, ss := range p.sourceSets {
		out[i] = ss
	}
	return out, nil
}

var _ types.Project = (*Project)(nil)
