package main

import (
	"path/filepath"

	"github.com/forgeutil/deobf/pkg/config"
	"github.com/forgeutil/deobf/pkg/deobf"
	"github.com/forgeutil/deobf/pkg/manifest"
	"github.com/forgeutil/deobf/pkg/model"
	"github.com/forgeutil/deobf/pkg/registry"
	_ "github.com/forgeutil/deobf/pkg/remap"
	"github.com/forgeutil/deobf/pkg/types"
)

// workspace is the CLI's loaded state: settings, projects built from the
// manifest, and a manager with every project registered.
type workspace struct {
	settings *config.Settings
	projects []*model.Project
	manager  *deobf.Manager
	remapper types.Remapper
}

// loadWorkspace loads settings and the manifest, builds the in-memory
// projects, and registers each project with a fresh manager.
func loadWorkspace(manifestPath string) (*workspace, error) {
	settings, err := config.Load(filepath.Dir(manifestPath))
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	projects, err := m.Build()
	if err != nil {
		return nil, err
	}

	remapper, err := registry.GetRemapper(settings.Remapper.Name, settings.Remapper.Options)
	if err != nil {
		return nil, err
	}

	opts := []deobf.Option{
		deobf.WithCompanionSuffix(settings.Manager.CompanionSuffix),
		deobf.WithObfConfigurationName(settings.Manager.ObfConfiguration),
	}
	if settings.Manager.ClearAfterApply {
		opts = append(opts, deobf.WithClearAfterApply())
	}
	manager := deobf.NewManager(opts...)

	for _, project := range projects {
		if err := manager.RegisterForProject(project, remapper); err != nil {
			return nil, err
		}
	}

	return &workspace{
		settings: settings,
		projects: projects,
		manager:  manager,
		remapper: remapper,
	}, nil
}
