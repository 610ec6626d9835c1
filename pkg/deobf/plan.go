package deobf

import (
	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/logging"
	"github.com/forgeutil/deobf/pkg/types"
)

// Action is one pending remap: add Remapped to Target, keep Original in the
// bookkeeping configuration.
type Action struct {
	// Original is the obfuscated dependency found in the companion
	// configuration.
	Original types.ExternalDependency

	// Remapped is the deobfuscated form produced by the remapper.
	Remapped types.ExternalDependency

	// Source is the companion configuration the original came from.
	Source types.Configuration

	// Target is the configuration that receives the remapped dependency.
	Target types.Configuration
}

// Plan is an immutable list of pending remap actions for one project.
type Plan struct {
	project types.Project
	actions []Action
}

// Project returns the project the plan was built for.
func (p *Plan) Project() types.Project { return p.project }

// Actions returns the plan's actions in registration order.
func (p *Plan) Actions() []Action {
	out := make([]Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// Plan reads the current contents of every tracked companion configuration
// and builds the list of remap actions. Only external dependencies
// participate; everything else in a companion configuration is ignored.
//
// Plan must run after all registrations for the project, once the host is
// done evaluating the project's build script. It does not mutate any
// configuration.
func (m *Manager) Plan(project types.Project) (*Plan, error) {
	logger := logging.GetLogger("deobf.plan")

	plan := &Plan{project: project}
	for _, rec := range m.markers(project) {
		for _, dep := range rec.deobfConfig.Dependencies() {
			ext, ok := dep.(types.ExternalDependency)
			if !ok {
				logger.Debug().
					Str("project", project.Name()).
					Str("dependency", dep.String()).
					Msg("Skipping non-external dependency")
				continue
			}

			remapped, err := rec.remapper.Remap(ext)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrRemapFailed,
					"remap of %s in configuration '%s' failed",
					ext.String(), rec.deobfConfig.Name())
			}

			plan.actions = append(plan.actions, Action{
				Original: ext,
				Remapped: remapped,
				Source:   rec.deobfConfig,
				Target:   rec.targetConfig,
			})
		}
	}

	logger.Debug().
		Str("project", project.Name()).
		Int("actions", len(plan.actions)).
		Msg("Remap plan built")
	return plan, nil
}

// Apply executes a plan: every remapped dependency is added to its target
// configuration and every original to the project's obfuscated-originals
// configuration, which is created on first use. When the manager was built
// with WithClearAfterApply, the project's tracked set is dropped afterwards.
func (m *Manager) Apply(plan *Plan) {
	logger := logging.GetLogger("deobf.apply")

	obfConfig := plan.project.Configurations().MaybeCreate(m.obfConfigName)
	for _, action := range plan.actions {
		action.Target.Add(action.Remapped)
		obfConfig.Add(action.Original)

		logger.Debug().
			Str("project", plan.project.Name()).
			Str("original", action.Original.String()).
			Str("remapped", action.Remapped.String()).
			Str("target", action.Target.Name()).
			Msg("Remapped dependency")
	}

	if m.clearAfterApply {
		m.Clear(plan.project)
	}
}
