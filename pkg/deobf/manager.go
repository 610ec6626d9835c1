package deobf

import (
	"reflect"
	"sync"

	"github.com/forgeutil/deobf/pkg/logging"
	"github.com/forgeutil/deobf/pkg/types"
)

const (
	// DefaultCompanionSuffix is appended to a target configuration's name to
	// derive its deobfuscation companion ("api" -> "apiDeobf").
	DefaultCompanionSuffix = "deobf"

	// DefaultObfConfigurationName is the per-project bookkeeping
	// configuration that collects the obfuscated originals after Apply.
	DefaultObfConfigurationName = "__obfuscated"
)

// marker records one tracked companion configuration: when the companion is
// drained, remap its external dependencies into the target. Immutable after
// creation.
type marker struct {
	deobfConfig  types.Configuration
	targetConfig types.Configuration
	remapper     types.Remapper
}

// Manager tracks deobfuscation companion configurations per project. It is
// an explicitly constructed instance owned by the build integration, safe
// for concurrent registration across projects.
type Manager struct {
	companionSuffix string
	obfConfigName   string
	clearAfterApply bool

	mu      sync.Mutex
	tracked map[string][]marker
}

// Option configures a Manager.
type Option func(*Manager)

// WithCompanionSuffix overrides the suffix used to derive companion
// configuration names.
func WithCompanionSuffix(suffix string) Option {
	return func(m *Manager) { m.companionSuffix = suffix }
}

// WithObfConfigurationName overrides the name of the bookkeeping
// configuration that collects the obfuscated originals.
func WithObfConfigurationName(name string) Option {
	return func(m *Manager) { m.obfConfigName = name }
}

// WithClearAfterApply makes Apply drop the project's tracked set once the
// remap pass ran, so a long-lived host process does not accumulate records.
func WithClearAfterApply() Option {
	return func(m *Manager) { m.clearAfterApply = true }
}

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		companionSuffix: DefaultCompanionSuffix,
		obfConfigName:   DefaultObfConfigurationName,
		tracked:         make(map[string][]marker),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CompanionName returns the name of the deobfuscation companion for a target
// configuration name.
func (m *Manager) CompanionName(target string) string {
	return target + types.Capitalize(m.companionSuffix)
}

// ObfConfigurationName returns the name of the obfuscated-originals
// bookkeeping configuration.
func (m *Manager) ObfConfigurationName() string {
	return m.obfConfigName
}

// Register ensures the companion configuration for target exists and tracks
// it. The companion is named after the target plus the companion suffix.
func (m *Manager) Register(project types.Project, target types.Configuration, remapper types.Remapper) {
	m.RegisterNamed(project, target, remapper, m.CompanionName(target.Name()))
}

// RegisterNamed ensures a companion configuration with the given name exists
// and tracks it against target.
func (m *Manager) RegisterNamed(project types.Project, target types.Configuration, remapper types.Remapper, name string) {
	deobfConfig := project.Configurations().MaybeCreate(name)
	m.RegisterConfiguration(project, target, remapper, deobfConfig)
}

// RegisterConfiguration tracks an existing configuration as the
// deobfuscation companion of target. Registering the exact same
// (companion, target, remapper) triple twice keeps a single record.
func (m *Manager) RegisterConfiguration(project types.Project, target types.Configuration, remapper types.Remapper, deobfConfig types.Configuration) {
	logger := logging.GetLogger("deobf.manager")

	rec := marker{deobfConfig: deobfConfig, targetConfig: target, remapper: remapper}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.tracked[project.Name()] {
		if sameMarker(existing, rec) {
			logger.Debug().
				Str("project", project.Name()).
				Str("deobfConfig", deobfConfig.Name()).
				Msg("Companion configuration already tracked")
			return
		}
	}
	m.tracked[project.Name()] = append(m.tracked[project.Name()], rec)

	logger.Debug().
		Str("project", project.Name()).
		Str("deobfConfig", deobfConfig.Name()).
		Str("target", target.Name()).
		Msg("Tracking companion configuration")
}

// RegisterForSourceSet registers companions for the six conventional
// dependency scopes of a source set.
func (m *Manager) RegisterForSourceSet(project types.Project, sourceSet types.SourceSet, remapper types.Remapper) {
	configs := project.Configurations()

	for _, scope := range []string{
		sourceSet.CompileConfigurationName(),
		sourceSet.RuntimeConfigurationName(),
		sourceSet.CompileOnlyConfigurationName(),
		sourceSet.RuntimeOnlyConfigurationName(),
		sourceSet.ImplementationConfigurationName(),
		sourceSet.ApiConfigurationName(),
	} {
		m.Register(project, configs.MaybeCreate(scope), remapper)
	}
}

// RegisterForProject registers companions for every source set of the
// project. The host's source-set lookup error passes through untranslated.
func (m *Manager) RegisterForProject(project types.Project, remapper types.Remapper) error {
	sourceSets, err := project.SourceSets()
	if err != nil {
		return err
	}
	for _, sourceSet := range sourceSets {
		m.RegisterForSourceSet(project, sourceSet, remapper)
	}
	return nil
}

// Clear drops the tracked set for a project.
func (m *Manager) Clear(project types.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tracked, project.Name())
}

// TrackedCount returns the number of tracking records for a project.
func (m *Manager) TrackedCount(project types.Project) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.tracked[project.Name()])
}

// markers returns a snapshot of the project's tracking records.
func (m *Manager) markers(project types.Project) []marker {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]marker, len(m.tracked[project.Name()]))
	copy(out, m.tracked[project.Name()])
	return out
}

// sameMarker reports structural equality of two tracking records.
// Configurations compare by identity; remappers compare by value when the
// dynamic type is comparable, by identity otherwise (func-backed remappers).
func sameMarker(a, b marker) bool {
	if a.deobfConfig != b.deobfConfig || a.targetConfig != b.targetConfig {
		return false
	}
	return sameRemapper(a.remapper, b.remapper)
}

func sameRemapper(a, b types.Remapper) bool {
	if a == nil || b == nil {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Type().Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Func, reflect.Slice, reflect.Map:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}
