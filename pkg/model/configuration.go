package model

import (
	"sort"
	"sync"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/types"
)

// Configuration is a named in-memory dependency bucket.
type Configuration struct {
	name string

	mu   sync.Mutex
	deps []types.Dependency
}

// Name returns the configuration's name
func (c *Configuration) Name() string { return c.name }

// Dependencies returns a snapshot of the configuration's dependencies
func (c *Configuration) Dependencies() []types.Dependency {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]types.Dependency, len(c.deps))
	copy(out, c.deps)
	return out
}

// Add adds a dependency to the configuration
func (c *Configuration) Add(dep types.Dependency) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deps = append(c.deps, dep)
}

// ConfigurationContainer is a name-keyed, get-or-create configuration store.
type ConfigurationContainer struct {
	mu      sync.Mutex
	configs map[string]*Configuration
}

// NewConfigurationContainer creates an empty configuration container.
func NewConfigurationContainer() *ConfigurationContainer {
	return &ConfigurationContainer{
		configs: make(map[string]*Configuration),
	}
}

// MaybeCreate returns the named configuration, creating it on first use
func (cc *ConfigurationContainer) MaybeCreate(name string) types.Configuration {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cfg, ok := cc.configs[name]; ok {
		return cfg
	}
	cfg := &Configuration{name: name}
	cc.configs[name] = cfg
	return cfg
}

// Get returns the named configuration or ErrNotFound
func (cc *ConfigurationContainer) Get(name string) (types.Configuration, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cfg, ok := cc.configs[name]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "configuration '%s' not found", name)
	}
	return cfg, nil
}

// Names returns all configuration names in sorted order
func (cc *ConfigurationContainer) Names() []string {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	names := make([]string, 0, len(cc.configs))
	for name := range cc.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
