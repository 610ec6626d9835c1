package model_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/model"
	"github.com/forgeutil/deobf/pkg/types"
)

func TestMaybeCreateIsIdempotent(t *testing.T) {
	cc := model.NewConfigurationContainer()

	first := cc.MaybeCreate("api")
	second := cc.MaybeCreate("api")

	assert.Same(t, first.(*model.Configuration), second.(*model.Configuration))
	assert.Equal(t, []string{"api"}, cc.Names())
}

func TestGetMissingConfiguration(t *testing.T) {
	cc := model.NewConfigurationContainer()

	_, err := cc.Get("api")

	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestNamesSorted(t *testing.T) {
	cc := model.NewConfigurationContainer()
	cc.MaybeCreate("runtime")
	cc.MaybeCreate("api")
	cc.MaybeCreate("implementation")

	assert.Equal(t, []string{"api", "implementation", "runtime"}, cc.Names())
}

func TestConfigurationDependenciesSnapshot(t *testing.T) {
	cc := model.NewConfigurationContainer()
	cfg := cc.MaybeCreate("api")
	cfg.Add(model.NewModuleDependency("com.example", "lib", "1.0"))

	snapshot := cfg.Dependencies()
	cfg.Add(model.NewModuleDependency("com.example", "other", "2.0"))

	assert.Len(t, snapshot, 1, "snapshots must not grow with later additions")
	assert.Len(t, cfg.Dependencies(), 2)
}

func TestSourceSetNaming(t *testing.T) {
	tests := []struct {
		sourceSet string
		scope     func(types.SourceSet) string
		want      string
	}{
		{"main", types.SourceSet.CompileConfigurationName, "compile"},
		{"main", types.SourceSet.RuntimeConfigurationName, "runtime"},
		{"main", types.SourceSet.CompileOnlyConfigurationName, "compileOnly"},
		{"main", types.SourceSet.RuntimeOnlyConfigurationName, "runtimeOnly"},
		{"main", types.SourceSet.ImplementationConfigurationName, "implementation"},
		{"main", types.SourceSet.ApiConfigurationName, "api"},
		{"test", types.SourceSet.CompileConfigurationName, "testCompile"},
		{"test", types.SourceSet.ApiConfigurationName, "testApi"},
		{"integration", types.SourceSet.ImplementationConfigurationName, "integrationImplementation"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.scope(model.NewSourceSet(tt.sourceSet))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectSourceSets(t *testing.T) {
	project := model.NewProject("demo")

	t.Run("empty project fails enumeration", func(t *testing.T) {
		_, err := project.SourceSets()
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceSetsMissing))
	})

	t.Run("source sets keep registration order", func(t *testing.T) {
		project.AddSourceSet("main")
		project.AddSourceSet("test")
		project.AddSourceSet("main") // duplicate is a no-op

		sourceSets, err := project.SourceSets()
		require.NoError(t, err)
		require.Len(t, sourceSets, 2)
		assert.Equal(t, "main", sourceSets[0].Name())
		assert.Equal(t, "test", sourceSets[1].Name())
	})
}

func TestModuleDependency(t *testing.T) {
	dep := model.NewModuleDependency("com.example", "lib", "1.0")
	dep.AddArtifact(types.Artifact{Name: "lib", Type: "jar", Extension: "jar"})

	assert.Equal(t, "com.example:lib:1.0", dep.String())

	copied := dep.WithCoordinates("com.example", "lib-deobf", "1.0")
	assert.Equal(t, "com.example:lib-deobf:1.0", copied.String())
	assert.Equal(t, dep.Artifacts(), copied.Artifacts(), "coordinates copy keeps artifacts")

	copied.AddArtifact(types.Artifact{Name: "extra"})
	assert.Len(t, dep.Artifacts(), 1, "copies must not share artifact storage")
}

func TestFileDependencyIsNotExternal(t *testing.T) {
	var dep types.Dependency = &model.FileDependency{Path: "libs/local.jar"}

	_, external := dep.(types.ExternalDependency)
	assert.False(t, external)
	assert.Equal(t, "libs/local.jar", dep.String())
}

func TestConcurrentContainerAccess(t *testing.T) {
	cc := model.NewConfigurationContainer()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg := cc.MaybeCreate(fmt.Sprintf("config%d", i%5))
			cfg.Add(model.NewModuleDependency("com.example", fmt.Sprintf("lib%d", i), "1.0"))
		}(i)
	}
	wg.Wait()

	assert.Len(t, cc.Names(), 5)
	total := 0
	for _, name := range cc.Names() {
		cfg, err := cc.Get(name)
		require.NoError(t, err)
		total += len(cfg.Dependencies())
	}
	assert.Equal(t, 50, total)
}
