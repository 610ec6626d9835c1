package deobf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeutil/deobf/pkg/deobf"
	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/model"
	"github.com/forgeutil/deobf/pkg/testutil"
	"github.com/forgeutil/deobf/pkg/types"
)

func TestPlanAndApply(t *testing.T) {
	manager := deobf.NewManager()
	project := testutil.NewProject(t, "demo", "main")
	require.NoError(t, manager.RegisterForProject(project, testutil.PrefixRemapper("deobf-")))

	companion, err := project.Configurations().Get("implementationDeobf")
	require.NoError(t, err)
	companion.Add(testutil.External(t, "com.example:obf-lib:1.0"))
	companion.Add(&model.FileDependency{Path: "libs/local.jar"})

	plan, err := manager.Plan(project)
	require.NoError(t, err)

	actions := plan.Actions()
	require.Len(t, actions, 1, "file dependencies must be ignored by the remap pass")
	assert.Equal(t, "com.example:obf-lib:1.0", actions[0].Original.String())
	assert.Equal(t, "com.example:deobf-obf-lib:1.0", actions[0].Remapped.String())
	assert.Equal(t, "implementationDeobf", actions[0].Source.Name())
	assert.Equal(t, "implementation", actions[0].Target.Name())

	manager.Apply(plan)

	target, err := project.Configurations().Get("implementation")
	require.NoError(t, err)
	require.Len(t, target.Dependencies(), 1)
	assert.Equal(t, "com.example:deobf-obf-lib:1.0", target.Dependencies()[0].String())

	obf, err := project.Configurations().Get(deobf.DefaultObfConfigurationName)
	require.NoError(t, err)
	require.Len(t, obf.Dependencies(), 1)
	assert.Equal(t, "com.example:obf-lib:1.0", obf.Dependencies()[0].String(),
		"the original must land unmodified in the bookkeeping configuration")
}

func TestPlanDoesNotMutate(t *testing.T) {
	manager := deobf.NewManager()
	project := testutil.NewProject(t, "demo", "main")
	require.NoError(t, manager.RegisterForProject(project, testutil.PrefixRemapper("deobf-")))

	companion, err := project.Configurations().Get("apiDeobf")
	require.NoError(t, err)
	companion.Add(testutil.External(t, "com.example:obf-lib:1.0"))

	_, err = manager.Plan(project)
	require.NoError(t, err)

	target, err := project.Configurations().Get("api")
	require.NoError(t, err)
	assert.Empty(t, target.Dependencies(), "plan alone must not touch the target")
	_, err = project.Configurations().Get(deobf.DefaultObfConfigurationName)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound),
		"the bookkeeping configuration is created by apply, not plan")
}

func TestPlanSeesLateAdditions(t *testing.T) {
	manager := deobf.NewManager()
	project := testutil.NewProject(t, "demo", "main")
	require.NoError(t, manager.RegisterForProject(project, testutil.PrefixRemapper("deobf-")))

	// Registration happens first; dependencies show up while the build
	// script evaluates. Plan must read the current contents.
	companion, err := project.Configurations().Get("runtimeDeobf")
	require.NoError(t, err)
	companion.Add(testutil.External(t, "com.example:late:2.0"))

	plan, err := manager.Plan(project)
	require.NoError(t, err)
	require.Len(t, plan.Actions(), 1)
	assert.Equal(t, "com.example:deobf-late:2.0", plan.Actions()[0].Remapped.String())
}

func TestPlanRemapError(t *testing.T) {
	manager := deobf.NewManager()
	project := testutil.NewProject(t, "demo", "main")
	failing := types.RemapperFunc(func(dep types.ExternalDependency) (types.ExternalDependency, error) {
		return nil, errors.Newf(errors.ErrRemapFailed, "no mapping for %s", dep.String())
	})
	require.NoError(t, manager.RegisterForProject(project, failing))

	companion, err := project.Configurations().Get("apiDeobf")
	require.NoError(t, err)
	companion.Add(testutil.External(t, "com.example:unmapped:1.0"))

	_, err = manager.Plan(project)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRemapFailed))
	assert.Contains(t, err.Error(), "com.example:unmapped:1.0")
}

func TestApplyBothRemappersFire(t *testing.T) {
	// Two records on the same target both fire, producing two remapped
	// additions.
	manager := deobf.NewManager()
	project := testutil.NewProject(t, "demo", "main")
	target := project.Configurations().MaybeCreate("api")

	manager.Register(project, target, testutil.PrefixRemapper("a-"))
	manager.Register(project, target, testutil.PrefixRemapper("b-"))

	companion, err := project.Configurations().Get("apiDeobf")
	require.NoError(t, err)
	companion.Add(testutil.External(t, "com.example:obf-lib:1.0"))

	plan, err := manager.Plan(project)
	require.NoError(t, err)
	manager.Apply(plan)

	deps := target.Dependencies()
	require.Len(t, deps, 2)
	names := []string{deps[0].Name(), deps[1].Name()}
	assert.ElementsMatch(t, []string{"a-obf-lib", "b-obf-lib"}, names)
}

func TestApplyWithClearAfterApply(t *testing.T) {
	manager := deobf.NewManager(deobf.WithClearAfterApply())
	project := testutil.NewProject(t, "demo", "main")
	require.NoError(t, manager.RegisterForProject(project, testutil.PrefixRemapper("deobf-")))

	companion, err := project.Configurations().Get("apiDeobf")
	require.NoError(t, err)
	companion.Add(testutil.External(t, "com.example:obf-lib:1.0"))

	plan, err := manager.Plan(project)
	require.NoError(t, err)
	manager.Apply(plan)

	assert.Equal(t, 0, manager.TrackedCount(project), "apply should drop the tracked set")
}

func TestApplyCustomObfConfigurationName(t *testing.T) {
	manager := deobf.NewManager(deobf.WithObfConfigurationName("obfOriginals"))
	project := testutil.NewProject(t, "demo", "main")
	require.NoError(t, manager.RegisterForProject(project, testutil.PrefixRemapper("deobf-")))

	companion, err := project.Configurations().Get("apiDeobf")
	require.NoError(t, err)
	companion.Add(testutil.External(t, "com.example:obf-lib:1.0"))

	plan, err := manager.Plan(project)
	require.NoError(t, err)
	manager.Apply(plan)

	obf, err := project.Configurations().Get("obfOriginals")
	require.NoError(t, err)
	assert.Len(t, obf.Dependencies(), 1)
}
