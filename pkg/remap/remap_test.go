package remap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/registry"
	"github.com/forgeutil/deobf/pkg/remap"
	"github.com/forgeutil/deobf/pkg/testutil"
)

func TestIdentityRemapper(t *testing.T) {
	dep := testutil.External(t, "com.example:lib:1.0", "lib")

	remapped, err := remap.NewIdentityRemapper().Remap(dep)

	require.NoError(t, err)
	assert.Equal(t, "com.example:lib:1.0", remapped.String())
	assert.NotSame(t, dep, remapped, "identity must still return a copy")
}

func TestChannelRemapper(t *testing.T) {
	dep := testutil.External(t, "net.minecraft:client:1.16.5")

	remapped, err := remap.NewChannelRemapper("snapshot", "20210309").Remap(dep)

	require.NoError(t, err)
	assert.Equal(t, "net.minecraft:client:1.16.5_mapped_snapshot_20210309", remapped.String())
}

func TestRulesRemapper(t *testing.T) {
	remapper := remap.NewRulesRemapper([]remap.Rule{
		{Group: "com.example", Name: "obf-lib", ToName: "lib"},
		{Group: "com.example", Name: "old", ToGroup: "org.example", ToVersion: "2.0"},
	})

	t.Run("matching rule rewrites selected fields", func(t *testing.T) {
		remapped, err := remapper.Remap(testutil.External(t, "com.example:obf-lib:1.0"))
		require.NoError(t, err)
		assert.Equal(t, "com.example:lib:1.0", remapped.String())
	})

	t.Run("rule can replace group and version", func(t *testing.T) {
		remapped, err := remapper.Remap(testutil.External(t, "com.example:old:1.0"))
		require.NoError(t, err)
		assert.Equal(t, "org.example:old:2.0", remapped.String())
	})

	t.Run("unmatched dependency passes through", func(t *testing.T) {
		remapped, err := remapper.Remap(testutil.External(t, "com.other:thing:3.0"))
		require.NoError(t, err)
		assert.Equal(t, "com.other:thing:3.0", remapped.String())
	})
}

func TestChannelFactory(t *testing.T) {
	t.Run("valid options", func(t *testing.T) {
		remapper, err := registry.GetRemapper(remap.ChannelRemapperName, map[string]interface{}{
			"channel": "snapshot",
			"version": "20210309",
		})
		require.NoError(t, err)

		remapped, err := remapper.Remap(testutil.External(t, "com.example:lib:1.0"))
		require.NoError(t, err)
		assert.Equal(t, "com.example:lib:1.0_mapped_snapshot_20210309", remapped.String())
	})

	t.Run("missing channel", func(t *testing.T) {
		_, err := registry.GetRemapper(remap.ChannelRemapperName, map[string]interface{}{
			"version": "20210309",
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrRemapperInvalid))
	})
}

func TestRulesFactory(t *testing.T) {
	t.Run("loose option shape from config decoding", func(t *testing.T) {
		remapper, err := registry.GetRemapper(remap.RulesRemapperName, map[string]interface{}{
			"rules": []interface{}{
				map[string]interface{}{"group": "com.example", "name": "obf-lib", "to_name": "lib"},
			},
		})
		require.NoError(t, err)

		remapped, err := remapper.Remap(testutil.External(t, "com.example:obf-lib:1.0"))
		require.NoError(t, err)
		assert.Equal(t, "com.example:lib:1.0", remapped.String())
	})

	t.Run("no rules means passthrough", func(t *testing.T) {
		remapper, err := registry.GetRemapper(remap.RulesRemapperName, map[string]interface{}{})
		require.NoError(t, err)

		remapped, err := remapper.Remap(testutil.External(t, "com.example:lib:1.0"))
		require.NoError(t, err)
		assert.Equal(t, "com.example:lib:1.0", remapped.String())
	})

	t.Run("malformed rules option", func(t *testing.T) {
		_, err := registry.GetRemapper(remap.RulesRemapperName, map[string]interface{}{
			"rules": "not-a-list",
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrRemapperInvalid))
	})
}

func TestFactoriesRegistered(t *testing.T) {
	names := registry.RemapperNames()
	assert.Contains(t, names, remap.IdentityRemapperName)
	assert.Contains(t, names, remap.ChannelRemapperName)
	assert.Contains(t, names, remap.RulesRemapperName)
}

func TestUnknownRemapper(t *testing.T) {
	_, err := registry.GetRemapper("nope", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRemapperNotFound))
}
