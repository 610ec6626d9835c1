package remap

import (
	"fmt"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/logging"
	"github.com/forgeutil/deobf/pkg/registry"
	"github.com/forgeutil/deobf/pkg/types"
)

const ChannelRemapperName = "channel"

// ChannelRemapper rewrites a dependency's version to its mapped variant by
// appending a `_mapped_<channel>_<version>` suffix, the scheme used for
// obfuscated toolchain artifacts republished under a mappings channel.
type ChannelRemapper struct {
	channel string
	version string
}

// NewChannelRemapper creates a remapper for the given mappings channel and
// mappings version.
func NewChannelRemapper(channel, version string) *ChannelRemapper {
	return &ChannelRemapper{channel: channel, version: version}
}

// Remap returns the dependency with the mapped version suffix
func (r *ChannelRemapper) Remap(dep types.ExternalDependency) (types.ExternalDependency, error) {
	logger := logging.GetLogger("remap.channel")

	mapped := fmt.Sprintf("%s_mapped_%s_%s", dep.Version(), r.channel, r.version)
	logger.Trace().
		Str("dependency", dep.String()).
		Str("mappedVersion", mapped).
		Msg("Applying channel mapping")

	return dep.WithCoordinates(dep.Group(), dep.Name(), mapped), nil
}

func init() {
	err := registry.RegisterRemapperFactory(ChannelRemapperName, func(config map[string]interface{}) (types.Remapper, error) {
		channel, ok := config["channel"].(string)
		if !ok || channel == "" {
			return nil, errors.New(errors.ErrRemapperInvalid, "channel remapper requires a 'channel' option")
		}
		version, ok := config["version"].(string)
		if !ok || version == "" {
			return nil, errors.New(errors.ErrRemapperInvalid, "channel remapper requires a 'version' option")
		}
		return NewChannelRemapper(channel, version), nil
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register ChannelRemapper factory: %v", err))
	}
}
