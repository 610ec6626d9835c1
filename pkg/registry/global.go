package registry

import (
	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/types"
)

// Global registry for remapper factories
var remapperFactoryRegistry Registry[types.RemapperFactory]

func init() {
	remapperFactoryRegistry = New[types.RemapperFactory]()
}

// RegisterRemapperFactory registers a factory function for creating remappers.
func RegisterRemapperFactory(name string, factory types.RemapperFactory) error {
	return remapperFactoryRegistry.Register(name, factory)
}

// GetRemapperFactory retrieves a remapper factory by name.
func GetRemapperFactory(name string) (types.RemapperFactory, error) {
	factory, err := remapperFactoryRegistry.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrRemapperNotFound, "remapper factory not found: %s", name)
	}
	return factory, nil
}

// GetRemapper creates a remapper instance by name with the given options.
func GetRemapper(name string, options map[string]interface{}) (types.Remapper, error) {
	factory, err := GetRemapperFactory(name)
	if err != nil {
		return nil, err
	}

	remapper, err := factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRemapperInvalid, "failed to create remapper %s", name)
	}
	return remapper, nil
}

// RemapperNames returns the names of all registered remapper factories.
func RemapperNames() []string {
	return remapperFactoryRegistry.List()
}
