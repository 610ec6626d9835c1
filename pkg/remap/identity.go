package remap

import (
	"fmt"

	"github.com/forgeutil/deobf/pkg/registry"
	"github.com/forgeutil/deobf/pkg/types"
)

const IdentityRemapperName = "identity"

// IdentityRemapper returns every dependency unchanged. Useful for dry runs
// and for wiring a pipeline before real mappings exist.
type IdentityRemapper struct{}

// NewIdentityRemapper creates an identity remapper.
func NewIdentityRemapper() *IdentityRemapper {
	return &IdentityRemapper{}
}

// Remap returns a copy of the dependency with unchanged coordinates
func (r *IdentityRemapper) Remap(dep types.ExternalDependency) (types.ExternalDependency, error) {
	return dep.WithCoordinates(dep.Group(), dep.Name(), dep.Version()), nil
}

func init() {
	err := registry.RegisterRemapperFactory(IdentityRemapperName, func(config map[string]interface{}) (types.Remapper, error) {
		return NewIdentityRemapper(), nil
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register IdentityRemapper factory: %v", err))
	}
}
