package types

// Remapper translates an obfuscated dependency reference into its
// deobfuscated equivalent. Implementations must be safe for concurrent use;
// the manager may remap dependencies from several projects at once.
type Remapper interface {
	// Remap returns the deobfuscated form of the given dependency. The input
	// is never mutated.
	Remap(dep ExternalDependency) (ExternalDependency, error)
}

// RemapperFactory creates a new remapper instance with the given options
type RemapperFactory func(options map[string]interface{}) (Remapper, error)

// RemapperFunc adapts a plain function to the Remapper interface.
type RemapperFunc func(dep ExternalDependency) (ExternalDependency, error)

// Remap implements Remapper
func (f RemapperFunc) Remap(dep ExternalDependency) (ExternalDependency, error) {
	return f(dep)
}
