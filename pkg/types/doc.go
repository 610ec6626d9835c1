// Package types defines the build-model abstractions deobf operates on.
//
// The host build tool owns the real project, configuration, and dependency
// model; this package only declares the narrow surface deobf consumes:
// get-or-create configuration lookup, dependency enumeration, and source-set
// naming conventions. pkg/model provides an in-memory implementation for the
// CLI and for tests.
package types
