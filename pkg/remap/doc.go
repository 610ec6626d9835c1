// Package remap bundles the remapper implementations that ship with deobf.
// Each remapper registers a factory under its name so integrations can pick
// one by configuration.
package remap
