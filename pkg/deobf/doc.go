// Package deobf tracks deobfuscation companion configurations and turns
// their contents into remapped dependencies on the real scopes.
//
// For every tracked target configuration named X a companion configuration
// XDeobf exists; dependencies placed there are obfuscated references. After
// all registrations for a project are done, Plan collects the pending remap
// actions and Apply adds the remapped dependency to the target scope while
// keeping the original in a bookkeeping configuration.
package deobf
