// Package types defines the Directory interface, entity types, and
// standard errors for the agenda persistence layer.
// See docs/ARCHITECTURE.md § Main Interface.
package types
