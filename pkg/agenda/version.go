// Package agenda holds module-level metadata.
package agenda

// Version is the agenda module version, set at release time.
const Version = "0.2.0"
