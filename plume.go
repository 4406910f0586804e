// Package plume analyzes the structure and architecture of source trees
// and scaffolds documentation from what it finds.
package plume

// Version is the current Plume release.
const Version = "0.2.0"
