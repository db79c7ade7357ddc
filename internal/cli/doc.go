// Package cli defines the Cobra command tree for the velen CLI. Each file
// registers one top-level command (make, apply, config, version). Commands
// only parse flags, assemble entity records and print results; rendering and
// writing live in the scaffold package.
package cli
