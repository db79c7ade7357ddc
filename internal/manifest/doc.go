// Package manifest reads a project's batch file (velen.yaml) describing many
// commands and categories at once. Files are checked against an embedded JSON
// Schema, gated on the CLI version through an optional semver constraint,
// and converted into entity records ready for the scaffold emitter.
package manifest
