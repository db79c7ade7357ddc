// Package entity defines the two record shapes the generator can produce,
// commands and categories, along with the command model enum and the
// per-kind file extension and default output directory.
package entity
