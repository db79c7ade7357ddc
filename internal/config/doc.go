// Package config manages project-level settings stored in .velen.yaml in the
// working directory: the default output directories for commands and
// categories and the path of the batch manifest. Environment variables are
// deliberately not consulted.
package config
