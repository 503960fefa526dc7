// Package file provides a TOML file-backed configuration store with
// environment variable overrides.
package file
