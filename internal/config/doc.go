// Package config defines the settings shared by the scare binaries and
// provides helpers to load and validate them from YAML.
//
// A missing settings file falls back to built-in defaults; a malformed
// one is a fatal startup error.
package config
