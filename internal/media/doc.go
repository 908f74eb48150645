// Package media resolves theme assets on disk and builds the argument
// lists for the external player, recorder and viewer processes from
// configuration. It owns the recording filename convention.
package media
