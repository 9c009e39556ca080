// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// The backend is an afero filesystem so that configuration and log files can be
// redirected to memory in tests.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Use replaces the filesystem backend with fs.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a volatile in-memory filesystem backend.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
