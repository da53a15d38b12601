// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that depend on an
// external provider and can report whether it is usable.
type HealthReporter interface {
	Healthy() bool
}
