// SPDX-License-Identifier: MPL-2.0

// Package finder aggregates installation finders. Each finder reports the
// installations it manages plus per-path errors; the Registry runs them in
// registration order and merges the results.
package finder

import (
	"context"
	"path/filepath"
	"sync"

	"smm-cli/pkg/installation"
)

type (
	// Func finds installations. Errors for individual paths are returned
	// alongside the installations that were found.
	Func func(ctx context.Context) ([]*installation.Installation, []error)

	// Registry holds named finders.
	Registry struct {
		mu      sync.Mutex
		names   []string
		finders map[string]Func
	}
)

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{finders: make(map[string]Func)}
}

// Add registers fn under name. Re-adding a name replaces its finder and
// keeps its original position.
func (r *Registry) Add(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.finders[name]; !exists {
		r.names = append(r.names, name)
	}
	r.finders[name] = fn
}

// Names returns the registered finder names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.names...)
}

// FindAll runs every finder in registration order. Installations sharing a
// cleaned path are reported once, by the first finder that found them.
// FindAll stops before the next finder once ctx is done and appends
// ctx.Err() to the returned errors.
func (r *Registry) FindAll(ctx context.Context) ([]*installation.Installation, []error) {
	r.mu.Lock()
	names := append([]string(nil), r.names...)
	finders := make([]Func, len(names))
	for i, name := range names {
		finders[i] = r.finders[name]
	}
	r.mu.Unlock()

	var (
		installs []*installation.Installation
		errs     []error
		seen     = make(map[string]bool)
	)
	for _, fn := range finders {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		found, findErrs := fn(ctx)
		errs = append(errs, findErrs...)
		for _, inst := range found {
			if inst == nil {
				continue
			}
			key := filepath.Clean(inst.Path)
			if seen[key] {
				continue
			}
			seen[key] = true
			installs = append(installs, inst)
		}
	}
	return installs, errs
}

// Static returns a finder that reports installs unchanged.
func Static(installs []*installation.Installation) Func {
	return func(context.Context) ([]*installation.Installation, []error) {
		return installs, nil
	}
}
