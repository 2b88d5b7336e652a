// Package registry holds the fixture dataset for the session and
// exposes ordered snapshot reads over it. After construction the data
// is effectively immutable; there is no write path back into it.
package registry

import (
	"errors"
	"sync"
	"time"

	"solarfleet/internal/domain"
)

// ErrPlantNotFound reports a lookup for an id absent from the registry.
// Consumers treat it as a reroute-to-default outcome, not a failure.
var ErrPlantNotFound = errors.New("plant not found")

// Registry owns every Plant and Alert record for the session.
type Registry struct {
	mu     sync.RWMutex
	plants []domain.Plant
	alerts []domain.Alert
}

// Option configures registry construction.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock pins the clock used for fixture alert timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New builds a registry seeded with the fixture dataset. Calling New
// again yields a fresh dataset; it replaces, never accumulates.
func New(opts ...Option) *Registry {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		plants: fixturePlants(),
		alerts: fixtureAlerts(o.now()),
	}
}

// Plants returns all plants in insertion order. No filtering is
// applied here; filtering is an aggregation concern.
func (r *Registry) Plants() []domain.Plant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonePlants(r.plants)
}

// Alerts returns all alerts in insertion order.
func (r *Registry) Alerts() []domain.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Alert, len(r.alerts))
	copy(out, r.alerts)
	return out
}

// Plant returns the plant with the given id or ErrPlantNotFound.
func (r *Registry) Plant(id string) (domain.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plants {
		if p.ID == id {
			return clonePlant(p), nil
		}
	}
	return domain.Plant{}, ErrPlantNotFound
}

func clonePlants(in []domain.Plant) []domain.Plant {
	out := make([]domain.Plant, len(in))
	for i, p := range in {
		out[i] = clonePlant(p)
	}
	return out
}

func clonePlant(p domain.Plant) domain.Plant {
	inverters := make([]domain.Inverter, len(p.Inverters))
	for i, inv := range p.Inverters {
		strings := make([]domain.StringRecord, len(inv.Strings))
		copy(strings, inv.Strings)
		inv.Strings = strings
		inverters[i] = inv
	}
	p.Inverters = inverters
	return p
}
