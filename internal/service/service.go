package service

import (
	"math/rand"
	"time"

	"solarfleet/internal/alerts"
	"solarfleet/internal/chart"
	"solarfleet/internal/chat"
	"solarfleet/internal/domain"
	"solarfleet/internal/integrations"
	"solarfleet/internal/metrics"
	"solarfleet/internal/prefs"
	"solarfleet/internal/registry"
	"solarfleet/internal/report"
)

// Services bundles the session state behind the API handlers.
type Services struct {
	Registry     *registry.Registry
	Alerts       *alerts.SessionStore
	Chat         *chat.Store
	Integrations *integrations.Catalog
	Prefs        *prefs.Store

	now     func() time.Time
	newRand func() *rand.Rand
}

// Config carries the construction knobs for Services.
type Config struct {
	PrefsStore   *prefs.Store
	ReplyDelay   time.Duration
	ConnectDelay time.Duration

	// Now and NewRand default to the wall clock and a time-seeded
	// source; tests pin them.
	Now     func() time.Time
	NewRand func() *rand.Rand
}

// New wires a fresh session: registry seeded with the fixture dataset,
// alert store seeded from the registry, chat and integration state at
// their initial values.
func New(cfg Config) *Services {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	newRand := cfg.NewRand
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	replyDelay := cfg.ReplyDelay
	if replyDelay == 0 {
		replyDelay = time.Second
	}
	connectDelay := cfg.ConnectDelay
	if connectDelay == 0 {
		connectDelay = 2 * time.Second
	}

	reg := registry.New(registry.WithClock(now))
	return &Services{
		Registry:     reg,
		Alerts:       alerts.NewSessionStore(reg.Alerts()),
		Chat:         chat.NewStore(chat.WithClock(now), chat.WithReplyDelay(replyDelay)),
		Integrations: integrations.NewCatalog(connectDelay),
		Prefs:        cfg.PrefsStore,
		now:          now,
		newRand:      newRand,
	}
}

// Plants returns the registry snapshot, optionally filtered by status.
func (s *Services) Plants(filter metrics.StatusFilter) []domain.Plant {
	return metrics.FilterByStatus(s.Registry.Plants(), filter)
}

// Summary computes the fleet summary over the current snapshot and the
// session's active alerts.
func (s *Services) Summary() metrics.Summary {
	return metrics.FleetSummary(s.Registry.Plants(), s.Alerts.Active())
}

// ChartSeries generates the detail chart for one plant. The reference
// date anchors the series; a zero date means now.
func (s *Services) ChartSeries(plantID string, period chart.Period, ref time.Time) ([]chart.Point, error) {
	p, err := s.Registry.Plant(plantID)
	if err != nil {
		return nil, err
	}
	if ref.IsZero() {
		ref = s.now()
	}
	return chart.Generate(period, ref, p.CapacityKW, s.newRand()), nil
}

// Report assembles the performance report payload for one plant.
func (s *Services) Report(plantID string) (report.Report, error) {
	p, err := s.Registry.Plant(plantID)
	if err != nil {
		return report.Report{}, err
	}
	return report.PerformanceReport(p), nil
}
