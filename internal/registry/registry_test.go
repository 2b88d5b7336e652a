package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarfleet/internal/domain"
)

func TestPlantsFixtureDataset(t *testing.T) {
	reg := New()
	plants := reg.Plants()
	require.Len(t, plants, 3)

	assert.Equal(t, "1", plants[0].ID)
	assert.Equal(t, "Usina Solar Norte", plants[0].Name)
	assert.Equal(t, domain.PlantActive, plants[0].Status)
	assert.Equal(t, 1500.0, plants[0].CapacityKW)
	assert.Len(t, plants[0].Inverters, 2)
	assert.Len(t, plants[0].Inverters[0].Strings, 2)

	assert.Equal(t, "2", plants[1].ID)
	assert.Equal(t, domain.PlantAlarm, plants[1].Status)
	require.Len(t, plants[1].Inverters, 1)
	assert.Equal(t, domain.InverterOffline, plants[1].Inverters[0].Status)
	assert.Zero(t, plants[1].Inverters[0].TemperatureC)
	assert.Empty(t, plants[1].Inverters[0].Strings)

	assert.Equal(t, "3", plants[2].ID)
	assert.Equal(t, domain.PlantInactive, plants[2].Status)
	assert.Empty(t, plants[2].Inverters)
}

func TestPlantIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range New().Plants() {
		assert.False(t, seen[p.ID], "duplicate plant id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestStringPowerCarriedAsSupplied(t *testing.T) {
	plants := New().Plants()
	str := plants[0].Inverters[0].Strings[1] // STR002: 645V * 12.3A = 7933.5, fixture says 7933
	assert.Equal(t, 7933.0, str.PowerW)
	assert.NotEqual(t, str.VoltageV*str.CurrentA, str.PowerW,
		"fixture power values must not be recomputed from V*I")
}

func TestPerformanceRatiosInRange(t *testing.T) {
	for _, p := range New().Plants() {
		for _, v := range []float64{p.DailyPerformance, p.WeeklyPerformance, p.MonthlyPerformance} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestPlantsIdempotentReads(t *testing.T) {
	reg := New()
	first := reg.Plants()
	second := reg.Plants()
	assert.Equal(t, first, second)
}

func TestPlantsSnapshotIsolation(t *testing.T) {
	reg := New()
	snap := reg.Plants()
	snap[0].Name = "mutated"
	snap[0].Inverters[0].Status = domain.InverterOffline

	fresh := reg.Plants()
	assert.Equal(t, "Usina Solar Norte", fresh[0].Name)
	assert.Equal(t, domain.InverterOnline, fresh[0].Inverters[0].Status)
}

func TestPlantLookup(t *testing.T) {
	reg := New()

	p, err := reg.Plant("2")
	require.NoError(t, err)
	assert.Equal(t, "Usina Solar Sul", p.Name)

	_, err = reg.Plant("99")
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestAlertsFixtures(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	reg := New(WithClock(func() time.Time { return now }))

	alerts := reg.Alerts()
	require.Len(t, alerts, 2)

	assert.Equal(t, "1", alerts[0].ID)
	assert.Equal(t, "2", alerts[0].PlantID)
	assert.Equal(t, "Usina Solar Sul", alerts[0].PlantName)
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, now.Add(-30*time.Minute), alerts[0].Timestamp)
	assert.False(t, alerts[0].Resolved)

	assert.Equal(t, "2", alerts[1].ID)
	assert.Equal(t, domain.SeverityWarning, alerts[1].Severity)
	assert.Equal(t, now.Add(-2*time.Hour), alerts[1].Timestamp)
}

func TestNewReplacesDataset(t *testing.T) {
	a := New()
	b := New()
	assert.Len(t, a.Plants(), 3)
	assert.Len(t, b.Plants(), 3, "constructing again must replace, not accumulate")
}
