// Package metrics derives fleet-level values from registry snapshots.
// Every function is pure; nothing here touches the registry.
package metrics

import "solarfleet/internal/domain"

// StatusFilter selects plants by status; FilterAll passes everything.
type StatusFilter string

const FilterAll StatusFilter = "all"

// TotalCapacity sums rated capacity over all plants, in kW.
func TotalCapacity(plants []domain.Plant) float64 {
	var sum float64
	for _, p := range plants {
		sum += p.CapacityKW
	}
	return sum
}

// TotalCurrentPower sums instantaneous power over all plants, in kW.
func TotalCurrentPower(plants []domain.Plant) float64 {
	var sum float64
	for _, p := range plants {
		sum += p.CurrentPowerKW
	}
	return sum
}

// CapacityUtilization is current power as a percentage of capacity.
// A fleet with zero total capacity yields 0, never NaN or Inf.
func CapacityUtilization(plants []domain.Plant) float64 {
	capacity := TotalCapacity(plants)
	if capacity == 0 {
		return 0
	}
	return TotalCurrentPower(plants) / capacity * 100
}

// CountByStatus counts plants whose status equals the given value.
func CountByStatus(plants []domain.Plant, status domain.PlantStatus) int {
	n := 0
	for _, p := range plants {
		if p.Status == status {
			n++
		}
	}
	return n
}

// FilterByStatus keeps plants matching the filter, preserving input
// order. FilterAll returns the input unchanged.
func FilterByStatus(plants []domain.Plant, filter StatusFilter) []domain.Plant {
	if filter == FilterAll {
		return plants
	}
	out := make([]domain.Plant, 0, len(plants))
	for _, p := range plants {
		if p.Status == domain.PlantStatus(filter) {
			out = append(out, p)
		}
	}
	return out
}

// ActiveAlerts keeps alerts that are not resolved, preserving order.
func ActiveAlerts(alerts []domain.Alert) []domain.Alert {
	out := make([]domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if !a.Resolved {
			out = append(out, a)
		}
	}
	return out
}

// Summary carries the dashboard header card values.
type Summary struct {
	TotalCapacityKW     float64 `json:"total_capacity_kw"`
	TotalCurrentPowerKW float64 `json:"total_current_power_kw"`
	UtilizationPercent  float64 `json:"utilization_percent"`
	PlantCount          int     `json:"plant_count"`
	PlantsInAlarm       int     `json:"plants_in_alarm"`
	ActiveAlertCount    int     `json:"active_alert_count"`
}

// FleetSummary computes the summary over one snapshot.
func FleetSummary(plants []domain.Plant, alerts []domain.Alert) Summary {
	return Summary{
		TotalCapacityKW:     TotalCapacity(plants),
		TotalCurrentPowerKW: TotalCurrentPower(plants),
		UtilizationPercent:  CapacityUtilization(plants),
		PlantCount:          len(plants),
		PlantsInAlarm:       CountByStatus(plants, domain.PlantAlarm),
		ActiveAlertCount:    len(ActiveAlerts(alerts)),
	}
}
