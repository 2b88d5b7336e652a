package domain

import "time"

// Plant is one monitored solar installation. Plants are created once at
// registry initialization and never mutated afterwards.
type Plant struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Location             string      `json:"location"`
	CapacityKW           float64     `json:"capacity_kw"`
	CurrentPowerKW       float64     `json:"current_power_kw"`
	Status               PlantStatus `json:"status"`
	DailyPerformance     float64     `json:"daily_performance"`
	WeeklyPerformance    float64     `json:"weekly_performance"`
	MonthlyPerformance   float64     `json:"monthly_performance"`
	MonthlyGenerationKWh float64     `json:"monthly_generation_kwh"`
	Owner                Owner       `json:"owner"`
	Inverters            []Inverter  `json:"inverters"`
}

// Inverter is a plant sub-device with no lifecycle of its own.
type Inverter struct {
	ID           string         `json:"id"`
	Status       InverterStatus `json:"status"`
	TemperatureC float64        `json:"temperature_c"`
	Strings      []StringRecord `json:"strings"`
}

// StringRecord holds the readings of one panel string. Fixture power
// values do not always equal voltage*current; they are carried as
// supplied, not recomputed.
type StringRecord struct {
	ID       string  `json:"id"`
	VoltageV float64 `json:"voltage_v"`
	CurrentA float64 `json:"current_a"`
	PowerW   float64 `json:"power_w"`
}

// Owner is the contact record of a plant. Owners are not shared
// between plants even when identical.
type Owner struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Alert references a plant by id and carries a denormalized copy of the
// plant name taken at creation time; the copy is never resynced.
type Alert struct {
	ID        string        `json:"id"`
	PlantID   string        `json:"plant_id"`
	PlantName string        `json:"plant_name"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Resolved  bool          `json:"resolved"`
}
