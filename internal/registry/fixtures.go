package registry

import (
	"time"

	"solarfleet/internal/domain"
)

// The monitored fleet. String power values are the supplied meter
// figures and intentionally do not always equal voltage*current.
func fixturePlants() []domain.Plant {
	return []domain.Plant{
		{
			ID:                   "1",
			Name:                 "Usina Solar Norte",
			Location:             "Ceará, Brasil",
			CapacityKW:           1500,
			CurrentPowerKW:       1350,
			Status:               domain.PlantActive,
			DailyPerformance:     92,
			WeeklyPerformance:    88,
			MonthlyPerformance:   85,
			MonthlyGenerationKWh: 180000,
			Owner: domain.Owner{
				Name:    "João Silva",
				Phone:   "+55 85 99999-9999",
				Email:   "joao@email.com",
				Address: "Rua das Flores, 123, Fortaleza - CE",
			},
			Inverters: []domain.Inverter{
				{
					ID:           "INV001",
					Status:       domain.InverterOnline,
					TemperatureC: 45.2,
					Strings: []domain.StringRecord{
						{ID: "STR001", VoltageV: 650, CurrentA: 12.5, PowerW: 8125},
						{ID: "STR002", VoltageV: 645, CurrentA: 12.3, PowerW: 7933},
					},
				},
				{
					ID:           "INV002",
					Status:       domain.InverterWarning,
					TemperatureC: 52.1,
					Strings: []domain.StringRecord{
						{ID: "STR003", VoltageV: 630, CurrentA: 11.8, PowerW: 7434},
						{ID: "STR004", VoltageV: 642, CurrentA: 12.1, PowerW: 7768},
					},
				},
			},
		},
		{
			ID:                   "2",
			Name:                 "Usina Solar Sul",
			Location:             "Rio Grande do Sul, Brasil",
			CapacityKW:           1200,
			CurrentPowerKW:       480,
			Status:               domain.PlantAlarm,
			DailyPerformance:     45,
			WeeklyPerformance:    52,
			MonthlyPerformance:   48,
			MonthlyGenerationKWh: 120000,
			Owner: domain.Owner{
				Name:    "Maria Santos",
				Phone:   "+55 51 88888-8888",
				Email:   "maria@email.com",
				Address: "Av. Ipiranga, 456, Porto Alegre - RS",
			},
			Inverters: []domain.Inverter{
				{ID: "INV003", Status: domain.InverterOffline, TemperatureC: 0, Strings: []domain.StringRecord{}},
			},
		},
		{
			ID:                   "3",
			Name:                 "Usina Solar Leste",
			Location:             "Minas Gerais, Brasil",
			CapacityKW:           2000,
			CurrentPowerKW:       0,
			Status:               domain.PlantInactive,
			DailyPerformance:     0,
			WeeklyPerformance:    0,
			MonthlyPerformance:   0,
			MonthlyGenerationKWh: 250000,
			Owner: domain.Owner{
				Name:    "Carlos Oliveira",
				Phone:   "+55 31 77777-7777",
				Email:   "carlos@email.com",
				Address: "Rua das Minas, 789, Belo Horizonte - MG",
			},
			Inverters: []domain.Inverter{},
		},
	}
}

func fixtureAlerts(now time.Time) []domain.Alert {
	return []domain.Alert{
		{
			ID:        "1",
			PlantID:   "2",
			PlantName: "Usina Solar Sul",
			Severity:  domain.SeverityCritical,
			Message:   "Inversor INV003 desconectado",
			Timestamp: now.Add(-30 * time.Minute),
			Resolved:  false,
		},
		{
			ID:        "2",
			PlantID:   "1",
			PlantName: "Usina Solar Norte",
			Severity:  domain.SeverityWarning,
			Message:   "Temperatura elevada no inversor INV002",
			Timestamp: now.Add(-2 * time.Hour),
			Resolved:  false,
		},
	}
}
