// Package report prepares the outbound performance report artifacts.
// The only real externally observable outputs are the two deep links;
// PDF generation and bulk export remain confirmation-only actions that
// produce no file.
package report

import (
	"fmt"

	"solarfleet/internal/domain"
)

// Report is the payload for one plant's report actions.
type Report struct {
	PlantID            string  `json:"plant_id"`
	PlantName          string  `json:"plant_name"`
	OwnerName          string  `json:"owner_name"`
	MonthlyPerformance float64 `json:"monthly_performance"`
	MonthlyGeneration  float64 `json:"monthly_generation_kwh"`
	WhatsAppURL        string  `json:"whatsapp_url"`
	MailtoURL          string  `json:"mailto_url"`
	Confirmation       string  `json:"confirmation"`
}

// PerformanceReport assembles the canned report strings and deep links
// for one plant.
func PerformanceReport(p domain.Plant) Report {
	message := fmt.Sprintf("Relatório de Performance - %s\n\nOlá %s, seu relatório está disponível!",
		p.Name, p.Owner.Name)
	subject := fmt.Sprintf("Relatório de Performance - %s", p.Name)
	body := fmt.Sprintf("Olá %s,\n\nSeu relatório de performance está em anexo.\n\nAtenciosamente,\nEquipe de Monitoramento",
		p.Owner.Name)

	return Report{
		PlantID:            p.ID,
		PlantName:          p.Name,
		OwnerName:          p.Owner.Name,
		MonthlyPerformance: p.MonthlyPerformance,
		MonthlyGeneration:  p.MonthlyGenerationKWh,
		WhatsAppURL:        WhatsAppLink(p.Owner.Phone, message),
		MailtoURL:          MailtoLink(p.Owner.Email, subject, body),
		Confirmation:       "O relatório PDF está sendo preparado para download.",
	}
}
