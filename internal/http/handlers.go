// Package http registers the JSON API routes over the service layer.
package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"solarfleet/internal/chart"
	"solarfleet/internal/chat"
	"solarfleet/internal/integrations"
	"solarfleet/internal/metrics"
	"solarfleet/internal/registry"
	"solarfleet/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api/v1")

	api.Get("/plants", func(c *fiber.Ctx) error {
		filter := metrics.StatusFilter(c.Query("status", string(metrics.FilterAll)))
		return c.JSON(svcs.Plants(filter))
	})

	api.Get("/plants/:id", func(c *fiber.Ctx) error {
		p, err := svcs.Registry.Plant(c.Params("id"))
		if errors.Is(err, registry.ErrPlantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "plant not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(p)
	})

	api.Get("/plants/:id/chart", func(c *fiber.Ctx) error {
		period := chart.Period(c.Query("period", string(chart.Daily)))
		if !period.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid period"})
		}
		var ref time.Time
		if d := c.Query("date"); d != "" {
			parsed, err := time.Parse("2006-01-02", d)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
			}
			ref = parsed
		}
		points, err := svcs.ChartSeries(c.Params("id"), period, ref)
		if errors.Is(err, registry.ErrPlantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "plant not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"period": period, "points": points})
	})

	api.Get("/stats", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Summary())
	})

	api.Get("/alerts", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"active":   svcs.Alerts.Active(),
			"resolved": svcs.Alerts.Resolved(),
		})
	})

	// Resolution is session-scoped and idempotent: unknown ids still
	// answer 200 with the confirmation, matching the interface.
	api.Post("/alerts/:id/resolve", func(c *fiber.Ctx) error {
		alert, found := svcs.Alerts.Resolve(c.Params("id"))
		resp := fiber.Map{"confirmation": "O alerta foi marcado como resolvido."}
		if found {
			resp["alert"] = alert
		}
		return c.JSON(resp)
	})

	api.Get("/chat/messages", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Chat.Messages())
	})

	api.Post("/chat/messages", func(c *fiber.Ctx) error {
		var body struct {
			Text string `json:"text"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
		}
		msg, err := svcs.Chat.Send(body.Text)
		if errors.Is(err, chat.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty message"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	})

	api.Get("/integrations", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Integrations.List())
	})

	api.Post("/integrations/:id/connect", func(c *fiber.Ctx) error {
		var creds map[string]string
		_ = c.BodyParser(&creds)
		entry, err := svcs.Integrations.Connect(c.Params("id"), creds)
		if errors.Is(err, integrations.ErrUnknownIntegration) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown integration"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(entry)
	})

	api.Post("/integrations/:id/disconnect", func(c *fiber.Ctx) error {
		entry, err := svcs.Integrations.Disconnect(c.Params("id"))
		if errors.Is(err, integrations.ErrUnknownIntegration) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown integration"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(entry)
	})

	api.Get("/reports/:id", func(c *fiber.Ctx) error {
		rep, err := svcs.Report(c.Params("id"))
		if errors.Is(err, registry.ErrPlantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "plant not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rep)
	})

	api.Get("/settings", func(c *fiber.Ctx) error {
		p, err := svcs.Prefs.Load()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(p)
	})

	api.Put("/settings", func(c *fiber.Ctx) error {
		var body struct {
			Dark     *bool `json:"dark"`
			FontSize *int  `json:"font_size"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
		}
		p, err := svcs.Prefs.Load()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if body.Dark != nil {
			if p, err = svcs.Prefs.SetDark(*body.Dark); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
		}
		if body.FontSize != nil {
			if p, err = svcs.Prefs.SetFontSize(*body.FontSize); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
		}
		return c.JSON(p)
	})
}
