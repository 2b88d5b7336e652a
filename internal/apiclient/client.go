// Package apiclient is the typed HTTP client for the solarfleet API,
// used by the dashboard server and the CLI.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"solarfleet/internal/chart"
	"solarfleet/internal/chat"
	"solarfleet/internal/domain"
	"solarfleet/internal/integrations"
	"solarfleet/internal/metrics"
	"solarfleet/internal/prefs"
	"solarfleet/internal/report"
)

// ErrNotFound reports a 404 from the API.
var ErrNotFound = errors.New("not found")

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Plants(ctx context.Context, filter metrics.StatusFilter) ([]domain.Plant, error) {
	params := url.Values{}
	if filter != "" && filter != metrics.FilterAll {
		params.Set("status", string(filter))
	}
	var out []domain.Plant
	if err := c.getJSON(ctx, "/api/v1/plants", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Plant(ctx context.Context, id string) (*domain.Plant, error) {
	var out domain.Plant
	if err := c.getJSON(ctx, "/api/v1/plants/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChartResponse wraps one chart series.
type ChartResponse struct {
	Period chart.Period  `json:"period"`
	Points []chart.Point `json:"points"`
}

func (c *Client) Chart(ctx context.Context, id string, period chart.Period, date string) (*ChartResponse, error) {
	params := url.Values{}
	params.Set("period", string(period))
	if date != "" {
		params.Set("date", date)
	}
	var out ChartResponse
	if err := c.getJSON(ctx, "/api/v1/plants/"+url.PathEscape(id)+"/chart", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*metrics.Summary, error) {
	var out metrics.Summary
	if err := c.getJSON(ctx, "/api/v1/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AlertsResponse splits the session alert lists.
type AlertsResponse struct {
	Active   []domain.Alert `json:"active"`
	Resolved []domain.Alert `json:"resolved"`
}

func (c *Client) Alerts(ctx context.Context) (*AlertsResponse, error) {
	var out AlertsResponse
	if err := c.getJSON(ctx, "/api/v1/alerts", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResolveAlert(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/api/v1/alerts/"+url.PathEscape(id)+"/resolve", nil, nil)
}

func (c *Client) Messages(ctx context.Context) ([]chat.Message, error) {
	var out []chat.Message
	if err := c.getJSON(ctx, "/api/v1/chat/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendMessage(ctx context.Context, text string) (*chat.Message, error) {
	var out chat.Message
	payload := map[string]string{"text": text}
	if err := c.postJSON(ctx, "/api/v1/chat/messages", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Integrations(ctx context.Context) ([]integrations.Integration, error) {
	var out []integrations.Integration
	if err := c.getJSON(ctx, "/api/v1/integrations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Report(ctx context.Context, plantID string) (*report.Report, error) {
	var out report.Report
	if err := c.getJSON(ctx, "/api/v1/reports/"+url.PathEscape(plantID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Settings(ctx context.Context) (*prefs.Preferences, error) {
	var out prefs.Preferences
	if err := c.getJSON(ctx, "/api/v1/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if q := params.Encode(); q != "" {
		u += "?" + q
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("request failed: %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
