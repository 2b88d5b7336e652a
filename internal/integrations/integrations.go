// Package integrations carries the vendor portal catalog. Entries are
// inert placeholders: connecting waits a fixed delay and then succeeds,
// credentials are accepted without validation, and all state is
// session-scoped.
package integrations

import (
	"errors"
	"sync"
	"time"
)

// ErrUnknownIntegration reports an id absent from the catalog.
var ErrUnknownIntegration = errors.New("unknown integration")

// Status is the connection state of one catalog entry.
type Status string

const (
	Connected    Status = "connected"
	Disconnected Status = "disconnected"
	StatusError  Status = "error"
)

// Field describes one credential input of an integration.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Integration is one vendor portal entry.
type Integration struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      Status  `json:"status"`
	Logo        string  `json:"logo"`
	Fields      []Field `json:"fields"`
}

// Catalog holds the session's integration states.
type Catalog struct {
	mu           sync.RWMutex
	entries      []Integration
	connectDelay time.Duration
}

// NewCatalog builds the fixed vendor list with its initial statuses.
func NewCatalog(connectDelay time.Duration) *Catalog {
	userPass := []Field{
		{Name: "username", Label: "Usuário", Type: "text", Required: true},
		{Name: "password", Label: "Senha", Type: "password", Required: true},
	}
	return &Catalog{
		connectDelay: connectDelay,
		entries: []Integration{
			{
				ID: "sungrow", Name: "Sungrow",
				Description: "Portal de monitoramento Sungrow iSolarCloud",
				Status:      Disconnected, Logo: "🔆",
				Fields: append(append([]Field{}, userPass...),
					Field{Name: "appkey", Label: "App Key", Type: "text", Required: true}),
			},
			{
				ID: "huawei", Name: "Huawei FusionSolar",
				Description: "Portal de monitoramento Huawei FusionSolar",
				Status:      Connected, Logo: "🔋",
				Fields: append(append([]Field{}, userPass...),
					Field{Name: "systemCode", Label: "System Code", Type: "text", Required: true}),
			},
			{
				ID: "deye", Name: "Deye Cloud",
				Description: "Portal de monitoramento Deye Solar",
				Status:      StatusError, Logo: "☀️",
				Fields: append([]Field{}, userPass...),
			},
			{
				ID: "apsystems", Name: "APsystems",
				Description: "Portal de monitoramento APsystems",
				Status:      Disconnected, Logo: "⚡",
				Fields: append([]Field{}, userPass...),
			},
			{
				ID: "phb", Name: "PHB Solar",
				Description: "Portal de monitoramento PHB",
				Status:      Disconnected, Logo: "🌞",
				Fields: []Field{
					{Name: "apikey", Label: "API Key", Type: "text", Required: true},
					{Name: "secret", Label: "Secret Key", Type: "password", Required: true},
				},
			},
		},
	}
}

// List returns the catalog in fixed order.
func (c *Catalog) List() []Integration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Integration, len(c.entries))
	copy(out, c.entries)
	return out
}

// Connect simulates the portal handshake: it blocks for the configured
// delay, then marks the entry connected. It cannot fail once the id is
// known; credentials are not checked. Real failure kinds (auth,
// timeout, rate limit) would surface here if an actual client ever
// replaces the simulation.
func (c *Catalog) Connect(id string, credentials map[string]string) (Integration, error) {
	if _, err := c.find(id); err != nil {
		return Integration{}, err
	}
	time.Sleep(c.connectDelay)
	return c.setStatus(id, Connected)
}

// Disconnect marks the entry disconnected immediately.
func (c *Catalog) Disconnect(id string) (Integration, error) {
	return c.setStatus(id, Disconnected)
}

func (c *Catalog) find(id string) (Integration, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Integration{}, ErrUnknownIntegration
}

func (c *Catalog) setStatus(id string, status Status) (Integration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries[i].Status = status
			return c.entries[i], nil
		}
	}
	return Integration{}, ErrUnknownIntegration
}
