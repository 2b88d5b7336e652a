// Package dashboard serves the browser interface. Pages are rendered
// server-side from templates; a websocket channel pushes the wall
// clock every second and fresh fleet stats every ten.
package dashboard

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"solarfleet/internal/apiclient"
	"solarfleet/internal/chart"
	"solarfleet/internal/metrics"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Server struct {
	mux  *http.ServeMux
	tmpl *template.Template
	api  *apiclient.Client

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]bool
	broadcast chan any

	loc *time.Location
}

// New builds the dashboard over the given API client, parsing page
// templates from templatesDir. The returned server runs its broadcast
// hub and tickers until ctx is cancelled.
func New(ctx context.Context, api *apiclient.Client, templatesDir string) (*Server, error) {
	tmpl, err := template.ParseGlob(templatesDir + "/*.html")
	if err != nil {
		return nil, err
	}

	// Display formatting follows the operations timezone; fall back to
	// UTC when the zone database is unavailable.
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}

	s := &Server{
		mux:       http.NewServeMux(),
		tmpl:      tmpl,
		api:       api,
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan any, 256),
		loc:       loc,
	}

	s.routes()
	go s.runHub(ctx)
	go s.runClock(ctx)
	go s.runStats(ctx)

	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	s.mux.HandleFunc("/ws", s.handleWebSocket)
	s.mux.HandleFunc("/", s.handleDashboard)
	s.mux.HandleFunc("/dashboard", s.handleDashboard)
	s.mux.HandleFunc("/plants/", s.handlePlant)
	s.mux.HandleFunc("/alerts", s.handleAlerts)
	s.mux.HandleFunc("/alerts/resolve", s.handleResolve)
	s.mux.HandleFunc("/reports", s.handleReports)
	s.mux.HandleFunc("/settings", s.handleSettings)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = true
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
		conn.Close()
	}()

	if stats, err := s.api.Stats(r.Context()); err == nil {
		conn.WriteJSON(map[string]any{"type": "init", "data": stats})
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) runHub(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.broadcast:
			s.clientsMu.Lock()
			for conn := range s.clients {
				if err := conn.WriteJSON(msg); err != nil {
					conn.Close()
					delete(s.clients, conn)
				}
			}
			s.clientsMu.Unlock()
		}
	}
}

// runClock is the one-second display clock. It carries no registry
// data and stops with the server context.
func (s *Server) runClock(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			s.broadcast <- map[string]any{
				"type": "clock",
				"data": t.In(s.loc).Format("02/01/2006 15:04:05"),
			}
		}
	}
}

func (s *Server) runStats(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats, err := s.api.Stats(ctx)
			if err != nil {
				continue
			}
			s.broadcast <- map[string]any{"type": "update", "data": stats}
		}
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filter := metrics.StatusFilter(r.URL.Query().Get("status"))
	if filter == "" {
		filter = metrics.FilterAll
	}

	plants, err := s.api.Plants(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	stats, err := s.api.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	s.render(w, "dashboard.html", map[string]any{
		"Plants": plants,
		"Stats":  stats,
		"Filter": string(filter),
	})
}

func (s *Server) handlePlant(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Path[len("/plants/"):]

	plant, err := s.api.Plant(r.Context(), id)
	if errors.Is(err, apiclient.ErrNotFound) {
		// Unknown ids reroute to the fleet page, never an error page.
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	period := chart.Period(r.URL.Query().Get("period"))
	if !period.Valid() {
		period = chart.Daily
	}
	series, err := s.api.Chart(r.Context(), id, period, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	s.render(w, "plant.html", map[string]any{
		"Plant":  plant,
		"Chart":  series,
		"Period": string(period),
	})
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.api.Alerts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	s.render(w, "alerts.html", map[string]any{
		"Active":   alerts.Active,
		"Resolved": alerts.Resolved,
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := s.api.ResolveAlert(r.Context(), r.FormValue("id")); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/alerts", http.StatusSeeOther)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	plants, err := s.api.Plants(r.Context(), metrics.FilterAll)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	type row struct {
		Plant any
		Rep   any
	}
	rows := make([]row, 0, len(plants))
	for _, p := range plants {
		rep, err := s.api.Report(r.Context(), p.ID)
		if err != nil {
			continue
		}
		rows = append(rows, row{Plant: p, Rep: rep})
	}
	s.render(w, "reports.html", map[string]any{"Rows": rows})
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.api.Settings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	s.render(w, "settings.html", map[string]any{"Settings": settings})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}
