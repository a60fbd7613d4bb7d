package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	gridbus "mostar/contexts/grid-exchange/grid-bus"
	soulregistry "mostar/contexts/grid-exchange/soul-registry"
	covenantgate "mostar/contexts/sovereignty-trust/covenant-gate"
	resonanceresolver "mostar/contexts/sovereignty-trust/resonance-resolver"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "mostar/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	resolver resonanceresolver.Module
	gate     covenantgate.Module
	souls    soulregistry.Module
	bus      gridbus.Module
}

func New(
	resolver resonanceresolver.Module,
	gate covenantgate.Module,
	souls soulregistry.Module,
	bus gridbus.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		resolver: resolver,
		gate:     gate,
		souls:    souls,
		bus:      bus,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux; tests drive it through httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	s.mux.HandleFunc("POST /api/resonance/resolve", s.handleResolve)

	s.mux.HandleFunc("POST /api/actors/register", s.handleRegisterActor)
	s.mux.HandleFunc("GET /api/actors/{name}", s.handleGetActor)
	s.mux.HandleFunc("POST /api/agents/bow", s.handleBow)
	s.mux.HandleFunc("GET /api/sovereignty/state", s.handleSovereigntyState)
	s.mux.HandleFunc("POST /api/execute", s.handleExecute)

	s.mux.HandleFunc("POST /api/soul/register", s.handleSoulRegister)
	s.mux.HandleFunc("GET /api/soul/verify", s.handleSoulVerify)
	s.mux.HandleFunc("GET /api/soul/list", s.handleSoulList)

	s.mux.HandleFunc("POST /api/bus/publish", s.handleBusPublish)
	s.mux.HandleFunc("GET /api/bus/history", s.handleBusHistory)
	s.mux.HandleFunc("GET /api/bus/topics", s.handleBusTopics)
	s.mux.HandleFunc("GET /api/bus/stats", s.handleBusStats)
	s.mux.HandleFunc("GET /api/bus/stream", s.handleBusStream)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) decodeJSON(
	w http.ResponseWriter,
	r *http.Request,
	target any,
	writeError func(w http.ResponseWriter, status int, code string, message string),
) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
