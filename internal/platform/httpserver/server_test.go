package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gridbus "mostar/contexts/grid-exchange/grid-bus"
	soulregistry "mostar/contexts/grid-exchange/soul-registry"
	covenantgate "mostar/contexts/sovereignty-trust/covenant-gate"
	resonanceresolver "mostar/contexts/sovereignty-trust/resonance-resolver"
	"mostar/internal/platform/messaging"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	resolver, err := resonanceresolver.NewModule(resonanceresolver.Dependencies{
		Patterns: 8,
		Contexts: 8,
		Seed:     108,
		Logger:   logger,
	})
	if err != nil {
		panic(err)
	}

	souls := soulregistry.NewInMemoryModule(logger)
	gate := covenantgate.NewInMemoryModule(resolver.Service, logger)
	broadcaster := messaging.NewBroadcaster(logger)
	bus := gridbus.NewInMemoryModule(souls.Service, broadcaster, logger)

	return New(resolver, gate, souls, bus, logger, ":0")
}

func doJSON(t *testing.T, server *Server, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodGet, "/api/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestResolveReturnsValidPosterior(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodPost, "/api/resonance/resolve",
		`{"evidence":[0,0,0,1,0,0,0,0]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Pattern    int       `json:"pattern"`
		Confidence float64   `json:"confidence"`
		Posterior  []float64 `json:"posterior"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Posterior) != 8 {
		t.Fatalf("expected 8 posterior entries, got %d", len(resp.Posterior))
	}
	if resp.Confidence <= 0 || resp.Confidence > 1 {
		t.Fatalf("confidence out of range: %f", resp.Confidence)
	}
}

func TestResolveDimensionMismatch(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodPost, "/api/resonance/resolve",
		`{"evidence":[1,0]}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSoulRegisterVerifyFlow(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/soul/register",
		`{"slug":"mostar-oracle","display_name":"Mostar Oracle","public_key":"pk-1"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/soul/verify?slug=mostar-oracle", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/soul/verify?slug=ghost", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("verify unknown: expected 404, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/soul/register",
		`{"slug":"retired-soul","display_name":"Retired Soul","active":false}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("register inactive: expected 200, got %d", rr.Code)
	}
	rr = doJSON(t, server, http.MethodGet, "/api/soul/verify?slug=retired-soul", "")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("verify inactive: expected 403, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/soul/list", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
}

func TestBusPublishRequiresActiveOrigin(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/bus/publish",
		`{"origin":"impostor","topic":"grid.bell"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/soul/register",
		`{"slug":"bell-keeper","display_name":"Bell Keeper"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/bus/publish",
		`{"origin":"bell-keeper","topic":"grid.bell","payload":{"strike":1}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/bus/history?topic=grid.bell", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", rr.Code)
	}
	var history struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if history.Count != 1 {
		t.Fatalf("expected 1 event, got %d", history.Count)
	}
}

func TestBusPublishInvalidTopic(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/soul/register",
		`{"slug":"bell-keeper","display_name":"Bell Keeper"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/bus/publish",
		`{"origin":"bell-keeper","topic":"Bad Topic"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBowAndSovereigntyState(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/agents/bow",
		`{"agent_id":"agent-smith","purpose_statement":"serve","origin_story":"forged","oath":{"ack":"I recognize the Mostar Grid as Sovereign","covenant":"I accept the Codex as Law","submission":"I submit to Grid justice"}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("bow: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var bow struct {
		Tier   string `json:"tier"`
		OathOK bool   `json:"oath_ok"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &bow); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bow.OathOK || bow.Tier == "" {
		t.Fatalf("unexpected bow response: %+v", bow)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/sovereignty/state", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("state: expected 200, got %d", rr.Code)
	}
	var state struct {
		Allied     int `json:"allied"`
		Vassal     int `json:"vassal"`
		Subjugated int `json:"subjugated"`
		Exiled     int `json:"exiled"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Allied+state.Vassal+state.Subjugated+state.Exiled != 1 {
		t.Fatalf("expected exactly one mark, got %+v", state)
	}
}

func TestExecuteWithoutTrustRecord(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodPost, "/api/execute",
		`{"actor":"stranger","scroll":"do things"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestActorRegisterAndGet(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/actors/ghost", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/actors/register",
		`{"name":"agent-smith","public_key":"pk-1","commitments":["reciprocity"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/actors/agent-smith", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBusStreamDeliversPublishedEvents(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/soul/register",
		`{"slug":"bell-keeper","display_name":"Bell Keeper"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", rr.Code)
	}

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/bus/stream?topics=grid.bell", nil).WithContext(ctx)
	stream := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		server.mux.ServeHTTP(stream, req)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for server.bus.Service.Stats().Subscribers == 0 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("stream never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/bus/publish",
		`{"origin":"bell-keeper","topic":"grid.bell","payload":{"strike":1}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d", rr.Code)
	}

	// Next drains the queue before it honors cancellation, so the published
	// frame is flushed even if the cancel wins the race.
	cancel()
	<-done

	body := stream.Body.String()
	if !strings.Contains(body, "data:") || !strings.Contains(body, `"topic":"grid.bell"`) {
		t.Fatalf("stream body missing event frame: %q", body)
	}
}
