package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/orgball2608/x-relay-telegram-bot/internal/metrics"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	rec := get(t, NewRouter(logger.NewNop(), nil), "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	m := metrics.New()
	m.RelayFinished(metrics.OutcomeDelivered)

	rec := get(t, NewRouter(logger.NewNop(), m), "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `xrelay_relays_total{outcome="delivered"} 1`) {
		t.Errorf("metrics output misses relay counter:\n%s", rec.Body.String())
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	rec := get(t, NewRouter(logger.NewNop(), nil), "/metrics")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServer_StartStop(t *testing.T) {
	s := New(Opts{Config: &config.Config{}, Logger: logger.NewNop(), Metrics: metrics.New()})
	s.http.Addr = "127.0.0.1:0"

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}

func TestServer_StartPortBusy(t *testing.T) {
	busy := httptest.NewServer(http.NotFoundHandler())
	defer busy.Close()

	s := New(Opts{Config: &config.Config{}, Logger: logger.NewNop()})
	s.http.Addr = strings.TrimPrefix(busy.URL, "http://")

	if err := s.Start(context.Background()); err == nil {
		_ = s.Stop(context.Background())
		t.Fatal("Start() error = nil, want address in use")
	}
}
