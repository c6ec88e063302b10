package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
	"github.com/medportal/porter/internal/config"
	"github.com/medportal/porter/internal/domain/directory"
	"github.com/medportal/porter/internal/gateway"
	"github.com/medportal/porter/internal/platform/db"
	"github.com/medportal/porter/migrations"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := rootCmd()
	want := map[string]bool{"dispatch": false, "gateway": false, "migrate": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	migrate, _, err := root.Find([]string{"migrate", "status"})
	if err != nil || migrate.Name() != "status" {
		t.Errorf("expected migrate status subcommand, got %v %v", migrate, err)
	}
}

func TestPrintStatus(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	printStatus(&buf, []db.MigrationStatus{
		{Version: 1, Name: "001_directory.sql", Applied: true, AppliedAt: &at},
		{Version: 2, Name: "002_porter_request.sql"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and two rows, got %q", lines)
	}
	if !strings.Contains(lines[2], "applied") || !strings.Contains(lines[2], "2026-03-01T09:00:00Z") {
		t.Errorf("unexpected applied row: %q", lines[2])
	}
	if !strings.Contains(lines[3], "pending") {
		t.Errorf("unexpected pending row: %q", lines[3])
	}
}

func TestEmbeddedMigrationsLoad(t *testing.T) {
	loaded, err := db.NewMigrator(nil, migrations.FS).LoadMigrations()
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	if len(loaded) < 2 {
		t.Fatalf("expected at least two migrations, got %d", len(loaded))
	}
	if !strings.Contains(loaded[len(loaded)-1].SQL, "porter_request") {
		t.Error("expected the porter_request table in the latest migration")
	}
}

func TestNewNameResolver_NoRedisUsesPostgres(t *testing.T) {
	pg := &directory.PGResolver{}
	got := newNameResolver(context.Background(), &config.Config{}, pg, zerolog.Nop())
	if got != pg {
		t.Errorf("expected the postgres resolver, got %T", got)
	}
}

func TestNewNameResolver_BadRedisFallsBack(t *testing.T) {
	pg := &directory.PGResolver{}
	got := newNameResolver(context.Background(), &config.Config{RedisURL: "not-a-url"}, pg, zerolog.Nop())
	if got != pg {
		t.Errorf("expected fallback to postgres, got %T", got)
	}
}

func TestGatewayServer_HealthAndRoutes(t *testing.T) {
	cfg := &config.Config{
		CORSOrigins:    []string{"http://localhost:3000"},
		RequestTimeout: time.Second,
	}
	var client dispatchv1.PorterServiceClient
	relay := gateway.NewRelay(client, time.Hour, zerolog.Nop())
	e := newGatewayServer(cfg, client, relay, zerolog.Nop())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected request id middleware on gateway")
	}

	found := map[string]bool{}
	for _, r := range e.Routes() {
		found[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/porter-requests/stream",
		"POST /api/v1/porter-requests",
		"PATCH /api/v1/porter-requests/:id/status",
		"GET /api/v1/patients/:hn",
		"GET /metrics",
	} {
		if !found[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}
