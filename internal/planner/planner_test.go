package planner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/litescript/ls-missionplan/internal/catalog"
	"github.com/litescript/ls-missionplan/internal/config"
	"github.com/litescript/ls-missionplan/internal/history"
	"github.com/litescript/ls-missionplan/internal/mission"
	"github.com/litescript/ls-missionplan/internal/report"
)

func newService(t *testing.T, withHistory bool) *Service {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ReportDir = t.TempDir()

	var hist *history.Store
	if withHistory {
		var err error
		hist, err = history.Open(":memory:")
		if err != nil {
			t.Fatalf("history.Open: %v", err)
		}
		t.Cleanup(func() { hist.Close() })
	}

	s := New(catalog.Default(), cfg, nil, hist, nil)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC) }
	return s
}

func request(t *testing.T, s *Service, rocket, body string, payload float64) mission.Request {
	t.Helper()
	r, err := s.Catalog().LookupRocket(rocket)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Catalog().LookupBody(body)
	if err != nil {
		t.Fatal(err)
	}
	return s.Request(r, b, "", payload)
}

func TestService_RequestDefaults(t *testing.T) {
	s := newService(t, false)
	req := request(t, s, "1", "2", 10)

	if req.StartDate != mission.DefaultStartDate {
		t.Errorf("StartDate = %q, want %q", req.StartDate, mission.DefaultStartDate)
	}
	if req.WindowCount != 5 {
		t.Errorf("WindowCount = %d, want 5", req.WindowCount)
	}
}

func TestService_PlanRecords(t *testing.T) {
	ctx := context.Background()
	s := newService(t, true)

	out, err := s.Plan(ctx, request(t, s, "starship", "mars", 100_000))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if out.Seq != 1 {
		t.Errorf("Seq = %d, want 1", out.Seq)
	}
	if out.HistoryID == 0 {
		t.Error("HistoryID = 0, want a stored row")
	}
	if out.Result.Strategy != mission.OrbitalRefuel {
		t.Errorf("Strategy = %v, want orbital-refuel", out.Result.Strategy)
	}

	if snap := s.Session().Snapshot(); snap.Total != 1 || snap.Feasible != 1 {
		t.Errorf("session Total/Feasible = %d/%d, want 1/1", snap.Total, snap.Feasible)
	}
}

func TestService_PlanBadDate(t *testing.T) {
	s := newService(t, false)
	req := request(t, s, "sls", "moon", 0)
	req.StartDate = "2025-13-40"

	_, err := s.Plan(context.Background(), req)
	var dpe *mission.DateParseError
	if !errors.As(err, &dpe) {
		t.Fatalf("err = %v, want *DateParseError", err)
	}
	if s.Session().Snapshot().Total != 0 {
		t.Error("failed evaluation was recorded")
	}
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()
	s := newService(t, true)

	out, err := s.Plan(ctx, request(t, s, "sls", "moon", 0))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	path, err := s.Save(ctx, out)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "mission_20250601_0830.txt" {
		t.Errorf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("report not written: %v", err)
	}
	if last, _ := s.Session().Last(); last.SavedTo != path {
		t.Errorf("session SavedTo = %q, want %q", last.SavedTo, path)
	}
}

func TestService_SaveFailure(t *testing.T) {
	ctx := context.Background()
	s := newService(t, false)
	s.cfg.ReportDir = filepath.Join(t.TempDir(), "absent")

	out, err := s.Plan(ctx, request(t, s, "sls", "moon", 0))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	_, err = s.Save(ctx, out)
	var pe *report.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *PersistenceError", err)
	}
	if out.SavedTo != "" {
		t.Errorf("SavedTo = %q after failed save", out.SavedTo)
	}
	if !out.Result.Success {
		t.Error("save failure changed the result")
	}
}
