// Package planner ties mission evaluation to the session log, the history
// database and report files. The menu, the TUI and the plan command all go
// through a Service.
package planner

import (
	"context"
	"time"

	"github.com/litescript/ls-missionplan/internal/catalog"
	"github.com/litescript/ls-missionplan/internal/config"
	"github.com/litescript/ls-missionplan/internal/history"
	"github.com/litescript/ls-missionplan/internal/logging"
	"github.com/litescript/ls-missionplan/internal/mission"
	"github.com/litescript/ls-missionplan/internal/report"
	"github.com/litescript/ls-missionplan/internal/state"
)

// Outcome is an evaluated mission and where it was recorded.
type Outcome struct {
	Result    *mission.Result
	Seq       int   // session sequence number
	HistoryID int64 // 0 when history is disabled or the write failed
	SavedTo   string
}

// Service evaluates missions and records them.
type Service struct {
	cat     *catalog.Catalog
	cfg     config.Config
	session *state.Manager
	history *history.Store
	log     *logging.Logger
	now     func() time.Time
}

// New creates a Service. hist may be nil to disable the history database.
func New(cat *catalog.Catalog, cfg config.Config, session *state.Manager, hist *history.Store, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	if session == nil {
		session = state.NewManager(state.Config{MaxEntries: cfg.SessionLimit})
	}
	return &Service{
		cat:     cat,
		cfg:     cfg,
		session: session,
		history: hist,
		log:     log.With("planner"),
		now:     time.Now,
	}
}

// Catalog returns the catalog used for evaluation.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// Config returns the service configuration.
func (s *Service) Config() config.Config {
	return s.cfg
}

// Session returns the session log.
func (s *Service) Session() *state.Manager {
	return s.session
}

// Request builds a mission request with the configured window count. An
// empty start date falls back to the configured default.
func (s *Service) Request(r catalog.Rocket, b catalog.Body, startDate string, payloadKg float64) mission.Request {
	if startDate == "" {
		startDate = s.cfg.StartDate
	}
	return mission.Request{
		Rocket:      r,
		Body:        b,
		StartDate:   startDate,
		PayloadKg:   payloadKg,
		WindowCount: s.cfg.WindowCount,
	}
}

// Plan evaluates a request and records it in the session log and, when
// enabled, the history database. History failures are logged and do not
// fail the evaluation.
func (s *Service) Plan(ctx context.Context, req mission.Request) (*Outcome, error) {
	res, err := mission.Evaluate(s.cat, req)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Result: res, Seq: s.session.Add(res)}
	s.log.Debug("evaluated %s -> %s payload=%.0fkg strategy=%s success=%v",
		res.Rocket.Code, res.Body.Code, res.PayloadKg, res.Strategy, res.Success)

	if s.history != nil {
		id, err := s.history.Record(ctx, res)
		if err != nil {
			s.log.Warn("history: %v", err)
		} else {
			out.HistoryID = id
		}
	}
	return out, nil
}

// Save writes the outcome's report into the configured report directory.
// The returned error is a *report.PersistenceError.
func (s *Service) Save(ctx context.Context, out *Outcome) (string, error) {
	path, err := report.Save(s.cfg.ReportDir, out.Result, s.now())
	if err != nil {
		s.log.Warn("%v", err)
		return "", err
	}
	out.SavedTo = path
	s.session.MarkSaved(out.Seq, path)
	s.log.Debug("saved report %s", path)

	if s.history != nil && out.HistoryID != 0 {
		if err := s.history.MarkSaved(ctx, out.HistoryID, path); err != nil {
			s.log.Warn("history: %v", err)
		}
	}
	return path, nil
}
