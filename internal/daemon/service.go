// Package daemon provides the long-running local plan service.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
	"github.com/theirongolddev/nestplan/internal/store"
)

// ScenarioSource looks up saved scenarios by name.
type ScenarioSource interface {
	Get(ctx context.Context, name string) (store.Scenario, error)
}

// Config controls the service runtime behavior.
type Config struct {
	ConfigPath   string
	Interval     time.Duration
	Addr         string
	EventsBuffer int
	Scenarios    ScenarioSource
	// Logger defaults to a text handler on stderr.
	Logger *slog.Logger
}

// Snapshot is the compact plan state used in status and event payloads.
type Snapshot struct {
	At              time.Time `json:"at"`
	Income          float64   `json:"income"`
	SavingsPercent  float64   `json:"savings_percent"`
	AnnualReturn    float64   `json:"annual_return"`
	HorizonYears    int       `json:"horizon_years"`
	MonthlySaving   float64   `json:"monthly_saving"`
	Leisure         float64   `json:"leisure"`
	FinalInvested   float64   `json:"final_invested"`
	FinalUninvested float64   `json:"final_uninvested"`
	Gain            float64   `json:"gain"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	Income         float64 `json:"income"`
	SavingsPercent float64 `json:"savings_percent"`
	AnnualReturn   float64 `json:"annual_return"`
	HorizonYears   int     `json:"horizon_years"`
	MonthlySaving  float64 `json:"monthly_saving"`
	FinalInvested  float64 `json:"final_invested"`
	Gain           float64 `json:"gain"`
}

func (d Delta) isZero() bool {
	return d.Income == 0 &&
		d.SavingsPercent == 0 &&
		d.AnnualReturn == 0 &&
		d.HorizonYears == 0 &&
		d.MonthlySaving == 0 &&
		d.FinalInvested == 0 &&
		d.Gain == 0
}

// Event is emitted whenever the default plan changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Event types.
const (
	EventSnapshot   = "snapshot"
	EventPlanUpdate = "plan_update"
)

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	ConfigPath      string    `json:"config_path"`
	ConfigModTime   time.Time `json:"config_mod_time,omitempty"`
	Summary         Snapshot  `json:"summary"`
	Warnings        []string  `json:"warnings,omitempty"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the plan service runtime and HTTP API.
type Service struct {
	cfg Config
	log *slog.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	modTime     time.Time
	current     config.Config
	plan        model.Plan
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new plan service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 10 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = config.DefaultConfig().Serve.Addr
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = config.Path()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	def := config.DefaultConfig()
	return &Service{
		cfg:       cfg,
		log:       cfg.Logger,
		startedAt: time.Now(),
		current:   def,
		plan:      planner.BuildPlan(def.Plan.Input(), def.Allocation.Splits()),
		subs:      make(map[int]chan Event),
	}
}

// Handler returns the HTTP routes served by the service.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/plan", s.handlePlan)
		r.Get("/projection.csv", s.handleProjectionCSV)
		r.Get("/scenarios/{name}/plan", s.handleScenarioPlan)
		r.Get("/events", s.handleEvents)
		r.Get("/stream", s.handleStream)
	})
	return r
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("plan_service_listening", "addr", s.cfg.Addr, "config", s.cfg.ConfigPath)

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.log.Info("plan_service_shutdown")
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("plan service http server: %w", err)
		}
	}
}

// pollOnce rereads the config file when its mtime moves and publishes an
// event if the default plan changed.
func (s *Service) pollOnce() {
	now := time.Now()

	var modTime time.Time
	if fi, err := os.Stat(s.cfg.ConfigPath); err == nil {
		modTime = fi.ModTime()
	}

	s.mu.Lock()
	unchanged := s.hasSnapshot && modTime.Equal(s.modTime)
	if unchanged {
		s.lastPollAt = now
		s.pollCount++
	}
	s.mu.Unlock()
	if unchanged {
		return
	}

	cfg, err := config.LoadFile(s.cfg.ConfigPath)
	if err == nil {
		err = config.DefaultLimits.Validate(cfg.Plan.Input())
	}
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		s.log.Error("plan_service_poll", "config", s.cfg.ConfigPath, "error", err.Error())
		return
	}

	plan := planner.BuildPlan(cfg.Plan.Input(), cfg.Allocation.Splits())
	snap := snapshotFromPlan(plan, now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.current = cfg
	s.plan = plan
	s.modTime = modTime
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      EventSnapshot,
			Timestamp: now,
			Snapshot:  snap,
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      EventPlanUpdate,
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		if ev.Type == EventPlanUpdate {
			s.log.Info("plan_update",
				"event_id", ev.ID,
				"monthly_saving_delta", ev.Delta.MonthlySaving,
				"final_invested_delta", ev.Delta.FinalInvested,
			)
		}
		s.publishEvent(ev)
	}
}

func snapshotFromPlan(p model.Plan, at time.Time) Snapshot {
	return Snapshot{
		At:              at,
		Income:          p.Input.Income,
		SavingsPercent:  p.Input.SavingsPercent,
		AnnualReturn:    p.Input.AnnualReturn,
		HorizonYears:    p.Input.HorizonYears,
		MonthlySaving:   p.MonthlySaving,
		Leisure:         p.Allocation.Leisure,
		FinalInvested:   p.FinalInvested,
		FinalUninvested: p.FinalUninvested,
		Gain:            p.Gain,
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Income:         curr.Income - prev.Income,
		SavingsPercent: curr.SavingsPercent - prev.SavingsPercent,
		AnnualReturn:   curr.AnnualReturn - prev.AnnualReturn,
		HorizonYears:   curr.HorizonYears - prev.HorizonYears,
		MonthlySaving:  curr.MonthlySaving - prev.MonthlySaving,
		FinalInvested:  curr.FinalInvested - prev.FinalInvested,
		Gain:           curr.Gain - prev.Gain,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		ConfigPath:      s.cfg.ConfigPath,
		ConfigModTime:   s.modTime,
		Summary:         s.snapshot,
		Warnings:        s.plan.Warnings,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) currentConfig() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
