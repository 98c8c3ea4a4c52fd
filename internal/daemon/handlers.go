package daemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/export"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
	"github.com/theirongolddev/nestplan/internal/store"
)

func (s *Service) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.InfoContext(r.Context(), "http_request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// inputFromQuery overlays the income, savings_percent, rate and years query
// parameters onto base.
func inputFromQuery(q url.Values, base model.PlanInput) (model.PlanInput, error) {
	in := base
	if v := q.Get("income"); v != "" {
		n, err := cli.ParseMoney(v)
		if err != nil {
			return in, err
		}
		in.Income = n
	}
	if v := q.Get("savings_percent"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, fmt.Errorf("invalid savings_percent %q", v)
		}
		in.SavingsPercent = n
	}
	if v := q.Get("rate"); v != "" {
		n, err := cli.ParseRate(v)
		if err != nil {
			return in, err
		}
		in.AnnualReturn = n
	}
	if v := q.Get("years"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, fmt.Errorf("invalid years %q", v)
		}
		in.HorizonYears = n
	}
	return in, config.DefaultLimits.Validate(in)
}

// requestPlan builds the plan for the request's query over the current defaults.
func (s *Service) requestPlan(r *http.Request) (model.Plan, error) {
	cfg := s.currentConfig()
	in, err := inputFromQuery(r.URL.Query(), cfg.Plan.Input())
	if err != nil {
		return model.Plan{}, err
	}
	return planner.BuildPlan(in, cfg.Allocation.Splits()), nil
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handlePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.requestPlan(r)
	if err != nil {
		s.log.ErrorContext(r.Context(), "invalid_plan_query", "query", r.URL.RawQuery, "error", err.Error())
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, export.NewReport(plan, time.Now()))
}

func (s *Service) handleProjectionCSV(w http.ResponseWriter, r *http.Request) {
	plan, err := s.requestPlan(r)
	if err != nil {
		s.log.ErrorContext(r.Context(), "invalid_projection_query", "query", r.URL.RawQuery, "error", err.Error())
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFileName))
	if err := export.WriteCSV(w, plan); err != nil {
		s.log.ErrorContext(r.Context(), "projection_csv_write", "error", err.Error())
	}
}

func (s *Service) handleScenarioPlan(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if s.cfg.Scenarios == nil {
		writeError(w, http.StatusNotFound, errors.New("scenario library not available"))
		return
	}

	sc, err := s.cfg.Scenarios.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		s.log.ErrorContext(r.Context(), "scenario_load", "scenario", name, "error", err.Error())
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	plan := planner.BuildPlan(sc.Input, s.currentConfig().Allocation.Splits())
	writeJSON(w, http.StatusOK, export.NewReport(plan, time.Now()))
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      EventSnapshot,
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "id: %d\n", ev.ID)
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
