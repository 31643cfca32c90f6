// Package server exposes calendar queries over HTTP: resolve a date to its
// weekday, week, month and quarter, list the weeks of a month or the months
// of a year, and walk day ranges.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/clarityflowers/localdate/internal/config"
	"github.com/clarityflowers/localdate/pkg/localdate"
)

// Server is the calendar query HTTP server.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewServer creates a new query server.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.GetRequestTimeout()))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/today", s.handleToday)
		r.Get("/days/{date}", s.handleDay)
		r.Get("/days/{date}/range/{to}", s.handleRange)
		r.Get("/weeks/{date}", s.handleWeek)
		r.Get("/months/{month}", s.handleMonth)
		r.Get("/months/{month}/weeks", s.handleMonthWeeks)
		r.Get("/quarters/{date}", s.handleQuarter)
		r.Get("/years/{year}/months", s.handleYear)
	})

	// Prometheus metrics endpoint
	if s.cfg.Server.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Query API listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down query API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	}
}

type dayResponse struct {
	Date    localdate.Date  `json:"date"`
	Weekday string          `json:"weekday"`
	Week    string          `json:"week"`
	Month   localdate.Month `json:"month"`
	Quarter string          `json:"quarter"`
}

type weekResponse struct {
	Week   string           `json:"week"`
	Monday localdate.Date   `json:"monday"`
	Sunday localdate.Date   `json:"sunday"`
	Days   []localdate.Date `json:"days"`
}

type monthResponse struct {
	Month        localdate.Month `json:"month"`
	First        localdate.Date  `json:"first"`
	Last         localdate.Date  `json:"last"`
	NumberOfDays int             `json:"number_of_days"`
	FirstWeekday string          `json:"first_weekday"`
	Weeks        []string        `json:"weeks,omitempty"`
}

type quarterResponse struct {
	Quarter string         `json:"quarter"`
	Year    int            `json:"year"`
	Number  int            `json:"number"`
	Start   localdate.Date `json:"start"`
	End     localdate.Date `json:"end"`
}

type rangeResponse struct {
	From localdate.Date   `json:"from"`
	To   localdate.Date   `json:"to"`
	Days []localdate.Date `json:"days"`
}

type yearResponse struct {
	Year   int             `json:"year"`
	Months []monthResponse `json:"months"`
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("tz")
	if zone == "" {
		zone = s.cfg.Timezone
	}

	var today localdate.Date
	if zone == "" {
		today = localdate.Today()
	} else {
		var err error
		today, err = localdate.TodayIn(zone)
		if err != nil {
			queriesTotal.WithLabelValues("today", "error").Inc()
			s.logger.Debug("Rejected timezone", zap.String("tz", zone), zap.Error(err))
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown timezone %q", zone))
			return
		}
	}

	queriesTotal.WithLabelValues("today", "ok").Inc()
	writeJSON(w, http.StatusOK, newDayResponse(today))
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseDate(w, "day", chi.URLParam(r, "date"))
	if !ok {
		return
	}

	queriesTotal.WithLabelValues("day", "ok").Inc()
	writeJSON(w, http.StatusOK, newDayResponse(d))
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	from, ok := s.parseDate(w, "range", chi.URLParam(r, "date"))
	if !ok {
		return
	}
	to, ok := s.parseDate(w, "range", chi.URLParam(r, "to"))
	if !ok {
		return
	}

	limit := s.cfg.Server.GetMaxRangeDays()
	days := make([]localdate.Date, 0, 32)
	for day := range from.Range(to) {
		if len(days) == limit {
			queriesTotal.WithLabelValues("range", "error").Inc()
			writeError(w, http.StatusBadRequest, fmt.Sprintf("range spans more than %d days", limit))
			return
		}
		days = append(days, day)
	}

	queriesTotal.WithLabelValues("range", "ok").Inc()
	writeJSON(w, http.StatusOK, rangeResponse{From: from, To: to, Days: days})
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseDate(w, "week", chi.URLParam(r, "date"))
	if !ok {
		return
	}

	queriesTotal.WithLabelValues("week", "ok").Inc()
	writeJSON(w, http.StatusOK, newWeekResponse(localdate.WeekOf(d)))
}

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	m, ok := s.parseMonth(w, "month", chi.URLParam(r, "month"))
	if !ok {
		return
	}

	resp := newMonthResponse(m)
	for wk := range m.Weeks() {
		resp.Weeks = append(resp.Weeks, wk.String())
	}

	queriesTotal.WithLabelValues("month", "ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMonthWeeks(w http.ResponseWriter, r *http.Request) {
	m, ok := s.parseMonth(w, "month", chi.URLParam(r, "month"))
	if !ok {
		return
	}

	weeks := make([]weekResponse, 0, 6)
	for wk := range m.Weeks() {
		weeks = append(weeks, newWeekResponse(wk))
	}

	queriesTotal.WithLabelValues("month", "ok").Inc()
	writeJSON(w, http.StatusOK, weeks)
}

func (s *Server) handleQuarter(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseDate(w, "quarter", chi.URLParam(r, "date"))
	if !ok {
		return
	}

	q := localdate.QuarterOf(d)
	queriesTotal.WithLabelValues("quarter", "ok").Inc()
	writeJSON(w, http.StatusOK, quarterResponse{
		Quarter: q.String(),
		Year:    q.Year(),
		Number:  q.Quarter(),
		Start:   q.Start(),
		End:     q.End(),
	})
}

func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		parseFailures.Inc()
		queriesTotal.WithLabelValues("year", "error").Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid year %q", raw))
		return
	}

	resp := yearResponse{Year: year}
	for _, m := range localdate.MonthsOfYear(year) {
		resp.Months = append(resp.Months, newMonthResponse(m))
	}

	queriesTotal.WithLabelValues("year", "ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}

// parseDate parses a canonical date or writes a 400 and reports failure.
func (s *Server) parseDate(w http.ResponseWriter, granularity, raw string) (localdate.Date, bool) {
	d, err := localdate.Parse(raw)
	if err != nil {
		parseFailures.Inc()
		queriesTotal.WithLabelValues(granularity, "error").Inc()
		s.logger.Debug("Rejected date", zap.String("input", raw), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return localdate.Date{}, false
	}
	return d, true
}

// parseMonth parses a canonical month or writes a 400 and reports failure.
func (s *Server) parseMonth(w http.ResponseWriter, granularity, raw string) (localdate.Month, bool) {
	m, err := localdate.ParseMonth(raw)
	if err != nil {
		parseFailures.Inc()
		queriesTotal.WithLabelValues(granularity, "error").Inc()
		s.logger.Debug("Rejected month", zap.String("input", raw), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return localdate.Month{}, false
	}
	return m, true
}

func newDayResponse(d localdate.Date) dayResponse {
	return dayResponse{
		Date:    d,
		Weekday: d.Weekday().String(),
		Week:    localdate.WeekOf(d).String(),
		Month:   localdate.MonthOf(d),
		Quarter: localdate.QuarterOf(d).String(),
	}
}

func newWeekResponse(wk localdate.Week) weekResponse {
	return weekResponse{
		Week:   wk.String(),
		Monday: wk.Monday(),
		Sunday: wk.Sunday(),
		Days:   wk.Days(),
	}
}

func newMonthResponse(m localdate.Month) monthResponse {
	return monthResponse{
		Month:        m,
		First:        m.First(),
		Last:         m.Last(),
		NumberOfDays: m.NumberOfDays(),
		FirstWeekday: m.FirstWeekday().String(),
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}
