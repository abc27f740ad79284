// Package simulation exposes the kinetic model over HTTP.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/gompertz"
	"github.com/ecotools/biodigest/core/logger"
	"github.com/ecotools/biodigest/core/mixture"
	"github.com/ecotools/biodigest/core/model"
	"github.com/ecotools/biodigest/metrics"
)

// Handler serves the simulation API. All state it reads is immutable,
// so a single instance handles concurrent requests without locking.
type Handler struct {
	table    *feedstock.Table
	sim      *gompertz.Simulator
	calc     *mixture.Calculator
	tMax     float64
	nPoints  int
	tsTarget float64
	log      logger.Logger
	rec      *metrics.Recorder
}

// New returns a Handler with the given defaults for omitted query
// parameters. rec may be nil to disable metrics recording.
func New(table *feedstock.Table, tMax float64, nPoints int, tsTarget float64, log logger.Logger, rec *metrics.Recorder) *Handler {
	return &Handler{
		table:    table,
		sim:      gompertz.NewSimulator(table),
		calc:     mixture.NewCalculator(table),
		tMax:     tMax,
		nPoints:  nPoints,
		tsTarget: tsTarget,
		log:      log,
		rec:      rec,
	}
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("/api/ratios", RequestID(http.HandlerFunc(h.ratios)))
	mux.Handle("/api/simulate", RequestID(http.HandlerFunc(h.simulate)))
	mux.Handle("/api/mixture", RequestID(http.HandlerFunc(h.mixtureProps)))
}

// catalogEntry is the JSON shape of one ratio listing.
type catalogEntry struct {
	ID          string  `json:"id"`
	FWPercent   float64 `json:"fw_percent"`
	G0          float64 `json:"g0_ml_per_g_vs"`
	KMax        float64 `json:"kmax_ml_per_g_vs_day"`
	Lambda      float64 `json:"lambda_days"`
	Description string  `json:"description"`
}

func (h *Handler) ratios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var entries []catalogEntry
	for _, id := range h.table.RatioIDs() {
		rt, err := h.table.Ratio(id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		entries = append(entries, catalogEntry{
			ID:          rt.ID,
			FWPercent:   rt.FWPercent(),
			G0:          rt.Kinetics.G0,
			KMax:        rt.Kinetics.KMax,
			Lambda:      rt.Kinetics.Lambda,
			Description: rt.Description,
		})
	}
	h.writeJSON(w, r, entries)
}

func (h *Handler) simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ratio := r.URL.Query().Get("ratio")
	tMax, err := floatParam(r, "t_max", h.tMax)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	nPoints, err := intParam(r, "points", h.nPoints)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	start := time.Now()
	ts, err := h.sim.Simulate(ratio, tMax, nPoints)
	if h.rec != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		h.rec.RecordSimulation(ratio, outcome)
		h.rec.RecordComputeTime(time.Since(start))
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, ts)
}

func (h *Handler) mixtureProps(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	fw, err := floatParam(r, "fw", -1)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	cm, err := floatParam(r, "cm", -1)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	tsTarget, err := floatParam(r, "ts", h.tsTarget)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := h.calc.Properties(fw, cm, tsTarget)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, r, res)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("request %s: encode response: %v", GetRequestID(r.Context()), err)
	}
}

// fail maps model errors onto HTTP status codes: unknown identifiers
// become 404, constraint violations 400, anything else 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidParameter):
		status = http.StatusBadRequest
	}
	h.log.Warnf("request %s: %v", GetRequestID(r.Context()), err)
	http.Error(w, err.Error(), status)
}

func floatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidParam(name, raw)
	}
	return v, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam(name, raw)
	}
	return v, nil
}

func invalidParam(name, raw string) error {
	return fmt.Errorf("cannot parse %s=%q: %w", name, raw, model.ErrInvalidParameter)
}
