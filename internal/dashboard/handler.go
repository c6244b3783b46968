package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/harborlight-health/clinic-platform/internal/clinic"
	"github.com/harborlight-health/clinic-platform/internal/scheduling"
	"github.com/harborlight-health/clinic-platform/pkg/logging"
)

// SnapshotResponse is the JSON envelope served to KPI cards and gauges.
type SnapshotResponse struct {
	OrgID       string `json:"org_id"`
	GeneratedAt string `json:"generated_at"`
	Metrics
}

// Handler serves dashboard metrics JSON for a clinic.
type Handler struct {
	appointments scheduling.AppointmentSource
	patients     scheduling.PatientSource
	settings     clinic.SettingsReader
	cache        *SnapshotCache
	logger       *logging.Logger
	now          func() time.Time
}

func NewHandler(appointments scheduling.AppointmentSource, patients scheduling.PatientSource, settings clinic.SettingsReader, cache *SnapshotCache, logger *logging.Logger) *Handler {
	if appointments == nil || patients == nil {
		panic("dashboard: appointment and patient sources required")
	}
	if settings == nil {
		panic("dashboard: settings reader required")
	}
	if cache == nil {
		cache = NewSnapshotCache(nil, 0, nil, logger)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		appointments: appointments,
		patients:     patients,
		settings:     settings,
		cache:        cache,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock overrides the reference-instant source. Tests use this to pin
// "now".
func (h *Handler) WithClock(now func() time.Time) *Handler {
	if now != nil {
		h.now = now
	}
	return h
}

// GetMetrics returns the computed dashboard snapshot.
// GET /clinics/{orgID}/dashboard/metrics
// Query params:
//   - at: RFC3339 reference instant (optional, defaults to the current time)
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	if strings.TrimSpace(orgID) == "" {
		http.Error(w, `{"error":"org_id required"}`, http.StatusBadRequest)
		return
	}

	now := h.now().UTC()
	if raw := strings.TrimSpace(r.URL.Query().Get("at")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, `{"error":"invalid at time, use RFC3339 format"}`, http.StatusBadRequest)
			return
		}
		now = parsed
	}

	settings, err := h.settings.Get(r.Context(), orgID)
	if err != nil {
		// The dashboard still renders on defaults when the settings store is
		// unreachable.
		h.logger.Warn("failed to load clinic settings, using defaults", "org_id", orgID, "error", err)
		settings = clinic.DefaultSettings(orgID)
	}
	now = now.In(settings.Location())

	appointments, err := h.appointments.Appointments(r.Context(), orgID)
	if err != nil {
		h.logger.Error("failed to load appointments", "org_id", orgID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	patients, err := h.patients.Patients(r.Context(), orgID)
	if err != nil {
		h.logger.Error("failed to load patients", "org_id", orgID, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	metrics := h.cache.Snapshot(r.Context(), orgID, Input{
		Appointments:    appointments,
		Patients:        patients,
		WorkingHours:    settings.WorkingHours,
		AverageTicket:   float64(settings.AverageTicketCents),
		OccupancyTarget: settings.OccupancyTargetPct,
		Now:             now,
	})

	resp := SnapshotResponse{
		OrgID:       orgID,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Metrics:     metrics,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode dashboard metrics", "org_id", orgID, "error", err)
	}
}
