package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/caesbrissa/visual-poker/internal/api/middleware"
	"github.com/caesbrissa/visual-poker/internal/metrics"
	"github.com/caesbrissa/visual-poker/internal/model"
)

// SnapshotProvider hands out the latest published snapshot.
type SnapshotProvider interface {
	Latest() (*model.Snapshot, bool)
}

// SnapshotHandler serves the dashboard read endpoints.
type SnapshotHandler struct {
	provider SnapshotProvider
	now      func() time.Time
	log      zerolog.Logger
}

// NewSnapshotHandler creates a snapshot handler.
func NewSnapshotHandler(provider SnapshotProvider, log zerolog.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		provider: provider,
		now:      time.Now,
		log:      log,
	}
}

// warmupHints tells the caller why no snapshot exists yet.
var warmupHints = []string{
	"the first fetch cycle may still be running, retry in a few seconds",
	"if this persists, check the server log for sheet access errors",
}

// GetSnapshot handles GET /api/snapshot
func (h *SnapshotHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.provider.Latest()
	if !ok {
		middleware.WriteErrorHints(w, http.StatusServiceUnavailable, "no snapshot available yet", warmupHints)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, snap)
}

// ListSessions handles GET /api/sessions?period=week|month|year|all
func (h *SnapshotHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	period := model.Period(r.URL.Query().Get("period"))
	switch period {
	case "", model.PeriodWeek, model.PeriodMonth, model.PeriodYear, model.PeriodAll:
	default:
		middleware.WriteError(w, http.StatusBadRequest, "period must be one of week, month, year, all")
		return
	}

	snap, ok := h.provider.Latest()
	if !ok {
		middleware.WriteErrorHints(w, http.StatusServiceUnavailable, "no snapshot available yet", warmupHints)
		return
	}

	sessions := metrics.FilterByPeriod(snap.Sessions, period, h.now())
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
		"period":   periodOrAll(period),
		"fetch_id": snap.FetchID,
	})
}

func periodOrAll(p model.Period) model.Period {
	if p == "" {
		return model.PeriodAll
	}
	return p
}
