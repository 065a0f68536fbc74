package pipeline

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/caesbrissa/visual-poker/internal/model"
)

// ErrNoRows reports a session range that produced no populated rows.
var ErrNoRows = errors.New("no session rows in source range")

// MetricsEngine derives the statistics block of a snapshot. Declared here
// so the assembler depends on behavior, not on the metrics package.
type MetricsEngine interface {
	Compute(sum model.AccountSummary, sessions []model.Session, now time.Time) model.Derived
}

// Builder assembles immutable snapshots from raw sheet rows.
type Builder struct {
	Schema Schema
	Player string
	Engine MetricsEngine
}

// Build maps the header row and session rows into a complete Snapshot.
// It is pure: same input and clock, same snapshot (modulo FetchID). The
// only failure is an empty session region; a snapshot is never returned
// partially populated.
func (b Builder) Build(headerRow []string, rows [][]string, now time.Time) (*model.Snapshot, error) {
	sessions := b.Schema.MapRows(rows)
	if len(sessions) == 0 {
		return nil, ErrNoRows
	}

	summary := b.Schema.ExtractSummary(b.Player, headerRow)

	var below, above int
	for _, sess := range sessions {
		if sess.RakebackBelowTarget {
			below++
		}
		if sess.RakebackAboveTarget {
			above++
		}
	}

	return &model.Snapshot{
		AccountSummary:     summary,
		Sessions:           sessions,
		SessionCount:       len(sessions),
		RakebackBelowCount: below,
		RakebackAboveCount: above,
		Metrics:            b.Engine.Compute(summary, sessions, now),
		FetchID:            uuid.NewString(),
		GeneratedAt:        now,
	}, nil
}
