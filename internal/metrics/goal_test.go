package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/caesbrissa/visual-poker/internal/model"
)

func TestGoalProgress(t *testing.T) {
	e := Engine{MonthlyGoal: decimal.NewFromInt(10000)}
	now := time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		session("05/03/2024", 2000),
		session("10/03/2024", 2000),
		session("05/02/2024", 9999),
	}

	g := e.goalProgress(sessions, now)

	assert.Equal(t, "03/2024", g.Month)
	assert.True(t, g.Accumulated.Equal(decimal.NewFromInt(4000)))
	assert.InDelta(t, 40.0, g.ProgressPct, 1e-9)
	assert.True(t, g.Remaining.Equal(decimal.NewFromInt(6000)))
	// March has 31 days, today counts
	assert.Equal(t, 11, g.DaysLeft)
	assert.True(t, g.RequiredPerDay.Equal(decimal.RequireFromString("545.45")), "got %s", g.RequiredPerDay)
}

func TestGoalProgress_Exceeded(t *testing.T) {
	e := Engine{MonthlyGoal: decimal.NewFromInt(1000)}
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	g := e.goalProgress([]model.Session{session("05/03/2024", 1500)}, now)

	assert.True(t, g.Remaining.IsZero())
	assert.True(t, g.RequiredPerDay.IsZero())
	assert.InDelta(t, 150.0, g.ProgressPct, 1e-9)
}

func TestGoalProgress_ZeroTarget(t *testing.T) {
	e := Engine{}
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	g := e.goalProgress([]model.Session{session("05/03/2024", 500)}, now)

	assert.Zero(t, g.ProgressPct)
	assert.True(t, g.Target.IsZero())
}

func TestGoalProgress_LastDayOfMonth(t *testing.T) {
	e := Engine{MonthlyGoal: decimal.NewFromInt(1000)}
	now := time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)

	g := e.goalProgress(nil, now)

	assert.Equal(t, 1, g.DaysLeft)
	assert.True(t, g.RequiredPerDay.Equal(decimal.NewFromInt(1000)))
}

func TestGoalProgress_IgnoresInvalidDates(t *testing.T) {
	e := Engine{MonthlyGoal: decimal.NewFromInt(1000)}
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	bad := session("bad/03/2024", 500)
	bad.DateValid = false

	g := e.goalProgress([]model.Session{bad}, now)
	assert.True(t, g.Accumulated.IsZero())
}
