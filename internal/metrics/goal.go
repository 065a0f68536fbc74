package metrics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caesbrissa/visual-poker/internal/model"
)

// goalProgress sums the current calendar month's profit against the
// configured target. DaysLeft counts today, so the required daily pace
// assumes play can still happen on the reference day.
func (e Engine) goalProgress(sessions []model.Session, now time.Time) model.GoalProgress {
	key := fmt.Sprintf("%02d/%d", int(now.Month()), now.Year())

	accumulated := decimal.Zero
	for _, s := range sessions {
		if s.DateValid && monthKey(s.Date) == key {
			accumulated = accumulated.Add(s.Profit)
		}
	}

	g := model.GoalProgress{
		Month:       key,
		Target:      e.MonthlyGoal,
		Accumulated: accumulated,
	}

	if e.MonthlyGoal.IsPositive() {
		g.ProgressPct = accumulated.Div(e.MonthlyGoal).InexactFloat64() * 100
	}

	remaining := e.MonthlyGoal.Sub(accumulated)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	g.Remaining = remaining

	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	g.DaysLeft = lastDay - now.Day() + 1
	if g.DaysLeft < 1 {
		g.DaysLeft = 1
	}
	g.RequiredPerDay = remaining.DivRound(decimal.NewFromInt(int64(g.DaysLeft)), 2)

	return g
}
