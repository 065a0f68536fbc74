// Package metrics derives the statistics block of a snapshot from the
// account summary and the ordered session list. Every derivation is pure:
// the same (summary, sessions, now) triple always yields the same result.
package metrics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caesbrissa/visual-poker/internal/model"
	"github.com/caesbrissa/visual-poker/internal/pipeline"
)

const recentFormWindow = 7

// Engine computes derived metrics. MonthlyGoal is the configured profit
// target for goal tracking; zero disables the goal-reached alert.
type Engine struct {
	MonthlyGoal decimal.Decimal
}

// Compute derives the full metrics battery. Session order is trusted as
// chronological; nothing here re-sorts by date.
func (e Engine) Compute(sum model.AccountSummary, sessions []model.Session, now time.Time) model.Derived {
	d := model.Derived{}

	wins := 0
	gross := decimal.Zero
	days := make(map[string]struct{})
	for _, s := range sessions {
		if s.Profit.IsPositive() {
			wins++
		}
		gross = gross.Add(s.Profit)
		days[s.Date] = struct{}{}

		if s.Profit.GreaterThan(d.LargestWin) {
			d.LargestWin = s.Profit
		}
		if s.Profit.LessThan(d.LargestLoss) {
			d.LargestLoss = s.Profit
		}
	}
	d.UniqueDaysPlayed = len(days)

	if n := len(sessions); n > 0 {
		d.WinRate = float64(wins) / float64(n) * 100
		d.AveragePerSession = gross.DivRound(decimal.NewFromInt(int64(n)), 2)
	}
	if sum.TotalGames > 0 {
		d.AveragePerGame = sum.GrossProfitLoss.DivRound(decimal.NewFromInt(int64(sum.TotalGames)), 2)
	}
	if sum.TotalRake.IsPositive() {
		d.ROI = sum.GrossProfitLoss.Div(sum.TotalRake).InexactFloat64() * 100
	}

	belowPct := pipeline.ParsePercent(sum.RakebackBelowTargetLabel, "25%")
	abovePct := pipeline.ParsePercent(sum.RakebackAboveTargetLabel, "35%")
	d.RakebackBelowTarget = sum.TotalRake.Mul(decimal.NewFromFloat(belowPct)).Round(2)
	d.RakebackAboveTarget = sum.TotalRake.Mul(decimal.NewFromFloat(abovePct)).Round(2)

	d.RecentForm = recentForm(sessions)
	d.CurrentStreak = currentStreak(sessions)
	d.LongestWinStreak, d.LongestLossStreak = longestStreaks(sessions)
	d.MaxUpswing, d.MaxDownswing = swings(sessions)

	monthly := rollups(sessions)
	d.MonthlyChart = lastN(monthly, 12)
	d.MonthlyTable = lastN(monthly, 6)
	d.BestMonth = bestMonth(monthly)

	d.Goal = e.goalProgress(sessions, now)
	d.Alerts = buildAlerts(sessions, d.ROI, d.Goal)
	d.ROISeries = roiSeries(sessions)
	d.Distribution = distribution(sessions)

	return d
}

// recentForm classifies the trailing window of sessions. Zero-profit
// sessions count as neither a win nor a loss.
func recentForm(sessions []model.Session) model.RecentForm {
	start := len(sessions) - recentFormWindow
	if start < 0 {
		start = 0
	}

	form := model.RecentForm{Trend: model.TrendEven}
	for _, s := range sessions[start:] {
		switch {
		case s.Profit.IsPositive():
			form.Wins++
		case s.Profit.IsNegative():
			form.Losses++
		}
	}
	form.Label = fmt.Sprintf("%dW-%dL", form.Wins, form.Losses)
	if form.Wins > form.Losses {
		form.Trend = model.TrendUp
	} else if form.Losses > form.Wins {
		form.Trend = model.TrendDown
	}
	return form
}
