package metrics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/caesbrissa/visual-poker/internal/model"
)

const (
	downswingWindow = 5
	upswingWindow   = 3

	// An alert fires when the recent ROI drops below this fraction of
	// the lifetime ROI.
	roiDegradationRatio = 0.7
	roiRecentWindow     = 7
)

// buildAlerts evaluates every rule against the session tail and the goal
// state. Rules are independent; any subset may fire at once.
func buildAlerts(sessions []model.Session, overallROI float64, goal model.GoalProgress) []model.Alert {
	var alerts []model.Alert

	if loss, ok := tailRun(sessions, downswingWindow, false); ok {
		alerts = append(alerts, model.Alert{
			Kind:    model.AlertDownswing,
			Message: fmt.Sprintf("últimas %d sessões negativas, perda de %s", downswingWindow, loss.StringFixed(2)),
			Amount:  loss,
		})
	}

	if goal.Target.IsPositive() && goal.Accumulated.GreaterThanOrEqual(goal.Target) {
		alerts = append(alerts, model.Alert{
			Kind:    model.AlertGoalReached,
			Message: fmt.Sprintf("meta de %s do mês %s atingida", goal.Target.StringFixed(2), goal.Month),
			Amount:  goal.Accumulated,
		})
	}

	if overallROI > 0 {
		if recent, ok := recentROI(sessions, roiRecentWindow); ok && recent < overallROI*roiDegradationRatio {
			alerts = append(alerts, model.Alert{
				Kind:    model.AlertROIDegradation,
				Message: fmt.Sprintf("ROI recente %.2f%% abaixo de 70%% do ROI geral %.2f%%", recent, overallROI),
				Amount:  decimal.NewFromFloat(recent).Round(2),
			})
		}
	}

	if gain, ok := tailRun(sessions, upswingWindow, true); ok {
		alerts = append(alerts, model.Alert{
			Kind:    model.AlertUpswing,
			Message: fmt.Sprintf("últimas %d sessões positivas, ganho de %s", upswingWindow, gain.StringFixed(2)),
			Amount:  gain,
		})
	}

	return alerts
}

// tailRun checks whether the last n sessions are all strictly positive
// (wins=true) or all strictly negative. Returns the absolute sum.
func tailRun(sessions []model.Session, n int, wins bool) (decimal.Decimal, bool) {
	if len(sessions) < n {
		return decimal.Zero, false
	}
	sum := decimal.Zero
	for _, s := range sessions[len(sessions)-n:] {
		if wins && !s.Profit.IsPositive() {
			return decimal.Zero, false
		}
		if !wins && !s.Profit.IsNegative() {
			return decimal.Zero, false
		}
		sum = sum.Add(s.Profit.Abs())
	}
	return sum, true
}

// recentROI computes profit over rake for the trailing window. False
// when the window paid no rake.
func recentROI(sessions []model.Session, n int) (float64, bool) {
	start := len(sessions) - n
	if start < 0 {
		start = 0
	}
	profit := decimal.Zero
	rake := decimal.Zero
	for _, s := range sessions[start:] {
		profit = profit.Add(s.Profit)
		rake = rake.Add(s.Rake)
	}
	if !rake.IsPositive() {
		return 0, false
	}
	return profit.Div(rake).InexactFloat64() * 100, true
}
