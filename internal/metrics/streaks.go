package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/caesbrissa/visual-poker/internal/model"
)

// currentStreak walks backwards from the most recent session and counts
// the run of same-signed results. A zero result means no active streak.
func currentStreak(sessions []model.Session) model.Streak {
	if len(sessions) == 0 {
		return model.Streak{Direction: model.StreakNone}
	}

	last := sessions[len(sessions)-1].Profit
	if last.IsZero() {
		return model.Streak{Direction: model.StreakNone}
	}

	direction := model.StreakWin
	if last.IsNegative() {
		direction = model.StreakLoss
	}

	length := 0
	for i := len(sessions) - 1; i >= 0; i-- {
		p := sessions[i].Profit
		if direction == model.StreakWin && !p.IsPositive() {
			break
		}
		if direction == model.StreakLoss && !p.IsNegative() {
			break
		}
		length++
	}
	return model.Streak{Direction: direction, Length: length}
}

// longestStreaks scans once for the longest win run and the longest loss
// run. Zero-profit sessions reset both counters.
func longestStreaks(sessions []model.Session) (longestWin, longestLoss int) {
	var winRun, lossRun int
	for _, s := range sessions {
		switch {
		case s.Profit.IsPositive():
			winRun++
			lossRun = 0
		case s.Profit.IsNegative():
			lossRun++
			winRun = 0
		default:
			winRun, lossRun = 0, 0
		}
		if winRun > longestWin {
			longestWin = winRun
		}
		if lossRun > longestLoss {
			longestLoss = lossRun
		}
	}
	return longestWin, longestLoss
}

// swings tracks the largest sum of consecutive gains and the largest
// magnitude of consecutive losses. A result of the opposite sign, or
// zero, ends the running swing.
func swings(sessions []model.Session) (maxUp, maxDown decimal.Decimal) {
	var up, down decimal.Decimal
	for _, s := range sessions {
		switch {
		case s.Profit.IsPositive():
			up = up.Add(s.Profit)
			down = decimal.Zero
		case s.Profit.IsNegative():
			down = down.Add(s.Profit.Abs())
			up = decimal.Zero
		default:
			up, down = decimal.Zero, decimal.Zero
		}
		if up.GreaterThan(maxUp) {
			maxUp = up
		}
		if down.GreaterThan(maxDown) {
			maxDown = down
		}
	}
	return maxUp, maxDown
}
