package metrics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/caesbrissa/visual-poker/internal/model"
)

// monthKey extracts "MM/YYYY" from a DD/MM/YYYY date string. Callers
// must have checked DateValid first.
func monthKey(date string) string {
	parts := strings.Split(date, "/")
	return parts[1] + "/" + parts[2]
}

// rollups groups sessions by month in first-seen order. Sessions with an
// unparseable date are left out rather than being piled into a junk
// bucket.
func rollups(sessions []model.Session) []model.MonthlyRollup {
	index := make(map[string]int)
	var out []model.MonthlyRollup

	for _, s := range sessions {
		if !s.DateValid {
			continue
		}
		key := monthKey(s.Date)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, model.MonthlyRollup{Month: key})
		}
		out[i].Profit = out[i].Profit.Add(s.Profit)
		out[i].Games += s.GamesPlayed
		out[i].Rake = out[i].Rake.Add(s.Rake)
		out[i].Sessions++
		if s.Profit.IsPositive() {
			out[i].Wins++
		}
	}

	for i := range out {
		if out[i].Sessions > 0 {
			out[i].WinRate = float64(out[i].Wins) / float64(out[i].Sessions) * 100
		}
		if i == 0 {
			continue
		}
		prev := out[i-1].Profit
		if prev.IsZero() {
			continue
		}
		delta := out[i].Profit.Sub(prev).Div(prev.Abs()).InexactFloat64() * 100
		out[i].DeltaPct = &delta
	}
	return out
}

// lastN returns the trailing n rollups.
func lastN(rollups []model.MonthlyRollup, n int) []model.MonthlyRollup {
	if len(rollups) <= n {
		return rollups
	}
	return rollups[len(rollups)-n:]
}

// bestMonth picks the highest-profit month. "-" stands in when no month
// closed positive.
func bestMonth(rollups []model.MonthlyRollup) model.BestMonth {
	best := model.BestMonth{Month: "-"}
	for _, r := range rollups {
		if r.Profit.IsPositive() && r.Profit.GreaterThan(best.Profit) {
			best = model.BestMonth{Month: r.Month, Profit: r.Profit}
		}
	}
	return best
}

// roiSeries builds the cumulative profit-over-rake curve, one point per
// session that paid any rake so far.
func roiSeries(sessions []model.Session) []model.ROIPoint {
	var out []model.ROIPoint
	profit := decimal.Zero
	rake := decimal.Zero
	for _, s := range sessions {
		profit = profit.Add(s.Profit)
		rake = rake.Add(s.Rake)
		if !rake.IsPositive() {
			continue
		}
		out = append(out, model.ROIPoint{
			Date: s.Date,
			ROI:  profit.Div(rake).InexactFloat64() * 100,
		})
	}
	return out
}

var bucketBounds = []int64{-1000, -500, -200, 0, 200, 500, 1000}

var bucketLabels = []string{
	"< -1000",
	"-1000 a -500",
	"-500 a -200",
	"-200 a 0",
	"0 a 200",
	"200 a 500",
	"500 a 1000",
	"> 1000",
}

// distribution counts sessions per fixed profit range.
func distribution(sessions []model.Session) []model.ResultBucket {
	counts := make([]int, len(bucketLabels))
	for _, s := range sessions {
		i := len(bucketBounds)
		for j, bound := range bucketBounds {
			if s.Profit.LessThan(decimal.NewFromInt(bound)) {
				i = j
				break
			}
		}
		counts[i]++
	}

	out := make([]model.ResultBucket, len(bucketLabels))
	for i, label := range bucketLabels {
		out[i] = model.ResultBucket{Label: label, Count: counts[i]}
	}
	return out
}
