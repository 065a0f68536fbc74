package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/caesbrissa/visual-poker/internal/model"
)

// FilterByPeriod keeps sessions whose date falls on or after the window
// cutoff relative to now. "all", an empty period and any unknown value
// return the input unchanged. Sessions with an unparseable date are
// dropped from filtered views since they cannot be placed in time.
func FilterByPeriod(sessions []model.Session, period model.Period, now time.Time) []model.Session {
	// Session dates parse to midnight, so the cutoff must start at
	// midnight too or a session on the cutoff date would be dropped
	// for any afternoon reference time.
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var cutoff time.Time
	switch period {
	case model.PeriodWeek:
		cutoff = day.AddDate(0, 0, -7)
	case model.PeriodMonth:
		cutoff = day.AddDate(0, -1, 0)
	case model.PeriodYear:
		cutoff = day.AddDate(-1, 0, 0)
	default:
		return sessions
	}

	out := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		if !s.DateValid {
			continue
		}
		t, err := parseDate(s.Date, now.Location())
		if err != nil {
			continue
		}
		if !t.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// parseDate reads DD/MM/YYYY strictly: a date like 31/02/2024 that
// time.Date would silently normalize is rejected.
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return time.Time{}, strconv.ErrSyntax
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, err
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, err
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, strconv.ErrRange
	}
	return t, nil
}
