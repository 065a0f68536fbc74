package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caesbrissa/visual-poker/internal/model"
)

func TestFilterByPeriod_Week(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		session("10/03/2024", 10),
		session("13/03/2024", 20),
		session("19/03/2024", 30),
	}

	out := FilterByPeriod(sessions, model.PeriodWeek, now)

	require.Len(t, out, 2)
	assert.Equal(t, "13/03/2024", out[0].Date)
	assert.Equal(t, "19/03/2024", out[1].Date)
}

func TestFilterByPeriod_CutoffInclusive(t *testing.T) {
	sessions := []model.Session{session("13/03/2024", 10)}

	// a session on the cutoff date stays in regardless of the clock
	// time of the reference instant
	for _, now := range []time.Time{
		time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 23, 59, 59, 0, time.UTC),
	} {
		out := FilterByPeriod(sessions, model.PeriodWeek, now)
		assert.Len(t, out, 1, "now=%s", now)
	}
}

func TestFilterByPeriod_Month(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		session("10/02/2024", 10),
		session("20/02/2024", 20),
		session("10/03/2024", 30),
	}

	out := FilterByPeriod(sessions, model.PeriodMonth, now)
	require.Len(t, out, 2)
	assert.Equal(t, "20/02/2024", out[0].Date)
}

func TestFilterByPeriod_Year(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		session("30/06/2023", 10),
		session("02/07/2023", 20),
		session("01/01/2024", 30),
	}

	out := FilterByPeriod(sessions, model.PeriodYear, now)
	require.Len(t, out, 2)
	assert.Equal(t, "02/07/2023", out[0].Date)
	assert.Equal(t, "01/01/2024", out[1].Date)
}

func TestFilterByPeriod_AllAndUnknown(t *testing.T) {
	sessions := []model.Session{session("01/01/2000", 10)}
	now := time.Now()

	assert.Len(t, FilterByPeriod(sessions, model.PeriodAll, now), 1)
	assert.Len(t, FilterByPeriod(sessions, "", now), 1)
	assert.Len(t, FilterByPeriod(sessions, "decade", now), 1)
}

func TestFilterByPeriod_DropsInvalidDates(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	bad := session("whenever", 10)
	bad.DateValid = false
	sessions := []model.Session{bad, session("19/03/2024", 20)}

	out := FilterByPeriod(sessions, model.PeriodWeek, now)
	require.Len(t, out, 1)
	assert.Equal(t, "19/03/2024", out[0].Date)
}

func TestParseDate_RejectsNormalizedDates(t *testing.T) {
	_, err := parseDate("31/02/2024", time.UTC)
	assert.Error(t, err)

	_, err = parseDate("00/01/2024", time.UTC)
	assert.Error(t, err)

	got, err := parseDate("29/02/2024", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}
