package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/caesbrissa/visual-poker/internal/model"
)

func TestLongestStreaks(t *testing.T) {
	win, loss := longestStreaks(sessionsFromProfits(100, -50, 200, 300, -10, 400, 500, 600))
	assert.Equal(t, 3, win)
	assert.Equal(t, 1, loss)
}

func TestLongestStreaks_ZeroResets(t *testing.T) {
	win, loss := longestStreaks(sessionsFromProfits(100, 200, 0, 300, -50, -60))
	assert.Equal(t, 2, win)
	assert.Equal(t, 2, loss)
}

func TestLongestStreaks_Empty(t *testing.T) {
	win, loss := longestStreaks(nil)
	assert.Zero(t, win)
	assert.Zero(t, loss)
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name      string
		profits   []float64
		direction string
		length    int
	}{
		{"trailing wins", []float64{-10, 50, 60, 70}, model.StreakWin, 3},
		{"trailing losses", []float64{100, -5, -15}, model.StreakLoss, 2},
		{"all wins", []float64{10, 20}, model.StreakWin, 2},
		{"zero ends streak", []float64{10, 20, 0}, model.StreakNone, 0},
		{"single loss", []float64{-5}, model.StreakLoss, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := currentStreak(sessionsFromProfits(tt.profits...))
			assert.Equal(t, tt.direction, s.Direction)
			assert.Equal(t, tt.length, s.Length)
		})
	}
}

func TestCurrentStreak_Empty(t *testing.T) {
	s := currentStreak(nil)
	assert.Equal(t, model.StreakNone, s.Direction)
	assert.Zero(t, s.Length)
}

func TestSwings(t *testing.T) {
	up, down := swings(sessionsFromProfits(100, 200, -50, -80, 300))
	assert.True(t, up.Equal(decimal.NewFromInt(300)), "maxUpswing got %s", up)
	assert.True(t, down.Equal(decimal.NewFromInt(130)), "maxDownswing got %s", down)
}

func TestSwings_ZeroResetsBoth(t *testing.T) {
	up, down := swings(sessionsFromProfits(100, 0, 50, -20, 0, -30))
	assert.True(t, up.Equal(decimal.NewFromInt(100)), "got %s", up)
	assert.True(t, down.Equal(decimal.NewFromInt(30)), "got %s", down)
}

func TestSwings_Empty(t *testing.T) {
	up, down := swings(nil)
	assert.True(t, up.IsZero())
	assert.True(t, down.IsZero())
}
