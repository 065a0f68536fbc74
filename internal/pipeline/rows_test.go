package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRow(t *testing.T) {
	s := DefaultSchema()

	sess, ok := s.MapRow([]string{"15/03/2024", "x", "R$ 1.234,56", "12 jogos", "x", "320,50", "sim", "", "5.000,00"})
	require.True(t, ok)

	assert.Equal(t, "15/03/2024", sess.Date)
	assert.True(t, sess.DateValid)
	assert.True(t, sess.Profit.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, 12, sess.GamesPlayed)
	assert.True(t, sess.Rake.Equal(decimal.RequireFromString("320.5")))
	assert.True(t, sess.CumulativeBalance.Equal(decimal.RequireFromString("5000")))
	assert.True(t, sess.RakebackBelowTarget)
	assert.False(t, sess.RakebackAboveTarget)
}

func TestMapRow_BlankDateSkips(t *testing.T) {
	s := DefaultSchema()

	_, ok := s.MapRow([]string{"", "", "100,00"})
	assert.False(t, ok)

	_, ok = s.MapRow([]string{"   "})
	assert.False(t, ok)

	_, ok = s.MapRow(nil)
	assert.False(t, ok)
}

func TestMapRow_MalformedDateKept(t *testing.T) {
	s := DefaultSchema()

	sess, ok := s.MapRow([]string{"março/2024", "", "50,00"})
	require.True(t, ok)
	assert.False(t, sess.DateValid)
	assert.Equal(t, "março/2024", sess.Date)
	assert.True(t, sess.Profit.Equal(decimal.RequireFromString("50")))
}

func TestMapRow_GarbageCellsDegrade(t *testing.T) {
	s := DefaultSchema()

	sess, ok := s.MapRow([]string{"01/01/2024", "", "#REF!", "??", "", "n/a"})
	require.True(t, ok)
	assert.True(t, sess.Profit.IsZero())
	assert.Equal(t, 0, sess.GamesPlayed)
	assert.True(t, sess.Rake.IsZero())
}

func TestMapRows_PreservesOrder(t *testing.T) {
	s := DefaultSchema()
	rows := [][]string{
		{"01/01/2024", "", "100,00"},
		{""},
		{"02/01/2024", "", "-50,00"},
		{"03/01/2024", "", "200,00"},
	}

	sessions := s.MapRows(rows)
	require.Len(t, sessions, 3)
	assert.Equal(t, "01/01/2024", sessions[0].Date)
	assert.Equal(t, "02/01/2024", sessions[1].Date)
	assert.Equal(t, "03/01/2024", sessions[2].Date)
}

func TestExtractSummary(t *testing.T) {
	s := DefaultSchema()
	row := []string{"x", "x", "x", "1.200", "45", "56.803,18", "40%", "25%", "-12.000,00", "93.451,02", "35%"}

	sum := s.ExtractSummary("Carlos Sbrissa", row)

	assert.Equal(t, "Carlos Sbrissa", sum.PlayerName)
	assert.Equal(t, 1200, sum.TotalGames)
	assert.Equal(t, 45, sum.ClassAttendance)
	assert.True(t, sum.TotalRake.Equal(decimal.RequireFromString("56803.18")))
	assert.Equal(t, "40%", sum.DealPercentage)
	assert.Equal(t, "25%", sum.RakebackBelowTargetLabel)
	assert.True(t, sum.CurrentMakeup.Equal(decimal.RequireFromString("-12000")))
	assert.True(t, sum.GrossProfitLoss.Equal(decimal.RequireFromString("93451.02")))
	assert.Equal(t, "35%", sum.RakebackAboveTargetLabel)
}

func TestExtractSummary_Defaults(t *testing.T) {
	s := DefaultSchema()

	sum := s.ExtractSummary("Carlos Sbrissa", nil)

	assert.Equal(t, "0%", sum.DealPercentage)
	assert.Equal(t, "25%", sum.RakebackBelowTargetLabel)
	assert.Equal(t, "35%", sum.RakebackAboveTargetLabel)
	assert.True(t, sum.TotalRake.IsZero())
	assert.Equal(t, 0, sum.TotalGames)
}

func TestSchemaValidate(t *testing.T) {
	assert.NoError(t, DefaultSchema().Validate())

	dup := DefaultSchema()
	dup.ColRake = dup.ColProfit
	assert.Error(t, dup.Validate())

	neg := DefaultSchema()
	neg.ColDate = -1
	assert.Error(t, neg.Validate())

	blank := DefaultSchema()
	blank.SessionRange = ""
	assert.Error(t, blank.Validate())
}
