package pipeline

import (
	"regexp"
	"strings"

	"github.com/caesbrissa/visual-poker/internal/model"
)

var dateGrammar = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// cell returns the trimmed value at index i, or "" when the fetched row
// is shorter than the schema expects. The sheets API drops trailing empty
// cells, so short rows are normal, not errors.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// MapRow converts one raw sheet row into a Session. The second return is
// false only when the date cell is blank, which marks the row as padding
// below the last real entry. Value cells never disqualify a row; garbage
// degrades to zero field by field.
func (s Schema) MapRow(row []string) (model.Session, bool) {
	date := cell(row, s.ColDate)
	if date == "" {
		return model.Session{}, false
	}

	return model.Session{
		Date:                date,
		DateValid:           dateGrammar.MatchString(date),
		Profit:              NormalizeDecimal(cell(row, s.ColProfit)),
		GamesPlayed:         ParseGames(cell(row, s.ColGames)),
		Rake:                NormalizeDecimal(cell(row, s.ColRake)),
		CumulativeBalance:   NormalizeDecimal(cell(row, s.ColBalance)),
		RakebackBelowTarget: cell(row, s.ColRakebackBelow) != "",
		RakebackAboveTarget: cell(row, s.ColRakebackAbove) != "",
	}, true
}

// MapRows maps every populated row, preserving source order.
func (s Schema) MapRows(rows [][]string) []model.Session {
	sessions := make([]model.Session, 0, len(rows))
	for _, row := range rows {
		if sess, ok := s.MapRow(row); ok {
			sessions = append(sessions, sess)
		}
	}
	return sessions
}

// labelOr keeps the sheet's own label text when present.
func labelOr(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

// ExtractSummary reads the account-level scalars from the fixed header
// row. Each field falls back independently, so one blank cell never
// blanks its neighbors.
func (s Schema) ExtractSummary(player string, row []string) model.AccountSummary {
	return model.AccountSummary{
		PlayerName:      player,
		CurrentMakeup:   NormalizeDecimal(cell(row, s.ColMakeup)),
		GrossProfitLoss: NormalizeDecimal(cell(row, s.ColGross)),
		TotalRake:       NormalizeDecimal(cell(row, s.ColTotalRake)),
		TotalGames:      ParseGames(cell(row, s.ColTotalGames)),
		ClassAttendance: ParseGames(cell(row, s.ColClassAttendance)),

		DealPercentage:           labelOr(cell(row, s.ColDeal), "0%"),
		RakebackBelowTargetLabel: labelOr(cell(row, s.ColRBBelowLabel), "25%"),
		RakebackAboveTargetLabel: labelOr(cell(row, s.ColRBAboveLabel), "35%"),
	}
}
