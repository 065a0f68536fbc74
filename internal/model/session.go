package model

import "github.com/shopspring/decimal"

// Session is one row of recorded play activity from the session region of
// the source sheet. The session slice preserves source row order, which the
// metrics engine treats as the canonical chronological order; no re-sort by
// date ever happens.
type Session struct {
	// Date holds the cell text verbatim (DD/MM/YYYY). It is not parsed into
	// a date type at ingestion. DateValid records whether the text matched
	// the expected grammar, so period filters and monthly grouping can skip
	// unparseable rows deterministically instead of failing later.
	Date      string `json:"date"`
	DateValid bool   `json:"date_valid"`

	Profit            decimal.Decimal `json:"profit"`
	GamesPlayed       int             `json:"games_played"`
	Rake              decimal.Decimal `json:"rake"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`

	// Rakeback payout markers: true when the corresponding tier cell held
	// any non-blank text for this session.
	RakebackBelowTarget bool `json:"rakeback_below_target,omitempty"`
	RakebackAboveTarget bool `json:"rakeback_above_target,omitempty"`
}

// AccountSummary holds the account-level scalars extracted from the fixed
// summary row of the sheet. The balance and profit totals are trusted from
// the source, never recomputed from sessions.
type AccountSummary struct {
	PlayerName      string          `json:"player_name"`
	CurrentMakeup   decimal.Decimal `json:"current_makeup"`
	GrossProfitLoss decimal.Decimal `json:"gross_profit_loss"`
	TotalRake       decimal.Decimal `json:"total_rake"`
	TotalGames      int             `json:"total_games"`
	ClassAttendance int             `json:"class_attendance"`

	// Free-text labels as written in the sheet, e.g. "40%".
	DealPercentage           string `json:"deal_percentage"`
	RakebackBelowTargetLabel string `json:"rakeback_below_target_label"`
	RakebackAboveTargetLabel string `json:"rakeback_above_target_label"`
}
