package model

import "github.com/shopspring/decimal"

// Period selects a session window relative to a reference time.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// Trend values for the recent-form window.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendEven = "even"
)

// Streak directions.
const (
	StreakWin  = "win"
	StreakLoss = "loss"
	StreakNone = "none"
)

// RecentForm summarizes the trailing sessions as a win-loss pair. Ties are
// reported as-is with an even trend.
type RecentForm struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Label  string `json:"label"` // e.g. "4W-3L"
	Trend  string `json:"trend"`
}

// Streak is a run of consecutive same-signed results ending at the most
// recent session. A zero-profit session terminates any run.
type Streak struct {
	Direction string `json:"direction"`
	Length    int    `json:"length"`
}

// MonthlyRollup aggregates the sessions of one month key (MM/YYYY). Keys
// appear in first-seen order, which follows the source row order.
type MonthlyRollup struct {
	Month    string          `json:"month"`
	Profit   decimal.Decimal `json:"profit"`
	Games    int             `json:"games"`
	Rake     decimal.Decimal `json:"rake"`
	Sessions int             `json:"sessions"`
	Wins     int             `json:"wins"`
	WinRate  float64         `json:"win_rate"`

	// DeltaPct is the month-over-month profit change in percent. Nil for
	// the first month on record and when the previous month closed at
	// exactly zero, so no infinity ever reaches the JSON payload.
	DeltaPct *float64 `json:"delta_pct,omitempty"`
}

// BestMonth is the highest-profit month on record. Month is "-" when no
// month closed positive.
type BestMonth struct {
	Month  string          `json:"month"`
	Profit decimal.Decimal `json:"profit"`
}

// GoalProgress tracks the configured profit target for the current
// calendar month.
type GoalProgress struct {
	Month          string          `json:"month"` // MM/YYYY
	Target         decimal.Decimal `json:"target"`
	Accumulated    decimal.Decimal `json:"accumulated"`
	ProgressPct    float64         `json:"progress_pct"`
	Remaining      decimal.Decimal `json:"remaining"`
	DaysLeft       int             `json:"days_left"` // calendar days left, counting today
	RequiredPerDay decimal.Decimal `json:"required_per_day"`
}

// AlertKind identifies a rule-based alert condition. Any subset may fire
// on the same snapshot.
type AlertKind string

const (
	AlertDownswing      AlertKind = "downswing"
	AlertGoalReached    AlertKind = "goal_reached"
	AlertROIDegradation AlertKind = "roi_degradation"
	AlertUpswing        AlertKind = "upswing"
)

// Alert is one fired alert condition with a human-readable message.
type Alert struct {
	Kind    AlertKind       `json:"kind"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount"`
}

// ROIPoint is one point of the cumulative ROI series.
type ROIPoint struct {
	Date string  `json:"date"`
	ROI  float64 `json:"roi"`
}

// ResultBucket counts sessions whose profit fell inside a fixed range.
type ResultBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Derived is the full battery of statistics computed from one
// (AccountSummary, []Session) pair. It is deterministic for a fixed input
// and reference time.
type Derived struct {
	WinRate           float64         `json:"win_rate"`
	AveragePerGame    decimal.Decimal `json:"average_per_game"`
	AveragePerSession decimal.Decimal `json:"average_per_session"`
	LargestWin        decimal.Decimal `json:"largest_win"`
	LargestLoss       decimal.Decimal `json:"largest_loss"`

	RakebackBelowTarget decimal.Decimal `json:"rakeback_below_target"`
	RakebackAboveTarget decimal.Decimal `json:"rakeback_above_target"`

	ROI              float64 `json:"roi"`
	UniqueDaysPlayed int     `json:"unique_days_played"`

	RecentForm        RecentForm `json:"recent_form"`
	CurrentStreak     Streak     `json:"current_streak"`
	LongestWinStreak  int        `json:"longest_win_streak"`
	LongestLossStreak int        `json:"longest_loss_streak"`

	MaxUpswing   decimal.Decimal `json:"max_upswing"`
	MaxDownswing decimal.Decimal `json:"max_downswing"`

	BestMonth    BestMonth       `json:"best_month"`
	MonthlyChart []MonthlyRollup `json:"monthly_chart"` // most recent 12 months
	MonthlyTable []MonthlyRollup `json:"monthly_table"` // most recent 6 months

	Goal         GoalProgress   `json:"goal"`
	Alerts       []Alert        `json:"alerts"`
	ROISeries    []ROIPoint     `json:"roi_series"`
	Distribution []ResultBucket `json:"distribution"`
}
