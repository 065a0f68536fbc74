package pipeline

import "fmt"

// Schema declares where each field lives inside the source workbook:
// which tab, which A1 ranges, and which zero-based column index inside a
// fetched row holds each value. Keeping the layout in one validated
// struct means a workbook reshuffle is a config change, not a code hunt.
type Schema struct {
	SheetName    string `yaml:"sheet_name"`
	HeaderRange  string `yaml:"header_range"`
	SessionRange string `yaml:"session_range"`

	// Session row columns.
	ColDate          int `yaml:"col_date"`
	ColProfit        int `yaml:"col_profit"`
	ColGames         int `yaml:"col_games"`
	ColRake          int `yaml:"col_rake"`
	ColRakebackBelow int `yaml:"col_rakeback_below"`
	ColRakebackAbove int `yaml:"col_rakeback_above"`
	ColBalance       int `yaml:"col_balance"`

	// Header row columns.
	ColTotalGames      int `yaml:"col_total_games"`
	ColClassAttendance int `yaml:"col_class_attendance"`
	ColTotalRake       int `yaml:"col_total_rake"`
	ColDeal            int `yaml:"col_deal"`
	ColRBBelowLabel    int `yaml:"col_rb_below_label"`
	ColMakeup          int `yaml:"col_makeup"`
	ColGross           int `yaml:"col_gross"`
	ColRBAboveLabel    int `yaml:"col_rb_above_label"`
}

// DefaultSchema mirrors the production workbook layout.
func DefaultSchema() Schema {
	return Schema{
		SheetName:    "Sbrissa",
		HeaderRange:  "Sbrissa!A3:K3",
		SessionRange: "Sbrissa!A7:I1000",

		ColDate:          0,
		ColProfit:        2,
		ColGames:         3,
		ColRake:          5,
		ColRakebackBelow: 6,
		ColRakebackAbove: 7,
		ColBalance:       8,

		ColTotalGames:      3,
		ColClassAttendance: 4,
		ColTotalRake:       5,
		ColDeal:            6,
		ColRBBelowLabel:    7,
		ColMakeup:          8,
		ColGross:           9,
		ColRBAboveLabel:    10,
	}
}

// Validate rejects layouts that cannot address a row. It runs once at
// startup so bad column wiring surfaces before the first fetch.
func (s Schema) Validate() error {
	if s.HeaderRange == "" {
		return fmt.Errorf("schema: header range is empty")
	}
	if s.SessionRange == "" {
		return fmt.Errorf("schema: session range is empty")
	}

	cols := map[string]int{
		"date":           s.ColDate,
		"profit":         s.ColProfit,
		"games":          s.ColGames,
		"rake":           s.ColRake,
		"rakeback_below": s.ColRakebackBelow,
		"rakeback_above": s.ColRakebackAbove,
		"balance":        s.ColBalance,
	}
	seen := make(map[int]string, len(cols))
	for name, idx := range cols {
		if idx < 0 {
			return fmt.Errorf("schema: column %s has negative index %d", name, idx)
		}
		if other, dup := seen[idx]; dup {
			return fmt.Errorf("schema: columns %s and %s both map to index %d", other, name, idx)
		}
		seen[idx] = name
	}

	for name, idx := range map[string]int{
		"total_games":      s.ColTotalGames,
		"class_attendance": s.ColClassAttendance,
		"total_rake":       s.ColTotalRake,
		"deal":             s.ColDeal,
		"rb_below_label":   s.ColRBBelowLabel,
		"makeup":           s.ColMakeup,
		"gross":            s.ColGross,
		"rb_above_label":   s.ColRBAboveLabel,
	} {
		if idx < 0 {
			return fmt.Errorf("schema: header column %s has negative index %d", name, idx)
		}
	}
	return nil
}
