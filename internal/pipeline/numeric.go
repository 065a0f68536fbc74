package pipeline

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrBlankCell reports a cell that was empty after trimming.
var ErrBlankCell = errors.New("blank cell")

var nonDigits = regexp.MustCompile(`\D`)

// stripper removes currency markers and structural characters after the
// sign has been captured. The non-breaking space shows up in cells pasted
// from formatted spreadsheets.
var stripper = strings.NewReplacer(
	"R$", "",
	"$", "",
	" ", "",
	" ", "",
	"(", "",
	")", "",
	"-", "",
)

// ParseDecimal converts spreadsheet cell text into a decimal amount.
// It accepts Brazilian formatting ("R$ 1.234,56"), plain American
// formatting ("1234.56"), and accounting negatives ("(500,00)" or
// "-237,11").
//
// Separator disambiguation: when both '.' and ',' are present the dot is
// a thousands separator and the comma the decimal mark. A lone comma is a
// decimal mark. A lone dot, or no separator at all, is read as already
// dot-decimal.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrBlankCell
	}

	negative := strings.Contains(s, "-") || strings.HasPrefix(s, "(")
	s = stripper.Replace(s)

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if negative && d.IsPositive() {
		d = d.Neg()
	}
	return d, nil
}

// NormalizeDecimal is the lossy form of ParseDecimal used inside the row
// mapper: any cell that fails to parse becomes zero so a single garbled
// cell never aborts a fetch cycle.
func NormalizeDecimal(raw string) decimal.Decimal {
	d, err := ParseDecimal(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseGames extracts a game count from cell text like "12 jogos" by
// discarding every non-digit character. Anything that leaves no digits
// counts as zero.
func ParseGames(raw string) int {
	digits := nonDigits.ReplaceAllString(raw, "")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// ParsePercent reads a tier label like "25%" or "37,5%" into a ratio
// (0.25). When the label does not parse the fallback is tried; if that
// fails too the result is zero.
func ParsePercent(raw, fallback string) float64 {
	for _, candidate := range []string{raw, fallback} {
		s := strings.TrimSpace(candidate)
		s = strings.TrimSuffix(s, "%")
		s = strings.ReplaceAll(s, ",", ".")
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		return f / 100
	}
	return 0
}
