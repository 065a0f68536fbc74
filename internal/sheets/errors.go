package sheets

import (
	"errors"
	"fmt"
)

// ErrNoData reports a spreadsheet that returned zero session rows.
var ErrNoData = errors.New("spreadsheet returned no session data")

// SourceError wraps an upstream failure with remediation hints suitable
// for surfacing directly to the dashboard operator.
type SourceError struct {
	Op    string
	Hints []string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("sheets: %s: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// accessHints lists the usual causes of a failed read: the sheet was not
// shared with the service account, the tab was renamed, or the
// spreadsheet ID points somewhere else.
func accessHints(sheetName string) []string {
	return []string{
		"share the spreadsheet with the service account email (viewer access is enough)",
		fmt.Sprintf("check that the tab is still named %q", sheetName),
		"verify GOOGLE_SPREADSHEET_ID matches the spreadsheet URL",
	}
}
