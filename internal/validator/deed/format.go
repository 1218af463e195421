package deed

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"deedcheck/internal/domain"
)

// DateLayout is the only accepted date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DateFormatError reports a date field that does not match DateLayout.
type DateFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date format for %s %q. Use YYYY-MM-DD: %v", e.Field, e.Value, e.Err)
}

// Unwrap exposes both domain.ErrInvalidDateFormat and the underlying parse error.
func (e *DateFormatError) Unwrap() []error {
	return []error{domain.ErrInvalidDateFormat, e.Err}
}

// parseDate parses s strictly as YYYY-MM-DD at UTC midnight.
func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &DateFormatError{Field: field, Value: s, Err: err}
	}
	return t, nil
}

const secondsPerDay = 24 * 60 * 60

// daysBetween returns whole days from start to end; negative when end precedes start.
// Both times are UTC midnights, so the Unix difference is an exact multiple of a day
// for any pair of years 1 through 9999.
func daysBetween(start, end time.Time) int {
	return int((end.Unix() - start.Unix()) / secondsPerDay)
}

// formatRupees renders v with thousands separators and two decimals, e.g. 750,000.00.
func formatRupees(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", v)
}
