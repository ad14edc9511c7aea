package timesheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Period and identifier resolution. Everything here is a pure function; the
// service layer supplies the existing timesheet refs so no lookup happens
// for an employee with no timesheets yet.

// TimesheetRef is the minimal projection of an existing timesheet needed
// for id resolution.
type TimesheetRef struct {
	TimesheetID string
	PeriodKey   string
	Status      Status
	Finalized   bool
}

var codeRegex = regexp.MustCompile(`^([A-Za-z]+)0*([0-9]+)$`)

var nonAlnumRegex = regexp.MustCompile(`[^A-Za-z0-9]+`)

// ShortCode compresses an employee code into the prefix used in timesheet
// ids: "JW00007" -> "JW7". Codes that do not match the letters+digits shape
// fall back to the code with all non-alphanumerics removed.
func ShortCode(employeeCode string) string {
	m := codeRegex.FindStringSubmatch(employeeCode)
	if m == nil {
		return nonAlnumRegex.ReplaceAllString(employeeCode, "")
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return nonAlnumRegex.ReplaceAllString(employeeCode, "")
	}
	return m[1] + strconv.Itoa(n)
}

// MonthPeriodKey passes through a "YYYY-MM" month token.
func MonthPeriodKey(month time.Time) string {
	return month.Format("2006-01")
}

// RangePeriodKey builds the "<start>_to_<end>" token for an explicit range.
func RangePeriodKey(start, end time.Time) string {
	return start.Format("2006-01-02") + "_to_" + end.Format("2006-01-02")
}

// periodStart returns the month anchoring a period key: the month itself in
// month mode, the range's start month in range mode.
func periodStart(periodKey string) (time.Time, error) {
	if start, _, ok := strings.Cut(periodKey, "_to_"); ok {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid period range start %q: %w", start, err)
		}
		return t, nil
	}
	t, err := time.Parse("2006-01", periodKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period month %q: %w", periodKey, err)
	}
	return t, nil
}

// BaseID derives the deterministic "<ShortCode>-<YY>-<MM>" base identifier
// for a period.
func BaseID(shortCode, periodKey string) (string, error) {
	start, err := periodStart(periodKey)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", shortCode, start.Format("06-01")), nil
}

// ResolveID picks the identifier for (employee, periodKey) against the
// employee's existing timesheets:
//
//   - an existing timesheet with the same period key keeps its id
//     (idempotent re-entry),
//   - no timesheet sharing the base-id prefix means the base id is final,
//   - otherwise a numeric suffix disambiguates a genuine second timesheet
//     for the same month (re-opened or split period).
func ResolveID(baseID, periodKey string, existing []TimesheetRef) string {
	sameBase := 0
	for _, ref := range existing {
		if ref.PeriodKey == periodKey {
			return ref.TimesheetID
		}
		if strings.HasPrefix(ref.TimesheetID, baseID) {
			sameBase++
		}
	}
	if sameBase == 0 {
		return baseID
	}
	return fmt.Sprintf("%s-%d", baseID, sameBase+1)
}
