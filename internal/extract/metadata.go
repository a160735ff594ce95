package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/mrovere/shiftledger/internal/model"
)

const monthNames = "January|February|March|April|May|June|July|August|September|October|November|December"

var (
	supervisorRe     = regexp.MustCompile(`(?i)Signed\s*\(Supervisor\)\s*([A-Za-z][A-Za-z '\-]+)`)
	superintendentRe = regexp.MustCompile(`(?i)Signed\s*\(Superintendent\)\s*([A-Za-z][A-Za-z '\-]+)`)

	// "7th January", "7 January 2025" — ordinal suffix and year optional
	workDateRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\b(?:\s+(\d{4}))?`)

	// fallback: free-form date on the line after a "Date" label
	dateLabelRe = regexp.MustCompile(`(?i)Date\s*\n?\s*([^\n]+)`)

	monthIndex = buildMonthIndex()
)

func buildMonthIndex() map[string]time.Month {
	idx := make(map[string]time.Month, 12)
	for i, name := range strings.Split(monthNames, "|") {
		idx[strings.ToLower(name)] = time.Month(i + 1)
	}
	return idx
}

// InvalidDateError reports a matched day/month/year combination that is not
// a real calendar date, e.g. 31 February. It is never caught inside the
// extractor; the caller decides whether to skip the document.
type InvalidDateError struct {
	Day   int
	Month time.Month
	Year  int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid calendar date: day %d out of range for %s %d", e.Day, e.Month, e.Year)
}

// ExtractMetadata scans the full document text for the work date and the two
// signatories. Name extraction never fails; a missing signature yields an
// empty string. The date is resolved in priority order: the day-month[-year]
// pattern, then a lenient parse of the line after a "Date" label, then
// January 1 of assumedYear.
func ExtractMetadata(text string, assumedYear int) (model.Metadata, error) {
	meta := model.Metadata{}

	if m := supervisorRe.FindStringSubmatch(text); m != nil {
		meta.Supervisor = cleanSpaces(m[1])
	}
	if m := superintendentRe.FindStringSubmatch(text); m != nil {
		meta.Superintendent = cleanSpaces(m[1])
	}

	m := workDateRe.FindStringSubmatch(text)
	if m == nil {
		meta.WorkDate = fallbackDate(text, assumedYear)
		return meta, nil
	}

	day, _ := strconv.Atoi(m[1])
	month := monthIndex[strings.ToLower(m[2])]
	year := assumedYear
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (Feb 31 -> Mar 3); that must be
	// an error here, not a silent shift.
	if d.Day() != day || d.Month() != month {
		return model.Metadata{}, &InvalidDateError{Day: day, Month: month, Year: year}
	}

	meta.WorkDate = d
	return meta, nil
}

// fallbackDate implements the two lower rungs of the date chain: a lenient
// day-first parse of whatever follows a "Date" label, else January 1 of the
// assumed year.
func fallbackDate(text string, assumedYear int) time.Time {
	lastResort := time.Date(assumedYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	m := dateLabelRe.FindStringSubmatch(text)
	if m == nil {
		return lastResort
	}

	raw := strings.TrimSpace(m[1])
	if raw == "" {
		return lastResort
	}

	candidates := []string{
		raw,
		// fill in a missing year the way a default-date parser would
		fmt.Sprintf("%s %d", raw, assumedYear),
	}
	for _, c := range candidates {
		if t, err := dateparse.ParseAny(c, dateparse.PreferMonthFirst(false)); err == nil {
			y := t.Year()
			if y == 0 {
				y = assumedYear
			}
			return time.Date(y, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return lastResort
}
