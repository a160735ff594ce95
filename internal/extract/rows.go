package extract

import (
	"regexp"
	"strings"

	"github.com/mrovere/shiftledger/internal/model"
)

var (
	// Equipment code: digit, 2-3 letters, 2 alphanumerics, 2 letters. Raw
	// spellings vary: segments may be spaced out ("1 HNX 10 ST") and the
	// 2-char block may be hyphen-joined ("1HK-10SE").
	codeRe = regexp.MustCompile(`(?i)\b(\d)\s*([A-Z]{2,3})\s*[- ]?\s*([0-9A-Z]{2})\s*([A-Z]{2})\b`)

	// Work items: 2292 or 0031.1
	itemRe = regexp.MustCompile(`\b\d{4}(?:\.\d)?\b`)

	// Zone markers. The apostrophe in "Today's" may be straight or curly.
	zoneStartRe = regexp.MustCompile(`(?i)Today[’']?s\s+Tasks`)
	zoneEndRe   = regexp.MustCompile(`(?i)\bManpower\b`)
)

// NormalizeCode normalizes a raw equipment-code spelling into its canonical
// form: the four segments uppercased and concatenated with no separators.
// Returns false when the input does not contain a code.
func NormalizeCode(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	m := codeRe.FindStringSubmatch(cleanSpaces(strings.ToUpper(raw)))
	if m == nil {
		return "", false
	}
	return joinCode(m), true
}

func joinCode(m []string) string {
	return strings.ToUpper(m[1] + m[2] + m[3] + m[4])
}

// clipZone narrows the search zone to the span between the "Today's Tasks"
// heading and the "Manpower" heading, cutting false positives from unrelated
// sections. A missing marker widens the zone to the text boundary on that
// side.
func clipZone(text string) string {
	start := 0
	if loc := zoneStartRe.FindStringIndex(text); loc != nil {
		start = loc[0]
	}

	end := len(text)
	if loc := zoneEndRe.FindStringIndex(text[start:]); loc != nil {
		end = start + loc[0]
	}

	return text[start:end]
}

// ExtractRows finds every equipment code in the tasks zone and pairs it with
// the work items listed after it, up to the next code. Items repeated inside
// one code's chunk are dropped; the same item under a different code is a
// separate row. An empty result is a legitimate outcome, not an error.
func ExtractRows(text string) []model.Row {
	zone := clipZone(text)

	matches := codeRe.FindAllStringSubmatchIndex(zone, -1)
	if matches == nil {
		return nil
	}

	var rows []model.Row

	for i, loc := range matches {
		code := joinCode([]string{
			zone[loc[0]:loc[1]],
			zone[loc[2]:loc[3]],
			zone[loc[4]:loc[5]],
			zone[loc[6]:loc[7]],
			zone[loc[8]:loc[9]],
		})

		chunkStart := loc[1]
		chunkEnd := len(zone)
		if i+1 < len(matches) {
			chunkEnd = matches[i+1][0]
		}
		chunk := zone[chunkStart:chunkEnd]

		// dedup is scoped to this chunk, first occurrence wins
		seen := make(map[string]bool)
		for _, item := range itemRe.FindAllString(chunk, -1) {
			if seen[item] {
				continue
			}
			seen[item] = true
			rows = append(rows, model.Row{BaseCode: code, Item: item})
		}
	}

	return rows
}
