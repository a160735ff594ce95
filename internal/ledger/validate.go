package ledger

import (
	"fmt"
	"regexp"
)

var (
	baseCodeShapeRe = regexp.MustCompile(`^\d[A-Z]{2,3}[0-9A-Z]{2}[A-Z]{2}$`)
	itemShapeRe     = regexp.MustCompile(`^\d{4}(\.\d)?$`)
)

// Validate checks that a record has the normalized shape the ledger expects.
// Records come from the extractor already normalized; this guards against
// hand-edited or corrupted ledger files being merged back in.
func Validate(r Record) error {
	if !baseCodeShapeRe.MatchString(r.BaseCode) {
		return fmt.Errorf("record %q: base code %q is not normalized", r.FullCode, r.BaseCode)
	}
	if !itemShapeRe.MatchString(r.Item) {
		return fmt.Errorf("record %q: item %q is not a valid work item", r.FullCode, r.Item)
	}
	if r.FullCode != r.BaseCode+r.Item {
		return fmt.Errorf("record %q: full code does not match %s+%s", r.FullCode, r.BaseCode, r.Item)
	}
	if r.WorkDate.IsZero() {
		return fmt.Errorf("record %q: missing work date", r.FullCode)
	}
	return nil
}

// ValidateAll validates every record, reporting the first failure.
func ValidateAll(records []Record) error {
	for i, r := range records {
		if err := Validate(r); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}
