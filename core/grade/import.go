package grade

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// skip reasons
const (
	SkipMissingColumns = "expected student and score columns"
	SkipUnknownStudent = "student not on this sheet"
	SkipInvalidScore   = "score is not a whole number within the maximum"
)

// SkippedRow.Line is the 1-based record number, header included.
type SkippedRow struct {
	Line   int    `json:"line"`
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}

// ImportCSV reads "Student ID,Score" rows into the sheet. The student column also accepts
// admission numbers and full names. A leading header row is ignored.
// Invalid rows are skipped and reported; only unreadable CSV is an error.
func ImportCSV(sh *Sheet, r io.Reader) (ImportResult, error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1
	rdr.TrimLeadingSpace = true

	var res ImportResult
	for line := 1; ; line++ {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, errors.Wrap(err, "reading grades csv")
		}

		if line == 1 && isHeader(record) {
			continue
		}
		if len(record) < 2 {
			res.Skipped = append(res.Skipped, SkippedRow{Line: line, Reason: SkipMissingColumns})
			continue
		}

		key := strings.TrimSpace(record[0])
		s, ok := sh.Lookup(key)
		if !ok {
			res.Skipped = append(res.Skipped, SkippedRow{Line: line, Key: key, Reason: SkipUnknownStudent})
			continue
		}
		if !sh.SetScore(s.ID, record[1]) {
			res.Skipped = append(res.Skipped, SkippedRow{Line: line, Key: key, Reason: SkipInvalidScore})
			continue
		}
		res.Imported++
	}
	return res, nil
}

func isHeader(record []string) bool {
	if len(record) < 2 {
		return false
	}
	return strings.Contains(strings.ToLower(record[1]), "score")
}
