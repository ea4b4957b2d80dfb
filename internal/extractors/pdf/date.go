package pdf

import (
	"regexp"
	"strconv"
	"time"
)

// pdfDate matches D:YYYYMMDDHHmmSSOHH'mm' where everything after the
// year is optional. Some producers write Z00'00' for UTC.
var pdfDate = regexp.MustCompile(
	`^(?:D:)?(\d{4})(\d{2})?(\d{2})?(\d{2})?(\d{2})?(\d{2})?(?:Z(?:00'?(?:00'?)?)?|([+-])(\d{2})'?(?:(\d{2})'?)?)?$`,
)

// ParseDate parses a PDF date string.
func ParseDate(s string) (time.Time, bool) {
	m := pdfDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year := atoi(m[1], 0)
	month := atoi(m[2], 1)
	day := atoi(m[3], 1)
	hour := atoi(m[4], 0)
	minute := atoi(m[5], 0)
	second := atoi(m[6], 0)

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	loc := time.UTC
	if m[7] != "" {
		offset := atoi(m[8], 0)*3600 + atoi(m[9], 0)*60
		if m[7] == "-" {
			offset = -offset
		}
		loc = time.FixedZone("", offset)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), true
}

// FormatDate converts a PDF date to RFC 3339. Strings that are not PDF
// dates are returned unchanged.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(time.RFC3339)
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
