package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DisplayLayout is the canonical on-disk date format (MM/DD/YYYY).
const DisplayLayout = "01/02/2006"

// ISOLayout is used internally for sorting and comparison only.
const ISOLayout = "2006-01-02"

var displayDateRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/(0[1-9]|[12][0-9]|3[01])/\d{4}$`)

// IsDisplayDate reports whether s matches MM/DD/YYYY with month 01-12 and
// day 01-31. Calendar validity beyond that range is not checked.
func IsDisplayDate(s string) bool {
	return displayDateRe.MatchString(s)
}

// DisplayToISO rewrites MM/DD/YYYY to YYYY-MM-DD. Returns "" when s is not
// a valid display date.
func DisplayToISO(s string) string {
	if !IsDisplayDate(s) {
		return ""
	}
	return s[6:10] + "-" + s[0:2] + "-" + s[3:5]
}

// ISOToDisplay rewrites YYYY-MM-DD to MM/DD/YYYY. Returns "" when s does
// not have three dash-separated parts.
func ISOToDisplay(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return ""
	}
	return parts[1] + "/" + parts[2] + "/" + parts[0]
}

// Today returns the current local date in display format.
func Today() string {
	return time.Now().Format(DisplayLayout)
}

// CompareDesc orders two display dates most-recent-first by their ISO
// forms. Unparsable dates convert to "" and therefore sort last; two
// unparsable dates compare equal, so stable sorts keep insertion order.
func CompareDesc(a, b string) int {
	return strings.Compare(DisplayToISO(b), DisplayToISO(a))
}

// ParseClockTime parses free-text clock input: "H", "H:MM", with an
// optional AM/PM suffix (case, space and period insensitive). Without a
// meridiem the hour is read as 24-hour (0-23); with one it must be 1-12.
// Returns minutes since midnight and whether the input parsed.
func ParseClockTime(s string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.ReplaceAll(t, ".", "")
	meridiem := ""
	for _, suffix := range []string{"am", "pm"} {
		if strings.HasSuffix(t, suffix) {
			meridiem = suffix
			t = strings.TrimSpace(strings.TrimSuffix(t, suffix))
			break
		}
	}
	if t == "" {
		return 0, false
	}

	hourPart := t
	minutePart := "0"
	if idx := strings.Index(t, ":"); idx >= 0 {
		hourPart = t[:idx]
		minutePart = t[idx+1:]
		if len(minutePart) != 2 {
			return 0, false
		}
	}
	hour, ok := parseDigits(hourPart)
	if !ok {
		return 0, false
	}
	minute, ok := parseDigits(minutePart)
	if !ok || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "":
		if hour > 23 {
			return 0, false
		}
	case "am":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}
	return hour*60 + minute, true
}

// FormatClockTime renders a minute offset in canonical "H:MM AM" form.
func FormatClockTime(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	hour := minutes / 60
	minute := minutes % 60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}

func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > 2 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
