package persidate

import (
	"fmt"
	"time"
)

const dayMillis = 24 * 60 * 60 * 1000

// TimeAgo phrases how long ago t was, in Persian, using fixed buckets:
// under a minute, minutes, hours, days (under 30), months (under 12),
// then years. Times in the future read as "لحظاتی پیش".
func TimeAgo(t time.Time) string {
	return timeAgoAt(t, time.Now())
}

func timeAgoAt(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return "لحظاتی پیش"
	case d < time.Hour:
		return fmt.Sprintf("%d دقیقه پیش", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d ساعت پیش", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d روز پیش", int(d.Hours())/24)
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d ماه پیش", int(d.Hours())/24/30)
	}
	return fmt.Sprintf("%d سال پیش", int(d.Hours())/24/365)
}

// daysUntilLayouts are the Gregorian date layouts accepted by [DaysUntil].
var daysUntilLayouts = []string{"2006-01-02", "2006/01/02"}

// DaysUntil parses a Gregorian date string ("YYYY-MM-DD" or "YYYY/MM/DD",
// Persian digit glyphs accepted) and returns the number of whole days from
// now until that date, rounding up. Past dates yield a negative count.
// A malformed date returns an error; this is the one parsing entry point
// that rejects bad input instead of degrading.
func DaysUntil(s string) (int, error) {
	norm := NormalizeDigits(s)
	var t time.Time
	var err error
	for _, layout := range daysUntilLayouts {
		if t, err = time.Parse(layout, norm); err == nil {
			return DiffDays(time.Now(), t), nil
		}
	}
	return 0, fmt.Errorf("persidate: invalid date %q: %w", s, err)
}

// DiffDays returns the number of whole days from a to b, as a ceiling
// division of the millisecond difference. Negative when b precedes a.
func DiffDays(a, b time.Time) int {
	ms := b.UnixMilli() - a.UnixMilli()
	if ms > 0 {
		return int((ms + dayMillis - 1) / dayMillis)
	}
	return int(ms / dayMillis)
}

// AddDays returns t shifted by the given number of calendar days.
// The input is not modified.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// IsBefore reports whether a's millisecond timestamp precedes b's.
func IsBefore(a, b time.Time) bool {
	return a.UnixMilli() < b.UnixMilli()
}

// IsAfter reports whether a's millisecond timestamp follows b's.
func IsAfter(a, b time.Time) bool {
	return a.UnixMilli() > b.UnixMilli()
}
