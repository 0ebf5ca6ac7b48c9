package persidate

import (
	"fmt"
	"time"
)

// tehranZone is the Asia/Tehran timezone (UTC+3:30) used to normalize
// time.Time inputs to the Iranian calendar date before conversion.
var tehranZone = time.FixedZone("Asia/Tehran", 3*60*60+30*60)

// JalaliDate is a Jalali calendar date. Month 1 is Farvardin.
// The zero value is not a valid date; construct one with [Date],
// [FromTime], or [Now].
type JalaliDate struct {
	Year  int
	Month int
	Day   int
}

// Date returns a validated JalaliDate. It rejects months outside 1-12 and
// days outside the month's length (Esfand 30 is accepted only in leap years).
func Date(year, month, day int) (JalaliDate, error) {
	if month < 1 || month > 12 {
		return JalaliDate{}, fmt.Errorf("persidate: month %d out of range 1-12", month)
	}
	if n := JalaliMonthDays(year, month); day < 1 || day > n {
		return JalaliDate{}, fmt.Errorf("persidate: day %d out of range 1-%d for month %d of %d", day, n, month, year)
	}
	return JalaliDate{Year: year, Month: month, Day: day}, nil
}

// FromTime converts a time.Time to the JalaliDate it falls on. The time is
// first normalized to Tehran (UTC+3:30), so a moment in time always maps to
// the correct Iranian calendar date regardless of the input timezone.
func FromTime(t time.Time) JalaliDate {
	y, m, d := t.In(tehranZone).Date()
	jy, jm, jd := ToJalali(y, int(m), d)
	return JalaliDate{Year: jy, Month: jm, Day: jd}
}

// Now returns today's date in the Jalali calendar (Tehran time).
func Now() JalaliDate {
	return FromTime(time.Now())
}

// Today returns today's Jalali date formatted as "YYYY/MM/DD".
func Today() string {
	return Now().String()
}

// Time returns the date as a time.Time at midnight UTC.
func (d JalaliDate) Time() time.Time {
	gy, gm, gd := ToGregorian(d.Year, d.Month, d.Day)
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week the date falls on.
func (d JalaliDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// String formats the date as "YYYY/MM/DD" with zero padding.
func (d JalaliDate) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d falls before other.
func (d JalaliDate) Before(other JalaliDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls after other.
func (d JalaliDate) After(other JalaliDate) bool {
	return other.Before(d)
}

// IsValidJalaliDate reports whether the triple denotes a real Jalali date.
func IsValidJalaliDate(year, month, day int) bool {
	_, err := Date(year, month, day)
	return err == nil
}

// JalaliMonthDays returns the number of days in a Jalali month: 31 for
// months 1-6, 30 for months 7-11, and 29 or 30 for Esfand depending on
// leap status. Returns 0 for a month outside 1-12.
func JalaliMonthDays(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if IsJalaliLeap(year) {
			return 30
		}
		return 29
	}
	return 0
}

// GregorianMonthDays returns the number of days in a Gregorian month.
// Returns 0 for a month outside 1-12.
func GregorianMonthDays(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsGregorianLeap(year) {
		return 29
	}
	return gregorianMonthLengths[month-1]
}
