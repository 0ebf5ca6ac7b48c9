package persidate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthNames holds the Persian month names, Farvardin through Esfand,
// indexed by month-1.
var MonthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// WeekdayNames holds the Persian weekday names in Jalali-native order,
// starting with Saturday (شنبه). Index into it via [WeekdayName] or the
// Saturday-first weekday number of a date.
var WeekdayNames = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه",
}

// WeekdayNamesSundayFirst holds the same weekday names ordered to align
// with Go's time.Weekday numbering (Sunday = 0). It is a different ordering
// from [WeekdayNames] and the two must not be conflated.
var WeekdayNamesSundayFirst = [7]string{
	"یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه", "شنبه",
}

// weekdayToSaturdayFirst remaps a time.Weekday (Sunday = 0) to an index
// into the Saturday-first WeekdayNames table.
var weekdayToSaturdayFirst = [7]int{1, 2, 3, 4, 5, 6, 0}

// MonthName returns the Persian name of a Jalali month, or an empty string
// for a month outside 1-12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}

// WeekdayName returns the Persian name of the weekday t falls on.
func WeekdayName(t time.Time) string {
	return WeekdayNames[weekdayToSaturdayFirst[t.Weekday()]]
}

// Format renders t according to a fixed layout token. Layouts prefixed with
// "j" are Jalali; the rest are plain Gregorian renderings of t. The Jalali
// date is taken in Tehran time (see [FromTime]); Gregorian layouts use t's
// own location.
//
// Supported layouts:
//
//	jYYYY-jM-jD          1403-8-6
//	jYYYY-jMM-jDD        1403-08-06
//	jMMMM                آبان
//	jD                   6
//	jDDD                 6 آبان
//	jDDD-jMM-jYY         6 آبان 1403
//	YYYY-MM-DD           2024-10-27
//	YYYY/MM/DD           2024/10/27
//	YYYY/MM/DD HH:mm     2024/10/27 14:30
//	HH:mm                14:30
//	YYYY/MM/DDTHH:mm:ss  2024/10/27T14:30:45
//
// An unknown layout yields an empty string rather than an error.
func Format(t time.Time, layout string) string {
	j := FromTime(t)
	switch layout {
	case "jYYYY-jM-jD":
		return fmt.Sprintf("%d-%d-%d", j.Year, j.Month, j.Day)
	case "jYYYY-jMM-jDD":
		return fmt.Sprintf("%04d-%02d-%02d", j.Year, j.Month, j.Day)
	case "jMMMM":
		return MonthName(j.Month)
	case "jD":
		return strconv.Itoa(j.Day)
	case "jDDD":
		return fmt.Sprintf("%d %s", j.Day, MonthName(j.Month))
	case "jDDD-jMM-jYY":
		return fmt.Sprintf("%d %s %d", j.Day, MonthName(j.Month), j.Year)
	case "YYYY-MM-DD":
		return t.Format("2006-01-02")
	case "YYYY/MM/DD":
		return t.Format("2006/01/02")
	case "YYYY/MM/DD HH:mm":
		return t.Format("2006/01/02 15:04")
	case "HH:mm":
		return t.Format("15:04")
	case "YYYY/MM/DDTHH:mm:ss":
		return t.Format("2006/01/02T15:04:05")
	}
	return ""
}

// Parse reads a Jalali date string in "YYYY/MM/DD" form, also accepting "-"
// or "." as the separator and Persian or Arabic-Indic digit glyphs. The
// parsed date is validated; malformed or impossible dates return an error.
func Parse(s string) (JalaliDate, error) {
	norm := NormalizeDigits(s)
	norm = strings.ReplaceAll(norm, "-", "/")
	norm = strings.ReplaceAll(norm, ".", "/")

	parts := strings.Split(norm, "/")
	if len(parts) != 3 {
		return JalaliDate{}, fmt.Errorf("persidate: invalid date %q, expected YYYY/MM/DD", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return JalaliDate{}, fmt.Errorf("persidate: invalid date %q: %w", s, err)
		}
		nums[i] = n
	}
	return Date(nums[0], nums[1], nums[2])
}
