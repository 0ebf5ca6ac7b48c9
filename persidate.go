// Package persidate converts dates between the Jalali (Persian solar Hijri)
// calendar and the Gregorian calendar, and provides formatting, parsing,
// and relative-time helpers on top of the conversion core.
//
// Both conversion directions are pure arithmetic over proleptic calendar
// epochs; no locale data or timezone database is consulted. All operations
// are stateless and safe for concurrent use.
//
// Basic usage:
//
//	gy, gm, gd := persidate.ToGregorian(1403, 8, 16) // 2024, 11, 6
//	jy, jm, jd := persidate.ToJalali(2024, 11, 6)    // 1403, 8, 16
//
// For a validated value type, use [Date]:
//
//	d, err := persidate.Date(1403, 8, 16)
//	d.String() // "1403/08/16"
package persidate

// The anchor constants tie Jalali year 1 to Gregorian year 621. For years
// after 979 the arithmetic re-anchors at Gregorian 1600 to keep day counts
// small; the two anchors meet without a gap at the 979/980 boundary.
const (
	anchorSwitchYear   = 979
	earlyGregorianBase = 621
	lateGregorianBase  = 1600
)

// Gregorian leap-cycle lengths in days, applied coarse to fine.
const (
	days400Years = 146097
	days100Years = 36524
	days4Years   = 1461
)

// firstHalfDays is the total length of the first six Jalali months,
// each of which has 31 days. Months 7-11 have 30 days and month 12 has
// 29 days, or 30 in a leap year.
const firstHalfDays = 186

// gregorianMonthLengths is the non-leap month table; February is widened
// to 29 in the conversion when the target year is leap.
var gregorianMonthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ToGregorian converts a Jalali year/month/day to the equivalent Gregorian
// year/month/day. Months are 1-indexed on both sides.
//
// Inputs are not validated: an out-of-range month or day propagates through
// the arithmetic and yields a deterministic but meaningless result. Use
// [Date] or [IsValidJalaliDate] when inputs are untrusted.
func ToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	base := earlyGregorianBase
	if jy > anchorSwitchYear {
		base = lateGregorianBase
		jy -= anchorSwitchYear
	}

	// Elapsed days since the anchor's Gregorian New Year, using the
	// 33-year Jalali leap cycle (8 leap days per cycle).
	days := 365*jy + (jy/33)*8 + ((jy%33)+3)/4 + 78 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += (jm-7)*30 + firstHalfDays
	}

	// Reduce against the Gregorian leap cycles, coarse to fine. The
	// centennial step skips one day before dividing and restores it to
	// the remainder past day 365, mirroring the 100-year leap exception.
	gy = base + 400*(days/days400Years)
	days %= days400Years

	if days > days100Years {
		days--
		gy += 100 * (days / days100Years)
		days %= days100Years
		if days >= 365 {
			days++
		}
	}

	gy += 4 * (days / days4Years)
	days %= days4Years

	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	// days is now the 0-based day of year; walk the month table.
	gd = days + 1
	months := gregorianMonthLengths
	if IsGregorianLeap(gy) {
		months[1] = 29
	}
	gm = 1
	for gm <= 12 && gd > months[gm-1] {
		gd -= months[gm-1]
		gm++
	}
	return gy, gm, gd
}

// ToJalali converts a Gregorian year/month/day to the equivalent Jalali
// year/month/day. Months are 1-indexed on both sides.
//
// Like [ToGregorian], inputs are not validated.
func ToJalali(gy, gm, gd int) (jy, jm, jd int) {
	// Cumulative days before each Gregorian month (non-leap).
	daysBeforeMonth := [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

	if gy > lateGregorianBase {
		jy = anchorSwitchYear
		gy -= lateGregorianBase
	} else {
		gy -= earlyGregorianBase
	}

	// Count the year's own leap day only once March has been reached.
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}

	days := 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 - 80 + gd + daysBeforeMonth[gm-1]

	// 12053 days = one 33-year Jalali cycle (33*365 + 8 leap days).
	jy += 33 * (days / 12053)
	days %= 12053

	jy += 4 * (days / days4Years)
	days %= days4Years

	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < firstHalfDays {
		jm = 1 + days/31
		jd = 1 + days%31
	} else {
		jm = 7 + (days-firstHalfDays)/30
		jd = 1 + (days-firstHalfDays)%30
	}
	return jy, jm, jd
}

// IsGregorianLeap reports whether a Gregorian year is a leap year.
func IsGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsJalaliLeap reports whether a Jalali year has 366 days (Esfand 30).
//
// The predicate is derived from the same 33-year cycle the converters use,
// so a year is leap exactly when ToGregorian(year+1, 1, 1) falls 366 days
// after ToGregorian(year, 1, 1).
func IsJalaliLeap(year int) bool {
	if year > anchorSwitchYear {
		year -= anchorSwitchYear
	}
	r := year % 33
	if r < 0 {
		r += 33
	}
	return r%4 == 0 && r != 32
}
