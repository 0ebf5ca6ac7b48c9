package persidate

import (
	"testing"
	"time"
)

// 2024-11-06 14:30:45 UTC = 1403/08/16 in the Jalali calendar.
var formatInput = time.Date(2024, time.November, 6, 14, 30, 45, 0, time.UTC)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		layout string
		want   string
	}{
		{"jYYYY-jM-jD", "1403-8-16"},
		{"jYYYY-jMM-jDD", "1403-08-16"},
		{"jMMMM", "آبان"},
		{"jD", "16"},
		{"jDDD", "16 آبان"},
		{"jDDD-jMM-jYY", "16 آبان 1403"},
		{"YYYY-MM-DD", "2024-11-06"},
		{"YYYY/MM/DD", "2024/11/06"},
		{"YYYY/MM/DD HH:mm", "2024/11/06 14:30"},
		{"HH:mm", "14:30"},
		{"YYYY/MM/DDTHH:mm:ss", "2024/11/06T14:30:45"},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			if got := Format(formatInput, tt.layout); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}

func TestFormat_UnknownLayout(t *testing.T) {
	t.Parallel()

	for _, layout := range []string{"", "bogus", "jYYYY", "YYYY-MM-DD HH:mm:ss"} {
		if got := Format(formatInput, layout); got != "" {
			t.Errorf("Format(%q) = %q, want empty string", layout, got)
		}
	}
}

func TestMonthName(t *testing.T) {
	t.Parallel()

	if got := MonthName(1); got != "فروردین" {
		t.Errorf("MonthName(1) = %q", got)
	}
	if got := MonthName(12); got != "اسفند" {
		t.Errorf("MonthName(12) = %q", got)
	}
	if got := MonthName(0); got != "" {
		t.Errorf("MonthName(0) = %q, want empty", got)
	}
	if got := MonthName(13); got != "" {
		t.Errorf("MonthName(13) = %q, want empty", got)
	}
}

func TestWeekdayName(t *testing.T) {
	t.Parallel()

	// 2024-11-06 is a Wednesday (چهارشنبه).
	if got := WeekdayName(formatInput); got != "چهارشنبه" {
		t.Errorf("WeekdayName = %q, want چهارشنبه", got)
	}
	// 2024-11-09 is a Saturday (شنبه), the first day of the Jalali week.
	sat := time.Date(2024, time.November, 9, 0, 0, 0, 0, time.UTC)
	if got := WeekdayName(sat); got != "شنبه" {
		t.Errorf("WeekdayName(Saturday) = %q, want شنبه", got)
	}
}

// The Saturday-first and Sunday-first tables are distinct orderings of the
// same names; indexing either correctly must name the same weekday.
func TestWeekdayTables_Consistent(t *testing.T) {
	t.Parallel()

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		satFirst := WeekdayNames[weekdayToSaturdayFirst[wd]]
		sunFirst := WeekdayNamesSundayFirst[wd]
		if satFirst != sunFirst {
			t.Errorf("weekday %v: Saturday-first gives %q, Sunday-first gives %q", wd, satFirst, sunFirst)
		}
	}
	if WeekdayNames == WeekdayNamesSundayFirst {
		t.Error("the two weekday tables must have different orderings")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	want := JalaliDate{Year: 1403, Month: 8, Day: 16}
	tests := []struct {
		name  string
		input string
	}{
		{"slash separator", "1403/08/16"},
		{"dash separator", "1403-08-16"},
		{"dot separator", "1403.08.16"},
		{"unpadded", "1403/8/16"},
		{"Persian digits", "۱۴۰۳/۰۸/۱۶"},
		{"Arabic-Indic digits", "١٤٠٣/٠٨/١٦"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"two fields", "1403/08"},
		{"four fields", "1403/08/16/1"},
		{"not numeric", "yyyy/mm/dd"},
		{"month out of range", "1403/13/01"},
		{"day out of range", "1403/08/31"},
		{"Esfand 30 in common year", "1404/12/30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) should fail", tt.input)
			}
		})
	}
}
