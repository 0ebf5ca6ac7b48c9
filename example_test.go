package persidate_test

import (
	"fmt"
	"time"

	"github.com/mmsafari/persidate"
)

func ExampleToGregorian() {
	gy, gm, gd := persidate.ToGregorian(1403, 8, 16)
	fmt.Println(gy, gm, gd)
	// Output: 2024 11 6
}

func ExampleToJalali() {
	jy, jm, jd := persidate.ToJalali(2024, 11, 6)
	fmt.Println(jy, jm, jd)
	// Output: 1403 8 16
}

func ExampleDate() {
	d, err := persidate.Date(1403, 8, 16)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 1403/08/16
}

func ExampleFormat() {
	t := time.Date(2024, time.November, 6, 14, 30, 0, 0, time.UTC)
	fmt.Println(persidate.Format(t, "jYYYY-jMM-jDD"))
	fmt.Println(persidate.Format(t, "jDDD-jMM-jYY"))
	// Output:
	// 1403-08-16
	// 16 آبان 1403
}

func ExampleParse() {
	d, err := persidate.Parse("۱۴۰۳/۰۸/۱۶")
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Time().Format("2006-01-02"))
	// Output: 2024-11-06
}

func ExampleNormalizeDigits() {
	fmt.Println(persidate.NormalizeDigits("۱۴۰۳/۰۸/۱۶"))
	// Output: 1403/08/16
}

func ExampleIsJalaliLeap() {
	fmt.Println(persidate.IsJalaliLeap(1403))
	fmt.Println(persidate.IsJalaliLeap(1404))
	// Output:
	// true
	// false
}

func ExampleAddDays() {
	t := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)
	fmt.Println(persidate.AddDays(t, 1).Format("2006-01-02"))
	// Output: 2024-02-29
}
