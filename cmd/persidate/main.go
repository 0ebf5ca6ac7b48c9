// Command persidate converts dates between the Jalali and Gregorian
// calendars from the command line.
//
// Usage:
//
//	persidate to-gregorian 1403/08/16
//	persidate to-jalali 2024-11-06
//	persidate now
//	persidate format 1403/08/16 jDDD-jMM-jYY
//	persidate until 2025-03-21
package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mmsafari/persidate"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	dateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func printPair(label, value string) {
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), dateStyle.Render(value))
}

// parseGregorian reads a Gregorian date string with "/", "-", or "."
// separators and Persian or Arabic-Indic digit glyphs.
func parseGregorian(s string) (time.Time, error) {
	norm := persidate.NormalizeDigits(s)
	norm = strings.ReplaceAll(norm, "-", "/")
	norm = strings.ReplaceAll(norm, ".", "/")
	parts := strings.Split(norm, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY/MM/DD", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 || nums[2] < 1 || nums[2] > persidate.GregorianMonthDays(nums[0], nums[1]) {
		return time.Time{}, fmt.Errorf("invalid Gregorian date %q", s)
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC), nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("persidate: ")

	cmdToGregorian := &cobra.Command{
		Use:   "to-gregorian <jalali-date>",
		Short: "Convert a Jalali date to Gregorian",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			d, err := persidate.Parse(args[0])
			if err != nil {
				log.Fatalf("%v", err)
			}
			t := d.Time()
			printPair("Jalali", fmt.Sprintf("%s (%d %s %d)", d, d.Day, persidate.MonthName(d.Month), d.Year))
			printPair("Gregorian", t.Format("2006/01/02 (January 2, 2006)"))
			printPair("Weekday", persidate.WeekdayName(t))
		},
	}

	cmdToJalali := &cobra.Command{
		Use:   "to-jalali <gregorian-date>",
		Short: "Convert a Gregorian date to Jalali",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			t, err := parseGregorian(args[0])
			if err != nil {
				log.Fatalf("%v", err)
			}
			jy, jm, jd := persidate.ToJalali(t.Year(), int(t.Month()), t.Day())
			d := persidate.JalaliDate{Year: jy, Month: jm, Day: jd}
			printPair("Gregorian", t.Format("2006/01/02 (January 2, 2006)"))
			printPair("Jalali", fmt.Sprintf("%s (%d %s %d)", d, d.Day, persidate.MonthName(d.Month), d.Year))
			printPair("Weekday", persidate.WeekdayName(t))
		},
	}

	cmdNow := &cobra.Command{
		Use:   "now",
		Short: "Print today's date in both calendars",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			now := time.Now()
			printPair("Jalali", persidate.Today())
			printPair("Gregorian", now.Format("2006/01/02"))
			printPair("Weekday", persidate.WeekdayName(now))
		},
	}

	cmdFormat := &cobra.Command{
		Use:   "format <jalali-date> <layout>",
		Short: "Render a Jalali date with a format layout",
		Long: `Render a Jalali date with one of the fixed format layouts:
jYYYY-jM-jD, jYYYY-jMM-jDD, jMMMM, jD, jDDD, jDDD-jMM-jYY,
YYYY-MM-DD, YYYY/MM/DD, YYYY/MM/DD HH:mm, HH:mm, YYYY/MM/DDTHH:mm:ss`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			d, err := persidate.Parse(args[0])
			if err != nil {
				log.Fatalf("%v", err)
			}
			out := persidate.Format(d.Time(), args[1])
			if out == "" {
				log.Fatalf("unknown format layout %q", args[1])
			}
			fmt.Println(out)
		},
	}

	cmdUntil := &cobra.Command{
		Use:   "until <gregorian-date>",
		Short: "Count whole days from today until a Gregorian date",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			days, err := persidate.DaysUntil(args[0])
			if err != nil {
				log.Fatalf("%v", err)
			}
			fmt.Println(days)
		},
	}

	rootCmd := &cobra.Command{
		Use:   "persidate",
		Short: "Jalali / Gregorian calendar conversion",
		Long:  "persidate converts dates between the Jalali (Persian) and Gregorian calendars.",
	}
	rootCmd.AddCommand(cmdToGregorian, cmdToJalali, cmdNow, cmdFormat, cmdUntil)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
