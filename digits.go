package persidate

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Eastern Arabic-Indic (U+0660) and Extended Arabic-Indic / Persian
// (U+06F0) digit blocks.
const (
	arabicZero  = '٠'
	persianZero = '۰'
)

// asciiDigits maps ٠-٩ and ۰-۹ to 0-9 and leaves every other rune alone.
var asciiDigits = runes.Map(func(r rune) rune {
	switch {
	case r >= arabicZero && r <= arabicZero+9:
		return '0' + (r - arabicZero)
	case r >= persianZero && r <= persianZero+9:
		return '0' + (r - persianZero)
	}
	return r
})

// persianDigits maps 0-9 to ۰-۹ and leaves every other rune alone.
var persianDigits = runes.Map(func(r rune) rune {
	if r >= '0' && r <= '9' {
		return persianZero + (r - '0')
	}
	return r
})

// NormalizeDigits replaces Eastern Arabic-Indic (٠١٢٣٤٥٦٧٨٩) and Persian
// (۰۱۲۳۴۵۶۷۸۹) digit glyphs in s with ASCII digits. Strings already in
// ASCII are returned unchanged.
func NormalizeDigits(s string) string {
	out, _, _ := transform.String(asciiDigits, s)
	return out
}

// ToPersianDigits replaces ASCII digits in s with Persian digit glyphs,
// the inverse of [NormalizeDigits] for display output.
func ToPersianDigits(s string) string {
	out, _, _ := transform.String(persianDigits, s)
	return out
}
