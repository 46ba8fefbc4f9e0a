// Package textnorm canonicalizes Persian/Arabic text for matching.
// The same pipeline runs over indexed fields and over queries, so two
// spellings that differ only in script variant, digits, diacritics or
// whitespace compare equal.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DigitMode selects which digit scripts are folded to ASCII
type DigitMode string

const (
	DigitsNone    DigitMode = "none"
	DigitsPersian DigitMode = "persian"
	DigitsArabic  DigitMode = "arabic"
	DigitsBoth    DigitMode = "both"
)

// Options controls the normalization pipeline
type Options struct {
	Trim               bool
	CollapseWhitespace bool
	CaseInsensitive    bool
	UnifyScript        bool
	StripDiacritics    bool
	Digits             DigitMode
}

// DefaultOptions returns the pipeline used by the inventory panel
func DefaultOptions() Options {
	return Options{
		Trim:               true,
		CollapseWhitespace: true,
		CaseInsensitive:    true,
		UnifyScript:        true,
		StripDiacritics:    true,
		Digits:             DigitsBoth,
	}
}

// scriptReplacer maps Arabic code points used for the same letter onto
// one canonical Persian form, folds dash variants to a plain hyphen and
// drops zero-width/bidi control characters that sneak into copy-pasted
// part codes.
var scriptReplacer = strings.NewReplacer(
	"ي", "ی", // Arabic Yeh to Farsi Yeh
	"ى", "ی", // Alef Maksura to Farsi Yeh
	"ئ", "ی", // Yeh with Hamza to Farsi Yeh
	"ك", "ک", // Arabic Kaf to Farsi Kaf
	"ة", "ه", // Teh Marbuta to Heh
	"أ", "ا", // Alef with Hamza above
	"إ", "ا", // Alef with Hamza below
	"ٱ", "ا", // Alef Wasla
	"ؤ", "و", // Waw with Hamza
	// Dash-like punctuation to a standard hyphen
	"‐", "-", "‑", "-", "‒", "-", "–", "-",
	"—", "-", "―", "-", "⁃", "-", "−", "-",
	"﹘", "-", "﹣", "-",
	// Zero-width and directional marks
	"‌", "", "‍", "", "‎", "", "‏", "",
	"‪", "", "‫", "", "‬", "", "‭", "", "‮", "",
	"⁦", "", "⁧", "", "⁨", "", "⁩", "",
	"\uFEFF", "",
	" ", " ",
)

var persianDigits = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

var arabicDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// markStripper decomposes canonically and removes combining marks
// (harakat and relatives), then recomposes.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// arabicMarks lists the Arabic combining-mark ranges removed by the
// fallback path when the transform chain fails on malformed input.
var arabicMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061a, Stride: 1}, // Arabic signs
		{Lo: 0x064b, Hi: 0x065f, Stride: 1}, // harakat: fathatan..wavy hamza
		{Lo: 0x0670, Hi: 0x0670, Stride: 1}, // superscript alef
		{Lo: 0x06d6, Hi: 0x06dc, Stride: 1}, // Koranic annotation
		{Lo: 0x06df, Hi: 0x06e4, Stride: 1},
		{Lo: 0x06e7, Hi: 0x06e8, Stride: 1},
		{Lo: 0x06ea, Hi: 0x06ed, Stride: 1},
	},
}

// Normalize runs the canonicalization pipeline in fixed order:
// trim, collapse whitespace, unify script, fold digits, case-fold,
// strip diacritics, final trim. It is idempotent and never fails;
// empty input yields the empty string.
func Normalize(text string, opts Options) string {
	if text == "" {
		return ""
	}

	if opts.Trim {
		text = strings.TrimSpace(text)
	}
	if opts.CollapseWhitespace {
		text = strings.Join(strings.Fields(text), " ")
	}
	if opts.UnifyScript {
		text = scriptReplacer.Replace(text)
	}
	switch opts.Digits {
	case DigitsPersian:
		text = persianDigits.Replace(text)
	case DigitsArabic:
		text = arabicDigits.Replace(text)
	case DigitsBoth:
		text = arabicDigits.Replace(persianDigits.Replace(text))
	}
	if opts.CaseInsensitive {
		text = strings.ToLower(text)
	}
	if opts.StripDiacritics {
		text = stripMarks(text)
	}
	if opts.Trim {
		text = strings.TrimSpace(text)
	}

	return text
}

func stripMarks(s string) string {
	out, _, err := transform.String(markStripper, s)
	if err != nil {
		// Fall back to the explicit range table rather than failing
		return strings.Map(func(r rune) rune {
			if unicode.Is(arabicMarks, r) {
				return -1
			}
			return r
		}, s)
	}
	return out
}

// LeadingStripOffset counts leading non-alphanumeric runes, the part
// skipped before prefix testing. Letters of any script count as
// alphanumeric; punctuation and symbols do not.
func LeadingStripOffset(s string) int {
	offset := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		offset++
	}
	return offset
}

// TrimLeadingNonAlnum strips the leading non-alphanumeric run
func TrimLeadingNonAlnum(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
