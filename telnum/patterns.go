package telnum

import "regexp"

// This file compiles, once at package init, the literal regex fragments the
// normalizer and viability check are built from. Go's RE2 engine already
// understands \p{Nd} (any Unicode decimal digit) natively, so the digit
// class needs no hand-rolled alternation the way an engine without Unicode
// property classes would.

const digitsPattern = `\p{Nd}`
const plusChars = "+＋"

// validPunctuation enumerates every separator character permitted inside a
// viable phone number: ASCII and Unicode dash/hyphen variants (including
// the katakana prolonged sound mark, used in some transliterations),
// several Unicode space variants, half- and full-width parentheses and
// square brackets, full stop, slash, tilde variants, and the literal 'x'
// used as a carrier-code placeholder.
const validPunctuation = "-‐‑‒–—―ー－" +
	"  ​⁠　" +
	"()（）" +
	"[]［］" +
	"./" +
	"~˜～" +
	"xX"

const validAlpha = "A-Za-z"

var viableNumberRe *regexp.Regexp

func init() {
	punct := regexp.QuoteMeta(validPunctuation)
	plus := regexp.QuoteMeta(plusChars)
	// A "viable" phone number: optional leading plus signs, then three or
	// more digits, each optionally preceded by punctuation, followed by a tail of
	// punctuation/letters/digits that may end in an extension.
	viableNumberRe = regexp.MustCompile(
		`(?i)^[` + plus + `]*(?:[` + punct + `]*` + digitsPattern + `){3,}` +
			`[` + punct + validAlpha + `\p{Nd}]*` +
			`(?:` + extnPatternFragment + `)?$`,
	)
}

// alphaMappings is the ITU E.161 letter-to-digit keypad map, covering both
// upper and lower case ASCII; full-width ASCII letters are folded to their
// standard-width equivalents (via golang.org/x/text/width) before this map
// is consulted, so a single table suffices for both alphabets.
var alphaMappings = buildAlphaMappings()

func buildAlphaMappings() map[rune]rune {
	groups := map[rune]string{
		'2': "ABC",
		'3': "DEF",
		'4': "GHI",
		'5': "JKL",
		'6': "MNO",
		'7': "PQRS",
		'8': "TUV",
		'9': "WXYZ",
	}
	m := make(map[rune]rune, 52)
	for digit, letters := range groups {
		for _, l := range letters {
			m[l] = digit
			m[l+('a'-'A')] = digit
		}
	}
	return m
}
