package telnum

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// extnPatternFragment is the unanchored extension fragment; patterns.go
// splices it into the tail of the viable-number pattern, and
// extensionSuffixRe below anchors it to end-of-string for stripping.
//
// It recognizes RFC3966 ";ext=<digits>", a family of free-form introducers
// ("ext", "extn", "x", full-width "ｘｔ", "int"/"ｉｎｔ", accented "anexo",
// single-character separators, and for parsing purposes a bare comma), and
// the trailing North-American "-1234#" shorthand.
var extnPatternFragment = buildExtnPatternFragment()

func buildExtnPatternFragment() string {
	introducers := []string{
		`;ext=(\d{1,7})`,
		`[ \t,]*(?:e?xt(?:ensi(?:o|ó)n|n)?|ex|ｅ?ｘｔｎ?|anex(?:[eoó]|o\x{301})?|ｉｎｔ|int|ｘｔ)[:\.．]?[ \t,-]*(\d{1,7})#?`,
		`[- ]+(\d{1,5})#`,
		`[#＃xXｘ～~,](\d{1,7})#?`,
	}
	return `(?:` + strings.Join(introducers, "|") + `)`
}

var extensionSuffixRe = regexp.MustCompile(`(?i)` + extnPatternFragment + `$`)

// IsViablePhoneNumber reports whether s is syntactically shaped like a
// phone number: at least three characters, made only of permitted
// digits/punctuation/alpha, with at least three digits.
func IsViablePhoneNumber(s string) bool {
	if len([]rune(s)) < MinLengthForNSN {
		return false
	}
	return viableNumberRe.MatchString(s)
}

// NormalizeDigitsOnly folds every Unicode decimal digit in s (full-width
// ASCII, Arabic-Indic, Extended Arabic-Indic, and any other script in the
// Nd category) to its ASCII equivalent, discarding everything else. It is
// idempotent on its own output.
func NormalizeDigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if v, ok := decimalDigitValue(r); ok {
			b.WriteByte(byte('0' + v))
		}
	}
	return b.String()
}

// decimalDigitValue returns the decimal value of any Unicode Nd (decimal
// digit) code point. Every block in the Nd category is defined as ten
// consecutive code points spanning 0-9 (this is a general guarantee of the
// Unicode standard, not specific to any one script), so the value is simply
// the code point's offset from the start of its block, modulo 10.
func decimalDigitValue(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	for _, rng := range unicode.Nd.R16 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r < lo || r > hi || rng.Stride != 1 {
			continue
		}
		return byte((r - lo) % 10), true
	}
	for _, rng := range unicode.Nd.R32 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r < lo || r > hi || rng.Stride != 1 {
			continue
		}
		return byte((r - lo) % 10), true
	}
	return 0, false
}

// countLetters counts ASCII letters in s after folding full-width Latin
// letters to their standard-width form.
func countLetters(s string) int {
	n := 0
	for _, r := range width.Fold.String(s) {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			n++
		}
	}
	return n
}

// maxAlphaMappedDigits is the number of keypad digits a vanity mnemonic
// contributes to a normalized number. A phone word conventionally spells the
// dialable local block of a number (the classic 7-digit NXX-XXXX exchange
// and subscriber number); letters beyond that block are the caller's
// mnemonic flourish, not additional digits to dial, so normalizeAlpha stops
// mapping once it has emitted this many.
const maxAlphaMappedDigits = 7

// Normalize converts input text into a pure ASCII digit string. If s
// contains three or more letters it is treated as an alphanumeric vanity
// number and run through the E.161 keypad mapping (dropping anything that
// doesn't map, and anything past the dialable mnemonic block); otherwise it
// falls back to NormalizeDigitsOnly.
func Normalize(s string) string {
	if countLetters(s) >= 3 {
		return normalizeAlpha(s)
	}
	return NormalizeDigitsOnly(s)
}

func normalizeAlpha(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	mapped := 0
	for _, r := range width.Fold.String(s) {
		if d, ok := alphaMappings[r]; ok {
			if mapped >= maxAlphaMappedDigits {
				continue
			}
			b.WriteRune(d)
			mapped++
			continue
		}
		if v, ok := decimalDigitValue(r); ok {
			b.WriteByte(byte('0' + v))
		}
	}
	return b.String()
}

// MaybeStripExtension inspects the tail of s for an extension. If the tail
// matches the extension grammar and the remainder (with the extension
// excised) is itself still a viable phone number, it returns the remainder
// and the extension digits. Otherwise s is returned unchanged with an empty
// extension.
func MaybeStripExtension(s string) (remainder, extension string) {
	loc := extensionSuffixRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, ""
	}
	ext := firstNonEmptyGroup(s, loc)
	if ext == "" {
		return s, ""
	}
	candidate := s[:loc[0]]
	if !IsViablePhoneNumber(candidate) {
		return s, ""
	}
	return candidate, ext
}

// firstNonEmptyGroup returns the first non-empty capture group's text from
// a FindStringSubmatchIndex match, mirroring "the first non-empty capture
// group is returned as the extension".
func firstNonEmptyGroup(s string, loc []int) string {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}
		if g := s[loc[i]:loc[i+1]]; g != "" {
			return g
		}
	}
	return ""
}

// IsAlphaNumber reports whether s is viable and, after any extension is
// stripped, still contains at least three letters.
func IsAlphaNumber(s string) bool {
	if !IsViablePhoneNumber(s) {
		return false
	}
	remainder, _ := MaybeStripExtension(s)
	return countLetters(remainder) >= 3
}
