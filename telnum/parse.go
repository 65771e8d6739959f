package telnum

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by Parse when the input isn't even viable,
// checked before any region or country-code reasoning is attempted.
var ErrNotANumber = errors.New("telnum: text is not viable as a phone number")

// ErrUnknownCountryCode is returned by Parse when no calling code could be
// determined, either from the input itself or from defaultRegion.
var ErrUnknownCountryCode = errors.New("telnum: unable to determine a country calling code")

// Parse turns raw, human-entered text into a PhoneNumber. It is the
// top-level operation the component overview's data flow implies: raw
// input feeds the normalizer (extension aside), a leading '+' is stripped
// to find a candidate country calling code, and whatever digits remain
// become the national number. IDD prefixes (e.g. "011", "00") are not
// recognized as introducing a calling code. When the input carries
// no explicit country code, defaultRegion supplies one; pass "" to require
// an explicit code.
//
// Parse never invokes the formatting subsystem — its output is a plain
// PhoneNumber value for the classifier and validator to consume.
func (s *Store) Parse(rawInput, defaultRegion string) (PhoneNumber, error) {
	trimmed := strings.TrimSpace(rawInput)
	if !IsViablePhoneNumber(trimmed) {
		return PhoneNumber{}, ErrNotANumber
	}

	withoutExtn, extension := MaybeStripExtension(trimmed)
	national := Normalize(withoutExtn)

	if hasPlusPrefix(withoutExtn) {
		cc, rest, ok := extractCountryCode(national)
		if !ok {
			return PhoneNumber{}, ErrUnknownCountryCode
		}
		md, _ := s.metadataForCountryCode(cc)
		return buildNumber(cc, rest, extension, FromNumberWithPlus, leadingZeroPossible(md))
	}

	if defaultRegion == "" {
		return PhoneNumber{}, ErrUnknownCountryCode
	}
	md, ok := s.MetadataForRegion(defaultRegion)
	if !ok {
		return PhoneNumber{}, ErrUnknownCountryCode
	}
	national = stripNationalPrefix(national, md)
	return buildNumber(md.CountryCode, national, extension, FromDefaultCountry, leadingZeroPossible(md))
}

func leadingZeroPossible(md *PhoneMetadata) bool {
	return md != nil && md.LeadingZeroPossible
}

func hasPlusPrefix(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return r == '+' || r == '＋'
}

// extractCountryCode greedily tries calling-code lengths 1..MaxLengthCountryCode
// (E.164 codes are never longer) against the known index, preferring the
// longest match so e.g. "44" isn't mistaken for a 1-digit code that happens
// to share a leading digit with a 2-digit one.
func extractCountryCode(digits string) (int, string, bool) {
	for length := MaxLengthCountryCode; length >= 1; length-- {
		if len(digits) <= length {
			continue
		}
		candidate := digits[:length]
		cc, err := strconv.Atoi(candidate)
		if err != nil {
			continue
		}
		if _, ok := countryCallingCodeToRegionCodes[cc]; ok {
			return cc, digits[length:], true
		}
	}
	return 0, "", false
}

func stripNationalPrefix(nsn string, md *PhoneMetadata) string {
	if md.NationalPrefix == "" {
		return nsn
	}
	if strings.HasPrefix(nsn, md.NationalPrefix) {
		return nsn[len(md.NationalPrefix):]
	}
	return nsn
}

func buildNumber(countryCode int, nsn string, extension string, source CountryCodeSource, allowLeadingZero bool) (PhoneNumber, error) {
	leadingZero := allowLeadingZero && len(nsn) > 1 && nsn[0] == '0'
	if leadingZero {
		nsn = strings.TrimPrefix(nsn, "0")
	}
	value, err := strconv.ParseUint(nsn, 10, 64)
	if err != nil {
		return PhoneNumber{}, ErrNotANumber
	}
	return PhoneNumber{
		CountryCode:        countryCode,
		NationalNumber:     value,
		ItalianLeadingZero: leadingZero,
		Extension:          extension,
		CountryCodeSource:  source,
	}, nil
}
