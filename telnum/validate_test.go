package telnum

import "testing"

func TestIsPossibleNumberUnknownCountryCode(t *testing.T) {
	s := NewStore()
	n := PhoneNumber{CountryCode: 9999, NationalNumber: 1234567}
	if got := s.IsPossibleNumber(n); got != InvalidCountryCode {
		t.Fatalf("got %v, want InvalidCountryCode", got)
	}
}

func TestIsPossibleNumberTooShort(t *testing.T) {
	s := NewStore()
	n := PhoneNumber{CountryCode: 1, NationalNumber: 12}
	if got := s.IsPossibleNumber(n); got != TooShort {
		t.Fatalf("got %v, want TooShort", got)
	}
}

func TestIsPossibleNumberValidUS(t *testing.T) {
	s := NewStore()
	n := PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}
	if got := s.IsPossibleNumber(n); got != IsPossible {
		t.Fatalf("got %v, want IsPossible", got)
	}
}

func TestIsValidNumberForRegion(t *testing.T) {
	s := NewStore()
	n := PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}
	if !s.IsValidNumberForRegion(n, "US") {
		t.Fatalf("expected a well formed US number to validate")
	}
	if s.IsValidNumberForRegion(n, "GB") {
		t.Fatalf("expected a calling-code mismatch against GB to fail")
	}
}

func TestIsValidNumber(t *testing.T) {
	s := NewStore()
	valid := PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}
	if !s.IsValidNumber(valid) {
		t.Fatalf("expected number to validate")
	}
	invalid := PhoneNumber{CountryCode: 1, NationalNumber: 5}
	if s.IsValidNumber(invalid) {
		t.Fatalf("expected number to be invalid")
	}
}

// is_valid_number(n) == true implies is_possible_number(n) == IS_POSSIBLE.
func TestIsValidImpliesIsPossible(t *testing.T) {
	s := NewStore()
	numbers := []PhoneNumber{
		{CountryCode: 1, NationalNumber: 2015550123},
		{CountryCode: 44, NationalNumber: 7400123456},
		{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true},
		{CountryCode: 55, NationalNumber: 11961234567},
	}
	for _, n := range numbers {
		if s.IsValidNumber(n) && s.IsPossibleNumber(n) != IsPossible {
			t.Errorf("%+v is valid but not possible", n)
		}
	}
}

func TestNonGeographicalValidation(t *testing.T) {
	s := NewStore()
	n := PhoneNumber{CountryCode: 800, NationalNumber: 12345678}
	if !s.IsValidNumberForRegion(n, NonGeographicalRegion) {
		t.Fatalf("expected the UIFN example number to validate")
	}
}
