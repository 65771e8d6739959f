package telnum

import "testing"

func TestPhoneNumberEqual(t *testing.T) {
	a := PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}
	b := PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}
	c := PhoneNumber{CountryCode: 1, NationalNumber: 2015550123, ItalianLeadingZero: true}
	if !a.Equal(b) {
		t.Fatalf("expected identical numbers to be equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected ItalianLeadingZero to participate in equality")
	}
}

func TestNationalSignificantNumber(t *testing.T) {
	n := PhoneNumber{NationalNumber: 2015550123}
	if got := NationalSignificantNumber(n); got != "2015550123" {
		t.Fatalf("got %q, want %q", got, "2015550123")
	}
	withZero := PhoneNumber{NationalNumber: 236618300, ItalianLeadingZero: true}
	if got := NationalSignificantNumber(withZero); got != "0236618300" {
		t.Fatalf("got %q, want %q", got, "0236618300")
	}
}
