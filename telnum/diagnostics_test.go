package telnum

import "testing"

func TestSuggestExampleNumber(t *testing.T) {
	s := NewStore()
	md, ok := s.MetadataForRegion("US")
	if !ok {
		t.Fatalf("expected US metadata")
	}
	example, category, ok := SuggestExampleNumber("2015550124", md)
	if !ok {
		t.Fatalf("expected a suggestion")
	}
	if category != FixedLine {
		t.Fatalf("got category %s, want FIXED_LINE", category)
	}
	if example != md.FixedLine.ExampleNumber {
		t.Fatalf("got example %q, want %q", example, md.FixedLine.ExampleNumber)
	}
}

func TestSuggestExampleNumberNilMetadata(t *testing.T) {
	if _, _, ok := SuggestExampleNumber("2015550124", nil); ok {
		t.Fatalf("expected no suggestion for nil metadata")
	}
}

func TestSuggestExampleNumberNoExamplesAvailable(t *testing.T) {
	md := &PhoneMetadata{ID: "ZZ", CountryCode: 999}
	if err := md.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, _, ok := SuggestExampleNumber("12345", md); ok {
		t.Fatalf("expected no suggestion when no category carries an example")
	}
}
