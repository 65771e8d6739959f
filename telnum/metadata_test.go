package telnum

import "testing"

func TestPhoneNumberDescCompileAndMatch(t *testing.T) {
	d := &PhoneNumberDesc{
		NationalNumberPattern: `[2-9]\d{9}`,
		PossibleNumberPattern: `\d{10}`,
	}
	if err := d.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !d.matches("2015550123") {
		t.Errorf("expected a well-formed NSN to match")
	}
	if d.matches("123") {
		t.Errorf("did not expect a too-short NSN to match")
	}
}

func TestPhoneNumberDescNilNeverMatches(t *testing.T) {
	var d *PhoneNumberDesc
	if d.matches("2015550123") {
		t.Fatalf("nil desc should never match")
	}
	if err := d.compile(); err != nil {
		t.Fatalf("compile on nil desc should be a no-op, got %v", err)
	}
}

func TestPhoneNumberDescInvalidPattern(t *testing.T) {
	d := &PhoneNumberDesc{NationalNumberPattern: `[`}
	if err := d.compile(); err == nil {
		t.Fatalf("expected an error compiling an invalid regex")
	}
}

func TestNumberFormatRuleAppliesToLeadingDigits(t *testing.T) {
	f := &NumberFormatRule{
		Pattern:               `(\d{3})(\d{4})`,
		Format:                `$1-$2`,
		LeadingDigitsPatterns: []string{"800"},
	}
	if err := f.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !f.AppliesToLeadingDigits("8005551234") {
		t.Errorf("expected the 800 prefix to apply")
	}
	if f.AppliesToLeadingDigits("2025551234") {
		t.Errorf("did not expect a non-800 prefix to apply")
	}
}

func TestNumberFormatRuleWithNoLeadingDigitsAlwaysApplies(t *testing.T) {
	f := &NumberFormatRule{Pattern: `(\d{3})(\d{4})`, Format: `$1-$2`}
	if err := f.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !f.AppliesToLeadingDigits("anything") {
		t.Errorf("a rule with no leading-digits patterns should apply unconditionally")
	}
}

func TestMetadataMatchesLeadingDigits(t *testing.T) {
	md := &PhoneMetadata{ID: "CA", CountryCode: 1, LeadingDigits: "416|647"}
	if err := md.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !md.MatchesLeadingDigits("4165551234") {
		t.Errorf("expected 416 prefix to match")
	}
	if md.MatchesLeadingDigits("2025551234") {
		t.Errorf("did not expect 202 prefix to match")
	}
}

func TestMetadataWithoutLeadingDigitsNeverMatches(t *testing.T) {
	md := &PhoneMetadata{ID: "US", CountryCode: 1}
	if err := md.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if md.MatchesLeadingDigits("4165551234") {
		t.Errorf("a region with no leading-digits pattern should never claim a prefix")
	}
}
