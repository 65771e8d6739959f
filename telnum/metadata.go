package telnum

import "regexp"

// PhoneNumberDesc describes one semantic number category (general shape,
// fixed-line, mobile, toll-free, ...) for a single region. The two pattern
// fields are declarative and round-trip through the metadata file format
// unchanged; compile() turns them into anchored matchers, converting the
// "NA" sentinel into an absent matcher so callers never test a regex that
// is defined to match nothing.
type PhoneNumberDesc struct {
	NationalNumberPattern string `yaml:"nationalNumberPattern,omitempty"`
	PossibleNumberPattern string `yaml:"possibleNumberPattern,omitempty"`
	ExampleNumber         string `yaml:"exampleNumber,omitempty"`

	nationalNumberRe *regexp.Regexp
	possibleNumberRe *regexp.Regexp
}

// compile anchors and pre-compiles the desc's patterns. It is idempotent and
// safe to call more than once; callers hold no lock while it runs because it
// only mutates fields derived purely from the desc's own string fields.
func (d *PhoneNumberDesc) compile() error {
	if d == nil {
		return nil
	}
	re, err := compileNationalPattern(d.NationalNumberPattern)
	if err != nil {
		return err
	}
	d.nationalNumberRe = re

	re, err = compileNationalPattern(d.PossibleNumberPattern)
	if err != nil {
		return err
	}
	d.possibleNumberRe = re
	return nil
}

func compileNationalPattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" || pattern == naSentinel {
		return nil, nil
	}
	return regexp.Compile("(?i)^(?:" + pattern + ")$")
}

// matches reports whether nsn satisfies both the possible-number sieve and
// the full national pattern. A nil desc, or a desc with no compiled
// national pattern, never matches.
func (d *PhoneNumberDesc) matches(nsn string) bool {
	if d == nil || d.nationalNumberRe == nil {
		return false
	}
	if d.possibleNumberRe != nil && !d.possibleNumberRe.MatchString(nsn) {
		return false
	}
	return d.nationalNumberRe.MatchString(nsn)
}

// NumberFormatRule is one entry of a region's ordered formatting table.
// Formatting itself is outside this package's scope (see the formatting
// subsystem); the rule is carried as an opaque, round-trippable record and
// exposed for callers that assemble their own renderer.
type NumberFormatRule struct {
	Pattern                           string   `yaml:"pattern"`
	Format                            string   `yaml:"format"`
	LeadingDigitsPatterns             []string `yaml:"leadingDigitsPatterns,omitempty"`
	NationalPrefixFormattingRule      string   `yaml:"nationalPrefixFormattingRule,omitempty"`
	DomesticCarrierCodeFormattingRule string   `yaml:"domesticCarrierCodeFormattingRule,omitempty"`

	compiledPattern       *regexp.Regexp
	compiledLeadingDigits []*regexp.Regexp
}

func (f *NumberFormatRule) compile() error {
	re, err := regexp.Compile("(?i)" + f.Pattern)
	if err != nil {
		return err
	}
	f.compiledPattern = re
	f.compiledLeadingDigits = make([]*regexp.Regexp, 0, len(f.LeadingDigitsPatterns))
	for _, ld := range f.LeadingDigitsPatterns {
		re, err := regexp.Compile("(?i)^(?:" + ld + ")")
		if err != nil {
			return err
		}
		f.compiledLeadingDigits = append(f.compiledLeadingDigits, re)
	}
	return nil
}

// AppliesToLeadingDigits reports whether the rule's first leading-digits
// alternative matches as a prefix of nsn, per the "first whose
// leading_digits_patterns[0] matches" selection rule.
func (f *NumberFormatRule) AppliesToLeadingDigits(nsn string) bool {
	if len(f.compiledLeadingDigits) == 0 {
		return true
	}
	return f.compiledLeadingDigits[0].MatchString(nsn)
}

// PhoneMetadata is the immutable, per-region (or per-non-geographic-code)
// record produced by the (external) metadata generator and materialized by
// the Store on first reference.
type PhoneMetadata struct {
	ID          string `yaml:"id"`
	CountryCode int    `yaml:"countryCode"`

	InternationalPrefix          string `yaml:"internationalPrefix,omitempty"`
	PreferredInternationalPrefix string `yaml:"preferredInternationalPrefix,omitempty"`
	NationalPrefix               string `yaml:"nationalPrefix,omitempty"`
	PreferredExtnPrefix          string `yaml:"preferredExtnPrefix,omitempty"`
	NationalPrefixForParsing     string `yaml:"nationalPrefixForParsing,omitempty"`
	NationalPrefixTransformRule  string `yaml:"nationalPrefixTransformRule,omitempty"`

	GeneralDesc             *PhoneNumberDesc `yaml:"generalDesc,omitempty"`
	FixedLine               *PhoneNumberDesc `yaml:"fixedLine,omitempty"`
	Mobile                  *PhoneNumberDesc `yaml:"mobile,omitempty"`
	TollFree                *PhoneNumberDesc `yaml:"tollFree,omitempty"`
	PremiumRate             *PhoneNumberDesc `yaml:"premiumRate,omitempty"`
	SharedCost              *PhoneNumberDesc `yaml:"sharedCost,omitempty"`
	Voip                    *PhoneNumberDesc `yaml:"voip,omitempty"`
	PersonalNumber          *PhoneNumberDesc `yaml:"personalNumber,omitempty"`
	Pager                   *PhoneNumberDesc `yaml:"pager,omitempty"`
	Uan                     *PhoneNumberDesc `yaml:"uan,omitempty"`
	Voicemail               *PhoneNumberDesc `yaml:"voicemail,omitempty"`
	Emergency               *PhoneNumberDesc `yaml:"emergency,omitempty"`
	ShortCode               *PhoneNumberDesc `yaml:"shortCode,omitempty"`
	StandardRate            *PhoneNumberDesc `yaml:"standardRate,omitempty"`
	NoInternationalDialling *PhoneNumberDesc `yaml:"noInternationalDialling,omitempty"`

	NumberFormat     []*NumberFormatRule `yaml:"numberFormat,omitempty"`
	IntlNumberFormat []*NumberFormatRule `yaml:"intlNumberFormat,omitempty"`

	// LeadingDigits, when set, is matched as a prefix of the national
	// significant number to disambiguate this region from siblings sharing
	// its calling code, without running the full type ladder.
	LeadingDigits string `yaml:"leadingDigits,omitempty"`

	MainCountryForCode            bool `yaml:"mainCountryForCode,omitempty"`
	LeadingZeroPossible           bool `yaml:"leadingZeroPossible,omitempty"`
	SameMobileAndFixedLinePattern bool `yaml:"sameMobileAndFixedLinePattern,omitempty"`

	leadingDigitsRe *regexp.Regexp
}

// descsInPriorityOrder lists the categories consulted by NumberTypeHelper,
// in fixed category-priority order: the first pattern match wins.
func (m *PhoneMetadata) descsInPriorityOrder() []struct {
	typ  NumberType
	desc *PhoneNumberDesc
} {
	return []struct {
		typ  NumberType
		desc *PhoneNumberDesc
	}{
		{PremiumRate, m.PremiumRate},
		{TollFree, m.TollFree},
		{SharedCost, m.SharedCost},
		{Voip, m.Voip},
		{PersonalNumber, m.PersonalNumber},
		{Pager, m.Pager},
		{Uan, m.Uan},
	}
}

// compile pre-compiles every regex embedded in the metadata record. It is
// called once by the Store immediately after a record is parsed, before the
// record is published to any reader.
func (m *PhoneMetadata) compile() error {
	descs := []*PhoneNumberDesc{
		m.GeneralDesc, m.FixedLine, m.Mobile, m.TollFree, m.PremiumRate,
		m.SharedCost, m.Voip, m.PersonalNumber, m.Pager, m.Uan, m.Voicemail,
		m.Emergency, m.ShortCode, m.StandardRate, m.NoInternationalDialling,
	}
	for _, d := range descs {
		if err := d.compile(); err != nil {
			return err
		}
	}
	for _, f := range m.NumberFormat {
		if err := f.compile(); err != nil {
			return err
		}
	}
	for _, f := range m.IntlNumberFormat {
		if err := f.compile(); err != nil {
			return err
		}
	}
	if m.LeadingDigits != "" {
		re, err := regexp.Compile("(?i)^(?:" + m.LeadingDigits + ")")
		if err != nil {
			return err
		}
		m.leadingDigitsRe = re
	}
	return nil
}

// MatchesLeadingDigits reports whether the region's disambiguation prefix
// (if any) matches the start of nsn.
func (m *PhoneMetadata) MatchesLeadingDigits(nsn string) bool {
	return m.leadingDigitsRe != nil && m.leadingDigitsRe.MatchString(nsn)
}
