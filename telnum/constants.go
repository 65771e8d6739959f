package telnum

// NumberFormat selects a rendering style for a parsed number. The core does
// not implement the formatter itself (see the formatting subsystem), but
// carries these constants so callers and the classifier can agree on intent.
type NumberFormat int

const (
	E164 NumberFormat = iota
	INTERNATIONAL
	NATIONAL
	RFC3966
)

// NumberType is the outcome of the classifier's category ladder.
type NumberType int

const (
	FixedLine NumberType = iota
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	Voip
	PersonalNumber
	Pager
	Uan
	Unknown
)

func (t NumberType) String() string {
	switch t {
	case FixedLine:
		return "FIXED_LINE"
	case Mobile:
		return "MOBILE"
	case FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TollFree:
		return "TOLL_FREE"
	case PremiumRate:
		return "PREMIUM_RATE"
	case SharedCost:
		return "SHARED_COST"
	case Voip:
		return "VOIP"
	case PersonalNumber:
		return "PERSONAL_NUMBER"
	case Pager:
		return "PAGER"
	case Uan:
		return "UAN"
	default:
		return "UNKNOWN"
	}
}

// MatchType ranks how closely two numbers correspond to each other.
type MatchType int

const (
	NotANumber MatchType = iota
	NoMatch
	ShortNSNMatch
	NSNMatch
	ExactMatch
)

// ValidationResult is the outcome of a possibility check.
type ValidationResult int

const (
	IsPossible ValidationResult = iota
	InvalidCountryCode
	TooShort
	TooLong
)

// CountryCodeSource records how a PhoneNumber's country code was determined
// during parsing, mirroring the provenance libphonenumber-derived formats
// carry so re-formatting can decide whether to render a leading '+'.
type CountryCodeSource int

const (
	CountryCodeSourceUnspecified CountryCodeSource = iota
	FromNumberWithPlus
	FromNumberWithIDD
	FromNumberWithoutPlusSign
	FromDefaultCountry
)

const (
	// MinLengthForNSN is the shortest a national significant number may be
	// for a possibility check to succeed.
	MinLengthForNSN = 3
	// MaxLengthForNSN is the longest a national significant number may be.
	MaxLengthForNSN = 15
	// MaxLengthCountryCode bounds the number of digits in a calling code.
	MaxLengthCountryCode = 3

	// UnknownRegion is returned when no region can be resolved for a
	// calling code.
	UnknownRegion = "ZZ"
	// NonGeographicalRegion designates a calling code that identifies a
	// non-geographic entity (e.g. UIFN, ISCS) rather than a country.
	NonGeographicalRegion = "001"

	// naSentinel marks a PhoneNumberDesc pattern that must never match any
	// input; see PhoneNumberDesc.compile.
	naSentinel = "NA"
)
