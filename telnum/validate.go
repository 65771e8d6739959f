package telnum

// IsPossibleNumber performs a cheap length/shape sieve: an unknown calling
// code is reported distinctly from a syntactically too-short or too-long
// number so callers can give a more specific error.
func (s *Store) IsPossibleNumber(n PhoneNumber) ValidationResult {
	md, ok := s.metadataForCountryCode(n.CountryCode)
	if !ok {
		return InvalidCountryCode
	}
	nsn := NationalSignificantNumber(n)
	length := len([]rune(nsn))
	if length < MinLengthForNSN {
		return TooShort
	}
	if length > MaxLengthForNSN {
		return TooLong
	}
	if md.GeneralDesc == nil || md.GeneralDesc.possibleNumberRe == nil {
		return IsPossible
	}
	if md.GeneralDesc.possibleNumberRe.MatchString(nsn) {
		return IsPossible
	}
	// The pattern rejected the length; report which side of its accepted
	// range the input fell on relative to the region's shortest example.
	shortest := 0
	for _, d := range []*PhoneNumberDesc{md.GeneralDesc, md.FixedLine, md.Mobile, md.TollFree, md.PremiumRate, md.SharedCost, md.Voip, md.PersonalNumber, md.Pager, md.Uan} {
		if d != nil && d.ExampleNumber != "" && (shortest == 0 || len(d.ExampleNumber) < shortest) {
			shortest = len(d.ExampleNumber)
		}
	}
	if length < shortest {
		return TooShort
	}
	return TooLong
}

// metadataForCountryCode loads the main region's metadata for a calling
// code, routing non-geographic codes through MetadataForNonGeographicalRegion.
func (s *Store) metadataForCountryCode(callingCode int) (*PhoneMetadata, bool) {
	regions := RegionsForCountryCode(callingCode)
	if len(regions) == 0 {
		return nil, false
	}
	if regions[0] == NonGeographicalRegion {
		return s.MetadataForNonGeographicalRegion(callingCode)
	}
	return s.MetadataForRegion(regions[0])
}

// IsValidNumber reports whether n is valid for whichever region it
// resolves to.
func (s *Store) IsValidNumber(n PhoneNumber) bool {
	region, ok := s.RegionCodeForNumber(n)
	if !ok {
		return false
	}
	return s.IsValidNumberForRegion(n, region)
}

// IsValidNumberForRegion checks n against a specific region's (or
// non-geographic calling code's) metadata, independent of what
// RegionCodeForNumber would have picked. region may be a geographic region
// code or the NonGeographicalRegion sentinel, in which case n.CountryCode
// selects the specific non-geographic entity.
func (s *Store) IsValidNumberForRegion(n PhoneNumber, region string) bool {
	var md *PhoneMetadata
	var ok bool
	if region == NonGeographicalRegion {
		md, ok = s.MetadataForNonGeographicalRegion(n.CountryCode)
	} else {
		md, ok = s.MetadataForRegion(region)
	}
	if !ok {
		return false
	}
	if region != NonGeographicalRegion && s.CountryCodeForValidRegion(region) != n.CountryCode {
		return false
	}
	nsn := NationalSignificantNumber(n)
	if md.GeneralDesc == nil || md.GeneralDesc.nationalNumberRe == nil {
		length := len([]rune(nsn))
		return length > MinLengthForNSN && length <= MaxLengthForNSN
	}
	return s.NumberTypeHelper(nsn, md) != Unknown
}
