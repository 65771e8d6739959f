package telnum

// RegionCodeForNumber resolves the region a parsed number belongs to,
// disambiguating between regions that share a calling code by checking
// every region with a distinguishing leading-digit pattern first, falling
// back to full number-type matching against the region with no
// leading-digit pattern second. The scan order is the country-code index's
// own order, so the answer is stable across repeated calls with identical
// input.
func (s *Store) RegionCodeForNumber(n PhoneNumber) (string, bool) {
	regions := RegionsForCountryCode(n.CountryCode)
	if len(regions) == 0 {
		return "", false
	}
	if len(regions) == 1 {
		return regions[0], true
	}
	nsn := NationalSignificantNumber(n)
	fallbackRegion, fallbackMD := "", (*PhoneMetadata)(nil)
	for _, region := range regions {
		md, ok := s.MetadataForRegion(region)
		if !ok {
			continue
		}
		if md.LeadingDigits == "" {
			// The region with no disambiguation prefix is the main region for
			// this calling code; it's only the answer if no sibling's leading
			// digits claim the number first.
			if fallbackRegion == "" {
				fallbackRegion, fallbackMD = region, md
			}
			continue
		}
		if md.MatchesLeadingDigits(nsn) {
			return region, true
		}
	}
	if fallbackMD != nil && s.NumberTypeHelper(nsn, fallbackMD) != Unknown {
		return fallbackRegion, true
	}
	return "", false
}

// NumberTypeHelper classifies a national significant number against a
// single region's metadata, applying the fixed category priority order:
// general shape gate, then premium/toll-free/shared-cost/voip/personal/
// pager/uan, then the fixed-line/mobile resolution.
func (s *Store) NumberTypeHelper(nsn string, md *PhoneMetadata) NumberType {
	if md == nil || !md.GeneralDesc.matches(nsn) {
		return Unknown
	}
	for _, candidate := range md.descsInPriorityOrder() {
		if candidate.desc.matches(nsn) {
			return candidate.typ
		}
	}
	if md.FixedLine.matches(nsn) {
		if md.SameMobileAndFixedLinePattern || md.Mobile.matches(nsn) {
			return FixedLineOrMobile
		}
		return FixedLine
	}
	if !md.SameMobileAndFixedLinePattern && md.Mobile.matches(nsn) {
		return Mobile
	}
	return Unknown
}

// GetNumberType is the public entry point mirroring the source library's
// naming: it resolves n's region, then classifies it against that region's
// metadata. Numbers whose calling code or region cannot be resolved report
// Unknown.
func (s *Store) GetNumberType(n PhoneNumber) NumberType {
	region, ok := s.RegionCodeForNumber(n)
	if !ok {
		return Unknown
	}
	var md *PhoneMetadata
	if region == NonGeographicalRegion {
		md, ok = s.MetadataForNonGeographicalRegion(n.CountryCode)
	} else {
		md, ok = s.MetadataForRegion(region)
	}
	if !ok {
		return Unknown
	}
	return s.NumberTypeHelper(NationalSignificantNumber(n), md)
}
