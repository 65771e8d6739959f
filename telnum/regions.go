package telnum

import "strings"

// countryCallingCodeToRegionCodes is the static, process-wide bidirectional
// index between a calling code and the ordered list of regions that share
// it. The head of each list is that code's "main region" — the only
// tie-break rule when leading-digit and full-NSN disambiguation both fail.
//
// The set of regions below is intentionally a representative slice rather
// than the ~250-region table a production build ships (see DESIGN.md); the
// loader, index, and classifier place no upper bound on it. Extending
// coverage takes both a new entry in this map and a metadata file next to
// the existing ones: a region absent from this map is never loaded, even
// when its file exists.
var countryCallingCodeToRegionCodes = map[int][]string{
	1:   {"US", "CA"},
	33:  {"FR"},
	39:  {"IT"},
	44:  {"GB"},
	49:  {"DE"},
	55:  {"BR"},
	61:  {"AU"},
	800: {"001"},
	808: {"001"},
}

// supportedRegions is built once by flattening the index above; a region is
// "supported" iff it appears here, and lookups of unsupported regions never
// touch the filesystem.
var supportedRegions = buildSupportedRegions()

func buildSupportedRegions() map[string]bool {
	out := make(map[string]bool)
	for _, regions := range countryCallingCodeToRegionCodes {
		for _, r := range regions {
			out[r] = true
		}
	}
	return out
}

// RegionCodeForCountryCode returns the main region for a calling code, or
// the UnknownRegion sentinel if no entry exists.
func RegionCodeForCountryCode(callingCode int) string {
	regions, ok := countryCallingCodeToRegionCodes[callingCode]
	if !ok || len(regions) == 0 {
		return UnknownRegion
	}
	return regions[0]
}

// RegionsForCountryCode returns the full, ordered list of regions sharing a
// calling code, or nil if the code is unknown.
func RegionsForCountryCode(callingCode int) []string {
	return countryCallingCodeToRegionCodes[callingCode]
}

// IsSupportedRegion reports whether region appears anywhere in the index.
func IsSupportedRegion(region string) bool {
	return supportedRegions[strings.ToUpper(region)]
}

// KnownCallingCodes returns the full calling-code-to-regions index. Callers
// that need to enumerate every supported entry (e.g. to build a metadata
// cache bundle) should treat the returned map as read-only.
func KnownCallingCodes() map[int][]string {
	return countryCallingCodeToRegionCodes
}

// IsValidRegionCode is a syntactic ISO 3166-1 alpha-2 check, independent of
// whether the library carries metadata for the region.
func IsValidRegionCode(region string) bool {
	if len(region) != 2 {
		return false
	}
	for _, r := range region {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
