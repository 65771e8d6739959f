package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dialcode/telnum/telnum"
)

// Minimal CLI over the core library: parse, validate, region, dump-cache.
// Usage:
//   telnum parse -region US "(202) 555-0143"
//   telnum validate -region US "202-555-0143"
//   telnum region 44
//   telnum dump-cache > bundle.msgpack

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd := os.Args[1]
	switch cmd {
	case "parse":
		parseCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "region":
		regionCmd(os.Args[2:])
	case "dump-cache":
		dumpCacheCmd()
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "telnum commands: parse | validate | region | dump-cache\n")
}

type parseResult struct {
	CountryCode        int    `json:"countryCode"`
	NationalNumber     uint64 `json:"nationalNumber"`
	Extension          string `json:"extension,omitempty"`
	ItalianLeadingZero bool   `json:"italianLeadingZero,omitempty"`
	Region             string `json:"region,omitempty"`
	Type               string `json:"type"`
	Valid              bool   `json:"valid"`
	Possibility        string `json:"possibility"`
}

func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	region := fs.String("region", "", "default region for numbers with no explicit country code")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: telnum parse [-region XX] <raw number>")
		os.Exit(2)
	}
	s := telnum.Default()
	n, err := s.Parse(fs.Arg(0), *region)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}
	res := parseResult{
		CountryCode:        n.CountryCode,
		NationalNumber:     n.NationalNumber,
		Extension:          n.Extension,
		ItalianLeadingZero: n.ItalianLeadingZero,
		Type:               s.GetNumberType(n).String(),
		Valid:              s.IsValidNumber(n),
		Possibility:        possibilityString(s.IsPossibleNumber(n)),
	}
	if region, ok := s.RegionCodeForNumber(n); ok {
		res.Region = region
	}
	emit(res)
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	region := fs.String("region", "", "default region for numbers with no explicit country code")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: telnum validate [-region XX] <raw number>")
		os.Exit(2)
	}
	s := telnum.Default()
	n, err := s.Parse(fs.Arg(0), *region)
	if err != nil {
		emit(map[string]any{"valid": false, "error": err.Error()})
		return
	}
	emit(map[string]any{
		"valid":       s.IsValidNumber(n),
		"possibility": possibilityString(s.IsPossibleNumber(n)),
	})
}

func regionCmd(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: telnum region <calling code>")
		os.Exit(2)
	}
	var cc int
	if _, err := fmt.Sscanf(args[0], "%d", &cc); err != nil {
		fmt.Fprintf(os.Stderr, "invalid calling code: %s\n", args[0])
		os.Exit(2)
	}
	regions := telnum.RegionsForCountryCode(cc)
	if len(regions) == 0 {
		fmt.Fprintf(os.Stderr, "no regions known for calling code %d\n", cc)
		os.Exit(1)
	}
	emit(map[string]any{
		"callingCode": cc,
		"mainRegion":  telnum.RegionCodeForCountryCode(cc),
		"regions":     regions,
	})
}

func dumpCacheCmd() {
	s := telnum.Default()
	var records []*telnum.PhoneMetadata
	for cc, regions := range telnum.KnownCallingCodes() {
		for _, region := range regions {
			if region == telnum.NonGeographicalRegion {
				if md, ok := s.MetadataForNonGeographicalRegion(cc); ok {
					records = append(records, md)
				}
				continue
			}
			if md, ok := s.MetadataForRegion(region); ok {
				records = append(records, md)
			}
		}
	}
	if err := telnum.WriteMetadataCache(os.Stdout, records); err != nil {
		fmt.Fprintf(os.Stderr, "dump-cache: %v\n", err)
		os.Exit(1)
	}
}

func possibilityString(v telnum.ValidationResult) string {
	switch v {
	case telnum.IsPossible:
		return "IS_POSSIBLE"
	case telnum.InvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case telnum.TooShort:
		return "TOO_SHORT"
	case telnum.TooLong:
		return "TOO_LONG"
	default:
		return "UNKNOWN"
	}
}

func emit(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
