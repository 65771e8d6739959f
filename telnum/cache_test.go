package telnum

import (
	"bytes"
	"testing"
)

func TestMetadataCacheRoundTrip(t *testing.T) {
	s := NewStore()
	var records []*PhoneMetadata
	for _, region := range []string{"US", "CA", "IT"} {
		md, ok := s.MetadataForRegion(region)
		if !ok {
			t.Fatalf("expected %s metadata to load", region)
		}
		records = append(records, md)
	}

	var buf bytes.Buffer
	if err := WriteMetadataCache(&buf, records); err != nil {
		t.Fatalf("WriteMetadataCache: %v", err)
	}

	out, err := ReadMetadataCache(&buf)
	if err != nil {
		t.Fatalf("ReadMetadataCache: %v", err)
	}
	if len(out) != len(records) {
		t.Fatalf("got %d records, want %d", len(out), len(records))
	}
	for i, md := range out {
		if md.ID != records[i].ID || md.CountryCode != records[i].CountryCode {
			t.Errorf("record %d: got %s/%d, want %s/%d", i, md.ID, md.CountryCode, records[i].ID, records[i].CountryCode)
		}
		if md.GeneralDesc != nil && md.GeneralDesc.NationalNumberPattern != "" && md.GeneralDesc.nationalNumberRe == nil {
			t.Errorf("record %d: expected the round-tripped metadata to be recompiled", i)
		}
	}
}

func TestWarmFromCache(t *testing.T) {
	s := NewStore()
	geo, _ := s.MetadataForRegion("FR")
	nonGeo, _ := s.MetadataForNonGeographicalRegion(800)

	fresh := NewStore()
	fresh.WarmFromCache([]*PhoneMetadata{geo, nonGeo})

	if v, ok := fresh.cache.Get("region:FR"); !ok || v != geo {
		t.Fatalf("expected FR to be warmed under its region key")
	}
	if v, ok := fresh.cache.Get("cc:800"); !ok || v != nonGeo {
		t.Fatalf("expected calling code 800 to be warmed under its cc key")
	}
}
