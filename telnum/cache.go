package telnum

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteMetadataCache serializes a set of region metadata records as a
// MessagePack array stream. It exists for the same reason the metadata
// generator materializes per-region YAML in the first place: to let a
// build step precompute a bundle once and ship it alongside (or instead
// of) the individual files, so a cold-started process can populate its
// Store with a single read. The generator that produces these records from
// upstream data is out of this package's scope; WriteMetadataCache only
// packages already-loaded records.
func WriteMetadataCache(w io.Writer, records []*PhoneMetadata) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeArrayLen(len(records)); err != nil {
		return err
	}
	for _, md := range records {
		if err := enc.Encode(md); err != nil {
			return fmt.Errorf("telnum: encode %s: %w", md.ID, err)
		}
	}
	return nil
}

// ReadMetadataCache reads back a bundle written by WriteMetadataCache,
// recompiling every record's regexes before returning it (msgpack, like
// the YAML loader, only carries the declarative fields — compiled matchers
// are always rebuilt on load, never serialized).
func ReadMetadataCache(r io.Reader) ([]*PhoneMetadata, error) {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	out := make([]*PhoneMetadata, 0, n)
	for i := 0; i < n; i++ {
		var md PhoneMetadata
		if err := dec.Decode(&md); err != nil {
			return nil, err
		}
		if err := md.compile(); err != nil {
			return nil, fmt.Errorf("telnum: recompile %s: %w", md.ID, err)
		}
		out = append(out, &md)
	}
	return out, nil
}

// WarmFromCache preloads a Store's cache from a previously written bundle,
// skipping the per-file filesystem reads for every region it contains.
// Regions not present in the bundle fall back to the Store's normal lazy
// loader on first reference.
func (s *Store) WarmFromCache(records []*PhoneMetadata) {
	for _, md := range records {
		key := "region:" + md.ID
		if md.ID == NonGeographicalRegion {
			key = "cc:" + strconv.Itoa(md.CountryCode)
		}
		s.cache.Add(key, md)
	}
}
