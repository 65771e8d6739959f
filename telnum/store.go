package telnum

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

//go:embed metadata/*.yaml
var embeddedMetadata embed.FS

// Store is the lazy, memoizing, concurrent-read-safe metadata cache. Its
// zero value is not usable; construct one with NewStore. Entries are
// immutable once published: a lookup either returns the same *PhoneMetadata
// every time or consistently reports absence.
type Store struct {
	prefix string
	fsys   fs.FS
	cache  *lru.Cache[string, *PhoneMetadata]
	group  singleflight.Group
	log    *Logger
}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithPrefix overrides the file-key prefix (default "telnum").
func WithPrefix(prefix string) StoreOption {
	return func(s *Store) { s.prefix = prefix }
}

// WithFS points the loader at an alternative filesystem, e.g. os.DirFS for
// metadata regenerated outside the compiled binary. Defaults to the
// package's embedded metadata directory.
func WithFS(fsys fs.FS) StoreOption {
	return func(s *Store) { s.fsys = fsys }
}

// WithLogger attaches a logger for load-failure diagnostics. Failures never
// escape as errors; the logger is purely observational.
func WithLogger(l *Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// NewStore builds a Store. The cache holds up to 4096 entries, which
// comfortably exceeds the number of regions this build ships; least-recently
// used entries are evicted only once a much larger custom metadata set
// pushes the count past that bound, never in normal operation.
func NewStore(opts ...StoreOption) *Store {
	sub, err := fs.Sub(embeddedMetadata, "metadata")
	if err != nil {
		panic(fmt.Errorf("telnum: embedded metadata unreadable: %w", err))
	}
	cache, err := lru.New[string, *PhoneMetadata](4096)
	if err != nil {
		panic(fmt.Errorf("telnum: cache init: %w", err))
	}
	s := &Store{
		prefix: "telnum",
		fsys:   sub,
		cache:  cache,
		log:    NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultStore = NewStore()

// Default returns the process-wide Store backed by the embedded metadata
// set. Most callers should use this; construct a private Store only to
// point at a custom metadata directory or prefix.
func Default() *Store { return defaultStore }

// MetadataForRegion returns the cached or freshly loaded metadata for a
// geographic region code. Unsupported regions return (nil, false) without
// touching the filesystem.
func (s *Store) MetadataForRegion(region string) (*PhoneMetadata, bool) {
	region = strings.ToUpper(region)
	if region == "" || region == UnknownRegion || !supportedRegions[region] {
		return nil, false
	}
	return s.load("region:"+region, fmt.Sprintf("%s_%s.yaml", s.prefix, region))
}

// MetadataForNonGeographicalRegion returns metadata for a non-geographic
// calling code (e.g. 800 for UIFN), routed through the "001" pseudo-region.
func (s *Store) MetadataForNonGeographicalRegion(callingCode int) (*PhoneMetadata, bool) {
	regions, ok := countryCallingCodeToRegionCodes[callingCode]
	if !ok || len(regions) == 0 || regions[0] != NonGeographicalRegion {
		return nil, false
	}
	key := "cc:" + strconv.Itoa(callingCode)
	return s.load(key, fmt.Sprintf("%s_%d.yaml", s.prefix, callingCode))
}

// load is the single choke point every lookup passes through: check the
// cache, then dedupe concurrent first-touch reads with singleflight, then
// parse and compile. A failure at any stage is cached as a permanent miss
// so a broken file is only ever attempted once per process.
func (s *Store) load(key, filename string) (*PhoneMetadata, bool) {
	if v, ok := s.cache.Get(key); ok {
		return v, v != nil
	}
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.readAndCompile(filename)
	})
	if err != nil {
		s.log.Debug("telnum: metadata unavailable", "file", filename, "error", err)
		s.cache.Add(key, nil)
		return nil, false
	}
	md := v.(*PhoneMetadata)
	s.cache.Add(key, md)
	return md, true
}

func (s *Store) readAndCompile(filename string) (*PhoneMetadata, error) {
	raw, err := fs.ReadFile(s.fsys, filename)
	if err != nil {
		return nil, err
	}
	var md PhoneMetadata
	if err := yaml.Unmarshal(raw, &md); err != nil {
		return nil, fmt.Errorf("malformed metadata record in %s: %w", filename, err)
	}
	if err := md.compile(); err != nil {
		return nil, fmt.Errorf("invalid pattern in %s: %w", filename, err)
	}
	return &md, nil
}

// CountryCodeForValidRegion returns the calling code attribute of a
// region's metadata, or 0 if the region is unsupported or fails to load.
func (s *Store) CountryCodeForValidRegion(region string) int {
	md, ok := s.MetadataForRegion(region)
	if !ok {
		return 0
	}
	return md.CountryCode
}
