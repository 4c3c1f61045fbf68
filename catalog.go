package tgl

import (
	"sort"
	"sync"
)

// Catalog of templates for a single language, keyed by translation key.
type Catalog map[string]string

// Store holds the catalogs of every loaded language.
//
// A single lock guards the whole set: lookups may run concurrently, a load
// excludes everything else.
type Store struct {
	mu       sync.RWMutex
	catalogs map[string]Catalog
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{catalogs: map[string]Catalog{}}
}

// Load replaces the catalog stored for language. Catalogs are never merged
// in memory; callers build the full catalog before handing it over.
func (s *Store) Load(language string, catalog Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalogs == nil {
		s.catalogs = map[string]Catalog{}
	}
	s.catalogs[language] = catalog
}

// Lookup returns the template stored for key in language.
func (s *Store) Lookup(language, key string) (template string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog, ok := s.catalogs[language]
	if !ok {
		return "", false
	}
	template, ok = catalog[key]
	return template, ok
}

// Languages returns the loaded language identifiers, sorted.
func (s *Store) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	languages := make([]string, 0, len(s.catalogs))
	for language := range s.catalogs {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}
