package page

import (
	"strings"

	"git.home.luguber.info/inful/doclinks/internal/docerror"
)

// MemoryStore serves pages from memory. Lookups are case-insensitive, like
// the folder mapping of FSStore. It is populated up front and read-only
// afterwards.
type MemoryStore struct {
	pages map[string]*Page
	fail  map[string]error
}

// NewMemoryStore returns a store holding pages keyed by their URL.
func NewMemoryStore(pages ...*Page) *MemoryStore {
	s := &MemoryStore{pages: make(map[string]*Page, len(pages)), fail: map[string]error{}}
	for _, p := range pages {
		s.pages[strings.ToLower(p.URL)] = p
	}
	return s
}

// FailWith makes Load return err for url. Useful to simulate storage faults.
func (s *MemoryStore) FailWith(url string, err error) *MemoryStore {
	s.fail[strings.ToLower(url)] = err
	return s
}

// Load implements Store.
func (s *MemoryStore) Load(url string) (*Page, error) {
	if _, _, err := ParseURL(url); err != nil {
		return nil, err
	}
	k := strings.ToLower(url)
	if err, ok := s.fail[k]; ok {
		return nil, err
	}
	if p, ok := s.pages[k]; ok {
		return p, nil
	}
	return nil, &docerror.PageNotFound{URL: url}
}
