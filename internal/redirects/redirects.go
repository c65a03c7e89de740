// Package redirects maps retired documentation paths to their canonical
// replacement.
package redirects

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Resolver looks up the canonical destination for a URL path. It returns
// false when the path is already canonical.
type Resolver interface {
	Resolve(url string) (string, bool)
}

// ErrCycle is returned when redirect entries form a loop.
var ErrCycle = errors.New("redirect cycle")

// Map is an immutable, fully chased redirect table. Keys compare
// case-insensitively and every value is the end of its chain, so Resolve
// never needs more than one lookup. It is safe for concurrent use.
type Map struct {
	entries map[string]string
}

// None is a Resolver with no redirects.
var None Resolver = &Map{}

// New builds a Map from from->to pairs, chasing chains so each entry points at
// its final destination.
func New(pairs map[string]string) (*Map, error) {
	raw := make(map[string]string, len(pairs))
	for from, to := range pairs {
		raw[key(from)] = to
	}

	chased := make(map[string]string, len(raw))
	for from, to := range raw {
		seen := map[string]bool{from: true}
		for {
			next, ok := raw[key(to)]
			if !ok {
				break
			}
			if seen[key(to)] {
				return nil, fmt.Errorf("%w at %s", ErrCycle, from)
			}
			seen[key(to)] = true
			to = next
		}
		chased[from] = to
	}
	return &Map{entries: chased}, nil
}

// Parse reads the tab separated `_redirects.txt` format: one "from<TAB>to"
// pair per line, blank lines and lines starting with '#' ignored.
func Parse(r io.Reader) (*Map, error) {
	pairs, err := parsePairs(r, "")
	if err != nil {
		return nil, err
	}
	return New(pairs)
}

// LoadFiles reads and merges several redirect files. A path redirected by
// more than one file is an error.
func LoadFiles(paths ...string) (*Map, error) {
	pairs := make(map[string]string)
	origin := make(map[string]string)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open redirects %q: %w", path, err)
		}
		filePairs, err := parsePairs(f, path)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		for from, to := range filePairs {
			if prev, dup := origin[key(from)]; dup {
				return nil, fmt.Errorf("%s: %s already redirected in %s", path, from, prev)
			}
			origin[key(from)] = path
			pairs[from] = to
		}
	}
	return New(pairs)
}

func parsePairs(r io.Reader, name string) (map[string]string, error) {
	if name == "" {
		name = "redirects"
	}
	pairs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		from, to, ok := strings.Cut(line, "\t")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("%s:%d: expected \"from<TAB>to\"", name, lineNo)
		}
		if _, dup := pairs[from]; dup {
			return nil, fmt.Errorf("%s:%d: duplicate redirect for %s", name, lineNo, from)
		}
		pairs[from] = to
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return pairs, nil
}

// Resolve returns the canonical destination for url. A "#fragment" on url is
// kept when the destination does not carry its own.
func (m *Map) Resolve(url string) (string, bool) {
	if m == nil || len(m.entries) == 0 {
		return "", false
	}
	path, fragment, hasFragment := strings.Cut(url, "#")
	to, ok := m.entries[key(path)]
	if !ok {
		return "", false
	}
	if hasFragment && !strings.Contains(to, "#") {
		to += "#" + fragment
	}
	return to, true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func key(url string) string {
	return strings.ToLower(url)
}
