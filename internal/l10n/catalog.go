// Package l10n holds the localized string catalog consulted while rendering
// links.
package l10n

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/doclinks/internal/locale"
)

// Namespaces and keys used by link rendering.
const (
	NamespaceCommon   = "Common"
	NamespaceTemplate = "Template"

	KeySummary                = "summary"
	KeyExperimentalBadgeTitle = "experimental_badge_title"
	KeyDeprecatedBadgeTitle   = "deprecated_badge_title"
	KeyNonStandardBadgeTitle  = "non_standard_badge_title"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// entries maps namespace -> key -> locale URL form -> text.
type entries map[string]map[string]map[string]string

// Catalog is an immutable set of localized strings. It is safe for
// concurrent use.
type Catalog struct {
	entries  entries
	fallback locale.Locale
}

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	c, err := Parse(bytes.NewReader(embeddedCatalog), locale.Default)
	if err != nil {
		panic(fmt.Sprintf("l10n: embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse reads a YAML catalog. Lookups for a locale without a translation fall
// back to fallback.
func Parse(r io.Reader, fallback locale.Locale) (*Catalog, error) {
	var e entries
	if err := yaml.NewDecoder(r).Decode(&e); err != nil && err != io.EOF {
		return nil, fmt.Errorf("l10n: decode catalog: %w", err)
	}
	if e == nil {
		e = entries{}
	}
	for ns, keys := range e {
		for key, texts := range keys {
			for tag := range texts {
				if _, err := locale.Parse(tag); err != nil {
					return nil, fmt.Errorf("l10n: %s/%s: %w", ns, key, err)
				}
			}
		}
	}
	return &Catalog{entries: e, fallback: fallback.Or(locale.Default)}, nil
}

// LoadFile reads a catalog file and layers it over the embedded catalog, so a
// file only needs to carry the strings it changes.
func LoadFile(path string, fallback locale.Locale) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("l10n: open catalog %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	overlay, err := Parse(f, fallback)
	if err != nil {
		return nil, err
	}
	base := Default()
	return &Catalog{entries: merge(base.entries, overlay.entries), fallback: overlay.fallback}, nil
}

// Lookup returns the text for namespace/key in loc. Missing translations
// fall back to the catalog's fallback locale; ok is false when neither exists.
func (c *Catalog) Lookup(namespace, key string, loc locale.Locale) (string, bool) {
	if c == nil {
		return "", false
	}
	texts, ok := c.entries[namespace][key]
	if !ok {
		return "", false
	}
	if text, ok := texts[loc.Or(c.fallback).String()]; ok {
		return text, true
	}
	text, ok := texts[c.fallback.String()]
	return text, ok
}

func merge(base, overlay entries) entries {
	out := make(entries, len(base))
	for ns, keys := range base {
		out[ns] = make(map[string]map[string]string, len(keys))
		for key, texts := range keys {
			out[ns][key] = make(map[string]string, len(texts))
			for tag, text := range texts {
				out[ns][key][tag] = text
			}
		}
	}
	for ns, keys := range overlay {
		if out[ns] == nil {
			out[ns] = make(map[string]map[string]string, len(keys))
		}
		for key, texts := range keys {
			if out[ns][key] == nil {
				out[ns][key] = make(map[string]string, len(texts))
			}
			for tag, text := range texts {
				out[ns][key][tag] = text
			}
		}
	}
	return out
}
