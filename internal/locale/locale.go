// Package locale defines the closed set of content locales.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the supported content locales. The zero value means
// "not specified" and must be resolved with Or before it is used.
type Locale uint8

const (
	Unspecified Locale = iota
	De
	EnUS
	Es
	Fr
	Ja
	Ko
	PtBR
	Ru
	ZhCN
	ZhTW
)

// Default is the locale used whenever none is supplied.
const Default = EnUS

type info struct {
	url string
	tag language.Tag
}

var table = [...]info{
	De:   {"de", language.German},
	EnUS: {"en-US", language.AmericanEnglish},
	Es:   {"es", language.Spanish},
	Fr:   {"fr", language.French},
	Ja:   {"ja", language.Japanese},
	Ko:   {"ko", language.Korean},
	PtBR: {"pt-BR", language.BrazilianPortuguese},
	Ru:   {"ru", language.Russian},
	ZhCN: {"zh-CN", language.MustParse("zh-CN")},
	ZhTW: {"zh-TW", language.MustParse("zh-TW")},
}

// All returns every supported locale in declaration order.
func All() []Locale {
	out := make([]Locale, 0, len(table)-1)
	for l := De; l <= ZhTW; l++ {
		out = append(out, l)
	}
	return out
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l > Unspecified && int(l) < len(table)
}

// Or returns l, or fallback when l is Unspecified.
func (l Locale) Or(fallback Locale) Locale {
	if l.Valid() {
		return l
	}
	return fallback
}

// String returns the URL form of the locale, e.g. "en-US".
func (l Locale) String() string {
	if !l.Valid() {
		return ""
	}
	return table[l].url
}

// Folder returns the lowercase form used in content directory names.
func (l Locale) Folder() string {
	return strings.ToLower(l.String())
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}
	return table[l].tag
}

// Parse maps a locale string to a Locale. Matching is case-insensitive and
// accepts "_" as a separator ("pt_br"). Only exact members of the set are
// accepted; "en" is not en-US.
func Parse(raw string) (Locale, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	for _, l := range All() {
		if strings.EqualFold(cleaned, table[l].url) {
			return l, nil
		}
	}

	tag, err := language.Parse(cleaned)
	if err == nil {
		for _, l := range All() {
			if table[l].tag == tag {
				return l, nil
			}
		}
	}
	return Unspecified, fmt.Errorf("unsupported locale %q", raw)
}

// FromURL returns the locale of the first path segment of a URL path such as
// "/fr/docs/Web".
func FromURL(path string) (Locale, bool) {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	l, err := Parse(segment)
	if err != nil {
		return Unspecified, false
	}
	return l, true
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	all := All()
	out := make([]language.Tag, len(all))
	for i, l := range all {
		out[i] = l.Tag()
	}
	return out
}

// Match picks the best supported locale for an Accept-Language style list.
// It returns Default when nothing matches.
func Match(acceptLanguage string) Locale {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, index, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return Default
	}
	return All()[index]
}

// MarshalText implements encoding.TextMarshaler.
func (l Locale) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input leaves the
// locale Unspecified.
func (l *Locale) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*l = Unspecified
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
