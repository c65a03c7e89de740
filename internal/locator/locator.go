// Package locator resolves URL paths to pages, applying the redirect policy
// of the build.
package locator

import (
	"log/slog"

	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/logfields"
	"git.home.luguber.info/inful/doclinks/internal/page"
	"git.home.luguber.info/inful/doclinks/internal/redirects"
)

// Policy controls how redirects are treated.
type Policy struct {
	// DenyWarnings turns every followed redirect into a RedirectedLink error.
	DenyWarnings bool
}

// Locator finds pages. It holds no mutable state and is safe for concurrent use.
type Locator struct {
	resolver redirects.Resolver
	store    page.Store
	policy   Policy
	logger   *slog.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithLogger sets the logger used for redirect diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(loc *Locator) {
		if l != nil {
			loc.logger = l
		}
	}
}

// New creates a Locator. A nil resolver means no redirects.
func New(resolver redirects.Resolver, store page.Store, policy Policy, opts ...Option) *Locator {
	if resolver == nil {
		resolver = redirects.None
	}
	l := &Locator{
		resolver: resolver,
		store:    store,
		policy:   policy,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// GetPage resolves url through the redirect map once and loads the result.
// Under DenyWarnings a redirect fails with *docerror.RedirectedLink instead of
// being followed. Store failures come back as docerror values.
func (l *Locator) GetPage(url string) (*page.Page, error) {
	target := url
	if to, ok := l.resolver.Resolve(url); ok {
		if l.policy.DenyWarnings {
			return nil, &docerror.RedirectedLink{From: url, To: to}
		}
		l.logger.Debug("Following redirect", logfields.URL(url), logfields.RedirectTo(to))
		target = to
	}

	p, err := l.store.Load(target)
	if err != nil {
		return nil, docerror.Classify(err, target)
	}
	return p, nil
}
