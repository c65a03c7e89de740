// Package api is the surface a page-templating layer calls while converting
// authored markup to HTML.
package api

import (
	"log/slog"

	"git.home.luguber.info/inful/doclinks/internal/anchor"
	"git.home.luguber.info/inful/doclinks/internal/config"
	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinks/internal/l10n"
	"git.home.luguber.info/inful/doclinks/internal/links"
	"git.home.luguber.info/inful/doclinks/internal/locator"
	"git.home.luguber.info/inful/doclinks/internal/metrics"
	"git.home.luguber.info/inful/doclinks/internal/page"
	"git.home.luguber.info/inful/doclinks/internal/percent"
	"git.home.luguber.info/inful/doclinks/internal/redirects"
)

// API bundles link rendering, page lookup and slug generation for one
// configuration. It is safe for concurrent use.
type API struct {
	cfg     *config.Config
	locator *locator.Locator
	linker  *links.Linker
}

type options struct {
	store    page.Store
	resolver redirects.Resolver
	catalog  *l10n.Catalog
	recorder metrics.Recorder
	observer links.Observer
	logger   *slog.Logger
}

// Option configures an API.
type Option func(*options)

// WithStore replaces the filesystem store rooted at content_root.
func WithStore(s page.Store) Option { return func(o *options) { o.store = s } }

// WithResolver replaces the redirects loaded from redirects_files.
func WithResolver(r redirects.Resolver) Option { return func(o *options) { o.resolver = r } }

// WithCatalog replaces the catalog loaded from catalog_file.
func WithCatalog(c *l10n.Catalog) Option { return func(o *options) { o.catalog = c } }

func WithRecorder(r metrics.Recorder) Option { return func(o *options) { o.recorder = r } }

func WithObserver(obs links.Observer) Option { return func(o *options) { o.observer = obs } }

func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// New wires the components for cfg.
func New(cfg *config.Config, opts ...Option) (*API, error) {
	if cfg == nil {
		return nil, ferrors.InternalError("api requires a configuration").Build()
	}
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.store == nil {
		o.store = page.NewFSStore(cfg.ContentRoot)
	}
	if o.resolver == nil {
		o.resolver = redirects.None
		if len(cfg.RedirectsFiles) > 0 {
			m, err := redirects.LoadFiles(cfg.RedirectsFiles...)
			if err != nil {
				return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load redirects").
					WithContext("files", cfg.RedirectsFiles).
					Build()
			}
			o.logger.Debug("Loaded redirects", slog.Int("count", m.Len()))
			o.resolver = m
		}
	}
	if o.catalog == nil {
		o.catalog = l10n.Default()
		if cfg.CatalogFile != "" {
			c, err := l10n.LoadFile(cfg.CatalogFile, cfg.DefaultLocale)
			if err != nil {
				return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load catalog").
					WithContext("path", cfg.CatalogFile).
					Build()
			}
			o.catalog = c
		}
	}

	loc := locator.New(o.resolver, o.store, locator.Policy{DenyWarnings: cfg.DenyWarnings}, locator.WithLogger(o.logger))
	renderer := links.NewPageRenderer(loc, o.catalog, cfg.DefaultLocale)
	linker := links.NewLinker(renderer, o.catalog, cfg.DefaultLocale,
		links.WithRecorder(o.recorder),
		links.WithObserver(o.observer),
		links.WithLogger(o.logger))

	return &API{cfg: cfg, locator: loc, linker: linker}, nil
}

// Anchorize converts heading text into a slug. The result is never empty.
func (a *API) Anchorize(text string) string {
	return anchor.Anchorize(text)
}

// GetPage resolves url to a page, honoring redirects and strict mode.
func (a *API) GetPage(url string) (*page.Page, error) {
	return a.locator.GetPage(url)
}

// DecodeURIComponent percent-encodes component with the path-segment set.
// Despite the name it encodes; templates call it to make one segment safe.
func (a *API) DecodeURIComponent(component string) string {
	return percent.Encode(component, percent.PathSegment)
}

// Link renders a cross-document reference. I/O failures and strict-mode
// redirects are returned as errors; missing pages render a placeholder.
func (a *API) Link(req links.Request) (string, error) {
	return a.linker.Link(req)
}

// Linker exposes the link renderer for the markdown renderer.
func (a *API) Linker() *links.Linker {
	return a.linker
}

func (a *API) LiveSampleBaseURL() string {
	return a.cfg.LiveSamplesBaseURL
}

func (a *API) InteractiveExamplesBaseURL() string {
	return a.cfg.InteractiveExamplesBaseURL
}
