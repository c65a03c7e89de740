package links

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/doclinks/internal/docerror"
	"git.home.luguber.info/inful/doclinks/internal/l10n"
	"git.home.luguber.info/inful/doclinks/internal/locale"
	"git.home.luguber.info/inful/doclinks/internal/logfields"
	"git.home.luguber.info/inful/doclinks/internal/metrics"
)

// PlaceholderClass marks anchors whose target page does not exist yet.
const PlaceholderClass = "page-not-created"

// Observer is told about every placeholder the Linker emits. Implementations
// must not block.
type Observer interface {
	PlaceholderRendered(req Request, loc locale.Locale, cause docerror.Error)
}

// Linker renders links and degrades recoverable lookup failures into
// placeholder anchors. It is safe for concurrent use when its renderer,
// recorder and observer are.
type Linker struct {
	renderer      Renderer
	catalog       *l10n.Catalog
	defaultLocale locale.Locale
	recorder      metrics.Recorder
	observer      Observer
	logger        *slog.Logger
}

// Option configures a Linker.
type Option func(*Linker)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(l *Linker) {
		if r != nil {
			l.recorder = r
		}
	}
}

// WithObserver sets the placeholder observer.
func WithObserver(o Observer) Option {
	return func(l *Linker) { l.observer = o }
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(l *Linker) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// NewLinker creates a Linker.
func NewLinker(renderer Renderer, catalog *l10n.Catalog, defaultLocale locale.Locale, opts ...Option) *Linker {
	l := &Linker{
		renderer:      renderer,
		catalog:       catalog,
		defaultLocale: defaultLocale.Or(locale.Default),
		recorder:      metrics.NoopRecorder{},
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Link renders req. I/O failures and strict-mode redirect violations are
// returned unchanged; every other lookup failure yields a placeholder anchor.
// Errors that are not docerror values are treated as infrastructure failures.
func (l *Linker) Link(req Request) (string, error) {
	out, err := l.renderer.Render(req)
	if err == nil {
		if IsExternal(req.Reference) {
			l.recorder.IncLinkResult(metrics.ResultExternal)
		} else {
			l.recorder.IncLinkResult(metrics.ResultResolved)
		}
		return out, nil
	}

	de, ok := docerror.As(err)
	if !ok {
		l.recorder.IncLinkResult(metrics.ResultFailed)
		return "", err
	}
	l.recorder.IncLinkError(de.Kind().String())
	if !docerror.Recoverable(de.Kind()) {
		l.recorder.IncLinkResult(metrics.ResultFailed)
		return "", err
	}

	loc := req.Locale.Or(l.defaultLocale)
	l.logger.Warn("Rendering placeholder for unresolved link",
		logfields.Reference(req.Reference),
		logfields.Locale(loc.String()),
		logfields.ErrorKind(de.Kind().String()),
		logfields.Error(err))
	l.recorder.IncLinkResult(metrics.ResultPlaceholder)
	if l.observer != nil {
		l.observer.PlaceholderRendered(req, loc, de)
	}
	return l.placeholder(req, loc), nil
}

func (l *Linker) placeholder(req Request, loc locale.Locale) string {
	title, _ := l.catalog.Lookup(l10n.NamespaceCommon, l10n.KeySummary, loc)
	content := req.Content.UnwrapOr(req.Reference)
	if req.Code {
		content = "<code>" + content + "</code>"
	}
	return fmt.Sprintf(`<a class="%s" title="%s">%s</a>`, PlaceholderClass, title, content)
}
