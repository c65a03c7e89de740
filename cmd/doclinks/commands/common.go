package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/doclinks/internal/api"
	"git.home.luguber.info/inful/doclinks/internal/brokenlinks"
	"git.home.luguber.info/inful/doclinks/internal/config"
	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinks/internal/locale"
	"git.home.luguber.info/inful/doclinks/internal/logfields"
	"git.home.luguber.info/inful/doclinks/internal/metrics"
)

const defaultConfigPath = "doclinks.yaml"

// Global is shared state bound into every command.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// NewGlobal returns a Global writing to stdout.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Out: os.Stdout}
}

// CLI definition & global flags.
type CLI struct {
	Config       string           `short:"c" help:"Configuration file path" default:"doclinks.yaml"`
	Verbose      bool             `short:"v" help:"Enable verbose logging"`
	DenyWarnings bool             `help:"Fail on links that go through a redirect"`
	Version      kong.VersionFlag `name:"version" help:"Show version and exit"`

	Anchor AnchorCmd `cmd:"" help:"Print the anchor slug for heading text"`
	Link   LinkCmd   `cmd:"" help:"Render one cross-document link"`
	Page   PageCmd   `cmd:"" help:"Resolve a page URL and print its metadata"`
	Render RenderCmd `cmd:"" help:"Render a markdown document to HTML"`
	Refs   RefsCmd   `cmd:"" help:"List the links found in a markdown document"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; set up a provisional logger until the
// configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// runtime is everything a command needs once the configuration is loaded.
type runtime struct {
	cfg       *config.Config
	api       *api.API
	logger    *slog.Logger
	registry  *prometheus.Registry
	recorder  metrics.Recorder
	collector *brokenlinks.Collector
}

// loadConfig reads root.Config. A missing file at the default location falls
// back to the built-in defaults.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		if _, statErr := os.Stat(root.Config); root.Config == defaultConfigPath && errors.Is(statErr, fs.ErrNotExist) {
			cfg, err = config.Default()
		}
	}
	if err != nil {
		return nil, err
	}
	if root.DenyWarnings {
		cfg.DenyWarnings = true
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, verbose bool, w io.Writer) *slog.Logger {
	level := config.NormalizeLogLevel(cfg.Logging.Level).Slog()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if config.NormalizeLogFormat(cfg.Logging.Format) == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newRuntime loads the configuration and wires the API. Placeholder events
// are attributed to source when it is non-empty.
func newRuntime(g *Global, root *CLI, source string) (*runtime, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg, root.Verbose, os.Stderr)
	slog.SetDefault(logger)
	g.Logger = logger

	rt := &runtime{
		cfg:       cfg,
		logger:    logger,
		recorder:  metrics.NoopRecorder{},
		collector: brokenlinks.NewCollector(uuid.NewString()),
	}
	if cfg.Metrics.Enabled {
		rt.registry = prometheus.NewRegistry()
		rt.recorder = metrics.NewPrometheusRecorder(rt.registry)
	}

	observer := rt.collector.Source(source)
	rt.api, err = api.New(cfg,
		api.WithLogger(logger),
		api.WithRecorder(rt.recorder),
		api.WithObserver(observer))
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// resolveLocale parses a --locale flag, falling back to the configured
// default. An Accept-Language style list picks the best supported locale.
func (rt *runtime) resolveLocale(raw string) (locale.Locale, error) {
	if raw == "" {
		return rt.cfg.DefaultLocale, nil
	}
	if strings.ContainsAny(raw, ",;") {
		return locale.Match(raw), nil
	}
	loc, err := locale.Parse(raw)
	if err != nil {
		return locale.Unspecified, ferrors.WrapError(err, ferrors.CategoryValidation, "invalid --locale").Build()
	}
	return loc, nil
}

// finish writes the metrics textfile and publishes collected placeholder
// events.
func (rt *runtime) finish(ctx context.Context) error {
	if rt.registry != nil {
		if err := metrics.WriteTextfile(rt.cfg.Metrics.Textfile, rt.registry); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write metrics textfile").
				WithContext("path", rt.cfg.Metrics.Textfile).
				Build()
		}
		rt.logger.Debug("Wrote metrics textfile", logfields.Path(rt.cfg.Metrics.Textfile))
	}

	if !rt.cfg.BrokenLinks.Enabled || rt.collector.Len() == 0 {
		return nil
	}
	pub, err := brokenlinks.NewPublisher(ctx, &rt.cfg.BrokenLinks, rt.logger)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryNetwork, "failed to connect broken link publisher").Retryable().Build()
	}
	defer func() { _ = pub.Close() }()

	n, err := pub.Publish(ctx, rt.collector.Events())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryNetwork, fmt.Sprintf("published %d of %d broken link events", n, rt.collector.Len())).
			Retryable().
			Build()
	}
	rt.logger.Info("Published broken link events", logfields.Count(n))
	return nil
}
