package brokenlinks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"git.home.luguber.info/inful/doclinks/internal/config"
	"git.home.luguber.info/inful/doclinks/internal/logfields"
	"git.home.luguber.info/inful/doclinks/internal/retry"
)

// Publisher sends events to a JetStream subject.
type Publisher struct {
	conn    *nats.Conn
	js      jetstream.JetStream
	subject string
	policy  retry.Policy
	logger  *slog.Logger
}

// NewPublisher connects to NATS and makes sure the configured stream captures
// the subject.
func NewPublisher(ctx context.Context, cfg *config.BrokenLinksConfig, logger *slog.Logger) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.New("broken links config is required")
	}
	if !cfg.Enabled {
		return nil, errors.New("broken link publishing is disabled")
	}
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := nats.Connect(cfg.NATSURL, nats.Name("doclinks"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        cfg.Stream,
		Description: "Unresolved documentation references",
		Subjects:    []string{cfg.Subject},
	}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.Stream, err)
	}

	logger.Info("NATS publisher initialized for broken links",
		logfields.URL(cfg.NATSURL),
		slog.String("subject", cfg.Subject),
		slog.String("stream", cfg.Stream))

	policy := retry.NewPolicy(retry.ParseMode(cfg.RetryBackoff), cfg.RetryInitial, cfg.RetryMax, cfg.MaxRetries)
	return &Publisher{conn: conn, js: js, subject: cfg.Subject, policy: policy, logger: logger}, nil
}

// Publish sends every event and returns the first failure together with the
// number published before it.
func (p *Publisher) Publish(ctx context.Context, events []Event) (int, error) {
	for i := range events {
		data, err := Encode(&events[i])
		if err != nil {
			return i, err
		}
		// The event id doubles as the message id so retries deduplicate.
		err = p.policy.Do(ctx, func() error {
			_, perr := p.js.Publish(ctx, p.subject, data, jetstream.WithMsgID(events[i].ID))
			return perr
		})
		if err != nil {
			return i, fmt.Errorf("failed to publish event: %w", err)
		}
		p.logger.Debug("Published broken link event",
			logfields.Reference(events[i].Reference),
			logfields.Locale(events[i].Locale),
			logfields.Path(events[i].SourcePath))
	}
	return len(events), nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}

// Encode marshals an event as published on the wire.
func Encode(ev *Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}
