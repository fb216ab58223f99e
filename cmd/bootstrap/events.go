package bootstrap

import (
	"context"
	"log/slog"

	"stayops/internal/infra/events"
	"stayops/internal/pkg/config"
	"stayops/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

// NewEventPublisher wires the Kafka producer when brokers are configured
// and falls back to a noop publisher otherwise, so a broker is never a
// deployment requirement.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (events.Publisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Info("no Kafka brokers configured, booking events disabled")
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	slog.Info("Kafka event publisher initialized", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher, nil
}
