package bootstrap

import (
	"context"
	"log/slog"

	"stayops/internal/pkg/config"
	"stayops/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var CronModule = fx.Module("cron",
	fx.Invoke(
		StartSubscriptionSweeper,
	),
)

// StartSubscriptionSweeper schedules the periodic downgrade of businesses
// whose paid subscription has run out.
func StartSubscriptionSweeper(lc fx.Lifecycle, cfg config.Config, businessCommands commands.BusinessCommands) error {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(cfg.Platform.SubscriptionSweepSpec, func() {
		ctx := context.Background()
		lapsed, err := businessCommands.ExpireSubscriptions(ctx)
		if err != nil {
			slog.Error("subscription sweep failed", "error", err)
			return
		}
		if lapsed > 0 {
			slog.Info("subscription sweep completed", "lapsed", lapsed)
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			slog.Info("subscription sweeper scheduled", "spec", cfg.Platform.SubscriptionSweepSpec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := scheduler.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
