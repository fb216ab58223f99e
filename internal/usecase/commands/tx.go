package commands

import (
	"context"

	"stayops/internal/infra/db"
)

func (c *bookingCommandsImpl) withTx(ctx context.Context, fn func(tx db.DBTX) error) error {
	return c.txm.WithinTx(ctx, fn)
}
