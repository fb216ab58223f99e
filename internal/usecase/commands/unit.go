package commands

import (
	"context"

	"stayops/internal/domain/audit"
	"stayops/internal/domain/entitlement"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/unit"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateUnitParams struct {
	BusinessID uuid.UUID
	Name       string
	BasePrice  decimal.Decimal
	Capacity   int
	Amenities  []string
}

type UpdateUnitParams struct {
	Name      string
	BasePrice decimal.Decimal
	Capacity  int
	Amenities []string
}

type UnitCommands interface {
	CreateUnit(ctx context.Context, params CreateUnitParams, act Actor) (*unit.Unit, error)
	UpdateUnit(ctx context.Context, unitID uuid.UUID, params UpdateUnitParams, act Actor) (*unit.Unit, error)
	// SetUnitStatus is the staff-facing operational transition; blocked and
	// maintenance statuses pull the unit off public listing.
	SetUnitStatus(ctx context.Context, unitID uuid.UUID, status unit.Status, act Actor) (*unit.Unit, error)
	SetUnitAvailability(ctx context.Context, unitID uuid.UUID, available bool, act Actor) (*unit.Unit, error)
}

type unitCommandsImpl struct {
	unitRepo     UnitRepository
	businessRepo BusinessRepository
	auditRepo    AuditRepository
	resolver     *entitlement.Resolver
	pool         db.DBTX
	txm          db.TxManager
	clock        clock.Clock
}

func NewUnitCommands(
	unitRepo UnitRepository,
	businessRepo BusinessRepository,
	auditRepo AuditRepository,
	resolver *entitlement.Resolver,
	pool db.DBTX,
	txm db.TxManager,
	clk clock.Clock,
) UnitCommands {
	return &unitCommandsImpl{
		unitRepo:     unitRepo,
		businessRepo: businessRepo,
		auditRepo:    auditRepo,
		resolver:     resolver,
		pool:         pool,
		txm:          txm,
		clock:        clk,
	}
}

// CreateUnit enforces the plan quota: the business's current unit count is
// checked against its entitlement inside the transaction.
func (c *unitCommandsImpl) CreateUnit(ctx context.Context, params CreateUnitParams, act Actor) (*unit.Unit, error) {
	if !act.CanAccessBusiness(params.BusinessID) {
		return nil, ErrForbidden
	}

	businessEntity, err := c.businessRepo.FindByID(ctx, c.pool, params.BusinessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBusinessNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	unitEntity, err := unit.NewUnit(params.BusinessID, params.Name, pricing.NewMoney(params.BasePrice), params.Capacity, params.Amenities)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		count, err := c.unitRepo.CountByBusiness(ctx, tx, params.BusinessID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		ent := c.resolver.Resolve(businessEntity.Category(), businessEntity.EffectivePlan(c.clock.Now()), businessEntity.CommissionOverride())
		if !entitlement.WithinQuota(ent.UnitQuota, count) {
			return errs.Mark(errs.Newf("plan allows %d unit(s)", ent.UnitQuota), errs.ErrQuotaExceeded)
		}

		if _, err := c.unitRepo.Create(ctx, tx, unitEntity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entry := audit.NewEntry(audit.EntityUnit, unitEntity.ID(), act.ID, "create", "unit created: "+unitEntity.Name(), c.clock.Now())
		if err := c.auditRepo.Append(ctx, tx, entry); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return unitEntity, nil
}

func (c *unitCommandsImpl) UpdateUnit(ctx context.Context, unitID uuid.UUID, params UpdateUnitParams, act Actor) (*unit.Unit, error) {
	return c.mutate(ctx, unitID, act, "update", "unit details updated", func(u *unit.Unit) error {
		return u.UpdateDetails(params.Name, pricing.NewMoney(params.BasePrice), params.Capacity, params.Amenities)
	})
}

func (c *unitCommandsImpl) SetUnitStatus(ctx context.Context, unitID uuid.UUID, status unit.Status, act Actor) (*unit.Unit, error) {
	return c.mutate(ctx, unitID, act, "set_status", "unit status set to "+status.String(), func(u *unit.Unit) error {
		return u.SetStatus(status)
	})
}

func (c *unitCommandsImpl) SetUnitAvailability(ctx context.Context, unitID uuid.UUID, available bool, act Actor) (*unit.Unit, error) {
	detail := "unit unlisted"
	if available {
		detail = "unit listed for booking"
	}
	return c.mutate(ctx, unitID, act, "set_availability", detail, func(u *unit.Unit) error {
		return u.SetAvailable(available)
	})
}

func (c *unitCommandsImpl) mutate(ctx context.Context, unitID uuid.UUID, act Actor, action, detail string, fn func(*unit.Unit) error) (*unit.Unit, error) {
	var result *unit.Unit
	err := c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		u, err := c.unitRepo.FindByIDForUpdate(ctx, tx, unitID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrUnitNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !act.CanAccessBusiness(u.BusinessID()) {
			return ErrForbidden
		}

		if err := fn(u); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := c.unitRepo.Update(ctx, tx, u); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entry := audit.NewEntry(audit.EntityUnit, u.ID(), act.ID, action, detail, c.clock.Now())
		if err := c.auditRepo.Append(ctx, tx, entry); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
