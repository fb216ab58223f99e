//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayops/internal/domain/actor"
	"stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/unit"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/shared"
	"stayops/tests/common/builder"
	commandsmock "stayops/tests/mock/commands"
	dbmock "stayops/tests/mock/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	bookingRepo *commandsmock.MockBookingRepository
	unitRepo    *commandsmock.MockUnitRepository
	bizRepo     *commandsmock.MockBusinessRepository
	promoRepo   *commandsmock.MockPromotionRepository
	ruleRepo    *commandsmock.MockPricingRuleRepository
	auditRepo   *commandsmock.MockAuditRepository
	publisher   *commandsmock.MockEventPublisher
	idemRepo    *commandsmock.MockIdempotencyRepository
	txm         *dbmock.MockTxManager
	clk         *clock.MockClock
	uc          commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.unitRepo = commandsmock.NewMockUnitRepository(s.ctrl)
	s.bizRepo = commandsmock.NewMockBusinessRepository(s.ctrl)
	s.promoRepo = commandsmock.NewMockPromotionRepository(s.ctrl)
	s.ruleRepo = commandsmock.NewMockPricingRuleRepository(s.ctrl)
	s.auditRepo = commandsmock.NewMockAuditRepository(s.ctrl)
	s.publisher = commandsmock.NewMockEventPublisher(s.ctrl)
	s.idemRepo = commandsmock.NewMockIdempotencyRepository(s.ctrl)
	s.txm = dbmock.NewMockTxManager(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	s.txm.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(db.DBTX) error) error { return fn(nil) },
	).AnyTimes()
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	factory := booking.NewFactory(s.clk, pricing.NewCalculator(pricing.NewMoneyFromInt(25_000)))
	s.uc = commands.NewBookingCommands(
		s.bookingRepo, s.unitRepo, s.bizRepo, s.promoRepo, s.ruleRepo, s.auditRepo,
		s.idemRepo, factory, s.publisher, nil, s.txm, s.clk,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func guestActor() shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: actor.RoleGuest}
}

func staffOf(businessID uuid.UUID) shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: actor.RoleStaff, BusinessID: &businessID}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	newParams := func(unitID uuid.UUID) commands.CreateBookingParams {
		guestID := uuid.New()
		return commands.CreateBookingParams{
			UnitID:   unitID,
			GuestID:  &guestID,
			CheckIn:  checkIn,
			CheckOut: checkIn.AddDate(0, 0, 2),
		}
	}

	s.Run("guest booking is created pending", func() {
		u := builder.NewUnitBuilder().BuildDomain()
		biz := builder.NewBusinessBuilder().With(func(b *builder.BusinessBuilder) {
			b.ID = u.BusinessID()
		}).BuildDomain()

		s.unitRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		s.bizRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.BusinessID()).Return(biz, nil)
		s.ruleRepo.EXPECT().ListByBusiness(gomock.Any(), gomock.Any(), u.BusinessID()).Return(nil, nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.auditRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := s.uc.CreateBooking(context.Background(), newParams(u.ID()), guestActor())
		require.NoError(s.T(), err)
		require.Equal(s.T(), booking.StatusPending, b.Status())
		require.False(s.T(), b.VerifiedPayment())
	})

	s.Run("walk-in requires a desk role on the unit's business", func() {
		u := builder.NewUnitBuilder().BuildDomain()
		biz := builder.NewBusinessBuilder().With(func(b *builder.BusinessBuilder) {
			b.ID = u.BusinessID()
		}).BuildDomain()

		s.unitRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		s.bizRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.BusinessID()).Return(biz, nil)

		params := newParams(u.ID())
		params.WalkIn = true

		_, err := s.uc.CreateBooking(context.Background(), params, guestActor())
		require.True(s.T(), errs.Is(err, commands.ErrForbidden), "unexpected error: %v", err)
	})

	s.Run("staff walk-in is confirmed with payment verified", func() {
		u := builder.NewUnitBuilder().BuildDomain()
		biz := builder.NewBusinessBuilder().With(func(b *builder.BusinessBuilder) {
			b.ID = u.BusinessID()
		}).BuildDomain()

		s.unitRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		s.bizRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.BusinessID()).Return(biz, nil)
		s.ruleRepo.EXPECT().ListByBusiness(gomock.Any(), gomock.Any(), u.BusinessID()).Return(nil, nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.auditRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		params := newParams(u.ID())
		params.WalkIn = true

		b, err := s.uc.CreateBooking(context.Background(), params, staffOf(u.BusinessID()))
		require.NoError(s.T(), err)
		require.True(s.T(), b.IsWalkIn())
		require.Equal(s.T(), booking.StatusConfirmed, b.Status())
		require.True(s.T(), b.VerifiedPayment())
	})

	s.Run("price override by a guest is forbidden", func() {
		u := builder.NewUnitBuilder().BuildDomain()
		biz := builder.NewBusinessBuilder().With(func(b *builder.BusinessBuilder) {
			b.ID = u.BusinessID()
		}).BuildDomain()

		s.unitRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		s.bizRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.BusinessID()).Return(biz, nil)

		params := newParams(u.ID())
		override := decimal.NewFromInt(100)
		params.PriceOverride = &override

		_, err := s.uc.CreateBooking(context.Background(), params, guestActor())
		require.True(s.T(), errs.Is(err, commands.ErrForbidden), "unexpected error: %v", err)
	})

	s.Run("suspended business cannot take bookings", func() {
		u := builder.NewUnitBuilder().BuildDomain()
		biz := builder.NewBusinessBuilder().With(func(b *builder.BusinessBuilder) {
			b.ID = u.BusinessID()
			b.Status = "suspended"
		}).BuildDomain()

		s.unitRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		s.bizRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.BusinessID()).Return(biz, nil)

		_, err := s.uc.CreateBooking(context.Background(), newParams(u.ID()), guestActor())
		require.True(s.T(), errs.Is(err, errs.ErrBusinessSuspended), "unexpected error: %v", err)
	})

	s.Run("unlisted unit", func() {
		u := builder.NewUnitBuilder().With(func(b *builder.UnitBuilder) {
			b.Available = false
		}).BuildDomain()
		biz := builder.NewBusinessBuilder().With(func(b *builder.BusinessBuilder) {
			b.ID = u.BusinessID()
		}).BuildDomain()

		s.unitRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		s.bizRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.BusinessID()).Return(biz, nil)
		s.ruleRepo.EXPECT().ListByBusiness(gomock.Any(), gomock.Any(), u.BusinessID()).Return(nil, nil)

		_, err := s.uc.CreateBooking(context.Background(), newParams(u.ID()), guestActor())
		require.True(s.T(), errs.Is(err, errs.ErrUnitUnavailable), "unexpected error: %v", err)
	})
}

func (s *BookingCommandsTestSuite) TestCheckOut() {
	s.Run("completes the booking and sends the unit to cleaning", func() {
		u := builder.NewUnitBuilder().BuildDomain()
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.BusinessID = u.BusinessID()
			bb.UnitID = u.ID()
			bb.Status = booking.StatusCheckedIn
		}).BuildDomain()

		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.unitRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		s.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any(), b).Return(nil)
		s.unitRepo.EXPECT().Update(gomock.Any(), gomock.Any(), u).Return(nil)
		s.auditRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.CheckOut(context.Background(), b.ID(), nil, staffOf(u.BusinessID()))
		require.NoError(s.T(), err)
		require.Equal(s.T(), booking.StatusCompleted, result.Status())
		require.Equal(s.T(), unit.StatusDirty, u.Status())
		require.False(s.T(), u.Available())
	})

	s.Run("pending booking cannot check out", func() {
		b := builder.NewBookingBuilder().BuildDomain()

		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.uc.CheckOut(context.Background(), b.ID(), nil, staffOf(b.BusinessID()))
		require.True(s.T(), errs.Is(err, errs.ErrInvalidTransition), "unexpected error: %v", err)
	})
}

func (s *BookingCommandsTestSuite) TestCheckIn() {
	identity := booking.GuestIdentity{IdentityNumber: "320", Nationality: "ID", Phone: "+62812"}

	s.Run("unverified payment blocks check-in", func() {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusConfirmed
			bb.VerifiedPayment = false
		}).BuildDomain()

		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.uc.CheckIn(context.Background(), b.ID(), identity, staffOf(b.BusinessID()))
		require.True(s.T(), errs.Is(err, errs.ErrPaymentNotVerified), "unexpected error: %v", err)
	})

	s.Run("staff of another business is forbidden", func() {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusConfirmed
			bb.VerifiedPayment = true
		}).BuildDomain()

		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.uc.CheckIn(context.Background(), b.ID(), identity, staffOf(uuid.New()))
		require.True(s.T(), errs.Is(err, commands.ErrForbidden), "unexpected error: %v", err)
	})
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreateBookingIdempotency() {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	newParams := func(unitID uuid.UUID, key uuid.UUID) commands.CreateBookingParams {
		guestID := uuid.New()
		return commands.CreateBookingParams{
			UnitID:         unitID,
			GuestID:        &guestID,
			CheckIn:        checkIn,
			CheckOut:       checkIn.AddDate(0, 0, 2),
			IdempotencyKey: key,
		}
	}

	s.Run("completed key replays the stored booking without a new write", func() {
		key := uuid.New()
		act := guestActor()
		existing := builder.NewBookingBuilder().BuildDomain()
		bid := existing.ID()

		s.idemRepo.EXPECT().TryInsert(gomock.Any(), key, act.ID, "POST /bookings", gomock.Any(), gomock.Any()).Return(nil)
		s.idemRepo.EXPECT().Get(gomock.Any(), key, act.ID).Return(&commands.IdempotencyRecord{
			Key:             key,
			ActorID:         act.ID,
			Status:          "completed",
			ResultBookingID: &bid,
		}, nil)
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bid).Return(existing, nil)

		b, err := s.uc.CreateBooking(context.Background(), newParams(existing.UnitID(), key), act)
		require.NoError(s.T(), err)
		require.Equal(s.T(), existing.ID(), b.ID())
	})

	s.Run("fresh key creates the booking and completes the record in-tx", func() {
		u := builder.NewUnitBuilder().BuildDomain()
		biz := builder.NewBusinessBuilder().With(func(b *builder.BusinessBuilder) {
			b.ID = u.BusinessID()
		}).BuildDomain()
		key := uuid.New()
		act := guestActor()

		var seenHash string
		s.idemRepo.EXPECT().TryInsert(gomock.Any(), key, act.ID, "POST /bookings", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _ string, hash string, _ time.Time) error {
				seenHash = hash
				return nil
			})
		s.idemRepo.EXPECT().Get(gomock.Any(), key, act.ID).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*commands.IdempotencyRecord, error) {
				return &commands.IdempotencyRecord{Key: key, ActorID: act.ID, Status: "processing", RequestHash: seenHash}, nil
			})
		s.unitRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		s.bizRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.BusinessID()).Return(biz, nil)
		s.ruleRepo.EXPECT().ListByBusiness(gomock.Any(), gomock.Any(), u.BusinessID()).Return(nil, nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.idemRepo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), key, act.ID, gomock.Any()).Return(nil)
		s.auditRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := s.uc.CreateBooking(context.Background(), newParams(u.ID(), key), act)
		require.NoError(s.T(), err)
		require.Equal(s.T(), booking.StatusPending, b.Status())
	})

	s.Run("key reuse with a different payload conflicts", func() {
		key := uuid.New()
		act := guestActor()

		s.idemRepo.EXPECT().TryInsert(gomock.Any(), key, act.ID, "POST /bookings", gomock.Any(), gomock.Any()).Return(nil)
		s.idemRepo.EXPECT().Get(gomock.Any(), key, act.ID).Return(&commands.IdempotencyRecord{
			Key:         key,
			ActorID:     act.ID,
			Status:      "processing",
			RequestHash: "someone-elses-request",
		}, nil)

		_, err := s.uc.CreateBooking(context.Background(), newParams(uuid.New(), key), act)
		require.True(s.T(), errs.Is(err, errs.ErrBookingConflict), "unexpected error: %v", err)
	})
}
