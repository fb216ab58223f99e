//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayops/internal/domain/actor"
	"stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/settlement"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/shared"
	"stayops/tests/common/builder"
	commandsmock "stayops/tests/mock/commands"
	dbmock "stayops/tests/mock/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettlementCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	bookingRepo *commandsmock.MockBookingRepository
	bizRepo     *commandsmock.MockBusinessRepository
	txRepo      *commandsmock.MockTransactionRepository
	auditRepo   *commandsmock.MockAuditRepository
	publisher   *commandsmock.MockEventPublisher
	txm         *dbmock.MockTxManager
	clk         *clock.MockClock
	uc          commands.SettlementCommands
}

func (s *SettlementCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.bizRepo = commandsmock.NewMockBusinessRepository(s.ctrl)
	s.txRepo = commandsmock.NewMockTransactionRepository(s.ctrl)
	s.auditRepo = commandsmock.NewMockAuditRepository(s.ctrl)
	s.publisher = commandsmock.NewMockEventPublisher(s.ctrl)
	s.txm = dbmock.NewMockTxManager(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC))

	s.txm.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(db.DBTX) error) error { return fn(nil) },
	).AnyTimes()

	s.uc = commands.NewSettlementCommands(s.bookingRepo, s.bizRepo, s.txRepo, s.auditRepo, s.publisher, s.txm, s.clk)
}

func (s *SettlementCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func notFound() error {
	return infra.WrapRepoErr("record not found", nil, infra.KindNotFound)
}

func (s *SettlementCommandsTestSuite) TestSettleCompletedBooking() {
	admin := shared.Actor{ID: uuid.New(), Role: actor.RoleAdmin}

	s.Run("records commission at the effective plan rate", func() {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusCompleted
			bb.TotalPrice = 2_000_000
		}).BuildDomain()
		biz := builder.NewBusinessBuilder().With(func(bb *builder.BusinessBuilder) {
			bb.ID = b.BusinessID()
		}).BuildDomain()

		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.txRepo.EXPECT().FindCommissionByBookingID(gomock.Any(), gomock.Any(), b.ID()).Return(nil, notFound())
		s.bizRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.BusinessID()).Return(biz, nil)
		s.txRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.auditRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		tx, err := s.uc.SettleCompletedBooking(context.Background(), b.ID(), admin)
		require.NoError(s.T(), err)
		// pro plan commission is 10%
		require.Equal(s.T(), "200000", tx.Amount().String())
		require.Equal(s.T(), settlement.TypeCommission, tx.Type())
	})

	s.Run("replay returns the existing entry without a new insert", func() {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusCompleted
		}).BuildDomain()
		existing := settlement.ReconstructTransaction(
			uuid.New(), b.BusinessID(), ptr(b.ID()),
			settlement.TypeCommission,
			pricing.NewMoneyFromInt(100_000),
			settlement.TxStatusCompleted,
			s.clk.Now(),
		)

		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.txRepo.EXPECT().FindCommissionByBookingID(gomock.Any(), gomock.Any(), b.ID()).Return(existing, nil)

		tx, err := s.uc.SettleCompletedBooking(context.Background(), b.ID(), admin)
		require.NoError(s.T(), err)
		require.Equal(s.T(), existing.ID(), tx.ID())
	})

	s.Run("booking must be completed", func() {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusCheckedIn
		}).BuildDomain()

		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.uc.SettleCompletedBooking(context.Background(), b.ID(), admin)
		require.True(s.T(), errs.Is(err, errs.ErrBookingNotCompleted), "unexpected error: %v", err)
	})

	s.Run("owner of another business is forbidden", func() {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusCompleted
		}).BuildDomain()
		otherBusiness := uuid.New()
		owner := shared.Actor{ID: uuid.New(), Role: actor.RoleOwner, BusinessID: &otherBusiness}

		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.uc.SettleCompletedBooking(context.Background(), b.ID(), owner)
		require.True(s.T(), errs.Is(err, commands.ErrForbidden), "unexpected error: %v", err)
	})

	s.Run("unknown booking", func() {
		id := uuid.New()
		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := s.uc.SettleCompletedBooking(context.Background(), id, admin)
		require.True(s.T(), errs.Is(err, errs.ErrBookingNotFound), "unexpected error: %v", err)
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestSettlementCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementCommandsTestSuite))
}
