//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stayops/internal/domain/actor"
	dombooking "stayops/internal/domain/booking"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/settlement"
	"stayops/internal/handler/api"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"
	"stayops/internal/usecase/shared"
	"stayops/tests/common/builder"
	"stayops/tests/common/httptest"
	commandsmock "stayops/tests/mock/commands"
	queriesmock "stayops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCommands   *commandsmock.MockBookingCommands
	mockSettlement *commandsmock.MockSettlementCommands
	mockQueries    *queriesmock.MockBookingQueries
	handler        *api.BookingHandler

	businessID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockSettlement = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockSettlement, s.mockQueries)

	s.businessID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		bizID := s.businessID
		c.Set("actor", shared.Actor{ID: uuid.New(), Role: actor.RoleStaff, BusinessID: &bizID})
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.POST("/bookings/:id/approve", authMiddleware, s.handler.Approve)
	s.router.POST("/bookings/:id/reject", authMiddleware, s.handler.Reject)
	s.router.POST("/bookings/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/bookings/:id/check-out", authMiddleware, s.handler.CheckOut)
	s.router.POST("/bookings/:id/reschedule", authMiddleware, s.handler.Reschedule)
	s.router.PATCH("/bookings/:id/payment", authMiddleware, s.handler.SetPayment)
	s.router.POST("/bookings/:id/promotion", authMiddleware, s.handler.ApplyPromotion)
	s.router.POST("/bookings/:id/settle", authMiddleware, s.handler.Settle)
	s.router.GET("/bookings/:id/audit", authMiddleware, s.handler.AuditLog)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) pendingBooking() *dombooking.Booking {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.BusinessID = s.businessID
	}).BuildDomain()
}

func createBody() map[string]any {
	checkIn := time.Date(2025, 4, 1, 14, 0, 0, 0, time.UTC)
	return map[string]any{
		"unit_id":   uuid.New().String(),
		"check_in":  checkIn.Format(time.RFC3339),
		"check_out": checkIn.AddDate(0, 0, 2).Format(time.RFC3339),
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	s.Run("success: returns 201 Created with the booking payload", func() {
		created := s.pendingBooking()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal(s.businessID, body.BusinessID)
		s.Equal(string(dombooking.StatusPending), body.Status)
		s.False(body.VerifiedPayment)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		body := createBody()
		delete(body, "unit_id")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 when the unit is not bookable", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(dombooking.ErrUnitNotBookable, errs.ErrUnitUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Unit is not available")
	})

	s.Run("error: 403 when the actor belongs to another business", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with the booking view", func() {
		view := &queries.BookingView{
			ID:         bookingID,
			BusinessID: s.businessID,
			UnitID:     uuid.New(),
			Nights:     2,
			TotalPrice: decimal.NewFromInt(1_000_000),
			Status:     string(dombooking.StatusConfirmed),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.ID)
		s.Equal(string(dombooking.StatusConfirmed), body.Status)
		s.True(view.TotalPrice.Equal(body.TotalPrice))
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on a malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestApprove() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/approve"

	s.Run("success: returns 200 OK with the confirmed booking", func() {
		confirmed := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.BusinessID = s.businessID
			b.Status = dombooking.StatusConfirmed
		}).BuildDomain()
		s.mockCommands.EXPECT().Approve(gomock.Any(), bookingID, gomock.Any()).
			Return(confirmed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(string(dombooking.StatusConfirmed), body.Status)
	})

	s.Run("error: 409 on an invalid transition", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, errs.Mark(dombooking.ErrInvalidTransition, errs.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid booking state transition")
	})
}

func (s *BookingHandlerTestSuite) TestCheckIn() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/check-in"
	reqBody := map[string]any{
		"identity_number": "A1234567",
		"nationality":     "ID",
		"phone":           "+62 812 0000 0000",
	}

	s.Run("success: returns 200 OK with the checked-in booking", func() {
		checkedIn := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.BusinessID = s.businessID
			b.Status = dombooking.StatusCheckedIn
			b.VerifiedPayment = true
		}).BuildDomain()
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, identity dombooking.GuestIdentity, _ commands.Actor) (*dombooking.Booking, error) {
				s.Equal("A1234567", identity.IdentityNumber)
				s.Equal("ID", identity.Nationality)
				return checkedIn, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(string(dombooking.StatusCheckedIn), body.Status)
	})

	s.Run("error: 409 when payment is not verified", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(dombooking.ErrPaymentNotVerified, errs.ErrPaymentNotVerified)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Payment must be verified")
	})

	s.Run("error: 400 when identity fields are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"phone": "123"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestCheckOut() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/check-out"

	s.Run("success: damage note is forwarded to the command", func() {
		completed := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.BusinessID = s.businessID
			b.Status = dombooking.StatusCompleted
			b.VerifiedPayment = true
		}).BuildDomain()
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, note *string, _ commands.Actor) (*dombooking.Booking, error) {
				if s.NotNil(note) {
					s.Equal("broken lamp", *note)
				}
				return completed, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"damage_note": "broken lamp"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(string(dombooking.StatusCompleted), body.Status)
	})

	s.Run("success: empty body checks out without a note", func() {
		completed := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.BusinessID = s.businessID
			b.Status = dombooking.StatusCompleted
		}).BuildDomain()
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), bookingID, gomock.Nil(), gomock.Any()).
			Return(completed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	})
}

func (s *BookingHandlerTestSuite) TestReschedule() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reschedule"
	checkIn := time.Date(2025, 5, 1, 14, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"check_in":  checkIn.Format(time.RFC3339),
		"check_out": checkIn.AddDate(0, 0, 3).Format(time.RFC3339),
		"auth_ref":  "OWNER-2025-042",
	}

	s.Run("success: returns 200 OK with recomputed dates", func() {
		moved := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.BusinessID = s.businessID
			b.CheckIn = checkIn
			b.CheckOut = checkIn.AddDate(0, 0, 3)
			b.Nights = 3
		}).BuildDomain()
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			Return(moved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Nights)
	})

	s.Run("error: 400 without an authorization reference", func() {
		body := map[string]any{
			"check_in":  reqBody["check_in"],
			"check_out": reqBody["check_out"],
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on an inverted date range", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(dombooking.ErrInvalidDateRange, errs.ErrInvalidDateRange)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out must be after check-in")
	})
}

func (s *BookingHandlerTestSuite) TestSetPayment() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payment"

	s.Run("success: verified flag and proof reference forwarded", func() {
		verified := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.BusinessID = s.businessID
			b.VerifiedPayment = true
		}).BuildDomain()
		s.mockCommands.EXPECT().SetPaymentVerified(gomock.Any(), bookingID, true, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ bool, proofRef *string, _ commands.Actor) (*dombooking.Booking, error) {
				if s.NotNil(proofRef) {
					s.Equal("TRX-889", *proofRef)
				}
				return verified, nil
			}).Times(1)

		body := map[string]any{"verified": true, "proof_ref": "TRX-889"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.VerifiedPayment)
	})

	s.Run("error: 409 once the booking is closed", func() {
		s.mockCommands.EXPECT().SetPaymentVerified(gomock.Any(), bookingID, false, gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(dombooking.ErrBookingClosed, errs.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"verified": false}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid booking state transition")
	})
}

func (s *BookingHandlerTestSuite) TestApplyPromotion() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/promotion"

	s.Run("success: discounted total comes back", func() {
		promoID := uuid.New()
		discounted := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.BusinessID = s.businessID
			b.TotalPrice = 750_000
			b.PromotionID = &promoID
		}).BuildDomain()
		s.mockCommands.EXPECT().ApplyPromotion(gomock.Any(), bookingID, "SUMMER25", gomock.Any()).
			Return(discounted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": " SUMMER25 "}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(decimal.NewFromInt(750_000).Equal(body.TotalPrice))
		s.NotNil(body.AppliedPromotionID)
	})

	s.Run("error: 409 when a promotion was already applied", func() {
		s.mockCommands.EXPECT().ApplyPromotion(gomock.Any(), bookingID, "SUMMER25", gomock.Any()).
			Return(nil, errs.Mark(dombooking.ErrPromotionAlreadyApplied, errs.ErrPromotionAlreadyApplied)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "SUMMER25"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already applied")
	})

	s.Run("error: 400 when the promotion window has closed", func() {
		s.mockCommands.EXPECT().ApplyPromotion(gomock.Any(), bookingID, "SUMMER25", gomock.Any()).
			Return(nil, errs.ErrPromotionExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "SUMMER25"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not valid at this time")
	})
}

// ================================================================================
// TestSettle
// ================================================================================

func (s *BookingHandlerTestSuite) TestSettle() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/settle"

	s.Run("success: returns 200 OK with the commission transaction", func() {
		tx, err := settlement.NewCommission(
			s.businessID, bookingID,
			pricing.NewMoneyFromInt(2_000_000),
			decimal.NewFromInt(10),
			time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC),
		)
		s.Require().NoError(err)
		s.mockSettlement.EXPECT().SettleCompletedBooking(gomock.Any(), bookingID, gomock.Any()).
			Return(tx, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.businessID, body.BusinessID)
		s.True(decimal.NewFromInt(200_000).Equal(body.Amount))
		s.Equal(string(settlement.TxStatusCompleted), body.Status)
	})

	s.Run("error: 409 when the booking is not completed", func() {
		s.mockSettlement.EXPECT().SettleCompletedBooking(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, errs.ErrBookingNotCompleted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not completed")
	})
}

// ================================================================================
// TestAuditLog
// ================================================================================

func (s *BookingHandlerTestSuite) TestAuditLog() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/audit"

	s.Run("success: returns 200 OK with the entries", func() {
		entries := []*queries.AuditEntryView{
			{ID: uuid.New(), ActorID: uuid.New(), Action: "booking.approve", CreatedAt: time.Now().UTC()},
			{ID: uuid.New(), ActorID: uuid.New(), Action: "booking.check_in", CreatedAt: time.Now().UTC()},
		}
		s.mockQueries.EXPECT().AuditLog(gomock.Any(), bookingID, gomock.Any()).
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.AuditEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("booking.approve", body[0].Action)
	})

	s.Run("error: 403 for staff of another business", func() {
		s.mockQueries.EXPECT().AuditLog(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
