package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/delivery/http/middlewares"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/app/services/core/bookings"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
	"vitaliv-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) GetWeek(ctx context.Context, weekStart string) (*responses.BookingWeek, error) {
	args := m.Called(ctx, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingWeek), args.Error(1)
}

func (m *MockBookingUsecase) ToggleSlot(ctx context.Context, request *requests.ToggleBookingSlot) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.Booking, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Booking), args.Error(1)
}

func (m *MockBookingUsecase) CancelBooking(ctx context.Context, sessionData, bookingID string) error {
	args := m.Called(ctx, sessionData, bookingID)
	return args.Error(0)
}

func newBookingTestRouter(mockBookingUsecase *MockBookingUsecase, mockSessionService *MockSessionService) *chi.Mux {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests: 100,
		},
		JWT: config.JWT{
			Secret: testJWTSecret,
		},
	}

	bookingController := bookings.NewBookingController(logger, mockBookingUsecase)

	middlewareInstance := middlewares.NewMiddlewares(logger, mockSessionService, internalConfig)

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, bookingController)
	return router
}

func TestBookingRouter_GetWeek(t *testing.T) {
	mockBookingUsecase := new(MockBookingUsecase)
	mockSessionService := new(MockSessionService)
	router := newBookingTestRouter(mockBookingUsecase, mockSessionService)

	t.Run("Week Calendar is Public", func(t *testing.T) {
		mockBookingUsecase.On("GetWeek", mock.Anything, "2026-08-31").Return(&responses.BookingWeek{
			WeekStart: "2026-08-31",
		}, nil).Once()

		req := httptest.NewRequest("GET", "/week?start=2026-08-31", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK without a token")
		mockBookingUsecase.AssertExpectations(t)
	})
}

func TestBookingRouter_ToggleSlot(t *testing.T) {
	mockBookingUsecase := new(MockBookingUsecase)
	mockSessionService := new(MockSessionService)
	router := newBookingTestRouter(mockBookingUsecase, mockSessionService)

	adminSessionID := "admin-session-id"
	adminSession := &models.Session{
		SessionID: adminSessionID,
		UserID:    "admin-user-id",
		Username:  "clinicadmin",
		Role:      constvars.RoleAdmin,
	}
	adminSessionData := newTestSessionData(t, adminSession)

	customerSessionID := "customer-session-id"
	customerSession := &models.Session{
		SessionID: customerSessionID,
		UserID:    "customer-user-id",
		Username:  "testcustomer",
		Role:      constvars.RoleCustomer,
	}
	customerSessionData := newTestSessionData(t, customerSession)

	requestBody := requests.ToggleBookingSlot{
		Date:      "2026-09-01",
		StartTime: "10:00",
	}
	jsonBody, _ := json.Marshal(requestBody)

	t.Run("Toggle as Admin", func(t *testing.T) {
		mockSessionService.On("GetSessionData", mock.Anything, adminSessionID).Return(adminSessionData, nil).Once()
		mockSessionService.On("ParseSessionData", mock.Anything, adminSessionData).Return(adminSession, nil).Once()
		mockBookingUsecase.On("ToggleSlot", mock.Anything, mock.AnythingOfType("*requests.ToggleBookingSlot")).Return(nil).Once()

		req := httptest.NewRequest("POST", "/slots/toggle", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", newTestBearerToken(t, adminSessionID))

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for admin toggle")
		mockBookingUsecase.AssertExpectations(t)
		mockSessionService.AssertExpectations(t)
	})

	t.Run("Toggle as Customer is Forbidden", func(t *testing.T) {
		mockSessionService.On("GetSessionData", mock.Anything, customerSessionID).Return(customerSessionData, nil).Once()
		mockSessionService.On("ParseSessionData", mock.Anything, customerSessionData).Return(customerSession, nil).Once()

		req := httptest.NewRequest("POST", "/slots/toggle", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", newTestBearerToken(t, customerSessionID))

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for non-admin toggle")
		mockBookingUsecase.AssertNotCalled(t, "ToggleSlot")
	})

	t.Run("Toggle without Token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/slots/toggle", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for missing token")
		mockBookingUsecase.AssertNotCalled(t, "ToggleSlot")
	})
}

func TestBookingRouter_CreateBooking(t *testing.T) {
	mockBookingUsecase := new(MockBookingUsecase)
	mockSessionService := new(MockSessionService)
	router := newBookingTestRouter(mockBookingUsecase, mockSessionService)

	sessionID := "customer-session-id"
	sessionData := newTestSessionData(t, &models.Session{
		SessionID: sessionID,
		UserID:    "customer-user-id",
		Username:  "testcustomer",
		Role:      constvars.RoleCustomer,
	})

	requestBody := requests.CreateBooking{
		Date:      "2026-09-01",
		StartTime: "10:00",
	}
	jsonBody, _ := json.Marshal(requestBody)

	t.Run("Book an Open Slot", func(t *testing.T) {
		mockSessionService.On("GetSessionData", mock.Anything, sessionID).Return(sessionData, nil).Once()
		mockBookingUsecase.On("CreateBooking", mock.Anything, sessionData, mock.AnythingOfType("*requests.CreateBooking")).Return(&responses.Booking{
			Date:      "2026-09-01",
			StartTime: "10:00",
		}, nil).Once()

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", newTestBearerToken(t, sessionID))

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created for an open slot")
		mockBookingUsecase.AssertExpectations(t)
	})

	t.Run("Book an Unavailable Slot", func(t *testing.T) {
		mockSessionService.On("GetSessionData", mock.Anything, sessionID).Return(sessionData, nil).Once()
		mockBookingUsecase.On("CreateBooking", mock.Anything, sessionData, mock.AnythingOfType("*requests.CreateBooking")).Return(nil, exceptions.ErrBookingSlotUnavailable(nil)).Once()

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", newTestBearerToken(t, sessionID))

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code, "should return 409 Conflict for a closed or taken slot")
		mockBookingUsecase.AssertExpectations(t)
	})
}
