package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/auth"
	"github.com/venuedesk/hall-booking-backend/internal/booking"
	"github.com/venuedesk/hall-booking-backend/internal/customer"
	"github.com/venuedesk/hall-booking-backend/internal/expense"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
	"github.com/venuedesk/hall-booking-backend/internal/payment"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/response"
	"github.com/venuedesk/hall-booking-backend/internal/stats"
	"github.com/venuedesk/hall-booking-backend/internal/user"
)

// The stub services below satisfy the module interfaces with canned values.
// These tests exercise the middleware chain, not the business logic, which
// has its own unit tests per package.

type stubUserService struct{}

func (stubUserService) Register(context.Context, user.RegisterRequest) (*user.User, error) {
	return &user.User{ID: primitive.NewObjectID()}, nil
}
func (stubUserService) Login(context.Context, string, string) (*user.User, error) {
	return nil, user.ErrInvalidCredentials
}
func (stubUserService) GetByID(context.Context, string) (*user.User, error) {
	return &user.User{ID: primitive.NewObjectID()}, nil
}

type stubHallService struct{}

func (stubHallService) Create(context.Context, hall.CreateRequest) (*hall.Hall, error) {
	return &hall.Hall{ID: primitive.NewObjectID(), Name: "Grand Ballroom", BasePrice: 25000}, nil
}
func (stubHallService) GetByID(context.Context, string) (*hall.Hall, error) {
	return &hall.Hall{ID: primitive.NewObjectID()}, nil
}
func (stubHallService) List(context.Context) ([]*hall.Hall, error) { return []*hall.Hall{}, nil }
func (stubHallService) Update(context.Context, string, hall.UpdateRequest) (*hall.Hall, error) {
	return &hall.Hall{ID: primitive.NewObjectID()}, nil
}
func (stubHallService) Delete(context.Context, string) error { return nil }

type stubCustomerService struct{}

func (stubCustomerService) Create(context.Context, customer.CreateRequest) (*customer.Customer, error) {
	return &customer.Customer{ID: primitive.NewObjectID()}, nil
}
func (stubCustomerService) GetByID(context.Context, string) (*customer.Customer, error) {
	return &customer.Customer{ID: primitive.NewObjectID()}, nil
}
func (stubCustomerService) List(context.Context) ([]*customer.Customer, error) {
	return []*customer.Customer{}, nil
}
func (stubCustomerService) Update(context.Context, string, customer.UpdateRequest) (*customer.Customer, error) {
	return &customer.Customer{ID: primitive.NewObjectID()}, nil
}
func (stubCustomerService) Delete(context.Context, string) error { return nil }

type stubBookingService struct{}

func (stubBookingService) Create(context.Context, booking.CreateRequest) (*booking.Booking, error) {
	return &booking.Booking{ID: primitive.NewObjectID()}, nil
}
func (stubBookingService) GetByID(context.Context, string) (*booking.Booking, error) {
	return &booking.Booking{ID: primitive.NewObjectID()}, nil
}
func (stubBookingService) List(context.Context, booking.Filter) ([]*booking.Booking, error) {
	return []*booking.Booking{}, nil
}
func (stubBookingService) Update(context.Context, string, booking.UpdateRequest) (*booking.Booking, error) {
	return &booking.Booking{ID: primitive.NewObjectID()}, nil
}
func (stubBookingService) Delete(context.Context, string) error { return nil }
func (stubBookingService) CheckAvailability(context.Context, string, time.Time, booking.TimeSlot, string) (bool, error) {
	return true, nil
}
func (stubBookingService) ApplyPaidTotal(context.Context, string, float64) (*booking.Booking, error) {
	return &booking.Booking{ID: primitive.NewObjectID()}, nil
}

type stubPaymentService struct{}

func (stubPaymentService) RecordPayment(context.Context, payment.RecordRequest) (*payment.Payment, error) {
	return &payment.Payment{ID: primitive.NewObjectID()}, nil
}
func (stubPaymentService) GetByID(context.Context, string) (*payment.Payment, error) {
	return &payment.Payment{ID: primitive.NewObjectID()}, nil
}
func (stubPaymentService) List(context.Context, payment.Filter) ([]*payment.Payment, error) {
	return []*payment.Payment{}, nil
}
func (stubPaymentService) Update(context.Context, string, payment.UpdateRequest) (*payment.Payment, error) {
	return &payment.Payment{ID: primitive.NewObjectID()}, nil
}
func (stubPaymentService) Delete(context.Context, string) error { return nil }

type stubExpenseService struct{}

func (stubExpenseService) Create(context.Context, expense.CreateRequest) (*expense.Expense, error) {
	return &expense.Expense{ID: primitive.NewObjectID()}, nil
}
func (stubExpenseService) GetByID(context.Context, string) (*expense.Expense, error) {
	return &expense.Expense{ID: primitive.NewObjectID()}, nil
}
func (stubExpenseService) List(context.Context, expense.Filter) ([]expense.Expense, error) {
	return []expense.Expense{}, nil
}
func (stubExpenseService) Update(context.Context, string, expense.UpdateRequest) (*expense.Expense, error) {
	return &expense.Expense{ID: primitive.NewObjectID()}, nil
}
func (stubExpenseService) Delete(context.Context, string) error { return nil }

type stubStatsService struct{}

func (stubStatsService) Summary(context.Context, time.Time, time.Time) (*stats.Summary, error) {
	return &stats.Summary{}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	services := Services{
		User:     stubUserService{},
		Hall:     stubHallService{},
		Customer: stubCustomerService{},
		Booking:  stubBookingService{},
		Payment:  stubPaymentService{},
		Expense:  stubExpenseService{},
		Stats:    stubStatsService{},
	}
	return NewRouter(services, jwtManager, false, nil), jwtManager
}

func tokenFor(t *testing.T, m *auth.JWTManager, role auth.Role) string {
	t.Helper()
	token, err := m.GenerateAccessToken(primitive.NewObjectID().Hex(), string(role)+"@partyhall.com", role)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterAuthSemantics(t *testing.T) {
	r, jwtManager := newTestRouter(t)

	adminToken := tokenFor(t, jwtManager, auth.RoleAdmin)
	staffToken := tokenFor(t, jwtManager, auth.RoleStaff)
	viewerToken := tokenFor(t, jwtManager, auth.RoleViewer)

	hallBody := map[string]any{"name": "Crystal Room", "basePrice": 15000}

	t.Run("hall list is public", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/halls", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unauthenticated mutation rejected", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/halls", "", hallBody)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var resp response.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Unauthorized", resp.Message)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/halls", "not-a-jwt", hallBody)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("insufficient role answers 401 not 403", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/halls", viewerToken, hallBody)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest(r, http.MethodDelete, "/api/halls/"+primitive.NewObjectID().Hex(), staffToken, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin can create hall", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/halls", adminToken, hallBody)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("staff can update hall", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/api/halls/"+primitive.NewObjectID().Hex(), staffToken, map[string]any{"basePrice": 16000})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("viewer can read but not delete bookings", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/bookings", viewerToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doRequest(r, http.MethodDelete, "/api/bookings/"+primitive.NewObjectID().Hex(), viewerToken, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stats requires a session", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/stats", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest(r, http.MethodGet, "/api/stats", viewerToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("register is admin only", func(t *testing.T) {
		body := map[string]any{"name": "New Staff", "email": "new@partyhall.com", "password": "secret1", "role": "staff"}

		w := doRequest(r, http.MethodPost, "/api/auth/register", staffToken, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest(r, http.MethodPost, "/api/auth/register", adminToken, body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
