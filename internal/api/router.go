package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/auth"
	"github.com/venuedesk/hall-booking-backend/internal/booking"
	bookingHttp "github.com/venuedesk/hall-booking-backend/internal/booking/http"
	"github.com/venuedesk/hall-booking-backend/internal/customer"
	customerHttp "github.com/venuedesk/hall-booking-backend/internal/customer/http"
	"github.com/venuedesk/hall-booking-backend/internal/expense"
	expenseHttp "github.com/venuedesk/hall-booking-backend/internal/expense/http"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
	hallHttp "github.com/venuedesk/hall-booking-backend/internal/hall/http"
	"github.com/venuedesk/hall-booking-backend/internal/payment"
	paymentHttp "github.com/venuedesk/hall-booking-backend/internal/payment/http"
	"github.com/venuedesk/hall-booking-backend/internal/stats"
	statsHttp "github.com/venuedesk/hall-booking-backend/internal/stats/http"
	"github.com/venuedesk/hall-booking-backend/internal/user"
	userHttp "github.com/venuedesk/hall-booking-backend/internal/user/http"
)

// Services bundles the module services the router serves.
type Services struct {
	User     user.Service
	Hall     hall.Service
	Customer customer.Service
	Booking  booking.Service
	Payment  payment.Service
	Expense  expense.Service
	Stats    stats.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (Logger, Recovery, CORS, Auth) and registers
// routes for every module under /api.
func NewRouter(services Services, jwtManager *auth.JWTManager, production bool, prodOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	config := cors.DefaultConfig()
	if production {
		config.AllowOrigins = prodOrigins
	} else {
		config.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	authMiddleware := auth.AuthRequired(jwtManager)

	userHandler := userHttp.NewHandler(services.User, jwtManager)
	hallHandler := hallHttp.NewHandler(services.Hall)
	customerHandler := customerHttp.NewHandler(services.Customer)
	bookingHandler := bookingHttp.NewHandler(services.Booking, services.Hall, services.Customer)
	paymentHandler := paymentHttp.NewHandler(services.Payment)
	expenseHandler := expenseHttp.NewHandler(services.Expense)
	statsHandler := statsHttp.NewHandler(services.Stats)

	apiGroup := r.Group("/api")
	{
		userHttp.RegisterRoutes(apiGroup, userHandler, authMiddleware)
		hallHttp.RegisterRoutes(apiGroup, hallHandler, authMiddleware)
		customerHttp.RegisterRoutes(apiGroup, customerHandler, authMiddleware)
		bookingHttp.RegisterRoutes(apiGroup, bookingHandler, authMiddleware)
		paymentHttp.RegisterRoutes(apiGroup, paymentHandler, authMiddleware)
		expenseHttp.RegisterRoutes(apiGroup, expenseHandler, authMiddleware)
		statsHttp.RegisterRoutes(apiGroup, statsHandler, authMiddleware)
	}

	return r
}
