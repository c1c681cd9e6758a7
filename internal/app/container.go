package app

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/venuedesk/hall-booking-backend/internal/api"
	"github.com/venuedesk/hall-booking-backend/internal/auth"
	"github.com/venuedesk/hall-booking-backend/internal/booking"
	"github.com/venuedesk/hall-booking-backend/internal/customer"
	"github.com/venuedesk/hall-booking-backend/internal/expense"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
	"github.com/venuedesk/hall-booking-backend/internal/payment"
	"github.com/venuedesk/hall-booking-backend/internal/stats"
	"github.com/venuedesk/hall-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Database     *mongo.Database
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Services   api.Services
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User module
	userRepo := user.NewMongoRepository(cfg.Database)
	userService := user.NewService(userRepo, passwordHasher)

	// Hall module
	hallRepo := hall.NewMongoRepository(cfg.Database)
	hallService := hall.NewService(hallRepo)

	// Customer module
	customerRepo := customer.NewMongoRepository(cfg.Database)
	customerService := customer.NewService(customerRepo)

	// Booking module
	bookingRepo := booking.NewMongoRepository(cfg.Database)
	bookingService := booking.NewService(bookingRepo, hallService, customerService)

	// Payment module
	paymentRepo := payment.NewMongoRepository(cfg.Database)
	paymentService := payment.NewService(paymentRepo, bookingService)

	// Expense module
	expenseRepo := expense.NewMongoRepository(cfg.Database)
	expenseService := expense.NewService(expenseRepo, bookingService)

	// Stats module
	statsRepo := stats.NewMongoRepository(cfg.Database)
	statsService := stats.NewService(statsRepo)

	services := api.Services{
		User:     userService,
		Hall:     hallService,
		Customer: customerService,
		Booking:  bookingService,
		Payment:  paymentService,
		Expense:  expenseService,
		Stats:    statsService,
	}

	router := api.NewRouter(services, jwtManager, cfg.IsProduction, splitOrigins(cfg.ProdOrigins))

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Services:   services,
	}
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
