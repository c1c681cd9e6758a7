package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/venuedesk/hall-booking-backend/internal/app"
	"github.com/venuedesk/hall-booking-backend/internal/booking"
	"github.com/venuedesk/hall-booking-backend/internal/config"
	"github.com/venuedesk/hall-booking-backend/internal/customer"
	"github.com/venuedesk/hall-booking-backend/internal/db"
	"github.com/venuedesk/hall-booking-backend/internal/expense"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
	"github.com/venuedesk/hall-booking-backend/internal/payment"
	"github.com/venuedesk/hall-booking-backend/internal/user"
)

var collections = []string{"users", "halls", "customers", "bookings", "payments", "expenses"}

// Seeding runs through the regular services so the slot guard and the
// balance recompute fire exactly as they do for live traffic.
func main() {
	clear := flag.Bool("clear", false, "drop existing collections before seeding")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("failed to disconnect from db: %v", err)
		}
	}()

	database := client.Database(cfg.DBName)
	if *clear {
		if err := dropCollections(ctx, database); err != nil {
			log.Fatalf("failed to clear database: %v", err)
		}
		log.Println("existing collections dropped")
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	container := app.NewContainer(app.Config{
		Database:   database,
		JWTSecret:  cfg.JWTSecret,
		JWTTTL:     cfg.JWTAccessTokenTTL,
		BcryptCost: cfg.BcryptCost,
	})

	if err := seed(ctx, container); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("seeding completed")
}

func dropCollections(ctx context.Context, database *mongo.Database) error {
	for _, name := range collections {
		if err := database.Collection(name).Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}

func seed(ctx context.Context, c *app.Container) error {
	services := c.Services

	users := []user.RegisterRequest{
		{Name: "Admin User", Email: "admin@partyhall.com", Password: "Admin@123", Role: "admin"},
		{Name: "Staff User", Email: "staff@partyhall.com", Password: "Staff@123", Role: "staff"},
		{Name: "Viewer User", Email: "viewer@partyhall.com", Password: "Viewer@123", Role: "viewer"},
	}
	for _, req := range users {
		if _, err := services.User.Register(ctx, req); err != nil {
			return err
		}
	}
	log.Printf("seeded %d users", len(users))

	hallsData := []hall.CreateRequest{
		{Name: "Grand Ballroom", BasePrice: 25000, Features: []string{"Stage", "Dance Floor", "Premium Sound System", "Chandeliers", "Projector", "VIP Lounge"}},
		{Name: "Royal Banquet Hall", BasePrice: 20000, Features: []string{"Elegant Decor", "Buffet Setup", "Sound System", "Lighting Effects", "Bridal Room"}},
		{Name: "Garden Pavilion", BasePrice: 18000, Features: []string{"Outdoor Setting", "Garden View", "Tent Option", "Natural Lighting", "BBQ Area"}},
		{Name: "Crystal Room", BasePrice: 15000, Features: []string{"Crystal Chandeliers", "Elegant Decor", "Private Bar", "Mood Lighting"}},
		{Name: "Sunset Terrace", BasePrice: 14000, Features: []string{"Rooftop", "Sunset View", "Open Air", "Bar Counter", "Lounge Seating"}},
		{Name: "Celebration Lounge", BasePrice: 10000, Features: []string{"Intimate Setting", "Bar Setup", "Lounge Furniture", "Ambient Lighting"}},
	}
	halls := make([]*hall.Hall, 0, len(hallsData))
	for _, req := range hallsData {
		h, err := services.Hall.Create(ctx, req)
		if err != nil {
			return err
		}
		halls = append(halls, h)
	}
	log.Printf("seeded %d halls", len(halls))

	customersData := []customer.CreateRequest{
		{Name: "Raj Sharma", Email: "raj.sharma@example.com", Phone: "9876543210"},
		{Name: "Priya Patel", Email: "priya.patel@example.com", Phone: "8765432109"},
		{Name: "Amit Kumar", Email: "amit.kumar@example.com", Phone: "7654321098"},
		{Name: "Neha Singh", Email: "neha.singh@example.com", Phone: "6543210987"},
		{Name: "Vikram Malhotra", Email: "vikram.malhotra@example.com", Phone: "5432109876"},
		{Name: "Anjali Desai", Email: "anjali.desai@example.com", Phone: "4321098765"},
	}
	customers := make([]*customer.Customer, 0, len(customersData))
	for _, req := range customersData {
		cust, err := services.Customer.Create(ctx, req)
		if err != nil {
			return err
		}
		customers = append(customers, cust)
	}
	log.Printf("seeded %d customers", len(customers))

	today := booking.DayOf(time.Now().UTC())
	bookings := make([]*booking.Booking, 0, 10)
	for i := 0; i < 10; i++ {
		h := halls[i%len(halls)]
		cust := customers[i%len(customers)]

		var date time.Time
		var slot string
		status := "confirmed"
		switch {
		case i < 3:
			date = today.AddDate(0, 0, -(10 + i))
			slot = string(booking.SlotMorning)
		case i < 6:
			date = today.AddDate(0, 0, i-3)
			slot = string(booking.SlotEvening)
		default:
			date = today.AddDate(0, 0, i)
			if i%2 == 0 {
				slot = string(booking.SlotMorning)
			} else {
				slot = string(booking.SlotEvening)
			}
			if i > 8 {
				status = "pending"
			}
		}

		totalCost := h.BasePrice
		if slot == string(booking.SlotEvening) {
			totalCost += 5000
		}
		var advance float64
		if status == "confirmed" {
			advance = totalCost * 0.5
		}

		b, err := services.Booking.Create(ctx, booking.CreateRequest{
			HallID:         h.ID.Hex(),
			CustomerID:     cust.ID.Hex(),
			Date:           date,
			TimeSlot:       slot,
			TotalCost:      totalCost,
			AdvanceAmount:  advance,
			Status:         status,
			AttendeesCount: 50 + 10*i,
			Notes:          "Booking for " + cust.Name + " in " + h.Name,
		})
		if err != nil {
			return err
		}
		bookings = append(bookings, b)
	}
	log.Printf("seeded %d bookings", len(bookings))

	paymentCount := 0
	for _, b := range bookings {
		if b.Status != booking.StatusConfirmed {
			continue
		}
		paymentDate := b.Date.AddDate(0, 0, -7)
		if _, err := services.Payment.RecordPayment(ctx, payment.RecordRequest{
			BookingID:   b.ID.Hex(),
			Amount:      b.TotalCost * 0.5,
			Method:      "online",
			PaymentDate: &paymentDate,
			Status:      "paid",
		}); err != nil {
			return err
		}
		paymentCount++
	}
	log.Printf("seeded %d payments", paymentCount)

	expenseCount := 0
	expenseData := []struct {
		description string
		category    string
		share       float64
	}{
		{"Flower arrangements", "decor", 0.08},
		{"Main course buffet", "catering", 0.25},
		{"Waitstaff", "labor", 0.10},
	}
	staff := []string{"Rahul Mehta", "Priya Sharma", "Amit Patel"}
	for i, b := range bookings {
		if b.Status != booking.StatusConfirmed {
			continue
		}
		for j, e := range expenseData {
			date := b.Date.AddDate(0, 0, -1)
			if _, err := services.Expense.Create(ctx, expense.CreateRequest{
				BookingID:   b.ID.Hex(),
				Description: e.description,
				Amount:      b.TotalCost * e.share,
				Category:    e.category,
				Date:        &date,
				CreatedBy:   staff[(i+j)%len(staff)],
			}); err != nil {
				return err
			}
			expenseCount++
		}
	}
	log.Printf("seeded %d expenses", expenseCount)

	return nil
}
