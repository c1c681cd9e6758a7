package stats

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/venuedesk/hall-booking-backend/internal/booking"
	"github.com/venuedesk/hall-booking-backend/internal/expense"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
)

// Repository provides the three reads the summary is computed from.
// Range bounds are half-open: [from, before).
type Repository interface {
	BookingsInRange(ctx context.Context, from, before time.Time) ([]booking.Booking, error)
	ExpensesInRange(ctx context.Context, from, before time.Time) ([]expense.Expense, error)
	Halls(ctx context.Context) ([]hall.Hall, error)
}

type mongoRepository struct {
	db *mongo.Database
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) BookingsInRange(ctx context.Context, from, before time.Time) ([]booking.Booking, error) {
	query := bson.M{"date": bson.M{"$gte": from, "$lt": before}}
	cursor, err := r.db.Collection("bookings").Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []booking.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoRepository) ExpensesInRange(ctx context.Context, from, before time.Time) ([]expense.Expense, error) {
	query := bson.M{"date": bson.M{"$gte": from, "$lt": before}}
	cursor, err := r.db.Collection("expenses").Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	expenses := []expense.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *mongoRepository) Halls(ctx context.Context) ([]hall.Hall, error) {
	cursor, err := r.db.Collection("halls").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	halls := []hall.Hall{}
	if err := cursor.All(ctx, &halls); err != nil {
		return nil, err
	}
	return halls, nil
}
