package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines methods for accessing booking data from storage.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error

	// HasSlotConflict reports whether a non-cancelled booking already holds
	// the (hall, date, slot) tuple. excludeID is used during updates to
	// ignore the booking itself.
	HasSlotConflict(ctx context.Context, hallID primitive.ObjectID, date time.Time, slot TimeSlot, excludeID primitive.ObjectID) (bool, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a Repository backed by the bookings collection.
func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepository{coll: database.Collection("bookings")}
}

func (r *mongoRepository) Create(ctx context.Context, b *Booking) error {
	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		// The partial unique slot index fires here if a concurrent writer won
		// the race after the service-level availability check passed.
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var b Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	query := bson.M{}
	if filter.HallID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.HallID)
		if err != nil {
			return []*Booking{}, nil
		}
		query["hallId"] = oid
	}
	if filter.CustomerID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.CustomerID)
		if err != nil {
			return []*Booking{}, nil
		}
		query["customerId"] = oid
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	sort := bson.D{{Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}}
	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}

	bookings := []*Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings failed: %w", err)
	}
	return bookings, nil
}

func (r *mongoRepository) Update(ctx context.Context, b *Booking) error {
	b.UpdatedAt = time.Now().UTC()

	set := bson.M{
		"hallId":         b.HallID,
		"customerId":     b.CustomerID,
		"date":           b.Date,
		"timeSlot":       b.TimeSlot,
		"totalCost":      b.TotalCost,
		"advanceAmount":  b.AdvanceAmount,
		"balanceAmount":  b.BalanceAmount,
		"status":         b.Status,
		"attendeesCount": b.AttendeesCount,
		"cateringMenu":   b.CateringMenu,
		"notes":          b.Notes,
		"updatedAt":      b.UpdatedAt,
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": b.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotConflict
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) HasSlotConflict(ctx context.Context, hallID primitive.ObjectID, date time.Time, slot TimeSlot, excludeID primitive.ObjectID) (bool, error) {
	query := bson.M{
		"hallId":   hallID,
		"date":     DayOf(date),
		"timeSlot": slot,
		"status":   bson.M{"$ne": StatusCancelled},
	}
	if !excludeID.IsZero() {
		query["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.coll.CountDocuments(ctx, query, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check slot conflict failed: %w", err)
	}
	return count > 0, nil
}
