package expense

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Expense, error)
	List(ctx context.Context, filter Filter) ([]Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection("expenses")}
}

func (r *mongoRepository) Create(ctx context.Context, e *Expense) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Expense, error) {
	var e Expense
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *mongoRepository) List(ctx context.Context, filter Filter) ([]Expense, error) {
	query := bson.M{}
	if filter.BookingID != "" {
		id, err := primitive.ObjectIDFromHex(filter.BookingID)
		if err != nil {
			return []Expense{}, nil
		}
		query["bookingId"] = id
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	expenses := []Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *mongoRepository) Update(ctx context.Context, e *Expense) error {
	e.UpdatedAt = time.Now().UTC()

	set := bson.M{
		"description": e.Description,
		"amount":      e.Amount,
		"category":    e.Category,
		"date":        e.Date,
		"createdBy":   e.CreatedBy,
		"updatedAt":   e.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if e.BookingID != nil {
		set["bookingId"] = *e.BookingID
	} else {
		update["$unset"] = bson.M{"bookingId": ""}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": e.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
