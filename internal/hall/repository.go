package hall

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

// Repository defines methods for accessing hall data from storage.
type Repository interface {
	Create(ctx context.Context, h *Hall) error
	GetByID(ctx context.Context, id string) (*Hall, error)
	List(ctx context.Context) ([]*Hall, error)
	Update(ctx context.Context, id string, set bson.M) (*Hall, error)
	Delete(ctx context.Context, id string) error
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a Repository backed by the halls collection.
func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepository{coll: database.Collection("halls")}
}

func (r *mongoRepository) Create(ctx context.Context, h *Hall) error {
	now := time.Now().UTC()
	h.ID = primitive.NewObjectID()
	h.CreatedAt = now
	h.UpdatedAt = now
	if h.Features == nil {
		h.Features = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, h); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrNameTaken
		}
		return fmt.Errorf("create hall failed: %w", err)
	}
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*Hall, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var h Hall
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hall failed: %w", err)
	}
	return &h, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]*Hall, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list halls failed: %w", err)
	}

	halls := []*Hall{}
	if err := cursor.All(ctx, &halls); err != nil {
		return nil, fmt.Errorf("decode halls failed: %w", err)
	}
	return halls, nil
}

func (r *mongoRepository) Update(ctx context.Context, id string, set bson.M) (*Hall, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set["updatedAt"] = time.Now().UTC()

	var h Hall
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&h)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("update hall failed: %w", err)
	}
	return &h, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hall failed: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
