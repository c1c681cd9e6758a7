package hall

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateRequest carries the fields for a new hall.
type CreateRequest struct {
	Name      string
	BasePrice float64
	Features  []string
	Available *bool
}

// UpdateRequest carries the fields of a partial hall update.
// Nil fields are left untouched.
type UpdateRequest struct {
	Name      *string
	BasePrice *float64
	Features  *[]string
	Available *bool
}

// Service defines business logic related to halls.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Hall, error)
	GetByID(ctx context.Context, id string) (*Hall, error)
	List(ctx context.Context) ([]*Hall, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Hall, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new hall Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Hall, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	h := &Hall{
		Name:      req.Name,
		BasePrice: req.BasePrice,
		Features:  req.Features,
		Available: available,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Hall, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Hall, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Hall, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.BasePrice != nil {
		set["basePrice"] = *req.BasePrice
	}
	if req.Features != nil {
		set["features"] = *req.Features
	}
	if req.Available != nil {
		set["available"] = *req.Available
	}

	if len(set) == 0 {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, set)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
