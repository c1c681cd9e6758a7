package expense

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/booking"
)

// CreateRequest carries the fields accepted when logging an expense.
type CreateRequest struct {
	BookingID   string
	Description string
	Amount      float64
	Category    string
	Date        *time.Time
	CreatedBy   string
}

// UpdateRequest carries the updatable fields of an expense. Nil fields
// are left untouched; ClearBooking detaches the expense from its booking.
type UpdateRequest struct {
	BookingID    *string
	ClearBooking bool
	Description  *string
	Amount       *float64
	Category     *string
	Date         *time.Time
	CreatedBy    *string
}

// Service defines business logic related to expenses.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Expense, error)
	GetByID(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context, filter Filter) ([]Expense, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Expense, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo           Repository
	bookingService booking.Service
}

// NewService creates a new expense Service.
func NewService(repo Repository, bookingService booking.Service) Service {
	return &service{repo: repo, bookingService: bookingService}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Expense, error) {
	if !ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	var bookingID *primitive.ObjectID
	if req.BookingID != "" {
		b, err := s.bookingService.GetByID(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		bookingID = &b.ID
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	e := &Expense{
		BookingID:   bookingID,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    Category(req.Category),
		Date:        date,
		CreatedBy:   req.CreatedBy,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Expense, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *service) List(ctx context.Context, filter Filter) ([]Expense, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Expense, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClearBooking {
		e.BookingID = nil
	} else if req.BookingID != nil && *req.BookingID != "" {
		b, err := s.bookingService.GetByID(ctx, *req.BookingID)
		if err != nil {
			return nil, err
		}
		e.BookingID = &b.ID
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Category != nil {
		if !ValidCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		e.Category = Category(*req.Category)
	}
	if req.Date != nil {
		e.Date = req.Date.UTC()
	}
	if req.CreatedBy != nil {
		e.CreatedBy = *req.CreatedBy
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, objID)
}
