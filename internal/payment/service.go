package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/booking"
)

// RecordRequest carries the fields for recording a payment.
type RecordRequest struct {
	BookingID   string
	Amount      float64
	Method      string
	PaymentDate *time.Time
	Status      string
}

// UpdateRequest carries the fields of a partial payment update.
// The owning booking cannot be changed; re-record instead.
type UpdateRequest struct {
	Amount      *float64
	Method      *string
	PaymentDate *time.Time
	Status      *string
}

// Service defines business logic related to payments.
//
// Every write recomputes the owning booking's advance and balance from the
// sum of its paid payments, so the booking's balance identity holds after
// any payment mutation, not just the initial record.
type Service interface {
	RecordPayment(ctx context.Context, req RecordRequest) (*Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, filter Filter) ([]*Payment, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Payment, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo           Repository
	bookingService booking.Service
}

// NewService creates a new payment Service.
func NewService(repo Repository, bookingService booking.Service) Service {
	return &service{
		repo:           repo,
		bookingService: bookingService,
	}
}

func (s *service) RecordPayment(ctx context.Context, req RecordRequest) (*Payment, error) {
	if !ValidMethod(req.Method) {
		return nil, ErrInvalidMethod
	}

	status := StatusPaid
	if req.Status != "" {
		if !ValidStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		status = Status(req.Status)
	}

	// The booking must exist before money is recorded against it.
	if _, err := s.bookingService.GetByID(ctx, req.BookingID); err != nil {
		return nil, err
	}
	bookingID, _ := primitive.ObjectIDFromHex(req.BookingID)

	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}

	p := &Payment{
		BookingID:   bookingID,
		Amount:      req.Amount,
		Method:      Method(req.Method),
		PaymentDate: paymentDate,
		Status:      status,
		Reference:   uuid.NewString(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.syncBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Payment, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Payment, error) {
	set := bson.M{}
	if req.Amount != nil {
		set["amount"] = *req.Amount
	}
	if req.Method != nil {
		if !ValidMethod(*req.Method) {
			return nil, ErrInvalidMethod
		}
		set["method"] = *req.Method
	}
	if req.PaymentDate != nil {
		set["paymentDate"] = req.PaymentDate.UTC()
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		set["status"] = *req.Status
	}

	if len(set) == 0 {
		return s.repo.GetByID(ctx, id)
	}

	p, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}

	if err := s.syncBooking(ctx, p.BookingID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.syncBooking(ctx, p.BookingID)
}

// syncBooking recomputes the owning booking's advance/balance from the sum
// of its paid payments.
func (s *service) syncBooking(ctx context.Context, bookingID primitive.ObjectID) error {
	totalPaid, err := s.repo.SumPaidForBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	_, err = s.bookingService.ApplyPaidTotal(ctx, bookingID.Hex(), totalPaid)
	return err
}
