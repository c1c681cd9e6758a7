package booking

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/customer"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
)

// CreateRequest carries the fields for a new booking.
type CreateRequest struct {
	HallID         string
	CustomerID     string
	Date           time.Time
	TimeSlot       string
	TotalCost      float64
	AdvanceAmount  float64
	Status         string
	AttendeesCount int
	CateringMenu   string
	Notes          string
}

// UpdateRequest carries the fields of a partial booking update.
// Nil fields are left untouched.
type UpdateRequest struct {
	HallID         *string
	CustomerID     *string
	Date           *time.Time
	TimeSlot       *string
	TotalCost      *float64
	AdvanceAmount  *float64
	Status         *string
	AttendeesCount *int
	CateringMenu   *string
	Notes          *string
}

// Service defines business logic related to bookings.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error

	// CheckAvailability reports whether the (hall, date, slot) tuple is free
	// of non-cancelled bookings, optionally excluding one booking by ID.
	CheckAvailability(ctx context.Context, hallID string, date time.Time, slot TimeSlot, excludeID string) (bool, error)

	// ApplyPaidTotal overwrites the booking's advance with the given paid
	// total and recomputes the balance. Used by the payment use-cases.
	ApplyPaidTotal(ctx context.Context, id string, totalPaid float64) (*Booking, error)
}

type service struct {
	repo            Repository
	hallService     hall.Service
	customerService customer.Service
}

// NewService creates a new booking Service.
func NewService(repo Repository, hallService hall.Service, customerService customer.Service) Service {
	return &service{
		repo:            repo,
		hallService:     hallService,
		customerService: customerService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !ValidTimeSlot(req.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	status := StatusPending
	if req.Status != "" {
		if !ValidStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		status = Status(req.Status)
	}

	// Validate references exist.
	if _, err := s.hallService.GetByID(ctx, req.HallID); err != nil {
		return nil, err
	}
	if _, err := s.customerService.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	hallID, _ := primitive.ObjectIDFromHex(req.HallID)
	customerID, _ := primitive.ObjectIDFromHex(req.CustomerID)
	date := DayOf(req.Date)
	slot := TimeSlot(req.TimeSlot)

	// Availability guard. The unique slot index backs this up against races.
	if status != StatusCancelled {
		available, err := s.CheckAvailability(ctx, req.HallID, date, slot, "")
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, ErrSlotConflict
		}
	}

	b := &Booking{
		HallID:         hallID,
		CustomerID:     customerID,
		Date:           date,
		TimeSlot:       slot,
		TotalCost:      req.TotalCost,
		AdvanceAmount:  req.AdvanceAmount,
		BalanceAmount:  req.TotalCost - req.AdvanceAmount,
		Status:         status,
		AttendeesCount: req.AttendeesCount,
		CateringMenu:   req.CateringMenu,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newHallID := b.HallID
	newDate := b.Date
	newSlot := b.TimeSlot
	slotChanged := false

	if req.HallID != nil {
		if _, err := s.hallService.GetByID(ctx, *req.HallID); err != nil {
			return nil, err
		}
		oid, _ := primitive.ObjectIDFromHex(*req.HallID)
		if oid != b.HallID {
			newHallID = oid
			slotChanged = true
		}
	}
	if req.Date != nil {
		d := DayOf(*req.Date)
		if !d.Equal(b.Date) {
			newDate = d
			slotChanged = true
		}
	}
	if req.TimeSlot != nil {
		if !ValidTimeSlot(*req.TimeSlot) {
			return nil, ErrInvalidTimeSlot
		}
		if TimeSlot(*req.TimeSlot) != b.TimeSlot {
			newSlot = TimeSlot(*req.TimeSlot)
			slotChanged = true
		}
	}

	newStatus := b.Status
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		newStatus = Status(*req.Status)
	}

	// Re-saving without touching hall/date/slot must not re-trigger the
	// guard, otherwise the booking would conflict with itself.
	recheck := slotChanged || (b.Status == StatusCancelled && newStatus != StatusCancelled)
	if recheck && newStatus != StatusCancelled {
		available, err := s.CheckAvailability(ctx, newHallID.Hex(), newDate, newSlot, b.ID.Hex())
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, ErrSlotConflict
		}
	}

	b.HallID = newHallID
	b.Date = newDate
	b.TimeSlot = newSlot
	b.Status = newStatus

	if req.CustomerID != nil {
		if _, err := s.customerService.GetByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
		b.CustomerID, _ = primitive.ObjectIDFromHex(*req.CustomerID)
	}
	if req.TotalCost != nil {
		b.TotalCost = *req.TotalCost
	}
	if req.AdvanceAmount != nil {
		b.AdvanceAmount = *req.AdvanceAmount
	}
	if req.TotalCost != nil || req.AdvanceAmount != nil {
		b.BalanceAmount = b.TotalCost - b.AdvanceAmount
	}
	if req.AttendeesCount != nil {
		b.AttendeesCount = *req.AttendeesCount
	}
	if req.CateringMenu != nil {
		b.CateringMenu = *req.CateringMenu
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) CheckAvailability(ctx context.Context, hallID string, date time.Time, slot TimeSlot, excludeID string) (bool, error) {
	hallOID, err := primitive.ObjectIDFromHex(hallID)
	if err != nil {
		return false, hall.ErrNotFound
	}

	var excludeOID primitive.ObjectID
	if excludeID != "" {
		excludeOID, err = primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return false, ErrNotFound
		}
	}

	conflict, err := s.repo.HasSlotConflict(ctx, hallOID, DayOf(date), slot, excludeOID)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

func (s *service) ApplyPaidTotal(ctx context.Context, id string, totalPaid float64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.AdvanceAmount = totalPaid
	b.BalanceAmount = b.TotalCost - totalPaid

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
