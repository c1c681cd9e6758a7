package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/booking"
)

type fakeRepository struct {
	payments map[primitive.ObjectID]*Payment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{payments: map[primitive.ObjectID]*Payment{}}
}

func (r *fakeRepository) Create(_ context.Context, p *Payment) error {
	p.ID = primitive.NewObjectID()
	clone := *p
	r.payments[p.ID] = &clone
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	p, ok := r.payments[oid]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeRepository) List(_ context.Context, _ Filter) ([]*Payment, error) {
	out := []*Payment{}
	for _, p := range r.payments {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeRepository) Update(_ context.Context, id string, set bson.M) (*Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	p, ok := r.payments[oid]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := set["amount"]; ok {
		p.Amount = v.(float64)
	}
	if v, ok := set["method"]; ok {
		p.Method = Method(v.(string))
	}
	if v, ok := set["paymentDate"]; ok {
		p.PaymentDate = v.(time.Time)
	}
	if v, ok := set["status"]; ok {
		p.Status = Status(v.(string))
	}
	clone := *p
	return &clone, nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if _, ok := r.payments[oid]; !ok {
		return ErrNotFound
	}
	delete(r.payments, oid)
	return nil
}

func (r *fakeRepository) SumPaidForBooking(_ context.Context, bookingID primitive.ObjectID) (float64, error) {
	var total float64
	for _, p := range r.payments {
		if p.BookingID == bookingID && p.Status == StatusPaid {
			total += p.Amount
		}
	}
	return total, nil
}

// fakeBookingService holds a single booking and mirrors the real
// ApplyPaidTotal arithmetic.
type fakeBookingService struct {
	booking *booking.Booking
}

func (s *fakeBookingService) Create(context.Context, booking.CreateRequest) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	if s.booking == nil || s.booking.ID.Hex() != id {
		return nil, booking.ErrNotFound
	}
	clone := *s.booking
	return &clone, nil
}

func (s *fakeBookingService) List(context.Context, booking.Filter) ([]*booking.Booking, error) {
	return nil, nil
}

func (s *fakeBookingService) Update(context.Context, string, booking.UpdateRequest) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) Delete(context.Context, string) error { return nil }

func (s *fakeBookingService) CheckAvailability(context.Context, string, time.Time, booking.TimeSlot, string) (bool, error) {
	return true, nil
}

func (s *fakeBookingService) ApplyPaidTotal(_ context.Context, id string, totalPaid float64) (*booking.Booking, error) {
	if s.booking == nil || s.booking.ID.Hex() != id {
		return nil, booking.ErrNotFound
	}
	s.booking.AdvanceAmount = totalPaid
	s.booking.BalanceAmount = s.booking.TotalCost - totalPaid
	clone := *s.booking
	return &clone, nil
}

func newTestService(totalCost float64) (Service, *fakeBookingService) {
	b := &booking.Booking{
		ID:        primitive.NewObjectID(),
		TotalCost: totalCost,
	}
	b.BalanceAmount = totalCost
	bookingSvc := &fakeBookingService{booking: b}
	return NewService(newFakeRepository(), bookingSvc), bookingSvc
}

func TestRecordPaymentSyncsBooking(t *testing.T) {
	ctx := context.Background()
	svc, bookingSvc := newTestService(30000)
	bookingID := bookingSvc.booking.ID.Hex()

	p, err := svc.RecordPayment(ctx, RecordRequest{
		BookingID: bookingID,
		Amount:    12000,
		Method:    "online",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, p.Status)
	assert.NotEmpty(t, p.Reference)

	assert.Equal(t, 12000.0, bookingSvc.booking.AdvanceAmount)
	assert.Equal(t, 18000.0, bookingSvc.booking.BalanceAmount)

	t.Run("second payment accumulates", func(t *testing.T) {
		_, err := svc.RecordPayment(ctx, RecordRequest{
			BookingID: bookingID,
			Amount:    8000,
			Method:    "cash",
		})
		require.NoError(t, err)
		assert.Equal(t, 20000.0, bookingSvc.booking.AdvanceAmount)
		assert.Equal(t, 10000.0, bookingSvc.booking.BalanceAmount)
	})

	t.Run("unpaid payment does not count", func(t *testing.T) {
		_, err := svc.RecordPayment(ctx, RecordRequest{
			BookingID: bookingID,
			Amount:    5000,
			Method:    "card",
			Status:    string(StatusUnpaid),
		})
		require.NoError(t, err)
		assert.Equal(t, 20000.0, bookingSvc.booking.AdvanceAmount)
		assert.Equal(t, 10000.0, bookingSvc.booking.BalanceAmount)
	})
}

func TestUpdatePaymentRecomputesBooking(t *testing.T) {
	ctx := context.Background()
	svc, bookingSvc := newTestService(30000)
	bookingID := bookingSvc.booking.ID.Hex()

	p, err := svc.RecordPayment(ctx, RecordRequest{
		BookingID: bookingID,
		Amount:    10000,
		Method:    "card",
	})
	require.NoError(t, err)

	t.Run("amount change", func(t *testing.T) {
		amount := 15000.0
		updated, err := svc.Update(ctx, p.ID.Hex(), UpdateRequest{Amount: &amount})
		require.NoError(t, err)
		assert.Equal(t, 15000.0, updated.Amount)
		assert.Equal(t, 15000.0, bookingSvc.booking.AdvanceAmount)
		assert.Equal(t, 15000.0, bookingSvc.booking.BalanceAmount)
	})

	t.Run("marking unpaid removes it from the advance", func(t *testing.T) {
		status := string(StatusUnpaid)
		_, err := svc.Update(ctx, p.ID.Hex(), UpdateRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, 0.0, bookingSvc.booking.AdvanceAmount)
		assert.Equal(t, 30000.0, bookingSvc.booking.BalanceAmount)
	})
}

func TestDeletePaymentRecomputesBooking(t *testing.T) {
	ctx := context.Background()
	svc, bookingSvc := newTestService(30000)
	bookingID := bookingSvc.booking.ID.Hex()

	p, err := svc.RecordPayment(ctx, RecordRequest{
		BookingID: bookingID,
		Amount:    9000,
		Method:    "cash",
	})
	require.NoError(t, err)
	require.Equal(t, 9000.0, bookingSvc.booking.AdvanceAmount)

	require.NoError(t, svc.Delete(ctx, p.ID.Hex()))
	assert.Equal(t, 0.0, bookingSvc.booking.AdvanceAmount)
	assert.Equal(t, 30000.0, bookingSvc.booking.BalanceAmount)
}

func TestRecordPaymentValidation(t *testing.T) {
	ctx := context.Background()
	svc, bookingSvc := newTestService(10000)
	bookingID := bookingSvc.booking.ID.Hex()

	t.Run("invalid method", func(t *testing.T) {
		_, err := svc.RecordPayment(ctx, RecordRequest{BookingID: bookingID, Amount: 100, Method: "cheque"})
		require.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.RecordPayment(ctx, RecordRequest{BookingID: bookingID, Amount: 100, Method: "cash", Status: "pending"})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.RecordPayment(ctx, RecordRequest{
			BookingID: primitive.NewObjectID().Hex(),
			Amount:    100,
			Method:    "cash",
		})
		require.ErrorIs(t, err, booking.ErrNotFound)
	})
}
