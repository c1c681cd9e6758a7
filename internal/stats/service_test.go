package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/booking"
	"github.com/venuedesk/hall-booking-backend/internal/expense"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeRevenueExcludesCancelled(t *testing.T) {
	h := hall.Hall{ID: primitive.NewObjectID(), Name: "Grand Ballroom"}
	start, end := day(2026, 8, 1), day(2026, 8, 31)

	bookings := []booking.Booking{
		{HallID: h.ID, Date: day(2026, 8, 10), Status: booking.StatusConfirmed, TotalCost: 25000, AdvanceAmount: 10000, BalanceAmount: 15000},
		{HallID: h.ID, Date: day(2026, 8, 11), Status: booking.StatusCancelled, TotalCost: 10000},
	}

	summary := Compute(bookings, nil, []hall.Hall{h}, start, end)

	assert.Equal(t, 2, summary.TotalBookings)
	assert.Equal(t, 25000.0, summary.TotalRevenue)
	assert.Equal(t, 10000.0, summary.AdvanceTotal)
	assert.Equal(t, 15000.0, summary.BalanceTotal)
	assert.Equal(t, 25000.0, summary.Profit)
	assert.Equal(t, 100.0, summary.ProfitMargin)
}

func TestComputeExpenseCategories(t *testing.T) {
	start, end := day(2026, 8, 1), day(2026, 8, 31)

	expenses := []expense.Expense{
		{Category: expense.CategoryDecor, Amount: 100, Date: day(2026, 8, 5)},
		{Category: expense.CategoryDecor, Amount: 200, Date: day(2026, 8, 6)},
		{Category: expense.CategoryCatering, Amount: 50, Date: day(2026, 8, 7)},
	}

	summary := Compute(nil, expenses, nil, start, end)

	assert.Equal(t, 350.0, summary.TotalExpenses)
	require.Len(t, summary.ExpenseByCategory, 2)

	byName := map[string]float64{}
	for _, c := range summary.ExpenseByCategory {
		byName[c.Category] = c.Amount
	}
	assert.Equal(t, 300.0, byName["decor"])
	assert.Equal(t, 50.0, byName["catering"])
}

func TestComputeExpensesOutsideRangeIgnored(t *testing.T) {
	start, end := day(2026, 8, 1), day(2026, 8, 31)

	expenses := []expense.Expense{
		{Category: expense.CategoryMisc, Amount: 75, Date: day(2026, 7, 31)},
		{Category: expense.CategoryMisc, Amount: 25, Date: day(2026, 8, 1)},
	}

	summary := Compute(nil, expenses, nil, start, end)
	assert.Equal(t, 25.0, summary.TotalExpenses)
}

func TestComputeProfit(t *testing.T) {
	h := hall.Hall{ID: primitive.NewObjectID(), Name: "Crystal Room"}
	start, end := day(2026, 8, 1), day(2026, 8, 31)

	bookings := []booking.Booking{
		{HallID: h.ID, Date: day(2026, 8, 10), Status: booking.StatusConfirmed, TotalCost: 20000},
	}
	expenses := []expense.Expense{
		{Category: expense.CategoryLabor, Amount: 5000, Date: day(2026, 8, 9)},
	}

	summary := Compute(bookings, expenses, []hall.Hall{h}, start, end)

	assert.Equal(t, 15000.0, summary.Profit)
	assert.Equal(t, 75.0, summary.ProfitMargin)
}

func TestComputeProfitMarginZeroRevenue(t *testing.T) {
	start, end := day(2026, 8, 1), day(2026, 8, 31)
	expenses := []expense.Expense{
		{Category: expense.CategoryMisc, Amount: 500, Date: day(2026, 8, 2)},
	}

	summary := Compute(nil, expenses, nil, start, end)

	assert.Equal(t, -500.0, summary.Profit)
	assert.Equal(t, 0.0, summary.ProfitMargin)
}

func TestComputeOccupancy(t *testing.T) {
	t.Run("zero halls gives zero, not NaN", func(t *testing.T) {
		h := hall.Hall{ID: primitive.NewObjectID()}
		bookings := []booking.Booking{
			{HallID: h.ID, Date: day(2026, 8, 10), Status: booking.StatusConfirmed, TotalCost: 1000},
		}
		summary := Compute(bookings, nil, nil, day(2026, 8, 1), day(2026, 8, 31))
		assert.Equal(t, 0.0, summary.OccupancyRate)
	})

	t.Run("half day per booking", func(t *testing.T) {
		h := hall.Hall{ID: primitive.NewObjectID(), Name: "Garden Pavilion"}
		// 10-day window, one hall: 10 available hall-days. Two bookings
		// occupy one hall-day, so 10 percent.
		start, end := day(2026, 8, 1), day(2026, 8, 11)
		bookings := []booking.Booking{
			{HallID: h.ID, Date: day(2026, 8, 2), TimeSlot: booking.SlotMorning, Status: booking.StatusConfirmed, TotalCost: 1000},
			{HallID: h.ID, Date: day(2026, 8, 2), TimeSlot: booking.SlotEvening, Status: booking.StatusConfirmed, TotalCost: 1000},
			{HallID: h.ID, Date: day(2026, 8, 3), TimeSlot: booking.SlotMorning, Status: booking.StatusCancelled, TotalCost: 1000},
		}

		summary := Compute(bookings, nil, []hall.Hall{h}, start, end)
		assert.InDelta(t, 10.0, summary.OccupancyRate, 1e-9)
	})
}

func TestComputeTopHallsByRevenue(t *testing.T) {
	start, end := day(2026, 8, 1), day(2026, 8, 31)

	halls := make([]hall.Hall, 6)
	bookings := make([]booking.Booking, 0, 6)
	for i := range halls {
		halls[i] = hall.Hall{ID: primitive.NewObjectID(), Name: fmt.Sprintf("Hall %d", i)}
		bookings = append(bookings, booking.Booking{
			HallID:    halls[i].ID,
			Date:      day(2026, 8, 2+i),
			Status:    booking.StatusConfirmed,
			TotalCost: float64(1000 * (i + 1)),
		})
	}

	summary := Compute(bookings, nil, halls, start, end)

	require.Len(t, summary.TopHallsByRevenue, 5)
	assert.Equal(t, "Hall 5", summary.TopHallsByRevenue[0].HallName)
	assert.Equal(t, 6000.0, summary.TopHallsByRevenue[0].TotalRevenue)
	assert.Equal(t, 1, summary.TopHallsByRevenue[0].BookingCount)
	// Descending revenue, the cheapest hall falls off the list.
	assert.Equal(t, "Hall 1", summary.TopHallsByRevenue[4].HallName)
}

func TestComputeMonthlyTrends(t *testing.T) {
	h := hall.Hall{ID: primitive.NewObjectID(), Name: "Sunset Terrace"}
	start, end := day(2026, 8, 1), day(2026, 8, 31)

	bookings := []booking.Booking{
		{HallID: h.ID, Date: day(2026, 8, 10), Status: booking.StatusConfirmed, TotalCost: 4000},
		{HallID: h.ID, Date: day(2026, 6, 15), Status: booking.StatusConfirmed, TotalCost: 3000},
		{HallID: h.ID, Date: day(2026, 6, 16), Status: booking.StatusCancelled, TotalCost: 9000},
		// Before the six-month window, must not appear.
		{HallID: h.ID, Date: day(2026, 2, 1), Status: booking.StatusConfirmed, TotalCost: 7000},
	}

	summary := Compute(bookings, nil, []hall.Hall{h}, start, end)

	require.Len(t, summary.MonthlyBookingTrends, 6)
	assert.Equal(t, 3, summary.MonthlyBookingTrends[0].Month)
	assert.Equal(t, 2026, summary.MonthlyBookingTrends[0].Year)
	assert.Equal(t, 8, summary.MonthlyBookingTrends[5].Month)

	june := summary.MonthlyBookingTrends[3]
	assert.Equal(t, 6, june.Month)
	assert.Equal(t, 1, june.BookingCount)
	assert.Equal(t, 3000.0, june.Revenue)

	august := summary.MonthlyBookingTrends[5]
	assert.Equal(t, 1, august.BookingCount)
	assert.Equal(t, 4000.0, august.Revenue)
}

func TestComputeIdempotent(t *testing.T) {
	h := hall.Hall{ID: primitive.NewObjectID(), Name: "Emerald Suite"}
	start, end := day(2026, 8, 1), day(2026, 8, 31)

	bookings := []booking.Booking{
		{HallID: h.ID, Date: day(2026, 8, 3), Status: booking.StatusConfirmed, TotalCost: 8000, AdvanceAmount: 2000, BalanceAmount: 6000},
		{HallID: h.ID, Date: day(2026, 8, 4), Status: booking.StatusPending, TotalCost: 5000},
	}
	expenses := []expense.Expense{
		{Category: expense.CategoryDecor, Amount: 400, Date: day(2026, 8, 3)},
	}

	first := Compute(bookings, expenses, []hall.Hall{h}, start, end)
	second := Compute(bookings, expenses, []hall.Hall{h}, start, end)
	assert.Equal(t, first, second)
}
