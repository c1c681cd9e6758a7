package stats

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/venuedesk/hall-booking-backend/internal/booking"
	"github.com/venuedesk/hall-booking-backend/internal/expense"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
)

// trendMonths is the width of the monthly trend window, ending at the
// month of the range's end date.
const trendMonths = 6

// Service computes dashboard summaries.
type Service interface {
	// Summary aggregates bookings, expenses, and halls over [start, end]
	// (day granularity, inclusive). A zero start or end falls back to the
	// corresponding bound of the current calendar month.
	Summary(ctx context.Context, start, end time.Time) (*Summary, error)
}

type service struct {
	repo Repository
}

// NewService creates a new stats Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Summary(ctx context.Context, start, end time.Time) (*Summary, error) {
	monthStart, monthEnd := currentMonth()
	if start.IsZero() {
		start = monthStart
	}
	if end.IsZero() {
		end = monthEnd
	}
	start = booking.DayOf(start)
	end = booking.DayOf(end)

	// The trend window usually reaches months before the range start, so
	// bookings are fetched over the union of both windows and filtered
	// again during computation.
	fetchFrom := trendStart(end)
	if start.Before(fetchFrom) {
		fetchFrom = start
	}
	fetchBefore := end.Add(24 * time.Hour)

	bookings, err := s.repo.BookingsInRange(ctx, fetchFrom, fetchBefore)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.ExpensesInRange(ctx, start, fetchBefore)
	if err != nil {
		return nil, err
	}
	halls, err := s.repo.Halls(ctx)
	if err != nil {
		return nil, err
	}

	return Compute(bookings, expenses, halls, start, end), nil
}

// currentMonth returns the first and last day of the current calendar month.
func currentMonth() (time.Time, time.Time) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// trendStart returns the first day of the month trendMonths-1 months
// before end's month.
func trendStart(end time.Time) time.Time {
	return time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendMonths - 1), 0)
}

// Compute derives a Summary from already-loaded documents. It is a pure
// function of its inputs: equal inputs give equal output, and no storage
// is touched, which keeps the aggregate testable without a database.
func Compute(bookings []booking.Booking, expenses []expense.Expense, halls []hall.Hall, start, end time.Time) *Summary {
	start = booking.DayOf(start)
	end = booking.DayOf(end)
	inRange := func(t time.Time) bool {
		d := booking.DayOf(t)
		return !d.Before(start) && !d.After(end)
	}

	summary := &Summary{
		ExpenseByCategory:    []CategoryTotal{},
		TopHallsByRevenue:    []HallRevenue{},
		MonthlyBookingTrends: []MonthlyTrend{},
	}

	type hallAgg struct {
		revenue float64
		count   int
	}
	byHall := map[string]*hallAgg{}

	for _, b := range bookings {
		if !inRange(b.Date) {
			continue
		}
		summary.TotalBookings++
		if b.Status == booking.StatusCancelled {
			continue
		}
		summary.TotalRevenue += b.TotalCost
		summary.AdvanceTotal += b.AdvanceAmount
		summary.BalanceTotal += b.BalanceAmount

		id := b.HallID.Hex()
		agg := byHall[id]
		if agg == nil {
			agg = &hallAgg{}
			byHall[id] = agg
		}
		agg.revenue += b.TotalCost
		agg.count++
	}

	byCategory := map[string]float64{}
	for _, e := range expenses {
		if !inRange(e.Date) {
			continue
		}
		summary.TotalExpenses += e.Amount
		byCategory[string(e.Category)] += e.Amount
	}

	summary.Profit = summary.TotalRevenue - summary.TotalExpenses
	if summary.TotalRevenue > 0 {
		summary.ProfitMargin = summary.Profit / summary.TotalRevenue * 100
	}

	for category, amount := range byCategory {
		summary.ExpenseByCategory = append(summary.ExpenseByCategory, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(summary.ExpenseByCategory, func(i, j int) bool {
		a, b := summary.ExpenseByCategory[i], summary.ExpenseByCategory[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Category < b.Category
	})

	hallNames := make(map[string]string, len(halls))
	for _, h := range halls {
		hallNames[h.ID.Hex()] = h.Name
	}
	for id, agg := range byHall {
		summary.TopHallsByRevenue = append(summary.TopHallsByRevenue, HallRevenue{
			HallID:       id,
			HallName:     hallNames[id],
			TotalRevenue: agg.revenue,
			BookingCount: agg.count,
		})
	}
	sort.Slice(summary.TopHallsByRevenue, func(i, j int) bool {
		a, b := summary.TopHallsByRevenue[i], summary.TopHallsByRevenue[j]
		if a.TotalRevenue != b.TotalRevenue {
			return a.TotalRevenue > b.TotalRevenue
		}
		return a.HallName < b.HallName
	})
	if len(summary.TopHallsByRevenue) > 5 {
		summary.TopHallsByRevenue = summary.TopHallsByRevenue[:5]
	}

	summary.OccupancyRate = occupancyRate(bookings, len(halls), start, end, inRange)
	summary.MonthlyBookingTrends = monthlyTrends(bookings, end)

	return summary
}

// occupancyRate treats every non-cancelled booking as exactly half a
// hall-day, since slots are half-day windows.
func occupancyRate(bookings []booking.Booking, hallCount int, start, end time.Time, inRange func(time.Time) bool) float64 {
	totalDays := int(math.Ceil(end.Sub(start).Hours() / 24))
	totalAvailable := float64(totalDays * hallCount)
	if totalAvailable <= 0 {
		return 0
	}

	var bookedHallDays float64
	for _, b := range bookings {
		if b.Status != booking.StatusCancelled && inRange(b.Date) {
			bookedHallDays += 0.5
		}
	}
	return bookedHallDays / totalAvailable * 100
}

// monthlyTrends buckets non-cancelled bookings by calendar month over the
// trend window ending at end's month. Every month in the window is
// emitted, including empty ones, in ascending (year, month) order.
func monthlyTrends(bookings []booking.Booking, end time.Time) []MonthlyTrend {
	windowStart := trendStart(end)

	trends := make([]MonthlyTrend, trendMonths)
	index := map[[2]int]int{}
	for i := 0; i < trendMonths; i++ {
		m := windowStart.AddDate(0, i, 0)
		trends[i] = MonthlyTrend{Month: int(m.Month()), Year: m.Year()}
		index[[2]int{m.Year(), int(m.Month())}] = i
	}

	windowEnd := booking.DayOf(end)
	for _, b := range bookings {
		if b.Status == booking.StatusCancelled {
			continue
		}
		d := booking.DayOf(b.Date)
		if d.Before(windowStart) || d.After(windowEnd) {
			continue
		}
		i, ok := index[[2]int{d.Year(), int(d.Month())}]
		if !ok {
			continue
		}
		trends[i].BookingCount++
		trends[i].Revenue += b.TotalCost
	}
	return trends
}
