package stats

// CategoryTotal is a per-category expense sum within the requested range.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// HallRevenue ranks a hall by revenue earned from non-cancelled bookings.
type HallRevenue struct {
	HallID       string  `json:"hallId"`
	HallName     string  `json:"hallName"`
	TotalRevenue float64 `json:"totalRevenue"`
	BookingCount int     `json:"bookingCount"`
}

// MonthlyTrend is one month's booking volume and revenue.
type MonthlyTrend struct {
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	BookingCount int     `json:"bookingCount"`
	Revenue      float64 `json:"revenue"`
}

// Summary is the dashboard aggregate for a date range.
type Summary struct {
	TotalBookings        int             `json:"totalBookings"`
	TotalRevenue         float64         `json:"totalRevenue"`
	AdvanceTotal         float64         `json:"advanceTotal"`
	BalanceTotal         float64         `json:"balanceTotal"`
	TotalExpenses        float64         `json:"totalExpenses"`
	Profit               float64         `json:"profit"`
	ProfitMargin         float64         `json:"profitMargin"`
	OccupancyRate        float64         `json:"occupancyRate"`
	ExpenseByCategory    []CategoryTotal `json:"expenseByCategory"`
	TopHallsByRevenue    []HallRevenue   `json:"topHallsByRevenue"`
	MonthlyBookingTrends []MonthlyTrend  `json:"monthlyBookingTrends"`
}
