package dto

import "github.com/shopspring/decimal"

type StatusCountResponse struct {
	StatusID int    `json:"status_id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Count    int64  `json:"count"`
}

type DashboardSummaryResponse struct {
	TotalRooms         int64                 `json:"total_rooms"`
	RoomsByStatus      []StatusCountResponse `json:"rooms_by_status"`
	ActiveBookings     int64                 `json:"active_bookings"`
	ArrivalsToday      int64                 `json:"arrivals_today"`
	DeparturesToday    int64                 `json:"departures_today"`
	OutOfOrderRooms    int64                 `json:"out_of_order_rooms"`
	OutstandingBalance decimal.Decimal       `json:"outstanding_balance"`
}
