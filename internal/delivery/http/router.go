package http

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/http/handler"
	"hotel-frontdesk/internal/delivery/http/middleware"
	"hotel-frontdesk/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	categoryHandler   *handler.RoomCategoryHandler
	statusHandler     *handler.RoomStatusHandler
	roomHandler       *handler.RoomHandler
	roomTypeHandler   *handler.RoomTypeHandler
	guestHandler      *handler.GuestHandler
	bookingHandler    *handler.BookingHandler
	paymentHandler    *handler.PaymentHandler
	outOfOrderHandler *handler.OutOfOrderHandler
	settingHandler    *handler.SettingHandler
	preferenceHandler *handler.PreferenceHandler
	dashboardHandler  *handler.DashboardHandler
	corsMiddleware    *middleware.CORSMiddleware
	staffMiddleware   *middleware.StaffMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

type Handlers struct {
	Category   *handler.RoomCategoryHandler
	Status     *handler.RoomStatusHandler
	Room       *handler.RoomHandler
	RoomType   *handler.RoomTypeHandler
	Guest      *handler.GuestHandler
	Booking    *handler.BookingHandler
	Payment    *handler.PaymentHandler
	OutOfOrder *handler.OutOfOrderHandler
	Setting    *handler.SettingHandler
	Preference *handler.PreferenceHandler
	Dashboard  *handler.DashboardHandler
}

func NewRouter(
	handlers Handlers,
	corsMiddleware *middleware.CORSMiddleware,
	staffMiddleware *middleware.StaffMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		categoryHandler:   handlers.Category,
		statusHandler:     handlers.Status,
		roomHandler:       handlers.Room,
		roomTypeHandler:   handlers.RoomType,
		guestHandler:      handlers.Guest,
		bookingHandler:    handlers.Booking,
		paymentHandler:    handlers.Payment,
		outOfOrderHandler: handlers.OutOfOrder,
		settingHandler:    handlers.Setting,
		preferenceHandler: handlers.Preference,
		dashboardHandler:  handlers.Dashboard,
		corsMiddleware:    corsMiddleware,
		staffMiddleware:   staffMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api.HandleFunc("/dashboard/summary", r.dashboardHandler.GetSummary).Methods(http.MethodGet)

	// Room categories
	api.HandleFunc("/room-categories", r.categoryHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/room-categories", r.categoryHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/room-categories/{id:[0-9]+}", r.categoryHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/room-categories/{id:[0-9]+}", r.categoryHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/room-categories/{id:[0-9]+}", r.categoryHandler.Delete).Methods(http.MethodDelete)

	// Room status registry
	api.HandleFunc("/room-statuses", r.statusHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/room-statuses", r.statusHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/room-statuses/{id:[0-9]+}", r.statusHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/room-statuses/{id:[0-9]+}", r.statusHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/room-statuses/{id:[0-9]+}", r.statusHandler.Delete).Methods(http.MethodDelete)

	// Rooms; static paths before {id}
	api.HandleFunc("/rooms/out-of-order", r.outOfOrderHandler.GetOutOfOrderRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms", r.roomHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms", r.roomHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", r.roomHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", r.roomHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}/status", r.statusHandler.UpdateRoomStatus).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}/status-history", r.statusHandler.GetRoomStatusHistory).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}/out-of-order", r.outOfOrderHandler.MarkOutOfOrder).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}/available", r.outOfOrderHandler.MarkAvailable).Methods(http.MethodPost)

	// Room types and recycle bin
	api.HandleFunc("/room-types/deleted", r.roomTypeHandler.GetDeleted).Methods(http.MethodGet)
	api.HandleFunc("/room-types/history", r.roomTypeHandler.GetHistory).Methods(http.MethodGet)
	api.HandleFunc("/room-types", r.roomTypeHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/room-types", r.roomTypeHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/room-types/{id:[0-9]+}", r.roomTypeHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/room-types/{id:[0-9]+}", r.roomTypeHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/room-types/{id:[0-9]+}", r.roomTypeHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/room-types/{id:[0-9]+}/restore", r.roomTypeHandler.Restore).Methods(http.MethodPost)
	api.HandleFunc("/room-types/{id:[0-9]+}/permanent", r.roomTypeHandler.PermanentDelete).Methods(http.MethodDelete)
	api.HandleFunc("/room-types/{id:[0-9]+}/history", r.roomTypeHandler.GetHistoryByID).Methods(http.MethodGet)

	// Guests
	api.HandleFunc("/guests", r.guestHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/guests", r.guestHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/guests/{id}", r.guestHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/guests/{id}", r.guestHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/guests/{id}", r.guestHandler.Delete).Methods(http.MethodDelete)

	// Bookings
	api.HandleFunc("/bookings/quote", r.bookingHandler.QuoteBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", r.bookingHandler.GetBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", r.bookingHandler.GetBookingByID).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/check-in", r.bookingHandler.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/check-out", r.bookingHandler.CheckOut).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/payments", r.paymentHandler.RecordPayment).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/payments", r.paymentHandler.GetBookingPayments).Methods(http.MethodGet)

	// Payments
	api.HandleFunc("/payments", r.paymentHandler.GetPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", r.paymentHandler.GetPaymentByID).Methods(http.MethodGet)

	// Settings and preferences
	api.HandleFunc("/settings", r.settingHandler.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", r.settingHandler.UpdateSettings).Methods(http.MethodPut)
	api.HandleFunc("/preferences", r.preferenceHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/preferences/{key}", r.preferenceHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/preferences/{key}", r.preferenceHandler.Set).Methods(http.MethodPut)
	api.HandleFunc("/preferences/{key}", r.preferenceHandler.Delete).Methods(http.MethodDelete)

	// Preflights need a matching route so the CORS middleware gets to answer them.
	// A MatcherFunc, unlike Methods, keeps other unknown routes a 404 rather than a 405.
	api.PathPrefix("/").MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
		return req.Method == http.MethodOptions
	}).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})

	// Staff identity must be in the context before the access log reads it.
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.staffMiddleware.Identify)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
