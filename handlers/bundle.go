package handlers

// HandlerBundle groups the handlers passed to route registration.
type HandlerBundle struct {
	Chat    *ChatHandler
	Booking *BookingHandler
	Health  *HealthHandler
}
