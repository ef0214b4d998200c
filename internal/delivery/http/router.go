package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"letsbookit/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, standController *controllers.StandController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/location/{location}", eventController.FindEventsByLocation)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("PUT /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)
	mux.HandleFunc("GET /events/{eventID}/stands", standController.ListStandsByEvent)

	// Stands
	mux.HandleFunc("POST /stands", standController.CreateStand)
	mux.HandleFunc("GET /stands", standController.ListStands)
	mux.HandleFunc("GET /stands/{standID}", standController.GetStandByID)
	mux.HandleFunc("PUT /stands/{standID}", standController.UpdateStand)
	mux.HandleFunc("DELETE /stands/{standID}", standController.DeleteStand)
	mux.HandleFunc("POST /stands/{standID}/book", standController.BookStand)

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
