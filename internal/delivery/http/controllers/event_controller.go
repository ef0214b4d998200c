package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"letsbookit/internal/delivery/http/helpers"
	"letsbookit/internal/domain"
)

// EventController handles the /events routes.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// EventPayload is the request body for POST /events and PUT /events/{eventID}.
// market_id is the foreign key candidate; market_name materializes or renames
// the referenced market.
type EventPayload struct {
	MarketID    int       `json:"market_id"`
	MarketName  string    `json:"market_name"`
	Name        string    `json:"name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`
	VenueLayout string    `json:"venue_layout"`
}

// Validate implements Validator. Returns error messages for required fields.
func (p EventPayload) Validate() []string {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "name is required")
	}
	if p.MarketName == "" {
		errs = append(errs, "market_name is required")
	}
	if p.Start.IsZero() {
		errs = append(errs, "start is required")
	}
	if p.End.IsZero() {
		errs = append(errs, "end is required")
	}
	return errs
}

func (p EventPayload) draft() domain.EventDraft {
	return domain.EventDraft{
		Name:        p.Name,
		Start:       p.Start,
		End:         p.End,
		Location:    p.Location,
		VenueLayout: p.VenueLayout,
		MarketName:  p.MarketName,
	}
}

// EventSuccessResponse is the success response envelope for single-event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for event list endpoints.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// pathID parses the named integer path value. On failure it writes a 400
// JSON error and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event at a market. The market is looked up by market_id and materialized with market_name if absent; an existing market is renamed to market_name. start must be before end and in the future.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventPayload true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventPayload
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req.draft(), req.MarketID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every stored event. Responds 204 when the store is empty.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Success 204 "empty store"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.GetAll(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if len(events) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Point lookup by the store-assigned event id.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// FindEventsByLocation godoc
// @Summary Find events by location
// @Description Exact-match filter over stored events by location. Responds 204 when nothing matches.
// @Tags events
// @Produce json
// @Param location path string true "Location (case-sensitive exact match)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the matching events"
// @Success 204 "no matching events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/location/{location} [get]
func (c *EventController) FindEventsByLocation(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")
	if location == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing location")
		return
	}
	events, err := c.Service.FindByLocation(r.Context(), location)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if len(events) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites every mutable field of the event with the payload's values and re-resolves the market linkage. Start/end ordering is re-validated; the start-in-the-future rule applies to creation only.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param event body EventPayload true "Full event payload"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req EventPayload
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), id, req.draft(), req.MarketID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event and, through the schema, its stands. Deleting a nonexistent id is 404, not silent success.
// @Tags events
// @Param eventID path int true "Event ID"
// @Success 204 "deleted"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
