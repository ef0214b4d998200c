package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"letsbookit/internal/delivery/http/helpers"
	"letsbookit/internal/domain"
)

// StandController handles the /stands routes and the per-event stand listing.
type StandController struct {
	Logger  *slog.Logger
	Service domain.StandService
}

func NewStandController(logger *slog.Logger, svc domain.StandService) *StandController {
	return &StandController{
		Logger:  logger,
		Service: svc,
	}
}

// StandPayload is the request body for POST /stands and PUT /stands/{standID}.
type StandPayload struct {
	EventID    int             `json:"event_id"`
	TableName  string          `json:"table_name"`
	TableNotes string          `json:"table_notes"`
	Booked     bool            `json:"booked"`
	Price      decimal.Decimal `json:"price"`
}

// Validate implements Validator. Returns error messages for required fields.
func (p StandPayload) Validate() []string {
	var errs []string
	if p.EventID <= 0 {
		errs = append(errs, "event_id must be positive")
	}
	if p.TableName == "" {
		errs = append(errs, "table_name is required")
	}
	return errs
}

func (p StandPayload) stand() *domain.Stand {
	return &domain.Stand{
		EventID:    p.EventID,
		TableName:  p.TableName,
		TableNotes: p.TableNotes,
		Booked:     p.Booked,
		Price:      p.Price,
	}
}

// StandSuccessResponse is the success response envelope for single-stand endpoints.
type StandSuccessResponse struct {
	Data  *domain.Stand     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StandListSuccessResponse is the success response envelope for stand list endpoints.
type StandListSuccessResponse struct {
	Data  []*domain.Stand   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateStand godoc
// @Summary Create a new stand
// @Description Create a bookable vendor stand tied to an existing event. A payload naming a nonexistent event is rejected.
// @Tags stands
// @Accept json
// @Produce json
// @Param stand body StandPayload true "Stand data"
// @Success 201 {object} controllers.StandSuccessResponse "data contains the created stand"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stands [post]
func (c *StandController) CreateStand(w http.ResponseWriter, r *http.Request) {
	var req StandPayload
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	stand := req.stand()
	if err := c.Service.Create(r.Context(), stand); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, stand)
}

// ListStands godoc
// @Summary List all stands
// @Tags stands
// @Produce json
// @Success 200 {object} controllers.StandListSuccessResponse "data contains the stands"
// @Success 204 "empty store"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stands [get]
func (c *StandController) ListStands(w http.ResponseWriter, r *http.Request) {
	stands, err := c.Service.GetAll(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if len(stands) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stands)
}

// GetStandByID godoc
// @Summary Get a stand by ID
// @Tags stands
// @Produce json
// @Param standID path int true "Stand ID"
// @Success 200 {object} controllers.StandSuccessResponse "data contains the stand"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stands/{standID} [get]
func (c *StandController) GetStandByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "standID")
	if !ok {
		return
	}
	stand, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "stand not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stand)
}

// ListStandsByEvent godoc
// @Summary List stands for an event
// @Tags stands
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.StandListSuccessResponse "data contains the event's stands"
// @Success 204 "event has no stands"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/stands [get]
func (c *StandController) ListStandsByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	stands, err := c.Service.ListByEventID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if len(stands) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stands)
}

// UpdateStand godoc
// @Summary Update a stand
// @Description Overwrites every mutable field of the stand with the payload's values. The referenced event must exist.
// @Tags stands
// @Accept json
// @Produce json
// @Param standID path int true "Stand ID"
// @Param stand body StandPayload true "Full stand payload"
// @Success 200 {object} controllers.StandSuccessResponse "data contains the updated stand"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stands/{standID} [put]
func (c *StandController) UpdateStand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "standID")
	if !ok {
		return
	}
	var req StandPayload
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	stand, err := c.Service.Update(r.Context(), id, req.stand())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "stand not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stand)
}

// DeleteStand godoc
// @Summary Delete a stand
// @Tags stands
// @Param standID path int true "Stand ID"
// @Success 204 "deleted"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stands/{standID} [delete]
func (c *StandController) DeleteStand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "standID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "stand not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BookStand godoc
// @Summary Book a stand
// @Description Marks the stand as booked and notifies the configured organizer address. Booking an already booked stand responds 409.
// @Tags stands
// @Produce json
// @Param standID path int true "Stand ID"
// @Success 200 {object} controllers.StandSuccessResponse "data contains the booked stand"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stands/{standID}/book [post]
func (c *StandController) BookStand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "standID")
	if !ok {
		return
	}
	stand, err := c.Service.Book(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "stand not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyBooked) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "stand already booked")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stand)
}
