package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/srgjo27/trip_planner/internal/adapter/presenter"
	"github.com/srgjo27/trip_planner/internal/core/domain"
	"github.com/srgjo27/trip_planner/internal/core/services"
	"github.com/srgjo27/trip_planner/internal/platform/failure"
)

type SessionHandler struct {
	svc      *services.SessionService
	validate *validator.Validate
}

func NewSessionHandler(svc *services.SessionService) *SessionHandler {
	return &SessionHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type priceListResponse struct {
	Prices []domain.PriceEntry `json:"prices"`
	Lines  []string            `json:"lines"`
}

type bookingResponse struct {
	*services.CreateBookingResponse
	CostText  string `json:"cost_text"`
	TotalText string `json:"total_text"`
}

type sessionResponse struct {
	*services.SessionSummary
	TotalText string   `json:"total_text"`
	Table     []string `json:"table"`
}

func (h *SessionHandler) Router(router chi.Router) {
	router.Get("/categories", h.ListCategories)
	router.Get("/categories/{index}", h.GetCategory)
	router.Get("/prices", h.GetPrices)

	router.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Get("/{id}", h.GetSession)
		r.Delete("/{id}", h.EndSession)
		r.Post("/{id}/bookings", h.CreateBooking)
	})
}

func (h *SessionHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WithJSON(w, http.StatusOK, h.svc.Categories())
}

func (h *SessionHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	index, err := cast.ToIntE(chi.URLParam(r, "index"))
	if err != nil {
		WithError(w, failure.BadRequestFromString("invalid category index"))
		return
	}

	view, err := h.svc.Category(index)
	if err != nil {
		WithError(w, err)
		return
	}

	WithJSON(w, http.StatusOK, view)
}

func (h *SessionHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	prices := h.svc.PriceList()

	WithJSON(w, http.StatusOK, priceListResponse{
		Prices: prices,
		Lines:  presenter.PriceTable(prices),
	})
}

func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.StartSession(r.Context())
	if err != nil {
		WithError(w, err)
		return
	}

	WithJSON(w, http.StatusCreated, h.sessionView(summary))
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WithError(w, err)
		return
	}

	WithJSON(w, http.StatusOK, h.sessionView(summary))
}

func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		WithError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WithError(w, failure.BadRequestFromString("invalid json body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Debug().Err(err).Msg("booking request failed validation")
		WithError(w, failure.BadRequest(err))
		return
	}

	resp, err := h.svc.Book(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSelection) {
			WithUserError(w, err, presenter.MissingSelectionMessage)
			return
		}

		WithError(w, err)
		return
	}

	WithJSON(w, http.StatusCreated, bookingResponse{
		CreateBookingResponse: resp,
		CostText:              presenter.Money(resp.Cost),
		TotalText:             presenter.Total(resp.RunningTotal),
	})
}

func (h *SessionHandler) sessionView(summary *services.SessionSummary) sessionResponse {
	return sessionResponse{
		SessionSummary: summary,
		TotalText:      presenter.Total(summary.RunningTotal),
		Table:          presenter.BookingTable(summary.Bookings),
	}
}
