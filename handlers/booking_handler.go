package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/Abdul1ayev/Tickets/internal/status"
	"github.com/Abdul1ayev/Tickets/models"
	"github.com/Abdul1ayev/Tickets/security"
	"github.com/Abdul1ayev/Tickets/services"
)

type BookingHandler struct {
	app     *pocketbase.PocketBase
	booking *services.BookingService
	limiter *security.RateLimiter
}

func NewBookingHandler(app *pocketbase.PocketBase, booking *services.BookingService, limiter *security.RateLimiter) *BookingHandler {
	return &BookingHandler{
		app:     app,
		booking: booking,
		limiter: limiter,
	}
}

// ListTickets - refresh the session listings and return the current view
func (h *BookingHandler) ListTickets(e *core.RequestEvent) error {
	if err := h.booking.Refresh(e.Request.Context()); err != nil {
		return apis.NewBadRequestError("An error occurred while fetching tickets.", err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"tickets": h.booking.Filtered(),
	})
}

// SearchTickets - filter the in-memory listings by route
func (h *BookingHandler) SearchTickets(e *core.RequestEvent) error {
	criteria := models.SearchCriteria{
		From: e.Request.URL.Query().Get("from"),
		To:   e.Request.URL.Query().Get("to"),
	}

	return e.JSON(http.StatusOK, map[string]any{
		"tickets": h.booking.Search(criteria),
	})
}

// BuyTicket - purchase one seat on a listing
func (h *BookingHandler) BuyTicket(e *core.RequestEvent) error {
	if security.IsSuspiciousUserAgent(e.Request.UserAgent()) {
		return apis.NewForbiddenError("Access denied", nil)
	}

	ctx := e.Request.Context()
	if err := h.limiter.Allow(ctx, e.RealIP()); err != nil {
		return e.JSON(http.StatusTooManyRequests, map[string]string{
			"error": "Rate limit exceeded. Please try again later.",
		})
	}

	ticketID := e.Request.PathValue("id")

	var req struct {
		Username string `json:"username"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	prompter := services.StaticPrompter{TextAnswer: strings.TrimSpace(req.Username)}
	booked, err := h.booking.Buy(ctx, ticketID, prompter)
	if err != nil {
		if errors.Is(err, status.ErrTicketNotFound) {
			return apis.NewNotFoundError("Ticket not found", err)
		}
		return apis.NewBadRequestError("Error booking ticket.", err)
	}

	// A missing username aborts silently, like the cancelled prompt it
	// stands in for.
	if !booked {
		return e.JSON(http.StatusOK, map[string]any{"booked": false})
	}

	return e.JSON(http.StatusOK, map[string]any{
		"booked":  true,
		"tickets": h.booking.Filtered(),
	})
}
