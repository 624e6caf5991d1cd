package handlers

import (
	"net/http"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/Abdul1ayev/Tickets/internal/status"
	"github.com/Abdul1ayev/Tickets/models"
	"github.com/Abdul1ayev/Tickets/services"
)

type AdminHandler struct {
	app   *pocketbase.PocketBase
	admin *services.TicketService
}

func NewAdminHandler(app *pocketbase.PocketBase, admin *services.TicketService) *AdminHandler {
	return &AdminHandler{
		app:   app,
		admin: admin,
	}
}

// ListTickets - refresh and return the managed table rows
func (h *AdminHandler) ListTickets(e *core.RequestEvent) error {
	if err := h.admin.Refresh(e.Request.Context()); err != nil {
		return apis.NewBadRequestError("Error fetching tickets.", err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"tickets": h.admin.Visible(),
		"form":    h.admin.Form(),
	})
}

// SaveTicket - submit the create/edit form
func (h *AdminHandler) SaveTicket(e *core.RequestEvent) error {
	var form models.TicketForm
	if err := e.BindBody(&form); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	if form.IsEdit() {
		h.admin.LoadForEdit(models.Ticket{
			ID:       form.ID,
			From:     form.From,
			To:       form.To,
			Date:     form.Date,
			Time:     form.Time,
			Price:    form.Price,
			Count:    cast.ToInt(form.Count),
			BusModel: form.BusModel,
		})
	} else {
		for name, value := range map[string]string{
			"from":     form.From,
			"to":       form.To,
			"date":     form.Date,
			"time":     form.Time,
			"price":    form.Price,
			"count":    form.Count,
			"busModel": form.BusModel,
		} {
			h.admin.SetField(name, value)
		}
	}

	if err := h.admin.Submit(e.Request.Context()); err != nil {
		if status.IsValidationError(err) {
			return apis.NewBadRequestError("Please fill in all fields.", err)
		}
		return apis.NewBadRequestError("Error saving/updating ticket.", err)
	}

	message := "Ticket added successfully!"
	if form.IsEdit() {
		message = "Ticket updated successfully!"
	}

	return e.JSON(http.StatusOK, map[string]any{
		"message": message,
		"form":    h.admin.Form(),
		"tickets": h.admin.Visible(),
	})
}

// DeleteTicket - delete a listing after confirmation
func (h *AdminHandler) DeleteTicket(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	confirmed := e.Request.URL.Query().Get("confirm") == "true"

	prompter := services.StaticPrompter{ConfirmAnswer: confirmed}
	if err := h.admin.RequestDelete(e.Request.Context(), id, prompter); err != nil {
		return apis.NewBadRequestError("Error deleting ticket.", err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"tickets": h.admin.Visible(),
	})
}

// GetFormOptions - fixed choices the form selects offer
func (h *AdminHandler) GetFormOptions(e *core.RequestEvent) error {
	return e.JSON(http.StatusOK, map[string]any{
		"regions":   models.Regions,
		"times":     models.DepartureTimes,
		"busModels": models.BusModels,
	})
}

// GetDashboard - booking totals aggregated straight from the store
func (h *AdminHandler) GetDashboard(e *core.RequestEvent) error {
	var rows []dbx.NullStringMap
	err := h.app.DB().NewQuery(
		"SELECT [[from]], [[to]], [[price]] FROM {{userTickets}}",
	).All(&rows)
	if err != nil {
		return apis.NewBadRequestError("Failed to load dashboard", err)
	}

	revenue := decimal.Zero
	routes := map[string]int{}
	for _, row := range rows {
		if amount, err := decimal.NewFromString(row["price"].String); err == nil {
			revenue = revenue.Add(amount)
		}
		route := row["from"].String + " - " + row["to"].String
		routes[route]++
	}

	return e.JSON(http.StatusOK, map[string]any{
		"total_bookings": len(rows),
		"total_revenue":  revenue.String(),
		"routes":         routes,
	})
}
