package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Abdul1ayev/Tickets/internal/status"
	"github.com/Abdul1ayev/Tickets/internal/store"
	"github.com/Abdul1ayev/Tickets/models"
)

// TicketService drives the admin page: the create/edit form and the
// managed listing table.
type TicketService struct {
	store    store.Client
	notifier *Notifier

	mu      sync.Mutex
	form    models.TicketForm
	tickets []models.Ticket
	loading bool
	lastErr error
}

func NewTicketService(client store.Client, notifier *Notifier) *TicketService {
	return &TicketService{
		store:    client,
		notifier: notifier,
	}
}

// SetField replaces one form field in place. No validation happens here.
func (s *TicketService) SetField(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Set(name, value)
}

// LoadForEdit replaces the form wholesale with an existing listing,
// switching the service into edit mode.
func (s *TicketService) LoadForEdit(t models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = models.FormFromTicket(t)
}

func (s *TicketService) Form() models.TicketForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Submit validates the form and issues an update when the form carries
// an id, an insert otherwise. On success the form is cleared and the
// list refreshed; on any failure the form keeps its state.
func (s *TicketService) Submit(ctx context.Context) error {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()

	if missing := form.Missing(); len(missing) > 0 {
		return &status.ValidationError{Missing: missing}
	}

	event := "ticket_created"
	id := form.ID
	if form.IsEdit() {
		event = "ticket_updated"
		if err := s.store.Update(ctx, store.CollectionTickets, form.ID, form.Fields()); err != nil {
			slog.Error("updating ticket failed", "ticketId", form.ID, "error", err)
			return err
		}
	} else {
		insertedID, err := s.store.Insert(ctx, store.CollectionTickets, form.Fields())
		if err != nil {
			slog.Error("saving ticket failed", "error", err)
			return err
		}
		id = insertedID
	}

	s.mu.Lock()
	s.form = models.TicketForm{}
	s.mu.Unlock()

	s.notifier.PublishInventoryEvent(event, map[string]any{
		"ticket_id": id,
		"from":      form.From,
		"to":        form.To,
		"date":      form.Date,
	})
	slog.Info("ticket saved", "ticketId", id, "edit", form.IsEdit())

	s.Refresh(ctx)
	return nil
}

// Refresh replaces the list with a full fetch. On failure the previous
// list stays (empty on first load) and the error is recorded.
func (s *TicketService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	rows, err := s.store.List(ctx, store.CollectionTickets)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		slog.Error("fetching tickets failed", "error", err)
		s.lastErr = err
		return err
	}

	tickets := make([]models.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, models.TicketFromRow(row))
	}
	s.tickets = tickets
	s.lastErr = nil
	return nil
}

// Tickets returns every fetched listing, sold-out rows included.
func (s *TicketService) Tickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Ticket(nil), s.tickets...)
}

// Visible returns the rows the admin table shows. Exhausted listings
// stay in the store and in Tickets(); this is a view filter only.
func (s *TicketService) Visible() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if t.Bookable() {
			visible = append(visible, t)
		}
	}
	return visible
}

// RequestDelete deletes a listing after interactive confirmation. An
// empty id or a declined confirmation is a silent no-op.
func (s *TicketService) RequestDelete(ctx context.Context, id string, prompter Prompter) error {
	if id == "" || !prompter.Confirm("Are you sure you want to delete this ticket?") {
		return nil
	}

	if err := s.store.Delete(ctx, store.CollectionTickets, id); err != nil {
		slog.Error("deleting ticket failed", "ticketId", id, "error", err)
		return err
	}

	s.notifier.PublishInventoryEvent("ticket_deleted", map[string]any{"ticket_id": id})
	slog.Info("ticket deleted", "ticketId", id)

	s.Refresh(ctx)
	return nil
}

func (s *TicketService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *TicketService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
