package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Abdul1ayev/Tickets/internal/status"
	"github.com/Abdul1ayev/Tickets/internal/store"
	"github.com/Abdul1ayev/Tickets/models"
	"github.com/Abdul1ayev/Tickets/monitoring"
	"github.com/Abdul1ayev/Tickets/utils"
)

// BookingService drives the public search page: it holds the session's
// in-memory copy of the listings, the filtered view, and the buy flow.
type BookingService struct {
	store    store.Client
	notifier *Notifier

	mu       sync.Mutex
	tickets  []models.Ticket
	filtered []models.Ticket
	loading  bool
	lastErr  error
}

func NewBookingService(client store.Client, notifier *Notifier) *BookingService {
	return &BookingService{
		store:    client,
		notifier: notifier,
	}
}

// Refresh replaces the session's listings with a full fetch. On success
// both the full and filtered lists hold the fetched set; on failure the
// error state is set and the lists keep their previous value.
func (s *BookingService) Refresh(ctx context.Context) error {
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
	s.filtered = tickets
	s.lastErr = nil
	return nil
}

// Search recomputes the filtered view from the current in-memory full
// list. It never re-fetches.
func (s *BookingService) Search(criteria models.SearchCriteria) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if criteria.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	s.filtered = filtered

	monitoring.TrackSearch()
	return append([]models.Ticket(nil), filtered...)
}

// Buy prompts for the purchaser's name and inserts a booking for the
// given listing. A declined or empty prompt is a silent no-op. On
// success only the session's local copy of the remaining count is
// decremented; the stored ticket record keeps its count, matching the
// page this service replaces.
func (s *BookingService) Buy(ctx context.Context, ticketID string, prompter Prompter) (bool, error) {
	s.mu.Lock()
	idx := -1
	for i, t := range s.tickets {
		if t.ID == ticketID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return false, status.ErrTicketNotFound
	}
	ticket := s.tickets[idx]
	s.mu.Unlock()

	username, ok := prompter.PromptText("Iltimos, foydalanuvchi ismingizni kiriting:")
	if !ok || username == "" {
		monitoring.TrackBooking("aborted")
		return false, nil
	}

	reference, err := utils.GenerateCode(8)
	if err != nil {
		monitoring.TrackBooking("failed")
		return false, err
	}

	booking := models.NewBooking(ticket, username, reference)
	if _, err := s.store.Insert(ctx, store.CollectionUserTickets, booking.Fields()); err != nil {
		slog.Error("booking ticket failed", "ticketId", ticketID, "error", err)
		monitoring.TrackBooking("failed")
		return false, err
	}

	s.mu.Lock()
	for i, t := range s.tickets {
		if t.ID == ticketID {
			s.tickets[i].Count = t.Count - 1
			ticket = s.tickets[i]
			break
		}
	}
	filtered := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if t.Bookable() {
			filtered = append(filtered, t)
		}
	}
	s.filtered = filtered
	s.mu.Unlock()

	monitoring.TrackBooking("booked")
	s.notifier.PublishInventoryEvent("ticket_booked", map[string]any{
		"ticket_id": ticket.ID,
		"reference": reference,
		"from":      ticket.From,
		"to":        ticket.To,
		"remaining": ticket.Count,
	})

	slog.Info("ticket booked", "ticketId", ticket.ID, "reference", reference, "remaining", ticket.Count)
	return true, nil
}

// Tickets returns the session's full list, sold-out rows included.
func (s *BookingService) Tickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Ticket(nil), s.tickets...)
}

// Filtered returns the current filtered view.
func (s *BookingService) Filtered() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Ticket(nil), s.filtered...)
}

func (s *BookingService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BookingService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
