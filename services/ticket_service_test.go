package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdul1ayev/Tickets/internal/status"
	"github.com/Abdul1ayev/Tickets/internal/store"
	"github.com/Abdul1ayev/Tickets/models"
)

func fillForm(svc *TicketService) {
	svc.SetField("from", "Toshkent")
	svc.SetField("to", "Samarqand")
	svc.SetField("date", "2025-06-10")
	svc.SetField("time", "08:00")
	svc.SetField("price", "50000")
	svc.SetField("count", "10")
	svc.SetField("busModel", "Isuzu HD50 (2024)")
}

func TestTicketService_SubmitMissingFieldsBlocked(t *testing.T) {
	memory := store.NewMemoryClient()
	svc := NewTicketService(memory, nil)

	svc.SetField("from", "Toshkent")
	svc.SetField("to", "Samarqand")

	err := svc.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, status.IsValidationError(err))
	assert.ErrorContains(t, err, "date")

	// Nothing reached the store and the form keeps its state.
	rows, listErr := memory.List(context.Background(), store.CollectionTickets)
	require.NoError(t, listErr)
	assert.Empty(t, rows)
	assert.Equal(t, "Toshkent", svc.Form().From)
	assert.Equal(t, "Samarqand", svc.Form().To)
}

func TestTicketService_SubmitCreate(t *testing.T) {
	memory := store.NewMemoryClient()
	svc := NewTicketService(memory, nil)

	fillForm(svc)
	err := svc.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.TicketForm{}, svc.Form())

	tickets := svc.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "Toshkent", tickets[0].From)
	assert.Equal(t, "50000", tickets[0].Price)
	assert.Equal(t, 10, tickets[0].Count)
	assert.NotEmpty(t, tickets[0].ID)
}

func TestTicketService_SubmitCreateTwiceDistinctIDs(t *testing.T) {
	memory := store.NewMemoryClient()
	svc := NewTicketService(memory, nil)

	fillForm(svc)
	require.NoError(t, svc.Submit(context.Background()))
	fillForm(svc)
	require.NoError(t, svc.Submit(context.Background()))

	tickets := svc.Tickets()
	require.Len(t, tickets, 2)
	assert.NotEqual(t, tickets[0].ID, tickets[1].ID)
}

func TestTicketService_SubmitEditUpdatesOnlyTarget(t *testing.T) {
	memory := store.NewMemoryClient()
	ids := seedTickets(t, memory, sampleTicket(), models.Ticket{
		From: "Andijon", To: "Buxoro", Date: "2025-06-11", Time: "18:00",
		Price: "90000", Count: 5, BusModel: "Mercedes-Benz (2013)",
	})
	svc := NewTicketService(memory, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	edited := svc.Tickets()[0]
	edited.Price = "65000"
	svc.LoadForEdit(edited)
	assert.True(t, svc.Form().IsEdit())

	require.NoError(t, svc.Submit(context.Background()))

	tickets := svc.Tickets()
	require.Len(t, tickets, 2)
	for _, ticket := range tickets {
		switch ticket.ID {
		case ids[0]:
			assert.Equal(t, "65000", ticket.Price)
			assert.Equal(t, "Toshkent", ticket.From)
		case ids[1]:
			assert.Equal(t, "90000", ticket.Price)
			assert.Equal(t, "Andijon", ticket.From)
		default:
			t.Fatalf("unexpected ticket id %q", ticket.ID)
		}
	}
}

func TestTicketService_SubmitFailureKeepsForm(t *testing.T) {
	memory := store.NewMemoryClient()
	flaky := &flakyStore{Client: memory}
	svc := NewTicketService(flaky, nil)

	fillForm(svc)
	flaky.insertErr = &status.StoreError{Op: "insert", Collection: store.CollectionTickets, Err: assert.AnError}

	err := svc.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "Toshkent", svc.Form().From)
	assert.Equal(t, "10", svc.Form().Count)
}

func TestTicketService_VisibleHidesExhausted(t *testing.T) {
	memory := store.NewMemoryClient()
	exhausted := sampleTicket()
	exhausted.Count = 0
	seedTickets(t, memory, sampleTicket(), exhausted)
	svc := NewTicketService(memory, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	// The exhausted row stays stored and fetched; only the table view
	// filters it.
	assert.Len(t, svc.Tickets(), 2)
	visible := svc.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, 2, visible[0].Count)
}

func TestTicketService_RefreshFailureKeepsPreviousList(t *testing.T) {
	memory := store.NewMemoryClient()
	seedTickets(t, memory, sampleTicket())
	flaky := &flakyStore{Client: memory}
	svc := NewTicketService(flaky, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	flaky.listErr = &status.StoreError{Op: "list", Collection: store.CollectionTickets, Err: assert.AnError}
	err := svc.Refresh(context.Background())

	assert.Error(t, err)
	assert.Error(t, svc.Err())
	assert.Len(t, svc.Tickets(), 1)
}

func TestTicketService_RequestDeleteDeclined(t *testing.T) {
	memory := store.NewMemoryClient()
	ids := seedTickets(t, memory, sampleTicket())
	svc := NewTicketService(memory, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.RequestDelete(context.Background(), ids[0], StaticPrompter{ConfirmAnswer: false})

	assert.NoError(t, err)
	rows, listErr := memory.List(context.Background(), store.CollectionTickets)
	require.NoError(t, listErr)
	assert.Len(t, rows, 1)
}

func TestTicketService_RequestDeleteEmptyID(t *testing.T) {
	memory := store.NewMemoryClient()
	seedTickets(t, memory, sampleTicket())
	svc := NewTicketService(memory, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.RequestDelete(context.Background(), "", StaticPrompter{ConfirmAnswer: true})

	assert.NoError(t, err)
	rows, listErr := memory.List(context.Background(), store.CollectionTickets)
	require.NoError(t, listErr)
	assert.Len(t, rows, 1)
}

func TestTicketService_RequestDeleteConfirmed(t *testing.T) {
	memory := store.NewMemoryClient()
	ids := seedTickets(t, memory, sampleTicket())
	svc := NewTicketService(memory, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.RequestDelete(context.Background(), ids[0], StaticPrompter{ConfirmAnswer: true})

	require.NoError(t, err)
	assert.Empty(t, svc.Tickets())
	rows, listErr := memory.List(context.Background(), store.CollectionTickets)
	require.NoError(t, listErr)
	assert.Empty(t, rows)
}

func TestTicketService_RequestDeleteStaleID(t *testing.T) {
	memory := store.NewMemoryClient()
	seedTickets(t, memory, sampleTicket())
	svc := NewTicketService(memory, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.RequestDelete(context.Background(), "gone", StaticPrompter{ConfirmAnswer: true})

	assert.True(t, status.IsStoreError(err))
	assert.Len(t, svc.Tickets(), 1)
}
