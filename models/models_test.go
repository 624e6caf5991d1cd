package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketFromRow_MixedTypes(t *testing.T) {
	// Counts come back as float64 from JSON and prices as either text
	// or number; the mapping absorbs both.
	ticket := TicketFromRow(map[string]any{
		"id":       "abc123",
		"from":     "Toshkent",
		"to":       "Samarqand",
		"date":     "2025-06-10",
		"time":     "08:00",
		"price":    50000,
		"count":    float64(2),
		"busModel": "Isuzu HC45 (2024)",
	})

	assert.Equal(t, "abc123", ticket.ID)
	assert.Equal(t, "Toshkent", ticket.From)
	assert.Equal(t, "50000", ticket.Price)
	assert.Equal(t, 2, ticket.Count)
}

func TestTicket_Bookable(t *testing.T) {
	assert.True(t, Ticket{Count: 1}.Bookable())
	assert.False(t, Ticket{Count: 0}.Bookable())
	assert.False(t, Ticket{Count: -1}.Bookable())
}

func TestTicket_PriceAmount(t *testing.T) {
	amount, err := Ticket{Price: "50000"}.PriceAmount()
	require.NoError(t, err)
	assert.Equal(t, "50000", amount.String())

	_, err = Ticket{Price: "not a number"}.PriceAmount()
	assert.Error(t, err)
}

func TestSearchCriteria_Matches(t *testing.T) {
	ticket := Ticket{From: "Toshkent", To: "Samarqand", Count: 2}

	assert.True(t, SearchCriteria{}.Matches(ticket))
	assert.True(t, SearchCriteria{From: "Toshkent"}.Matches(ticket))
	assert.True(t, SearchCriteria{From: "Toshkent", To: "Samarqand"}.Matches(ticket))
	assert.False(t, SearchCriteria{From: "Andijon"}.Matches(ticket))
	assert.False(t, SearchCriteria{To: "Buxoro"}.Matches(ticket))

	ticket.Count = 0
	assert.False(t, SearchCriteria{From: "Toshkent"}.Matches(ticket))
	assert.False(t, SearchCriteria{}.Matches(ticket))
}

func TestNewBooking_CopiesRoute(t *testing.T) {
	ticket := Ticket{
		ID:    "abc123",
		From:  "Toshkent",
		To:    "Samarqand",
		Date:  "2025-06-10",
		Time:  "08:00",
		Price: "50000",
		Count: 2,
	}

	booking := NewBooking(ticket, "Aziz", "REF42")

	assert.Equal(t, "abc123", booking.TicketID)
	assert.Equal(t, "Aziz", booking.Username)
	assert.Equal(t, "REF42", booking.Reference)
	assert.Equal(t, "Toshkent", booking.From)
	assert.Equal(t, "50000", booking.Price)

	fields := booking.Fields()
	assert.Equal(t, "abc123", fields["ticketId"])
	assert.NotContains(t, fields, "id")
}

func TestTicketForm_SetAndMissing(t *testing.T) {
	form := TicketForm{}
	assert.Equal(t,
		[]string{"from", "to", "date", "time", "price", "count", "busModel"},
		form.Missing(),
	)

	form.Set("from", "Toshkent")
	form.Set("to", "Samarqand")
	form.Set("date", "2025-06-10")
	form.Set("time", "08:00")
	form.Set("price", "50000")
	form.Set("count", "2")
	form.Set("busModel", "Mercedes-Benz (2013)")
	assert.Empty(t, form.Missing())

	// Stray input names change nothing.
	form.Set("color", "red")
	assert.Empty(t, form.Missing())
	assert.False(t, form.IsEdit())
}

func TestFormFromTicket(t *testing.T) {
	form := FormFromTicket(Ticket{
		ID:       "abc123",
		From:     "Toshkent",
		To:       "Samarqand",
		Date:     "2025-06-10",
		Time:     "08:00",
		Price:    "50000",
		Count:    2,
		BusModel: "Isuzu HD50 (2024)",
	})

	assert.True(t, form.IsEdit())
	assert.Equal(t, "abc123", form.ID)
	assert.Equal(t, "2", form.Count)
	assert.Empty(t, form.Missing())
}

func TestFixedEnumerations(t *testing.T) {
	assert.Len(t, Regions, 12)
	assert.Len(t, DepartureTimes, 9)
	assert.Len(t, BusModels, 3)
	assert.Contains(t, Regions, "Toshkent")
	assert.Contains(t, DepartureTimes, "08:00")
}
