package models

import "github.com/spf13/cast"

// Booking is a purchase record. It references the ticket by id and
// carries a denormalized copy of the route so the record stays readable
// even if the listing is later edited or deleted.
type Booking struct {
	ID        string `json:"id,omitempty"`
	TicketID  string `json:"ticketId"`
	Username  string `json:"username"`
	Reference string `json:"reference"`
	From      string `json:"from"`
	To        string `json:"to"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Price     string `json:"price"`
}

// NewBooking snapshots the ticket's route fields for the given purchaser.
func NewBooking(t Ticket, username, reference string) Booking {
	return Booking{
		TicketID:  t.ID,
		Username:  username,
		Reference: reference,
		From:      t.From,
		To:        t.To,
		Date:      t.Date,
		Time:      t.Time,
		Price:     t.Price,
	}
}

func (b Booking) Fields() map[string]any {
	return map[string]any{
		"ticketId":  b.TicketID,
		"username":  b.Username,
		"reference": b.Reference,
		"from":      b.From,
		"to":        b.To,
		"date":      b.Date,
		"time":      b.Time,
		"price":     b.Price,
	}
}

func BookingFromRow(row map[string]any) Booking {
	return Booking{
		ID:        cast.ToString(row["id"]),
		TicketID:  cast.ToString(row["ticketId"]),
		Username:  cast.ToString(row["username"]),
		Reference: cast.ToString(row["reference"]),
		From:      cast.ToString(row["from"]),
		To:        cast.ToString(row["to"]),
		Date:      cast.ToString(row["date"]),
		Time:      cast.ToString(row["time"]),
		Price:     cast.ToString(row["price"]),
	}
}
