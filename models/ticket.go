package models

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Ticket is one bus route listing. Price stays a string because the
// source data holds it as text or number depending on who wrote it;
// PriceAmount normalizes when arithmetic is needed.
type Ticket struct {
	ID       string `json:"id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Price    string `json:"price"`
	Count    int    `json:"count"`
	BusModel string `json:"busModel"`
}

// Bookable reports whether the listing still has seats to sell.
func (t Ticket) Bookable() bool {
	return t.Count > 0
}

func (t Ticket) PriceAmount() (decimal.Decimal, error) {
	return decimal.NewFromString(t.Price)
}

// Fields returns the store representation without the server-assigned id.
func (t Ticket) Fields() map[string]any {
	return map[string]any{
		"from":     t.From,
		"to":       t.To,
		"date":     t.Date,
		"time":     t.Time,
		"price":    t.Price,
		"count":    t.Count,
		"busModel": t.BusModel,
	}
}

func TicketFromRow(row map[string]any) Ticket {
	return Ticket{
		ID:       cast.ToString(row["id"]),
		From:     cast.ToString(row["from"]),
		To:       cast.ToString(row["to"]),
		Date:     cast.ToString(row["date"]),
		Time:     cast.ToString(row["time"]),
		Price:    cast.ToString(row["price"]),
		Count:    cast.ToInt(row["count"]),
		BusModel: cast.ToString(row["busModel"]),
	}
}

// SearchCriteria filters listings by route. Empty values match anything.
type SearchCriteria struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Matches reports whether the ticket satisfies the criteria and is still
// bookable. Exhausted listings never match, whatever the route.
func (c SearchCriteria) Matches(t Ticket) bool {
	if c.From != "" && t.From != c.From {
		return false
	}
	if c.To != "" && t.To != c.To {
		return false
	}
	return t.Bookable()
}

// Fixed choices offered by the booking and admin pages. The store does
// not validate against these.
var (
	Regions = []string{
		"Sirdaryo",
		"Navoiy",
		"Jizzax",
		"Xorazm",
		"Buxoro",
		"Surxondaryo",
		"Namangan",
		"Andijon",
		"Qashqadaryo",
		"Samarqand",
		"Fargʻona",
		"Toshkent",
	}

	DepartureTimes = []string{
		"08:00",
		"09:30",
		"11:30",
		"16:00",
		"18:00",
		"20:30",
		"22:00",
		"22:30",
		"23:00",
	}

	BusModels = []string{
		"Mercedes-Benz (2013)",
		"Isuzu HC45 (2024)",
		"Isuzu HD50 (2024)",
	}
)
