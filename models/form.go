package models

import "strconv"

// TicketForm holds the admin create/edit form. All fields are strings,
// mirroring what the inputs submit; a non-empty ID marks edit mode.
type TicketForm struct {
	ID       string `json:"id,omitempty"`
	From     string `json:"from"`
	To       string `json:"to"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Price    string `json:"price"`
	Count    string `json:"count"`
	BusModel string `json:"busModel"`
}

// Set replaces one field by its input name. Unknown names are ignored,
// like a stray form input would be.
func (f *TicketForm) Set(name, value string) {
	switch name {
	case "from":
		f.From = value
	case "to":
		f.To = value
	case "date":
		f.Date = value
	case "time":
		f.Time = value
	case "price":
		f.Price = value
	case "count":
		f.Count = value
	case "busModel":
		f.BusModel = value
	}
}

// Missing lists the required fields still empty, in form order.
func (f *TicketForm) Missing() []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"from", f.From},
		{"to", f.To},
		{"date", f.Date},
		{"time", f.Time},
		{"price", f.Price},
		{"count", f.Count},
		{"busModel", f.BusModel},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func (f TicketForm) IsEdit() bool {
	return f.ID != ""
}

// Fields returns the store payload for submit. The count is carried as
// the raw string; the store coerces it to its number column.
func (f *TicketForm) Fields() map[string]any {
	return map[string]any{
		"from":     f.From,
		"to":       f.To,
		"date":     f.Date,
		"time":     f.Time,
		"price":    f.Price,
		"count":    f.Count,
		"busModel": f.BusModel,
	}
}

// FormFromTicket loads an existing listing into the form, id included.
func FormFromTicket(t Ticket) TicketForm {
	return TicketForm{
		ID:       t.ID,
		From:     t.From,
		To:       t.To,
		Date:     t.Date,
		Time:     t.Time,
		Price:    t.Price,
		Count:    strconv.Itoa(t.Count),
		BusModel: t.BusModel,
	}
}
