package store

import "context"

const (
	CollectionTickets     = "tickets"
	CollectionUserTickets = "userTickets"
)

// Client is the thin adapter to the hosted table service. Every failure
// comes back as a *status.StoreError; callers get no retries and no
// classification beyond the carried message.
type Client interface {
	List(ctx context.Context, collection string) ([]map[string]any, error)
	Insert(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection string, id string, fields map[string]any) error
	Delete(ctx context.Context, collection string, id string) error
}
