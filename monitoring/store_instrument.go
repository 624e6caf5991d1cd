package monitoring

import (
	"context"

	"github.com/Abdul1ayev/Tickets/internal/store"
)

// InstrumentStore wraps a store client so every table operation lands in
// the store_operations_total counter.
func InstrumentStore(next store.Client) store.Client {
	return &instrumentedStore{next: next}
}

type instrumentedStore struct {
	next store.Client
}

func (s *instrumentedStore) List(ctx context.Context, collection string) ([]map[string]any, error) {
	rows, err := s.next.List(ctx, collection)
	TrackStoreOperation("list", collection, outcome(err))
	return rows, err
}

func (s *instrumentedStore) Insert(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id, err := s.next.Insert(ctx, collection, fields)
	TrackStoreOperation("insert", collection, outcome(err))
	return id, err
}

func (s *instrumentedStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	err := s.next.Update(ctx, collection, id, fields)
	TrackStoreOperation("update", collection, outcome(err))
	return err
}

func (s *instrumentedStore) Delete(ctx context.Context, collection, id string) error {
	err := s.next.Delete(ctx, collection, id)
	TrackStoreOperation("delete", collection, outcome(err))
	return err
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
