package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Abdul1ayev/Tickets/internal/status"
)

// MemoryClient keeps tables in process memory. It backs tests and demo
// runs that don't want a real PocketBase instance behind them.
type MemoryClient struct {
	mu     sync.RWMutex
	tables map[string]map[string]map[string]any
	order  map[string][]string
	nextID int
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		tables: make(map[string]map[string]map[string]any),
		order:  make(map[string][]string),
	}
}

func (c *MemoryClient) List(ctx context.Context, collection string) ([]map[string]any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows := make([]map[string]any, 0, len(c.order[collection]))
	for _, id := range c.order[collection] {
		rows = append(rows, cloneRow(c.tables[collection][id]))
	}
	return rows, nil
}

func (c *MemoryClient) Insert(ctx context.Context, collection string, fields map[string]any) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tables[collection] == nil {
		c.tables[collection] = make(map[string]map[string]any)
	}

	c.nextID++
	id := fmt.Sprintf("rec%04d", c.nextID)

	row := cloneRow(fields)
	row["id"] = id
	c.tables[collection][id] = row
	c.order[collection] = append(c.order[collection], id)

	return id, nil
}

func (c *MemoryClient) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.tables[collection][id]
	if !ok {
		return &status.StoreError{Op: "update", Collection: collection, Err: errors.New("record not found")}
	}
	for k, v := range fields {
		row[k] = v
	}
	return nil
}

func (c *MemoryClient) Delete(ctx context.Context, collection, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tables[collection][id]; !ok {
		return &status.StoreError{Op: "delete", Collection: collection, Err: errors.New("record not found")}
	}
	delete(c.tables[collection], id)

	ids := c.order[collection]
	for i, existing := range ids {
		if existing == id {
			c.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func cloneRow(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
