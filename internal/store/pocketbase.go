package store

import (
	"context"

	"github.com/pocketbase/pocketbase/core"

	"github.com/Abdul1ayev/Tickets/internal/status"
)

// PocketBaseClient backs the Client interface with the embedded
// PocketBase collections.
type PocketBaseClient struct {
	app core.App
}

func NewPocketBaseClient(app core.App) *PocketBaseClient {
	return &PocketBaseClient{app: app}
}

func (c *PocketBaseClient) List(ctx context.Context, collection string) ([]map[string]any, error) {
	records, err := c.app.FindAllRecords(collection)
	if err != nil {
		return nil, &status.StoreError{Op: "list", Collection: collection, Err: err}
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		row := record.FieldsData()
		row["id"] = record.Id
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *PocketBaseClient) Insert(ctx context.Context, collection string, fields map[string]any) (string, error) {
	col, err := c.app.FindCollectionByNameOrId(collection)
	if err != nil {
		return "", &status.StoreError{Op: "insert", Collection: collection, Err: err}
	}

	record := core.NewRecord(col)
	record.Load(fields)

	if err := c.app.SaveWithContext(ctx, record); err != nil {
		return "", &status.StoreError{Op: "insert", Collection: collection, Err: err}
	}
	return record.Id, nil
}

func (c *PocketBaseClient) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	record, err := c.app.FindRecordById(collection, id)
	if err != nil {
		return &status.StoreError{Op: "update", Collection: collection, Err: err}
	}

	record.Load(fields)

	if err := c.app.SaveWithContext(ctx, record); err != nil {
		return &status.StoreError{Op: "update", Collection: collection, Err: err}
	}
	return nil
}

func (c *PocketBaseClient) Delete(ctx context.Context, collection, id string) error {
	record, err := c.app.FindRecordById(collection, id)
	if err != nil {
		return &status.StoreError{Op: "delete", Collection: collection, Err: err}
	}

	if err := c.app.DeleteWithContext(ctx, record); err != nil {
		return &status.StoreError{Op: "delete", Collection: collection, Err: err}
	}
	return nil
}
