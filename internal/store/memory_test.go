package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdul1ayev/Tickets/internal/status"
)

func TestMemoryClient_InsertAndList(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	first, err := client.Insert(ctx, CollectionTickets, map[string]any{"from": "Toshkent"})
	require.NoError(t, err)
	second, err := client.Insert(ctx, CollectionTickets, map[string]any{"from": "Buxoro"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	rows, err := client.List(ctx, CollectionTickets)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first, rows[0]["id"])
	assert.Equal(t, "Toshkent", rows[0]["from"])
	assert.Equal(t, "Buxoro", rows[1]["from"])
}

func TestMemoryClient_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	id, err := client.Insert(ctx, CollectionTickets, map[string]any{"count": 2})
	require.NoError(t, err)

	rows, _ := client.List(ctx, CollectionTickets)
	rows[0]["count"] = 0

	rows, _ = client.List(ctx, CollectionTickets)
	assert.Equal(t, 2, rows[0]["count"])
	assert.Equal(t, id, rows[0]["id"])
}

func TestMemoryClient_Update(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	id, err := client.Insert(ctx, CollectionTickets, map[string]any{"from": "Toshkent", "count": 2})
	require.NoError(t, err)

	require.NoError(t, client.Update(ctx, CollectionTickets, id, map[string]any{"count": 5}))

	rows, _ := client.List(ctx, CollectionTickets)
	assert.Equal(t, 5, rows[0]["count"])
	assert.Equal(t, "Toshkent", rows[0]["from"])
}

func TestMemoryClient_UpdateUnknownID(t *testing.T) {
	client := NewMemoryClient()

	err := client.Update(context.Background(), CollectionTickets, "missing", map[string]any{"count": 1})
	require.Error(t, err)
	assert.True(t, status.IsStoreError(err))
}

func TestMemoryClient_Delete(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	id, err := client.Insert(ctx, CollectionTickets, map[string]any{"from": "Toshkent"})
	require.NoError(t, err)
	keep, err := client.Insert(ctx, CollectionTickets, map[string]any{"from": "Buxoro"})
	require.NoError(t, err)

	require.NoError(t, client.Delete(ctx, CollectionTickets, id))

	rows, _ := client.List(ctx, CollectionTickets)
	require.Len(t, rows, 1)
	assert.Equal(t, keep, rows[0]["id"])

	err = client.Delete(ctx, CollectionTickets, id)
	assert.True(t, status.IsStoreError(err))
}

func TestMemoryClient_CollectionsIsolated(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	_, err := client.Insert(ctx, CollectionTickets, map[string]any{"from": "Toshkent"})
	require.NoError(t, err)

	rows, err := client.List(ctx, CollectionUserTickets)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
