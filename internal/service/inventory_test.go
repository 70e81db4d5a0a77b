package service

import (
	"context"
	"testing"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustStockTolakStokMinus(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewInventory(store)
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Paracetamol", Price: 10, Quantity: 3})

	require.NoError(t, svc.AdjustStock(ctx, med.ID, -3))

	after, err := svc.GetMedicine(ctx, med.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Quantity)

	// Pengurangan yang bikin minus ditolak, stok tetap 0
	err = svc.AdjustStock(ctx, med.ID, -1)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	after, _ = svc.GetMedicine(ctx, med.ID)
	assert.Equal(t, 0, after.Quantity)

	require.NoError(t, svc.AdjustStock(ctx, med.ID, 10))
	after, _ = svc.GetMedicine(ctx, med.ID)
	assert.Equal(t, 10, after.Quantity)
}

func TestAdjustStockObatTidakAda(t *testing.T) {
	svc := NewInventory(repository.NewMemoryStore())

	err := svc.AdjustStock(context.Background(), 999, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
