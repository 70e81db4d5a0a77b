package service

import (
	"context"
	"testing"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplierService() (*repository.MemoryStore, *SupplierRequests) {
	store := repository.NewMemoryStore()
	return store, NewSupplierRequests(store, store, store)
}

func TestCompleteNaikinStokSekaliDoang(t *testing.T) {
	store, svc := newSupplierService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Paracetamol", Price: 10, Quantity: 5})
	req := store.SeedSupplierRequest(models.SupplierRequest{
		SupplierID: 1,
		MedicineID: med.ID,
		Quantity:   10,
		Status:     models.SupplierRequestPending,
	})

	hasil, err := svc.SetStatus(ctx, staff, req.ID, models.SupplierRequestCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.SupplierRequestCompleted, hasil.Status)

	after, _ := store.GetMedicine(ctx, med.ID)
	assert.Equal(t, 15, after.Quantity)

	// Complete kedua: no-op, stok JANGAN naik lagi
	_, err = svc.SetStatus(ctx, staff, req.ID, models.SupplierRequestCompleted)
	assert.ErrorIs(t, err, ErrNoOpTransition)

	after, _ = store.GetMedicine(ctx, med.ID)
	assert.Equal(t, 15, after.Quantity)
}

func TestCompletedGakBisaBalikPending(t *testing.T) {
	store, svc := newSupplierService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 0})
	req := store.SeedSupplierRequest(models.SupplierRequest{
		SupplierID: 1,
		MedicineID: med.ID,
		Quantity:   5,
		Status:     models.SupplierRequestCompleted,
	})

	_, err := svc.SetStatus(ctx, staff, req.ID, models.SupplierRequestPending)
	assert.ErrorIs(t, err, ErrInvalidState)

	// Stok gak boleh kesentuh
	after, _ := store.GetMedicine(ctx, med.ID)
	assert.Equal(t, 0, after.Quantity)
}

func TestSetStatusPendingKePendingNoOp(t *testing.T) {
	store, svc := newSupplierService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 0})
	req := store.SeedSupplierRequest(models.SupplierRequest{
		SupplierID: 1,
		MedicineID: med.ID,
		Quantity:   5,
		Status:     models.SupplierRequestPending,
	})

	_, err := svc.SetStatus(ctx, staff, req.ID, models.SupplierRequestPending)
	assert.ErrorIs(t, err, ErrNoOpTransition)
}

func TestSetStatusKhususStaff(t *testing.T) {
	store, svc := newSupplierService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 0})
	req := store.SeedSupplierRequest(models.SupplierRequest{
		SupplierID: 1,
		MedicineID: med.ID,
		Quantity:   5,
		Status:     models.SupplierRequestPending,
	})

	customer := Actor{UserID: 3, CustomerID: 1}
	_, err := svc.SetStatus(ctx, customer, req.ID, models.SupplierRequestCompleted)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetStatusRequestTidakAda(t *testing.T) {
	_, svc := newSupplierService()

	_, err := svc.SetStatus(context.Background(), staff, 999, models.SupplierRequestCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}
