package service

import (
	"context"
	"testing"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFulfillmentService() (*repository.MemoryStore, *Fulfillment) {
	store := repository.NewMemoryStore()
	return store, NewFulfillment(store, store, store, store, store)
}

func seedResep(store *repository.MemoryStore, patientID uint64, status string, medIDs ...uint64) models.Prescription {
	items := make([]models.PrescriptionItem, 0, len(medIDs))
	for _, id := range medIDs {
		items = append(items, models.PrescriptionItem{
			MedicineID: id,
			Dosage:     "500mg",
			Frequency:  "3x sehari",
			Duration:   "5 hari",
		})
	}
	return store.SeedPrescription(models.Prescription{
		DoctorID:  2,
		PatientID: patientID,
		Status:    status,
		Items:     items,
	})
}

func TestApproveGagalKalauAdaStokKosong(t *testing.T) {
	store, svc := newFulfillmentService()
	ctx := context.Background()

	ada := store.SeedMedicine(models.Medicine{Name: "Paracetamol", Price: 10, Quantity: 3})
	kosong := store.SeedMedicine(models.Medicine{Name: "Amoxicillin", Price: 20, Quantity: 0})
	resep := seedResep(store, 9, models.PrescriptionPending, ada.ID, kosong.ID)

	_, err := svc.Approve(ctx, staff, resep.ID)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Resep gak boleh berubah sama sekali
	after, _ := store.GetPrescription(ctx, resep.ID)
	assert.Equal(t, models.PrescriptionPending, after.Status)
}

func TestApproveSukses(t *testing.T) {
	store, svc := newFulfillmentService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Paracetamol", Price: 10, Quantity: 1})
	resep := seedResep(store, 9, models.PrescriptionPending, med.ID)

	p, err := svc.Approve(ctx, staff, resep.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionApproved, p.Status)

	// Approve cuma ngecek, stok belum dipotong
	after, _ := store.GetMedicine(ctx, med.ID)
	assert.Equal(t, 1, after.Quantity)

	// Approve dua kali dari state Approved bukan transisi yang sah
	_, err = svc.Approve(ctx, staff, resep.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRejectTransisi(t *testing.T) {
	store, svc := newFulfillmentService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 5})
	resep := seedResep(store, 9, models.PrescriptionPending, med.ID)

	p, err := svc.Reject(ctx, staff, resep.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionRejected, p.Status)

	_, err = svc.Reject(ctx, staff, resep.ID)
	assert.ErrorIs(t, err, ErrNoOpTransition)

	// Resep yang sudah ditebus gak bisa ditolak lagi
	sudah := seedResep(store, 9, models.PrescriptionDispensed, med.ID)
	_, err = svc.Reject(ctx, staff, sudah.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDispenseParsialDilaporkan(t *testing.T) {
	store, svc := newFulfillmentService()
	ctx := context.Background()

	patientID := uint64(9)
	store.SeedCustomer(models.Customer{UserID: &patientID, Name: "Pasien"})

	ada := store.SeedMedicine(models.Medicine{Name: "Paracetamol", Price: 10, Quantity: 1})
	kosong := store.SeedMedicine(models.Medicine{Name: "Amoxicillin", Price: 20, Quantity: 0})
	resep := seedResep(store, patientID, models.PrescriptionApproved, ada.ID, kosong.ID)

	result, err := svc.Dispense(ctx, staff, resep.ID)
	require.NoError(t, err)

	require.NotNil(t, result.Order)
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, ada.ID, result.Order.Items[0].MedicineID)
	assert.Equal(t, 1, result.Order.Items[0].Quantity)
	assert.Equal(t, 10.0, result.Order.TotalAmount)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, kosong.ID, result.Skipped[0].MedicineID)
	assert.Equal(t, "Amoxicillin", result.Skipped[0].Name)

	after, _ := store.GetPrescription(ctx, resep.ID)
	assert.Equal(t, models.PrescriptionDispensed, after.Status)

	stok, _ := store.GetMedicine(ctx, ada.ID)
	assert.Equal(t, 0, stok.Quantity)
}

func TestDispenseTanpaProfilCustomer(t *testing.T) {
	store, svc := newFulfillmentService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 5})
	resep := seedResep(store, 77, models.PrescriptionApproved, med.ID)

	_, err := svc.Dispense(ctx, staff, resep.ID)
	assert.ErrorIs(t, err, ErrMissingCustomer)

	after, _ := store.GetPrescription(ctx, resep.ID)
	assert.Equal(t, models.PrescriptionApproved, after.Status)
}

func TestDispenseCumaDariApproved(t *testing.T) {
	store, svc := newFulfillmentService()
	ctx := context.Background()

	patientID := uint64(9)
	store.SeedCustomer(models.Customer{UserID: &patientID, Name: "Pasien"})
	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 5})
	resep := seedResep(store, patientID, models.PrescriptionPending, med.ID)

	_, err := svc.Dispense(ctx, staff, resep.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestFulfillmentKhususStaff(t *testing.T) {
	store, svc := newFulfillmentService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 5})
	resep := seedResep(store, 9, models.PrescriptionPending, med.ID)

	dokter := Actor{UserID: 2, DoctorID: 1}
	_, err := svc.Approve(ctx, dokter, resep.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Reject(ctx, dokter, resep.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Dispense(ctx, dokter, resep.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
