package service

import (
	"context"
	"testing"
	"time"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentService() (*repository.MemoryStore, *Appointments) {
	store := repository.NewMemoryStore()
	return store, NewAppointments(store)
}

func seedJanji(store *repository.MemoryStore, doctorID uint64, status string) models.Appointment {
	return store.SeedAppointment(models.Appointment{
		CustomerID: 1,
		DoctorID:   doctorID,
		Date:       time.Now().AddDate(0, 0, 3),
		Reason:     "Konsultasi",
		Status:     status,
	})
}

func TestAlurTransisiJanjiTemu(t *testing.T) {
	store, svc := newAppointmentService()
	ctx := context.Background()

	janji := seedJanji(store, 5, models.AppointmentPending)

	a, err := svc.Approve(ctx, staff, janji.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentApproved, a.Status)

	// Approve dua kali: no-op
	_, err = svc.Approve(ctx, staff, janji.ID)
	assert.ErrorIs(t, err, ErrNoOpTransition)

	// Reject setelah Approved: bukan transisi yang sah
	_, err = svc.Reject(ctx, staff, janji.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	a, err = svc.Complete(ctx, staff, janji.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, a.Status)

	// Completed itu final
	_, err = svc.Complete(ctx, staff, janji.ID)
	assert.ErrorIs(t, err, ErrNoOpTransition)
	_, err = svc.Approve(ctx, staff, janji.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteCumaDariApproved(t *testing.T) {
	store, svc := newAppointmentService()
	ctx := context.Background()

	janji := seedJanji(store, 5, models.AppointmentPending)
	_, err := svc.Complete(ctx, staff, janji.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestYangBolehMutusinCumaStaffAtauDokternya(t *testing.T) {
	store, svc := newAppointmentService()
	ctx := context.Background()

	janji := seedJanji(store, 5, models.AppointmentPending)

	dokterLain := Actor{UserID: 8, DoctorID: 6}
	_, err := svc.Approve(ctx, dokterLain, janji.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	customer := Actor{UserID: 9, CustomerID: 1}
	_, err = svc.Reject(ctx, customer, janji.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	dokterYbs := Actor{UserID: 7, DoctorID: 5}
	a, err := svc.Approve(ctx, dokterYbs, janji.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentApproved, a.Status)
}

func TestJanjiTemuTidakAda(t *testing.T) {
	_, svc := newAppointmentService()

	_, err := svc.Approve(context.Background(), staff, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
