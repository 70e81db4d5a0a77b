package service

import (
	"context"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"
)

// Appointments mengatur transisi janji temu:
// Pending -> Approved | Rejected, Approved -> Completed.
// Approved/Rejected/Completed itu final, gak bisa diubah lagi.
type Appointments struct {
	appointments repository.AppointmentRepository
}

func NewAppointments(appointments repository.AppointmentRepository) *Appointments {
	return &Appointments{appointments: appointments}
}

// canDecide: yang boleh memutuskan cuma staff atau dokter yang bersangkutan
func canDecide(actor Actor, a *models.Appointment) bool {
	return actor.Staff || (actor.DoctorID != 0 && actor.DoctorID == a.DoctorID)
}

func (s *Appointments) transition(ctx context.Context, actor Actor, id uint64, from, to string) (*models.Appointment, error) {
	a, err := s.appointments.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canDecide(actor, a) {
		return nil, ErrForbidden
	}
	if a.Status != from {
		if a.Status == to {
			return nil, ErrNoOpTransition
		}
		return nil, ErrInvalidState
	}
	if err := s.appointments.UpdateAppointmentStatus(ctx, id, to); err != nil {
		return nil, err
	}
	a.Status = to
	return a, nil
}

func (s *Appointments) Approve(ctx context.Context, actor Actor, id uint64) (*models.Appointment, error) {
	return s.transition(ctx, actor, id, models.AppointmentPending, models.AppointmentApproved)
}

func (s *Appointments) Reject(ctx context.Context, actor Actor, id uint64) (*models.Appointment, error) {
	return s.transition(ctx, actor, id, models.AppointmentPending, models.AppointmentRejected)
}

func (s *Appointments) Complete(ctx context.Context, actor Actor, id uint64) (*models.Appointment, error) {
	return s.transition(ctx, actor, id, models.AppointmentApproved, models.AppointmentCompleted)
}
