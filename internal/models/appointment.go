package models

import "time"

// Status janji temu dengan dokter
const (
	AppointmentPending   = "Pending"
	AppointmentApproved  = "Approved"
	AppointmentRejected  = "Rejected"
	AppointmentCompleted = "Completed"
)

type Appointment struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	CustomerID uint64    `gorm:"not null" json:"customer_id"`
	DoctorID   uint64    `gorm:"not null" json:"doctor_id"`
	Date       time.Time `gorm:"not null" json:"date"`
	Reason     string    `gorm:"type:text" json:"reason"`
	Status     string    `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`

	Customer Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer"`
	Doctor   Doctor   `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor"`
}

type BookAppointmentInput struct {
	DoctorID uint64    `json:"doctor_id" binding:"required"`
	Date     time.Time `json:"date" binding:"required"` // Format: 2026-09-15T10:00:00Z
	Reason   string    `json:"reason" binding:"required"`
}
