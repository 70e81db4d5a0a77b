package models

import "time"

// Doctor profil dokter. UserID boleh NULL kalau dokternya cuma dicatat staff
// tanpa akun login.
type Doctor struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         *uint64   `gorm:"uniqueIndex" json:"user_id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Specialization string    `gorm:"size:100" json:"specialization"`
	Email          string    `gorm:"size:100" json:"email"`
	Phone          string    `gorm:"size:20" json:"phone"`
	CreatedAt      time.Time `json:"created_at"`

	User      *User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Schedules []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

// DoctorSchedule jadwal praktek per hari. Tidak ada validasi overlap,
// staff yang input dianggap tahu jadwalnya.
type DoctorSchedule struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	DoctorID  uint64 `gorm:"not null" json:"doctor_id"`
	DayOfWeek string `gorm:"size:10;not null" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"` // Format HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Doctor Doctor `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor"`
}

type DoctorInput struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
}

type DoctorScheduleInput struct {
	DoctorID  uint64 `json:"doctor_id" binding:"required"`
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
