package models

import (
	"time"

	"gorm.io/gorm"
)

// Daftar Role ID (di-seed saat startup)
const (
	RoleStaff    uint = 1 // Petugas apotek / admin
	RoleDoctor   uint = 2
	RoleCustomer uint = 3
)

// User merepresentasikan akun login di tabel 'users'
type User struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	RoleID       uint           `gorm:"not null" json:"role_id"`
	FullName     string         `gorm:"size:100;not null" json:"full_name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // json:"-" biar hash tidak ikut dikirim ke frontend
	Phone        string         `gorm:"column:phone_number;size:20" json:"phone"`
	IsActive     bool           `gorm:"default:false" json:"is_active"` // Dokter & Staff baru butuh approval admin dulu
	FCMToken     string         `gorm:"size:255" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Struct untuk menangkap Input Register
type RegisterInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	// Role: customer | doctor | staff (dokter & staff nunggu approval)
	Role           string `json:"role" binding:"required,oneof=customer doctor staff"`
	Specialization string `json:"specialization"` // Wajib diisi kalau daftar sebagai dokter
}

// Struct untuk menangkap Input Login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcm_token"` // Opsional, dikirim frontend buat push notif
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
