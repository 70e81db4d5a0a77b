package service

import (
	"errors"

	"apotek-backend/internal/repository"
)

// Taksonomi error bisnis. Handler cukup errors.Is ke sini,
// jangan pattern-match string.
var (
	// Re-export dari repository biar handler gak perlu import dua package
	ErrNotFound          = repository.ErrNotFound
	ErrInsufficientStock = repository.ErrInsufficientStock

	// ErrInvalidState transisi status dari state yang tidak mengizinkan
	ErrInvalidState = errors.New("invalid state transition")
	// ErrForbidden aktor tidak punya hak untuk aksi ini
	ErrForbidden = errors.New("forbidden")
	// ErrMissingCustomer pasien belum punya profil customer, resep gak bisa ditebus
	ErrMissingCustomer = errors.New("patient has no customer profile")
	// ErrNoOpTransition guard menolak perubahan, tapi ini bukan fault.
	// Handler menampilkan sebagai "status tidak berubah", bukan error 4xx/5xx.
	ErrNoOpTransition = errors.New("status unchanged")
)

// Actor adalah identitas + kapabilitas pemanggil, di-resolve middleware
// dari JWT dan profil di DB. Service tidak pernah baca context gin langsung.
type Actor struct {
	UserID     uint64
	Name       string
	Email      string
	Staff      bool
	DoctorID   uint64 // ID profil Doctor, 0 kalau bukan dokter
	CustomerID uint64 // ID profil Customer, 0 kalau belum punya
}
