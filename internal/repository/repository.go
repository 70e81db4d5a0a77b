package repository

import (
	"context"
	"errors"

	"apotek-backend/internal/models"
)

// ErrNotFound dikembalikan kalau entity yang direferensikan tidak ada
var ErrNotFound = errors.New("not found")

// ErrInsufficientStock dikembalikan kalau pengurangan stok bakal bikin quantity minus.
// Cek dan update-nya satu statement, jadi tidak ada celah race antar request.
var ErrInsufficientStock = errors.New("insufficient stock")

// MedicineRepository akses stok obat. Semua mutasi quantity lewat AdjustStock.
type MedicineRepository interface {
	GetMedicine(ctx context.Context, id uint64) (*models.Medicine, error)
	// AdjustStock menambah/mengurangi quantity secara atomik.
	// Delta minus ditolak (ErrInsufficientStock) kalau hasilnya bakal negatif.
	AdjustStock(ctx context.Context, id uint64, delta int) error
}

// OrderRepository akses order + itemnya
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	GetOrder(ctx context.Context, id uint64) (*models.Order, error)
	UpdateOrder(ctx context.Context, o *models.Order) error
	CreateItem(ctx context.Context, it *models.OrderItem) error
	// GetItem hanya mengembalikan item yang memang milik order tersebut
	GetItem(ctx context.Context, orderID, itemID uint64) (*models.OrderItem, error)
	DeleteItem(ctx context.Context, itemID uint64) error
}

// CustomerRepository akses profil customer
type CustomerRepository interface {
	GetCustomer(ctx context.Context, id uint64) (*models.Customer, error)
	GetCustomerByUser(ctx context.Context, userID uint64) (*models.Customer, error)
	// UpsertCustomerForUser ambil profil milik user, atau buat baru kalau belum ada.
	// Invariant: satu user satu profil.
	UpsertCustomerForUser(ctx context.Context, userID uint64, defaults models.Customer) (*models.Customer, error)
}

// PrescriptionRepository akses resep + itemnya
type PrescriptionRepository interface {
	GetPrescription(ctx context.Context, id uint64) (*models.Prescription, error)
	UpdatePrescriptionStatus(ctx context.Context, id uint64, status string) error
}

// SupplierRequestRepository akses permintaan restock
type SupplierRequestRepository interface {
	GetSupplierRequest(ctx context.Context, id uint64) (*models.SupplierRequest, error)
	UpdateSupplierRequestStatus(ctx context.Context, id uint64, status string) error
	// CompleteSupplierRequest flip status ke Completed secara atomik.
	// Return false kalau statusnya sudah Completed duluan (guard anti double-restock).
	CompleteSupplierRequest(ctx context.Context, id uint64) (bool, error)
}

// AppointmentRepository akses janji temu
type AppointmentRepository interface {
	GetAppointment(ctx context.Context, id uint64) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id uint64, status string) error
}

// TxManager membungkus beberapa operasi repo jadi satu unit.
// Implementasi gorm pakai transaksi DB, implementasi memory pakai satu lock global.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
