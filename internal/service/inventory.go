package service

import (
	"context"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"
)

// Inventory adalah pintu satu-satunya untuk mutasi stok obat.
// Order, resep, dan restock supplier semua lewat sini.
type Inventory struct {
	medicines repository.MedicineRepository
}

func NewInventory(medicines repository.MedicineRepository) *Inventory {
	return &Inventory{medicines: medicines}
}

// AdjustStock menambah (delta positif) atau mengurangi (delta negatif) stok.
// Pengurangan yang bikin stok minus ditolak dengan ErrInsufficientStock
// sebelum ada yang tersimpan.
func (s *Inventory) AdjustStock(ctx context.Context, medicineID uint64, delta int) error {
	return s.medicines.AdjustStock(ctx, medicineID, delta)
}

// GetMedicine baca satu obat, termasuk buat cek harga/stok sebelum transaksi
func (s *Inventory) GetMedicine(ctx context.Context, medicineID uint64) (*models.Medicine, error) {
	return s.medicines.GetMedicine(ctx, medicineID)
}
