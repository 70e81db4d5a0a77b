package models

import "time"

// Status kadaluarsa obat (dihitung, tidak disimpan di DB)
const (
	MedicineExpired      = "Expired"
	MedicineExpiringSoon = "Expiring Soon"
	MedicineGood         = "Good Condition"
	MedicineNoExpiry     = "No Expiry Date"
)

// Medicine merepresentasikan stok obat di tabel 'medicines'
type Medicine struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Price       float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int        `gorm:"not null;default:0" json:"quantity"` // Invariant: tidak boleh minus
	ExpiryDate  *time.Time `gorm:"type:date" json:"expiry_date"`       // Pointer karena boleh kosong
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Status diisi handler dari ExpiryStatus(), tidak pernah disimpan
	Status string `gorm:"-" json:"status,omitempty"`
}

// ExpiryStatusAt mengklasifikasikan kondisi obat relatif ke tanggal acuan.
// Batas "Expiring Soon" = 30 hari ke depan, sama seperti alert di dashboard.
func (m *Medicine) ExpiryStatusAt(ref time.Time) string {
	if m.ExpiryDate == nil {
		return MedicineNoExpiry
	}
	today := ref.Truncate(24 * time.Hour)
	expiry := m.ExpiryDate.Truncate(24 * time.Hour)
	switch {
	case expiry.Before(today):
		return MedicineExpired
	case !expiry.After(today.Add(30 * 24 * time.Hour)):
		return MedicineExpiringSoon
	default:
		return MedicineGood
	}
}

// ExpiryStatus versi praktisnya, pakai waktu sekarang
func (m *Medicine) ExpiryStatus() string {
	return m.ExpiryStatusAt(time.Now())
}

// AdjustStockInput koreksi stok manual: delta positif nambah, negatif ngurang
type AdjustStockInput struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

type MedicineInput struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Price       float64    `json:"price" binding:"required,gt=0"`
	Quantity    int        `json:"quantity" binding:"gte=0"`
	ExpiryDate  *time.Time `json:"expiry_date"` // Format: 2026-12-31T00:00:00Z
}
