package models

import "time"

// Status permintaan restock ke supplier
const (
	SupplierRequestPending   = "Pending"
	SupplierRequestCompleted = "Completed"
)

type Supplier struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	ContactPerson string    `gorm:"size:100" json:"contact_person"`
	Email         string    `gorm:"size:100" json:"email"`
	Phone         string    `gorm:"size:20" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
}

// SupplierRequest permintaan tambah stok obat ke supplier.
// Saat statusnya jadi Completed, stok obat naik sebesar Quantity (sekali saja).
type SupplierRequest struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	SupplierID uint64    `gorm:"not null" json:"supplier_id"`
	MedicineID uint64    `gorm:"not null" json:"medicine_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Status     string    `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`

	Supplier Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"supplier"`
	Medicine Medicine `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE" json:"medicine"`
}

type SupplierInput struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
}

type SupplierRequestInput struct {
	SupplierID uint64 `json:"supplier_id" binding:"required"`
	MedicineID uint64 `json:"medicine_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type SupplierRequestStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Pending Completed"`
}
