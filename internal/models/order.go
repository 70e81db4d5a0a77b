package models

import "time"

// Status order. Transisi diatur di service, jangan set langsung dari handler.
const (
	OrderPending   = "Pending"
	OrderCompleted = "Completed"
	OrderCancelled = "Cancelled"
)

// Order merepresentasikan transaksi penjualan obat
type Order struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CustomerID  uint64    `gorm:"not null" json:"customer_id"`
	OrderDate   time.Time `gorm:"autoCreateTime" json:"order_date"`
	TotalAmount float64   `gorm:"type:decimal(10,2);default:0" json:"total_amount"`
	Status      string    `gorm:"size:20;default:'Pending'" json:"status"`

	// Relasi (Preload) biar pas query datanya lengkap
	Customer Customer    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem satu baris obat di dalam order.
// UnitPrice dikunci saat item dibuat, bukan harga obat terbaru.
type OrderItem struct {
	ID         uint64  `gorm:"primaryKey" json:"id"`
	OrderID    uint64  `gorm:"not null" json:"order_id"`
	MedicineID uint64  `gorm:"not null" json:"medicine_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	Medicine Medicine `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE" json:"medicine"`
}

type CreateOrderInput struct {
	CustomerID uint64 `json:"customer_id" binding:"required"`
}

type AddOrderItemInput struct {
	MedicineID uint64 `json:"medicine_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type OrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Pending Completed Cancelled"`
}

type BuyMedicineInput struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
