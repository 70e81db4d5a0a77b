package models

import "time"

// Status resep. Alurnya: Pending -> Approved -> Dispensed,
// atau Pending/Approved -> Rejected.
const (
	PrescriptionPending   = "Pending"
	PrescriptionApproved  = "Approved"
	PrescriptionDispensed = "Dispensed"
	PrescriptionRejected  = "Rejected"
)

// Prescription resep yang dibuat dokter untuk pasien.
// Dua-duanya refer ke akun User, bukan ke profil Doctor/Customer.
type Prescription struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	DoctorID  uint64    `gorm:"not null" json:"doctor_id"`
	PatientID uint64    `gorm:"not null" json:"patient_id"`
	Status    string    `gorm:"size:20;default:'Pending'" json:"status"`
	Remarks   string    `gorm:"type:text" json:"remarks"`
	CreatedAt time.Time `json:"created_at"`

	Doctor  User               `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor"`
	Patient User               `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient"`
	Items   []PrescriptionItem `gorm:"foreignKey:PrescriptionID" json:"items,omitempty"`
}

// PrescriptionItem satu obat di resep. Tidak ada kolom quantity:
// penebusan selalu 1 unit per item.
type PrescriptionItem struct {
	ID             uint64 `gorm:"primaryKey" json:"id"`
	PrescriptionID uint64 `gorm:"not null" json:"prescription_id"`
	MedicineID     uint64 `gorm:"not null" json:"medicine_id"`
	Dosage         string `gorm:"size:100" json:"dosage"`
	Frequency      string `gorm:"size:100" json:"frequency"`
	Duration       string `gorm:"size:100" json:"duration"`

	Medicine Medicine `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE" json:"medicine"`
}

type PrescriptionItemInput struct {
	MedicineID uint64 `json:"medicine_id" binding:"required"`
	Dosage     string `json:"dosage" binding:"required"`
	Frequency  string `json:"frequency" binding:"required"`
	Duration   string `json:"duration" binding:"required"`
}

type CreatePrescriptionInput struct {
	PatientID uint64                  `json:"patient_id" binding:"required"`
	Remarks   string                  `json:"remarks"`
	Items     []PrescriptionItemInput `json:"items" binding:"required,min=1,dive"`
}
