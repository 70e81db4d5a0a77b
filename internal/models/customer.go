package models

import "time"

// Customer adalah profil pembeli. UserID boleh NULL (customer walk-in yang
// diinput staff), tapi satu user maksimal punya satu profil customer.
type Customer struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    *uint64   `gorm:"uniqueIndex" json:"user_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

type CustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}
