package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectDB buka koneksi MySQL + migrasi + seed data awal
func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		env("DB_HOST", "127.0.0.1"),
		env("DB_PORT", "3306"),
		env("DB_NAME", "apotek"),
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Gagal konek database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Gagal ambil instance database: %v", err)
	}

	// Connection pooling
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connect OK")

	migrate()
	seedAdmin()
}

func migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Medicine{},
		&models.Supplier{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Doctor{},
		&models.DoctorSchedule{},
		&models.Appointment{},
		&models.SupplierRequest{},
		&models.Prescription{},
		&models.PrescriptionItem{},
	)
	if err != nil {
		log.Fatalf("Migrasi gagal: %v", err)
	}
	log.Println("Migrasi selesai")
}

// seedAdmin bikin akun staff pertama biar sistem gak terkunci
// (approval user baru butuh staff yang sudah aktif)
func seedAdmin() {
	adminEmail := env("ADMIN_EMAIL", "admin@apotek.local")

	var existing models.User
	if err := DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return
	}

	hashed, err := utils.HashPassword(env("ADMIN_PASSWORD", "gantipassword"))
	if err != nil {
		log.Printf("Gagal hash password admin: %v", err)
		return
	}

	admin := models.User{
		RoleID:       models.RoleStaff,
		FullName:     "Admin Apotek",
		Email:        adminEmail,
		PasswordHash: hashed,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Gagal seed admin: %v", err)
		return
	}
	log.Println("Akun admin awal dibuat:", adminEmail)
}
