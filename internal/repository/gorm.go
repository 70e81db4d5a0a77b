package repository

import (
	"context"
	"errors"

	"apotek-backend/internal/models"

	"gorm.io/gorm"
)

// GormStore implementasi repository di atas gorm (MySQL)
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Pastikan semua interface terpenuhi
var (
	_ MedicineRepository        = (*GormStore)(nil)
	_ OrderRepository           = (*GormStore)(nil)
	_ CustomerRepository        = (*GormStore)(nil)
	_ PrescriptionRepository    = (*GormStore)(nil)
	_ SupplierRequestRepository = (*GormStore)(nil)
	_ AppointmentRepository     = (*GormStore)(nil)
	_ TxManager                 = (*GormStore)(nil)
)

type gormTxKey struct{}

// conn ambil *gorm.DB dari context kalau lagi di dalam transaksi,
// kalau tidak pakai koneksi biasa
func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(gormTxKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

// WithTransaction menjalankan fn dalam satu transaksi DB.
// Error dari fn otomatis bikin rollback.
func (s *GormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, gormTxKey{}, tx))
	})
}

// ===== Medicine =====

func (s *GormStore) GetMedicine(ctx context.Context, id uint64) (*models.Medicine, error) {
	var m models.Medicine
	if err := s.conn(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) AdjustStock(ctx context.Context, id uint64, delta int) error {
	// Satu statement: cek & update sekaligus, biar gak ada celah oversell
	res := s.conn(ctx).Model(&models.Medicine{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Gagal: obatnya gak ada, atau stok gak cukup. Bedakan.
		var count int64
		if err := s.conn(ctx).Model(&models.Medicine{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}

// ===== Order =====

func (s *GormStore) CreateOrder(ctx context.Context, o *models.Order) error {
	return s.conn(ctx).Omit("Customer", "Items").Create(o).Error
}

func (s *GormStore) GetOrder(ctx context.Context, id uint64) (*models.Order, error) {
	var o models.Order
	err := s.conn(ctx).Preload("Customer").Preload("Items").Preload("Items.Medicine").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (s *GormStore) UpdateOrder(ctx context.Context, o *models.Order) error {
	return s.conn(ctx).Model(&models.Order{ID: o.ID}).
		Updates(map[string]interface{}{"total_amount": o.TotalAmount, "status": o.Status}).Error
}

func (s *GormStore) CreateItem(ctx context.Context, it *models.OrderItem) error {
	return s.conn(ctx).Omit("Medicine").Create(it).Error
}

func (s *GormStore) GetItem(ctx context.Context, orderID, itemID uint64) (*models.OrderItem, error) {
	var it models.OrderItem
	err := s.conn(ctx).Where("id = ? AND order_id = ?", itemID, orderID).First(&it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (s *GormStore) DeleteItem(ctx context.Context, itemID uint64) error {
	return s.conn(ctx).Delete(&models.OrderItem{}, itemID).Error
}

// ===== Customer =====

func (s *GormStore) GetCustomer(ctx context.Context, id uint64) (*models.Customer, error) {
	var c models.Customer
	if err := s.conn(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) GetCustomerByUser(ctx context.Context, userID uint64) (*models.Customer, error) {
	var c models.Customer
	if err := s.conn(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) UpsertCustomerForUser(ctx context.Context, userID uint64, defaults models.Customer) (*models.Customer, error) {
	c, err := s.GetCustomerByUser(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	defaults.UserID = &userID
	if err := s.conn(ctx).Omit("User").Create(&defaults).Error; err != nil {
		return nil, err
	}
	return &defaults, nil
}

// ===== Prescription =====

func (s *GormStore) GetPrescription(ctx context.Context, id uint64) (*models.Prescription, error) {
	var p models.Prescription
	err := s.conn(ctx).Preload("Items").Preload("Items.Medicine").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) UpdatePrescriptionStatus(ctx context.Context, id uint64, status string) error {
	return s.conn(ctx).Model(&models.Prescription{}).Where("id = ?", id).Update("status", status).Error
}

// ===== SupplierRequest =====

func (s *GormStore) GetSupplierRequest(ctx context.Context, id uint64) (*models.SupplierRequest, error) {
	var r models.SupplierRequest
	if err := s.conn(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *GormStore) UpdateSupplierRequestStatus(ctx context.Context, id uint64, status string) error {
	return s.conn(ctx).Model(&models.SupplierRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (s *GormStore) CompleteSupplierRequest(ctx context.Context, id uint64) (bool, error) {
	// Guard idempoten: cuma kena kalau status belum Completed
	res := s.conn(ctx).Model(&models.SupplierRequest{}).
		Where("id = ? AND status <> ?", id, models.SupplierRequestCompleted).
		Update("status", models.SupplierRequestCompleted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ===== Appointment =====

func (s *GormStore) GetAppointment(ctx context.Context, id uint64) (*models.Appointment, error) {
	var a models.Appointment
	if err := s.conn(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) UpdateAppointmentStatus(ctx context.Context, id uint64, status string) error {
	return s.conn(ctx).Model(&models.Appointment{}).Where("id = ?", id).Update("status", status).Error
}
