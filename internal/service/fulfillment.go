package service

import (
	"context"
	"errors"
	"fmt"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"
)

// Fulfillment mengikat resep ke order: approve cek ketersediaan,
// dispense bikin order baru + potong stok per item resep.
type Fulfillment struct {
	prescriptions repository.PrescriptionRepository
	medicines     repository.MedicineRepository
	orders        repository.OrderRepository
	customers     repository.CustomerRepository
	tx            repository.TxManager
}

func NewFulfillment(
	prescriptions repository.PrescriptionRepository,
	medicines repository.MedicineRepository,
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	tx repository.TxManager,
) *Fulfillment {
	return &Fulfillment{
		prescriptions: prescriptions,
		medicines:     medicines,
		orders:        orders,
		customers:     customers,
		tx:            tx,
	}
}

// SkippedItem item resep yang gagal ditebus karena stok kosong
type SkippedItem struct {
	MedicineID uint64 `json:"medicine_id"`
	Name       string `json:"name"`
}

// DispenseResult hasil penebusan: order yang kebentuk + item yang kelewat.
// Penebusan parsial tetap dianggap sukses, tapi dilaporkan, gak diam-diam.
type DispenseResult struct {
	Order   *models.Order `json:"order"`
	Skipped []SkippedItem `json:"skipped_items,omitempty"`
}

// Approve menyetujui resep Pending. Gagal dengan ErrInsufficientStock kalau
// ada item yang stok obatnya kosong; resep tidak berubah sama sekali.
func (s *Fulfillment) Approve(ctx context.Context, actor Actor, prescriptionID uint64) (*models.Prescription, error) {
	if !actor.Staff {
		return nil, ErrForbidden
	}
	p, err := s.prescriptions.GetPrescription(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if p.Status != models.PrescriptionPending {
		return nil, ErrInvalidState
	}
	for _, item := range p.Items {
		med, err := s.medicines.GetMedicine(ctx, item.MedicineID)
		if err != nil {
			return nil, err
		}
		// Asumsi penebusan 1 unit per item
		if med.Quantity < 1 {
			return nil, fmt.Errorf("stok %s kosong: %w", med.Name, ErrInsufficientStock)
		}
	}
	if err := s.prescriptions.UpdatePrescriptionStatus(ctx, p.ID, models.PrescriptionApproved); err != nil {
		return nil, err
	}
	p.Status = models.PrescriptionApproved
	return p, nil
}

// Reject menolak resep yang belum ditebus. Resep yang sudah Dispensed
// gak bisa ditolak lagi, stoknya sudah keburu jalan.
func (s *Fulfillment) Reject(ctx context.Context, actor Actor, prescriptionID uint64) (*models.Prescription, error) {
	if !actor.Staff {
		return nil, ErrForbidden
	}
	p, err := s.prescriptions.GetPrescription(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	switch p.Status {
	case models.PrescriptionPending, models.PrescriptionApproved:
		// boleh
	case models.PrescriptionRejected:
		return nil, ErrNoOpTransition
	default:
		return nil, ErrInvalidState
	}
	if err := s.prescriptions.UpdatePrescriptionStatus(ctx, p.ID, models.PrescriptionRejected); err != nil {
		return nil, err
	}
	p.Status = models.PrescriptionRejected
	return p, nil
}

// Dispense menebus resep Approved: bikin order atas nama customer si pasien,
// 1 unit per item resep. Item yang stoknya kosong dilewati dan dilaporkan
// di hasil; resep tetap jadi Dispensed walau cuma sebagian yang ketebus.
func (s *Fulfillment) Dispense(ctx context.Context, actor Actor, prescriptionID uint64) (*DispenseResult, error) {
	if !actor.Staff {
		return nil, ErrForbidden
	}
	p, err := s.prescriptions.GetPrescription(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if p.Status != models.PrescriptionApproved {
		return nil, ErrInvalidState
	}

	customer, err := s.customers.GetCustomerByUser(ctx, p.PatientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMissingCustomer
		}
		return nil, err
	}

	result := &DispenseResult{}
	var orderID uint64
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order := &models.Order{CustomerID: customer.ID, Status: models.OrderPending}
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return err
		}
		total := 0.0
		for _, item := range p.Items {
			med, err := s.medicines.GetMedicine(ctx, item.MedicineID)
			if err != nil {
				return err
			}
			if err := s.medicines.AdjustStock(ctx, med.ID, -1); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					result.Skipped = append(result.Skipped, SkippedItem{MedicineID: med.ID, Name: med.Name})
					continue
				}
				return err
			}
			oi := &models.OrderItem{
				OrderID:    order.ID,
				MedicineID: med.ID,
				Quantity:   1,
				UnitPrice:  med.Price,
			}
			if err := s.orders.CreateItem(ctx, oi); err != nil {
				return err
			}
			total += med.Price
		}
		order.TotalAmount = total
		if err := s.orders.UpdateOrder(ctx, order); err != nil {
			return err
		}
		if err := s.prescriptions.UpdatePrescriptionStatus(ctx, p.ID, models.PrescriptionDispensed); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Order, err = s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return result, nil
}
