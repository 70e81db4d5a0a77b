package service

import (
	"context"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"
)

// SupplierRequests mengurus transisi status permintaan restock.
// Satu-satunya side effect: Pending -> Completed menaikkan stok obat,
// dan itu dijamin cuma terjadi sekali.
type SupplierRequests struct {
	requests  repository.SupplierRequestRepository
	medicines repository.MedicineRepository
	tx        repository.TxManager
}

func NewSupplierRequests(requests repository.SupplierRequestRepository, medicines repository.MedicineRepository, tx repository.TxManager) *SupplierRequests {
	return &SupplierRequests{requests: requests, medicines: medicines, tx: tx}
}

// SetStatus mengubah status request (khusus staff).
//   - -> Completed: flip status atomik + stok naik. Kalau sudah Completed,
//     ErrNoOpTransition dan stok TIDAK naik lagi (idempoten).
//   - Completed -> Pending ditolak (ErrInvalidState), biar gak bisa di-reset
//     lalu restock dobel.
func (s *SupplierRequests) SetStatus(ctx context.Context, actor Actor, requestID uint64, newStatus string) (*models.SupplierRequest, error) {
	if !actor.Staff {
		return nil, ErrForbidden
	}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		req, err := s.requests.GetSupplierRequest(ctx, requestID)
		if err != nil {
			return err
		}
		switch newStatus {
		case models.SupplierRequestCompleted:
			changed, err := s.requests.CompleteSupplierRequest(ctx, req.ID)
			if err != nil {
				return err
			}
			if !changed {
				return ErrNoOpTransition
			}
			return s.medicines.AdjustStock(ctx, req.MedicineID, req.Quantity)
		default: // Pending
			if req.Status == models.SupplierRequestCompleted {
				return ErrInvalidState
			}
			if req.Status == newStatus {
				return ErrNoOpTransition
			}
			return s.requests.UpdateSupplierRequestStatus(ctx, req.ID, newStatus)
		}
	})
	if err != nil {
		return nil, err
	}
	return s.requests.GetSupplierRequest(ctx, requestID)
}
