package service

import (
	"context"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"
)

// Orders menjaga invariant order: total_amount selalu = jumlah
// (quantity x harga saat item ditambahkan), dan tiap mutasi item
// diimbangi mutasi stok dalam transaksi yang sama.
type Orders struct {
	medicines repository.MedicineRepository
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	tx        repository.TxManager
}

func NewOrders(medicines repository.MedicineRepository, orders repository.OrderRepository, customers repository.CustomerRepository, tx repository.TxManager) *Orders {
	return &Orders{medicines: medicines, orders: orders, customers: customers, tx: tx}
}

// Create bikin order kosong untuk customer tertentu (khusus staff)
func (s *Orders) Create(ctx context.Context, actor Actor, customerID uint64) (*models.Order, error) {
	if !actor.Staff {
		return nil, ErrForbidden
	}
	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	o := &models.Order{CustomerID: customerID, Status: models.OrderPending}
	if err := s.orders.CreateOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// AddItem menambah item ke order: stok turun, total naik, harga dikunci
// di unit_price saat ini juga.
func (s *Orders) AddItem(ctx context.Context, actor Actor, orderID uint64, in models.AddOrderItemInput) (*models.Order, error) {
	if !actor.Staff {
		return nil, ErrForbidden
	}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		med, err := s.medicines.GetMedicine(ctx, in.MedicineID)
		if err != nil {
			return err
		}
		// Guard stok & decrement jadi satu operasi atomik
		if err := s.medicines.AdjustStock(ctx, med.ID, -in.Quantity); err != nil {
			return err
		}
		item := &models.OrderItem{
			OrderID:    order.ID,
			MedicineID: med.ID,
			Quantity:   in.Quantity,
			UnitPrice:  med.Price,
		}
		if err := s.orders.CreateItem(ctx, item); err != nil {
			return err
		}
		order.TotalAmount += med.Price * float64(in.Quantity)
		return s.orders.UpdateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetOrder(ctx, orderID)
}

// RemoveItem menghapus item: stok balik, total turun sebesar kontribusi
// item itu waktu ditambahkan (unit_price tersimpan, bukan harga obat terbaru).
func (s *Orders) RemoveItem(ctx context.Context, actor Actor, orderID, itemID uint64) (*models.Order, error) {
	if !actor.Staff {
		return nil, ErrForbidden
	}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		item, err := s.orders.GetItem(ctx, orderID, itemID)
		if err != nil {
			return err
		}
		if err := s.medicines.AdjustStock(ctx, item.MedicineID, item.Quantity); err != nil {
			return err
		}
		order.TotalAmount -= item.UnitPrice * float64(item.Quantity)
		if err := s.orders.UpdateOrder(ctx, order); err != nil {
			return err
		}
		return s.orders.DeleteItem(ctx, item.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetOrder(ctx, orderID)
}

// SetStatus mengubah status order. Cuma order Pending yang boleh berubah;
// selain itu ErrNoOpTransition (bukan fault, status memang sudah final).
// Customer cuma boleh cancel order miliknya sendiri.
func (s *Orders) SetStatus(ctx context.Context, actor Actor, orderID uint64, newStatus string) (*models.Order, error) {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if !actor.Staff {
			if order.CustomerID != actor.CustomerID || actor.CustomerID == 0 {
				return ErrForbidden
			}
			if newStatus != models.OrderCancelled {
				return ErrForbidden
			}
		}
		if order.Status != models.OrderPending {
			return ErrNoOpTransition
		}
		if newStatus == models.OrderCancelled {
			// Balikin stok semua item dulu sebelum status dibalik
			for _, it := range order.Items {
				if err := s.medicines.AdjustStock(ctx, it.MedicineID, it.Quantity); err != nil {
					return err
				}
			}
		}
		order.Status = newStatus
		return s.orders.UpdateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetOrder(ctx, orderID)
}

// BuyMedicine pembelian langsung oleh customer: profil customer dibuat
// otomatis kalau belum ada, lalu order + item + potong stok dalam satu transaksi.
func (s *Orders) BuyMedicine(ctx context.Context, actor Actor, medicineID uint64, quantity int) (*models.Order, error) {
	var orderID uint64
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		med, err := s.medicines.GetMedicine(ctx, medicineID)
		if err != nil {
			return err
		}
		if err := s.medicines.AdjustStock(ctx, med.ID, -quantity); err != nil {
			return err
		}
		customer, err := s.customers.UpsertCustomerForUser(ctx, actor.UserID, models.Customer{
			Name:  actor.Name,
			Email: actor.Email,
		})
		if err != nil {
			return err
		}
		order := &models.Order{
			CustomerID:  customer.ID,
			Status:      models.OrderPending,
			TotalAmount: med.Price * float64(quantity),
		}
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return err
		}
		item := &models.OrderItem{
			OrderID:    order.ID,
			MedicineID: med.ID,
			Quantity:   quantity,
			UnitPrice:  med.Price,
		}
		if err := s.orders.CreateItem(ctx, item); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetOrder(ctx, orderID)
}

// Get ambil order + cek hak akses: staff bebas, customer cuma punyanya sendiri
func (s *Orders) Get(ctx context.Context, actor Actor, orderID uint64) (*models.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.Staff && order.CustomerID != actor.CustomerID {
		return nil, ErrForbidden
	}
	return order, nil
}
