package repository

import (
	"context"
	"sync"

	"apotek-backend/internal/models"
)

// MemoryStore penyimpanan in-memory untuk testing service layer
// tanpa perlu MySQL beneran. Mutex-nya sekalian jadi serialisasi penulis
// per proses, jadi guard stok tetap atomik.
type MemoryStore struct {
	mu sync.Mutex

	nextID        uint64
	medicines     map[uint64]models.Medicine
	orders        map[uint64]models.Order
	orderItems    map[uint64]models.OrderItem
	customers     map[uint64]models.Customer
	prescriptions map[uint64]models.Prescription
	suppReqs      map[uint64]models.SupplierRequest
	appointments  map[uint64]models.Appointment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:        1,
		medicines:     make(map[uint64]models.Medicine),
		orders:        make(map[uint64]models.Order),
		orderItems:    make(map[uint64]models.OrderItem),
		customers:     make(map[uint64]models.Customer),
		prescriptions: make(map[uint64]models.Prescription),
		suppReqs:      make(map[uint64]models.SupplierRequest),
		appointments:  make(map[uint64]models.Appointment),
	}
}

var (
	_ MedicineRepository        = (*MemoryStore)(nil)
	_ OrderRepository           = (*MemoryStore)(nil)
	_ CustomerRepository        = (*MemoryStore)(nil)
	_ PrescriptionRepository    = (*MemoryStore)(nil)
	_ SupplierRequestRepository = (*MemoryStore)(nil)
	_ AppointmentRepository     = (*MemoryStore)(nil)
	_ TxManager                 = (*MemoryStore)(nil)
)

type memTxKey struct{}

func inTx(ctx context.Context) bool {
	v, ok := ctx.Value(memTxKey{}).(bool)
	return ok && v
}

// lock helpers: kalau lagi dalam "transaksi", lock globalnya sudah dipegang
func (m *MemoryStore) lock(ctx context.Context) {
	if !inTx(ctx) {
		m.mu.Lock()
	}
}

func (m *MemoryStore) unlock(ctx context.Context) {
	if !inTx(ctx) {
		m.mu.Unlock()
	}
}

// WithTransaction versi memory: pegang satu lock global selama fn jalan.
// Tidak ada rollback; cukup untuk kebutuhan test.
func (m *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, memTxKey{}, true))
}

func (m *MemoryStore) allocID() uint64 {
	id := m.nextID
	m.nextID++
	return id
}

// ===== Seed helpers (dipakai test) =====

func (m *MemoryStore) SeedMedicine(med models.Medicine) models.Medicine {
	m.mu.Lock()
	defer m.mu.Unlock()
	if med.ID == 0 {
		med.ID = m.allocID()
	}
	m.medicines[med.ID] = med
	return med
}

func (m *MemoryStore) SeedCustomer(c models.Customer) models.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == 0 {
		c.ID = m.allocID()
	}
	m.customers[c.ID] = c
	return c
}

func (m *MemoryStore) SeedPrescription(p models.Prescription) models.Prescription {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == 0 {
		p.ID = m.allocID()
	}
	for i := range p.Items {
		if p.Items[i].ID == 0 {
			p.Items[i].ID = m.allocID()
		}
		p.Items[i].PrescriptionID = p.ID
	}
	m.prescriptions[p.ID] = p
	return p
}

func (m *MemoryStore) SeedSupplierRequest(r models.SupplierRequest) models.SupplierRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == 0 {
		r.ID = m.allocID()
	}
	m.suppReqs[r.ID] = r
	return r
}

func (m *MemoryStore) SeedAppointment(a models.Appointment) models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == 0 {
		a.ID = m.allocID()
	}
	m.appointments[a.ID] = a
	return a
}

// ===== Medicine =====

func (m *MemoryStore) GetMedicine(ctx context.Context, id uint64) (*models.Medicine, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	med, ok := m.medicines[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := med
	return &cp, nil
}

func (m *MemoryStore) AdjustStock(ctx context.Context, id uint64, delta int) error {
	m.lock(ctx)
	defer m.unlock(ctx)
	med, ok := m.medicines[id]
	if !ok {
		return ErrNotFound
	}
	if med.Quantity+delta < 0 {
		return ErrInsufficientStock
	}
	med.Quantity += delta
	m.medicines[id] = med
	return nil
}

// ===== Order =====

func (m *MemoryStore) CreateOrder(ctx context.Context, o *models.Order) error {
	m.lock(ctx)
	defer m.unlock(ctx)
	o.ID = m.allocID()
	if o.Status == "" {
		o.Status = models.OrderPending
	}
	m.orders[o.ID] = *o
	return nil
}

func (m *MemoryStore) GetOrder(ctx context.Context, id uint64) (*models.Order, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	cp.Items = nil
	for _, it := range m.orderItems {
		if it.OrderID == id {
			if med, ok := m.medicines[it.MedicineID]; ok {
				it.Medicine = med
			}
			cp.Items = append(cp.Items, it)
		}
	}
	if c, ok := m.customers[o.CustomerID]; ok {
		cp.Customer = c
	}
	return &cp, nil
}

func (m *MemoryStore) UpdateOrder(ctx context.Context, o *models.Order) error {
	m.lock(ctx)
	defer m.unlock(ctx)
	cur, ok := m.orders[o.ID]
	if !ok {
		return ErrNotFound
	}
	cur.TotalAmount = o.TotalAmount
	cur.Status = o.Status
	m.orders[o.ID] = cur
	return nil
}

func (m *MemoryStore) CreateItem(ctx context.Context, it *models.OrderItem) error {
	m.lock(ctx)
	defer m.unlock(ctx)
	it.ID = m.allocID()
	m.orderItems[it.ID] = *it
	return nil
}

func (m *MemoryStore) GetItem(ctx context.Context, orderID, itemID uint64) (*models.OrderItem, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	it, ok := m.orderItems[itemID]
	if !ok || it.OrderID != orderID {
		return nil, ErrNotFound
	}
	cp := it
	return &cp, nil
}

func (m *MemoryStore) DeleteItem(ctx context.Context, itemID uint64) error {
	m.lock(ctx)
	defer m.unlock(ctx)
	delete(m.orderItems, itemID)
	return nil
}

// ===== Customer =====

func (m *MemoryStore) GetCustomer(ctx context.Context, id uint64) (*models.Customer, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	c, ok := m.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (m *MemoryStore) GetCustomerByUser(ctx context.Context, userID uint64) (*models.Customer, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	for _, c := range m.customers {
		if c.UserID != nil && *c.UserID == userID {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpsertCustomerForUser(ctx context.Context, userID uint64, defaults models.Customer) (*models.Customer, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	for _, c := range m.customers {
		if c.UserID != nil && *c.UserID == userID {
			cp := c
			return &cp, nil
		}
	}
	defaults.ID = m.allocID()
	defaults.UserID = &userID
	m.customers[defaults.ID] = defaults
	cp := defaults
	return &cp, nil
}

// ===== Prescription =====

func (m *MemoryStore) GetPrescription(ctx context.Context, id uint64) (*models.Prescription, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	p, ok := m.prescriptions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	cp.Items = append([]models.PrescriptionItem(nil), p.Items...)
	for i := range cp.Items {
		if med, ok := m.medicines[cp.Items[i].MedicineID]; ok {
			cp.Items[i].Medicine = med
		}
	}
	return &cp, nil
}

func (m *MemoryStore) UpdatePrescriptionStatus(ctx context.Context, id uint64, status string) error {
	m.lock(ctx)
	defer m.unlock(ctx)
	p, ok := m.prescriptions[id]
	if !ok {
		return ErrNotFound
	}
	p.Status = status
	m.prescriptions[id] = p
	return nil
}

// ===== SupplierRequest =====

func (m *MemoryStore) GetSupplierRequest(ctx context.Context, id uint64) (*models.SupplierRequest, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	r, ok := m.suppReqs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := r
	return &cp, nil
}

func (m *MemoryStore) UpdateSupplierRequestStatus(ctx context.Context, id uint64, status string) error {
	m.lock(ctx)
	defer m.unlock(ctx)
	r, ok := m.suppReqs[id]
	if !ok {
		return ErrNotFound
	}
	r.Status = status
	m.suppReqs[id] = r
	return nil
}

func (m *MemoryStore) CompleteSupplierRequest(ctx context.Context, id uint64) (bool, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	r, ok := m.suppReqs[id]
	if !ok {
		return false, nil
	}
	if r.Status == models.SupplierRequestCompleted {
		return false, nil
	}
	r.Status = models.SupplierRequestCompleted
	m.suppReqs[id] = r
	return true, nil
}

// ===== Appointment =====

func (m *MemoryStore) GetAppointment(ctx context.Context, id uint64) (*models.Appointment, error) {
	m.lock(ctx)
	defer m.unlock(ctx)
	a, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := a
	return &cp, nil
}

func (m *MemoryStore) UpdateAppointmentStatus(ctx context.Context, id uint64, status string) error {
	m.lock(ctx)
	defer m.unlock(ctx)
	a, ok := m.appointments[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	m.appointments[id] = a
	return nil
}
