package service

import (
	"context"
	"testing"

	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staff = Actor{UserID: 1, Name: "Petugas", Staff: true}

func newOrderService() (*repository.MemoryStore, *Orders) {
	store := repository.NewMemoryStore()
	return store, NewOrders(store, store, store, store)
}

func TestAddItemKunciHargaDanTotal(t *testing.T) {
	store, svc := newOrderService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Paracetamol", Price: 10, Quantity: 5})
	cust := store.SeedCustomer(models.Customer{Name: "Budi"})

	order, err := svc.Create(ctx, staff, cust.ID)
	require.NoError(t, err)

	order, err = svc.AddItem(ctx, staff, order.ID, models.AddOrderItemInput{MedicineID: med.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 30.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 10.0, order.Items[0].UnitPrice)

	after, err := store.GetMedicine(ctx, med.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Quantity)
}

func TestAddItemStokKurangTidakMengubahApapun(t *testing.T) {
	store, svc := newOrderService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Amoxicillin", Price: 20, Quantity: 2})
	cust := store.SeedCustomer(models.Customer{Name: "Sari"})

	order, err := svc.Create(ctx, staff, cust.ID)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, staff, order.ID, models.AddOrderItemInput{MedicineID: med.ID, Quantity: 3})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	after, err := store.GetMedicine(ctx, med.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Quantity)

	order, err = svc.Get(ctx, staff, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.TotalAmount)
	assert.Empty(t, order.Items)
}

func TestRemoveItemPakaiHargaTersimpan(t *testing.T) {
	store, svc := newOrderService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Vitamin C", Price: 10, Quantity: 5})
	cust := store.SeedCustomer(models.Customer{Name: "Tono"})

	order, err := svc.Create(ctx, staff, cust.ID)
	require.NoError(t, err)
	order, err = svc.AddItem(ctx, staff, order.ID, models.AddOrderItemInput{MedicineID: med.ID, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, 20.0, order.TotalAmount)

	// Harga obat naik setelah item masuk; total harus turun sebesar harga lama
	cur, err := store.GetMedicine(ctx, med.ID)
	require.NoError(t, err)
	cur.Price = 15
	store.SeedMedicine(*cur)

	order, err = svc.RemoveItem(ctx, staff, order.ID, order.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.TotalAmount)
	assert.Empty(t, order.Items)

	after, err := store.GetMedicine(ctx, med.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, after.Quantity)
}

func TestCancelBalikinStokSemuaItem(t *testing.T) {
	store, svc := newOrderService()
	ctx := context.Background()

	medA := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 5})
	medB := store.SeedMedicine(models.Medicine{Name: "Obat B", Price: 5, Quantity: 4})
	cust := store.SeedCustomer(models.Customer{Name: "Rina"})

	order, err := svc.Create(ctx, staff, cust.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, staff, order.ID, models.AddOrderItemInput{MedicineID: medA.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, staff, order.ID, models.AddOrderItemInput{MedicineID: medB.ID, Quantity: 3})
	require.NoError(t, err)

	order, err = svc.SetStatus(ctx, staff, order.ID, models.OrderCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)

	afterA, _ := store.GetMedicine(ctx, medA.ID)
	afterB, _ := store.GetMedicine(ctx, medB.ID)
	assert.Equal(t, 5, afterA.Quantity)
	assert.Equal(t, 4, afterB.Quantity)
}

func TestStatusFinalTidakBisaDiubah(t *testing.T) {
	store, svc := newOrderService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 5})
	cust := store.SeedCustomer(models.Customer{Name: "Dewi"})

	order, err := svc.Create(ctx, staff, cust.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, staff, order.ID, models.AddOrderItemInput{MedicineID: med.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, staff, order.ID, models.OrderCompleted)
	require.NoError(t, err)

	// Completed itu final: cancel setelahnya gak jalan dan stok gak balik
	_, err = svc.SetStatus(ctx, staff, order.ID, models.OrderCancelled)
	assert.ErrorIs(t, err, ErrNoOpTransition)

	after, _ := store.GetMedicine(ctx, med.ID)
	assert.Equal(t, 4, after.Quantity)
}

func TestCustomerCumaBolehCancelOrderSendiri(t *testing.T) {
	store, svc := newOrderService()
	ctx := context.Background()

	cust := store.SeedCustomer(models.Customer{Name: "Asep"})
	lain := store.SeedCustomer(models.Customer{Name: "Orang Lain"})

	order, err := svc.Create(ctx, staff, cust.ID)
	require.NoError(t, err)

	penyusup := Actor{UserID: 99, CustomerID: lain.ID}
	_, err = svc.SetStatus(ctx, penyusup, order.ID, models.OrderCancelled)
	assert.ErrorIs(t, err, ErrForbidden)

	// Pemilik pun gak boleh langsung set Completed
	pemilik := Actor{UserID: 50, CustomerID: cust.ID}
	_, err = svc.SetStatus(ctx, pemilik, order.ID, models.OrderCompleted)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SetStatus(ctx, pemilik, order.ID, models.OrderCancelled)
	assert.NoError(t, err)
}

func TestBuyMedicineBikinProfilCustomerOtomatis(t *testing.T) {
	store, svc := newOrderService()
	ctx := context.Background()

	med := store.SeedMedicine(models.Medicine{Name: "Antangin", Price: 5, Quantity: 10})

	pembeli := Actor{UserID: 42, Name: "Joko", Email: "joko@mail.com"}
	order, err := svc.BuyMedicine(ctx, pembeli, med.ID, 4)
	require.NoError(t, err)

	assert.Equal(t, 20.0, order.TotalAmount)
	assert.Equal(t, models.OrderPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 4, order.Items[0].Quantity)

	cust, err := store.GetCustomerByUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Joko", cust.Name)
	assert.Equal(t, cust.ID, order.CustomerID)

	// Beli lagi: profilnya dipakai ulang, bukan bikin baru
	order2, err := svc.BuyMedicine(ctx, pembeli, med.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, cust.ID, order2.CustomerID)

	after, _ := store.GetMedicine(ctx, med.ID)
	assert.Equal(t, 5, after.Quantity)
}

func TestCreateDanAddItemKhususStaff(t *testing.T) {
	store, svc := newOrderService()
	ctx := context.Background()

	cust := store.SeedCustomer(models.Customer{Name: "Budi"})
	med := store.SeedMedicine(models.Medicine{Name: "Obat A", Price: 10, Quantity: 5})

	bukan := Actor{UserID: 7, CustomerID: cust.ID}
	_, err := svc.Create(ctx, bukan, cust.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	order, err := svc.Create(ctx, staff, cust.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, bukan, order.ID, models.AddOrderItemInput{MedicineID: med.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrForbidden)
}
