package handlers

import (
	"net/http"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateOrder staff bikin order kosong untuk customer, item menyusul
func CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Order Salah", err.Error())
		return
	}

	order, err := orderService.Create(c.Request.Context(), currentActor(c), input.CustomerID)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Order Berhasil Dibuat", order)
}

// GetOrders daftar order: staff lihat semua, customer cuma punyanya
func GetOrders(c *gin.Context) {
	actor := currentActor(c)

	query := config.DB.Preload("Customer").Preload("Items.Medicine").Order("order_date desc")
	if !actor.Staff {
		if actor.CustomerID == 0 {
			utils.APIResponse(c, http.StatusOK, true, "Daftar Order", []models.Order{})
			return
		}
		query = query.Where("customer_id = ?", actor.CustomerID)
	}

	var orders []models.Order
	query.Find(&orders)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Order", orders)
}

func GetOrderDetail(c *gin.Context) {
	order, err := orderService.Get(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail Order", order)
}

// GetOrderInvoice data invoice siap cetak: order + item + subtotal per baris
func GetOrderInvoice(c *gin.Context) {
	order, err := orderService.Get(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	type invoiceLine struct {
		MedicineName string  `json:"medicine_name"`
		Quantity     int     `json:"quantity"`
		UnitPrice    float64 `json:"unit_price"`
		Subtotal     float64 `json:"subtotal"`
	}

	lines := make([]invoiceLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, invoiceLine{
			MedicineName: item.Medicine.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.UnitPrice * float64(item.Quantity),
		})
	}

	utils.APIResponse(c, http.StatusOK, true, "Invoice Order", gin.H{
		"invoice_number": order.ID,
		"order_date":     order.OrderDate,
		"customer":       order.Customer,
		"status":         order.Status,
		"lines":          lines,
		"total_amount":   order.TotalAmount,
	})
}

// AddOrderItem tambah item ke order, stok & total diurus service
func AddOrderItem(c *gin.Context) {
	var input models.AddOrderItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Item Salah", err.Error())
		return
	}

	order, err := orderService.AddItem(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")), input)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Item Berhasil Ditambahkan", order)
}

func RemoveOrderItem(c *gin.Context) {
	order, err := orderService.RemoveItem(c.Request.Context(), currentActor(c),
		utils.StringToUint64(c.Param("id")), utils.StringToUint64(c.Param("itemId")))
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Item Berhasil Dihapus", order)
}

// SetOrderStatus ubah status order. Status final gak bisa diubah lagi,
// cancel otomatis balikin stok.
func SetOrderStatus(c *gin.Context) {
	var input models.OrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Status Salah", err.Error())
		return
	}

	order, err := orderService.SetStatus(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")), input.Status)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Status Order Berhasil Diupdate", order)
}

// BuyMedicine customer beli obat langsung, satu obat sekali jalan
func BuyMedicine(c *gin.Context) {
	var input models.BuyMedicineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Pembelian Salah", err.Error())
		return
	}

	order, err := orderService.BuyMedicine(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")), input.Quantity)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Pembelian Berhasil, Silakan Lanjut Pembayaran", order)
}
