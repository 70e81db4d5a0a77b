package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/internal/service"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// CreateOrderPayment minta Snap token ke Midtrans untuk order Pending.
// Customer cuma boleh bayar ordernya sendiri.
func CreateOrderPayment(c *gin.Context) {
	actor := currentActor(c)

	order, err := orderService.Get(c.Request.Context(), actor, utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	if order.Status != models.OrderPending {
		utils.APIResponse(c, http.StatusBadRequest, false, "Order sudah tidak bisa dibayar", nil)
		return
	}

	// Order ID Midtrans harus unik tiap attempt, makanya pakai timestamp
	midtransOrderID := fmt.Sprintf("APT-%d-%d", order.ID, time.Now().Unix())

	var s = snap.Client{}
	s.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtrans.Sandbox)

	items := make([]midtrans.ItemDetails, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    fmt.Sprintf("MED-%d", it.MedicineID),
			Name:  it.Medicine.Name,
			Price: int64(it.UnitPrice),
			Qty:   int32(it.Quantity),
		})
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  midtransOrderID,
			GrossAmt: int64(order.TotalAmount), // Midtrans minta int64
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: order.Customer.Name,
			Email: order.Customer.Email,
			Phone: order.Customer.Phone,
		},
		Items: &items,
	}

	snapResp, errSnap := s.CreateTransaction(req)
	if errSnap != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Midtrans Error", errSnap.GetMessage())
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Silakan Lanjutkan Pembayaran", gin.H{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"snap_token":   snapResp.Token,       // Dipakai frontend buat popup Snap
		"redirect_url": snapResp.RedirectURL, // Link pembayaran web
	})
}

// MidtransNotification menangkap body webhook. Midtrans kirim banyak field,
// kita cuma butuh ini.
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
}

// HandleMidtransNotification webhook dari Midtrans. Format order_id:
// APT-<orderID>-<timestamp>, segmen tengah yang dipakai cari ordernya.
func HandleMidtransNotification(c *gin.Context) {
	var notification MidtransNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid JSON", nil)
		return
	}

	var newStatus string
	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus == "accept" {
			newStatus = models.OrderCompleted
		}
	case "settlement":
		newStatus = models.OrderCompleted
	case "deny", "cancel", "expire":
		newStatus = models.OrderCancelled
	}

	log.Printf("[Webhook] Midtrans notification - OrderID: %s, TransactionStatus: %s, FraudStatus: %s",
		notification.OrderID, notification.TransactionStatus, notification.FraudStatus)

	if newStatus == "" {
		// pending / challenge / status lain: belum ada yang perlu diubah
		utils.APIResponse(c, http.StatusOK, true, "Notifikasi Diterima", nil)
		return
	}

	parts := strings.Split(notification.OrderID, "-")
	if len(parts) != 3 || parts[0] != "APT" {
		log.Printf("[Webhook] Format order_id tidak dikenal: %s", notification.OrderID)
		utils.APIResponse(c, http.StatusBadRequest, false, "Format Order ID Salah", nil)
		return
	}
	orderID := utils.StringToUint64(parts[1])

	// Webhook jalan atas nama sistem, bukan user login
	system := service.Actor{Staff: true}
	order, err := orderService.SetStatus(c.Request.Context(), system, orderID, newStatus)
	if err != nil {
		if errors.Is(err, service.ErrNoOpTransition) {
			// Midtrans suka kirim notif yang sama berkali-kali, aman di-ack saja
			utils.APIResponse(c, http.StatusOK, true, "Status sudah final", nil)
			return
		}
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[Webhook] Order tidak ditemukan: %s", notification.OrderID)
			utils.APIResponse(c, http.StatusNotFound, false, "Order Tidak Ditemukan", nil)
			return
		}
		serviceError(c, err)
		return
	}

	log.Printf("[Webhook] Order %d status jadi %s", order.ID, order.Status)

	// Kabari customer kalau pembayarannya sukses
	if newStatus == models.OrderCompleted {
		var customer models.Customer
		if err := config.DB.First(&customer, order.CustomerID).Error; err == nil && customer.UserID != nil {
			notifyUser(*customer.UserID, "Pembayaran Berhasil", "Pembayaran ordermu sudah kami terima", map[string]string{
				"type": "payment",
			})
		}
	}

	utils.APIResponse(c, http.StatusOK, true, "Notifikasi Diproses", nil)
}
