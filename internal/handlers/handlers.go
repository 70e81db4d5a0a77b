package handlers

import (
	"errors"
	"net/http"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/internal/repository"
	"apotek-backend/internal/service"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Service layer di-share semua handler. Di-init sekali dari main
// setelah koneksi DB siap.
var (
	store              *repository.GormStore
	inventoryService   *service.Inventory
	orderService       *service.Orders
	appointmentService *service.Appointments
	supplierService    *service.SupplierRequests
	fulfillmentService *service.Fulfillment
)

func InitServices() {
	store = repository.NewGormStore(config.DB)
	inventoryService = service.NewInventory(store)
	orderService = service.NewOrders(store, store, store, store)
	appointmentService = service.NewAppointments(store)
	supplierService = service.NewSupplierRequests(store, store, store)
	fulfillmentService = service.NewFulfillment(store, store, store, store, store)
}

// currentActor merangkai identitas + kapabilitas pemanggil dari context
// (hasil kerja AuthMiddleware) plus profil Doctor/Customer dari DB
func currentActor(c *gin.Context) service.Actor {
	userIDVal, _ := c.Get("userID")
	roleIDVal, _ := c.Get("roleID")

	userID, _ := userIDVal.(uint64)
	roleID, _ := roleIDVal.(uint)

	actor := service.Actor{
		UserID: userID,
		Staff:  roleID == models.RoleStaff,
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil {
		actor.Name = user.FullName
		actor.Email = user.Email
	}

	if roleID == models.RoleDoctor {
		var doctor models.Doctor
		if err := config.DB.Where("user_id = ?", userID).First(&doctor).Error; err == nil {
			actor.DoctorID = doctor.ID
		}
	}

	var customer models.Customer
	if err := config.DB.Where("user_id = ?", userID).First(&customer).Error; err == nil {
		actor.CustomerID = customer.ID
	}

	return actor
}

// serviceError menerjemahkan taksonomi error bisnis ke response HTTP.
// NoOpTransition bukan fault: balas 200 dengan pesan, bukan error.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoOpTransition):
		utils.APIResponse(c, http.StatusOK, true, "Status tidak berubah", nil)
	case errors.Is(err, service.ErrInsufficientStock):
		utils.APIResponse(c, http.StatusBadRequest, false, "Stok tidak cukup", err.Error())
	case errors.Is(err, service.ErrMissingCustomer):
		utils.APIResponse(c, http.StatusBadRequest, false, "Pasien belum punya profil customer", nil)
	case errors.Is(err, service.ErrInvalidState):
		utils.APIResponse(c, http.StatusBadRequest, false, "Transisi status tidak diizinkan", nil)
	case errors.Is(err, service.ErrForbidden):
		utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
	case errors.Is(err, service.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, false, "Data tidak ditemukan", nil)
	default:
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", err.Error())
	}
}

// notifyUser helper kirim push notif; token diambil dari DB dulu di sini,
// utils.SendNotification cuma urusan Firebase
func notifyUser(userID uint64, title, body string, data map[string]string) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return
	}
	if user.FCMToken == "" {
		return
	}
	go utils.SendNotification(user.FCMToken, title, body, data) // Goroutine biar gak blocking
}
