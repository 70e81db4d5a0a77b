package handlers

import (
	"net/http"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BookAppointment customer booking janji temu. Profil customer dibuatkan
// otomatis kalau belum ada.
func BookAppointment(c *gin.Context) {
	var input models.BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Booking Salah", err.Error())
		return
	}

	var doctor models.Doctor
	if err := config.DB.First(&doctor, input.DoctorID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Dokter tidak ditemukan", nil)
		return
	}

	actor := currentActor(c)
	customer, err := store.UpsertCustomerForUser(c.Request.Context(), actor.UserID, models.Customer{
		Name:  actor.Name,
		Email: actor.Email,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	appointment := models.Appointment{
		CustomerID: customer.ID,
		DoctorID:   input.DoctorID,
		Date:       input.Date,
		Reason:     input.Reason,
		Status:     models.AppointmentPending,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan booking", nil)
		return
	}

	// Kabari dokternya kalau dia punya akun
	if doctor.UserID != nil {
		notifyUser(*doctor.UserID, "Booking Baru", "Ada permintaan janji temu baru dari "+customer.Name, map[string]string{
			"type": "appointment",
		})
	}

	utils.APIResponse(c, http.StatusCreated, true, "Booking Berhasil Dibuat", appointment)
}

// GetAppointments daftar janji temu sesuai role: staff lihat semua,
// dokter lihat punyanya, customer lihat punyanya
func GetAppointments(c *gin.Context) {
	actor := currentActor(c)

	query := config.DB.Preload("Customer").Preload("Doctor").Order("date desc")
	switch {
	case actor.Staff:
		// semua
	case actor.DoctorID != 0:
		query = query.Where("doctor_id = ?", actor.DoctorID)
	case actor.CustomerID != 0:
		query = query.Where("customer_id = ?", actor.CustomerID)
	default:
		utils.APIResponse(c, http.StatusOK, true, "Daftar Janji Temu", []models.Appointment{})
		return
	}

	var appointments []models.Appointment
	query.Find(&appointments)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Janji Temu", appointments)
}

func GetAppointmentDetail(c *gin.Context) {
	var appointment models.Appointment
	if err := config.DB.Preload("Customer").Preload("Doctor").
		First(&appointment, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Janji temu tidak ditemukan", nil)
		return
	}

	actor := currentActor(c)
	if !actor.Staff && actor.DoctorID != appointment.DoctorID && actor.CustomerID != appointment.CustomerID {
		utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail Janji Temu", appointment)
}

func ApproveAppointment(c *gin.Context) {
	appointment, err := appointmentService.Approve(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	notifyAppointmentCustomer(appointment, "Booking Disetujui", "Janji temu kamu sudah disetujui")
	utils.APIResponse(c, http.StatusOK, true, "Janji Temu Disetujui", appointment)
}

func RejectAppointment(c *gin.Context) {
	appointment, err := appointmentService.Reject(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	notifyAppointmentCustomer(appointment, "Booking Ditolak", "Maaf, janji temu kamu ditolak")
	utils.APIResponse(c, http.StatusOK, true, "Janji Temu Ditolak", appointment)
}

func CompleteAppointment(c *gin.Context) {
	appointment, err := appointmentService.Complete(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Janji Temu Selesai", appointment)
}

// notifyAppointmentCustomer kirim notif ke customer pemilik booking
// (kalau customernya punya akun)
func notifyAppointmentCustomer(a *models.Appointment, title, body string) {
	var customer models.Customer
	if err := config.DB.First(&customer, a.CustomerID).Error; err != nil {
		return
	}
	if customer.UserID == nil {
		return
	}
	notifyUser(*customer.UserID, title, body, map[string]string{"type": "appointment"})
}
