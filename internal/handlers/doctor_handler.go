package handlers

import (
	"net/http"
	"time"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetDoctors daftar dokter beserta jadwal prakteknya. Bisa diakses semua
// role yang login (customer butuh ini buat booking).
func GetDoctors(c *gin.Context) {
	var doctors []models.Doctor
	config.DB.Preload("Schedules").Order("name asc").Find(&doctors)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Dokter", doctors)
}

func GetDoctorDetail(c *gin.Context) {
	var doctor models.Doctor
	if err := config.DB.Preload("Schedules").First(&doctor, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Dokter tidak ditemukan", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Detail Dokter", doctor)
}

// CreateDoctor staff mencatat dokter tanpa akun login (dokter dengan akun
// dibuat lewat register + approval)
func CreateDoctor(c *gin.Context) {
	var input models.DoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Dokter Salah", err.Error())
		return
	}

	doctor := models.Doctor{
		Name:           input.Name,
		Specialization: input.Specialization,
		Email:          input.Email,
		Phone:          input.Phone,
	}

	if err := config.DB.Create(&doctor).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan dokter", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Dokter Berhasil Ditambahkan", doctor)
}

func UpdateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := config.DB.First(&doctor, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Dokter tidak ditemukan", nil)
		return
	}

	var input models.DoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Dokter Salah", err.Error())
		return
	}

	doctor.Name = input.Name
	doctor.Specialization = input.Specialization
	doctor.Email = input.Email
	doctor.Phone = input.Phone
	config.DB.Save(&doctor)

	utils.APIResponse(c, http.StatusOK, true, "Dokter Berhasil Diupdate", doctor)
}

func DeleteDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := config.DB.First(&doctor, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Dokter tidak ditemukan", nil)
		return
	}

	config.DB.Delete(&doctor)
	utils.APIResponse(c, http.StatusOK, true, "Dokter Berhasil Dihapus", nil)
}

// CreateDoctorSchedule tambah jadwal praktek (khusus staff)
func CreateDoctorSchedule(c *gin.Context) {
	var input models.DoctorScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Jadwal Salah", err.Error())
		return
	}

	var doctor models.Doctor
	if err := config.DB.First(&doctor, input.DoctorID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Dokter tidak ditemukan", nil)
		return
	}

	schedule := models.DoctorSchedule{
		DoctorID:  input.DoctorID,
		DayOfWeek: input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}

	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan jadwal", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Jadwal Berhasil Ditambahkan", schedule)
}

func DeleteDoctorSchedule(c *gin.Context) {
	var schedule models.DoctorSchedule
	if err := config.DB.First(&schedule, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Jadwal tidak ditemukan", nil)
		return
	}

	config.DB.Delete(&schedule)
	utils.APIResponse(c, http.StatusOK, true, "Jadwal Berhasil Dihapus", nil)
}

// GetDoctorDashboard ringkasan untuk dokter login: janji temu hari ini
// dan yang akan datang (status Approved)
func GetDoctorDashboard(c *gin.Context) {
	actor := currentActor(c)
	if actor.DoctorID == 0 {
		utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
		return
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var today []models.Appointment
	config.DB.Preload("Customer").
		Where("doctor_id = ? AND status = ? AND date >= ? AND date < ?",
			actor.DoctorID, models.AppointmentApproved, startOfDay, endOfDay).
		Order("date asc").Find(&today)

	var upcoming []models.Appointment
	config.DB.Preload("Customer").
		Where("doctor_id = ? AND status = ? AND date >= ?",
			actor.DoctorID, models.AppointmentApproved, endOfDay).
		Order("date asc").Limit(10).Find(&upcoming)

	var pendingCount int64
	config.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = ?", actor.DoctorID, models.AppointmentPending).
		Count(&pendingCount)

	utils.APIResponse(c, http.StatusOK, true, "Dashboard Dokter", gin.H{
		"today_appointments":    today,
		"upcoming_appointments": upcoming,
		"pending_count":         pendingCount,
	})
}
