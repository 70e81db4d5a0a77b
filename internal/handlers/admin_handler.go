package handlers

import (
	"net/http"
	"time"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboard ringkasan operasional apotek untuk staff
func GetDashboard(c *gin.Context) {
	var medicineCount, customerCount, doctorCount, orderCount int64
	config.DB.Model(&models.Medicine{}).Count(&medicineCount)
	config.DB.Model(&models.Customer{}).Count(&customerCount)
	config.DB.Model(&models.Doctor{}).Count(&doctorCount)
	config.DB.Model(&models.Order{}).Count(&orderCount)

	now := time.Now()
	soon := now.AddDate(0, 0, 30)

	// Obat yang butuh perhatian: mau kadaluarsa dalam 30 hari atau stok menipis
	var expiringSoon []models.Medicine
	config.DB.Where("expiry_date IS NOT NULL AND expiry_date <= ?", soon).
		Order("expiry_date asc").Find(&expiringSoon)
	for i := range expiringSoon {
		expiringSoon[i].Status = expiringSoon[i].ExpiryStatus()
	}

	var lowStock []models.Medicine
	config.DB.Where("quantity <= ?", 10).Order("quantity asc").Find(&lowStock)

	var pendingOrders, pendingAppointments, pendingPrescriptions, pendingRequests int64
	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderPending).Count(&pendingOrders)
	config.DB.Model(&models.Appointment{}).Where("status = ?", models.AppointmentPending).Count(&pendingAppointments)
	config.DB.Model(&models.Prescription{}).Where("status = ?", models.PrescriptionPending).Count(&pendingPrescriptions)
	config.DB.Model(&models.SupplierRequest{}).Where("status = ?", models.SupplierRequestPending).Count(&pendingRequests)

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var todayRevenue float64
	config.DB.Model(&models.Order{}).
		Where("status = ? AND order_date >= ?", models.OrderCompleted, startOfDay).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&todayRevenue)

	// Omzet 7 hari terakhir buat grafik dashboard
	type dailyRevenue struct {
		Date    string  `json:"date"`
		Revenue float64 `json:"revenue"`
	}
	week := make([]dailyRevenue, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := startOfDay.AddDate(0, 0, -i)
		dayEnd := dayStart.Add(24 * time.Hour)
		var rev float64
		config.DB.Model(&models.Order{}).
			Where("status = ? AND order_date >= ? AND order_date < ?", models.OrderCompleted, dayStart, dayEnd).
			Select("COALESCE(SUM(total_amount), 0)").Scan(&rev)
		week = append(week, dailyRevenue{Date: dayStart.Format("2006-01-02"), Revenue: rev})
	}

	utils.APIResponse(c, http.StatusOK, true, "Dashboard Apotek", gin.H{
		"total_medicines":       medicineCount,
		"total_customers":       customerCount,
		"total_doctors":         doctorCount,
		"total_orders":          orderCount,
		"expiring_soon":         expiringSoon,
		"low_stock":             lowStock,
		"pending_orders":        pendingOrders,
		"pending_appointments":  pendingAppointments,
		"pending_prescriptions": pendingPrescriptions,
		"pending_requests":      pendingRequests,
		"today_revenue":         todayRevenue,
		"weekly_revenue":        week,
	})
}

// GetPendingUsers daftar akun dokter/staff yang masih nunggu approval
func GetPendingUsers(c *gin.Context) {
	var users []models.User
	config.DB.Where("is_active = ? AND role_id <> ?", false, models.RoleCustomer).
		Order("created_at asc").Find(&users)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Akun Menunggu Approval", users)
}

func ApproveUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		return
	}

	if user.IsActive {
		utils.APIResponse(c, http.StatusOK, true, "Akun sudah aktif", user)
		return
	}

	user.IsActive = true
	config.DB.Save(&user)

	notifyUser(user.ID, "Akun Disetujui", "Akunmu sudah aktif, silakan login", map[string]string{
		"type": "account",
	})

	utils.APIResponse(c, http.StatusOK, true, "Akun Berhasil Diaktifkan", user)
}

// RejectUser tolak pendaftaran: akunnya dihapus (soft delete)
func RejectUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		return
	}

	if user.IsActive {
		utils.APIResponse(c, http.StatusBadRequest, false, "Akun sudah aktif, tidak bisa ditolak", nil)
		return
	}

	config.DB.Delete(&user)
	utils.APIResponse(c, http.StatusOK, true, "Pendaftaran Ditolak", nil)
}

// GetStaffList daftar semua akun staff
func GetStaffList(c *gin.Context) {
	var users []models.User
	config.DB.Where("role_id = ?", models.RoleStaff).Order("full_name asc").Find(&users)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Staff", users)
}

type createStaffInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// CreateStaff admin bikin akun staff baru, langsung aktif tanpa approval
func CreateStaff(c *gin.Context) {
	var input createStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Staff Salah", err.Error())
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	user := models.User{
		RoleID:       models.RoleStaff,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		IsActive:     true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Email sudah terdaftar", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Staff Berhasil Ditambahkan", user)
}

// DeleteStaff hapus akun staff. Gak boleh hapus akun sendiri.
func DeleteStaff(c *gin.Context) {
	actor := currentActor(c)
	targetID := utils.StringToUint64(c.Param("id"))
	if targetID == actor.UserID {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tidak bisa menghapus akun sendiri", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("id = ? AND role_id = ?", targetID, models.RoleStaff).
		First(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Staff tidak ditemukan", nil)
		return
	}

	config.DB.Delete(&user)
	utils.APIResponse(c, http.StatusOK, true, "Staff Berhasil Dihapus", nil)
}

// GetSalesReport laporan penjualan order Completed, bisa difilter
// ?start=2026-01-01&end=2026-01-31 (default 30 hari terakhir)
func GetSalesReport(c *gin.Context) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if s := c.Query("start"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			start = parsed
		}
	}
	if e := c.Query("end"); e != "" {
		if parsed, err := time.Parse("2006-01-02", e); err == nil {
			// Inklusif sampai akhir hari
			end = parsed.Add(24*time.Hour - time.Second)
		}
	}

	var orders []models.Order
	config.DB.Preload("Customer").Preload("Items.Medicine").
		Where("status = ? AND order_date >= ? AND order_date <= ?", models.OrderCompleted, start, end).
		Order("order_date desc").Find(&orders)

	var totalRevenue float64
	totalItems := 0
	daily := map[string]float64{}
	for _, o := range orders {
		totalRevenue += o.TotalAmount
		for _, it := range o.Items {
			totalItems += it.Quantity
		}
		day := o.OrderDate.Format("2006-01-02")
		daily[day] += o.TotalAmount
	}

	utils.APIResponse(c, http.StatusOK, true, "Laporan Penjualan", gin.H{
		"start_date":    start.Format("2006-01-02"),
		"end_date":      end.Format("2006-01-02"),
		"total_orders":  len(orders),
		"total_items":   totalItems,
		"total_revenue": totalRevenue,
		"daily_revenue": daily,
		"orders":        orders,
	})
}
