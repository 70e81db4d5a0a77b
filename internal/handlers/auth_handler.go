package handlers

import (
	"net/http"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register bikin akun baru. Customer langsung aktif + dapat profil customer.
// Dokter dan staff baru harus nunggu approval admin dulu (IsActive false).
func Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	if input.Role == "doctor" && input.Specialization == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "Dokter wajib mengisi spesialisasi", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	user := models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
	}

	switch input.Role {
	case "customer":
		user.RoleID = models.RoleCustomer
		user.IsActive = true
	case "doctor":
		user.RoleID = models.RoleDoctor
	case "staff":
		user.RoleID = models.RoleStaff
	}

	// User + profil dibuat satu transaksi, biar gak ada user nggantung
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch input.Role {
		case "customer":
			return tx.Create(&models.Customer{
				UserID: &user.ID,
				Name:   user.FullName,
				Email:  user.Email,
				Phone:  user.Phone,
			}).Error
		case "doctor":
			return tx.Create(&models.Doctor{
				UserID:         &user.ID,
				Name:           user.FullName,
				Specialization: input.Specialization,
				Email:          user.Email,
				Phone:          user.Phone,
			}).Error
		}
		return nil
	})
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Email sudah terdaftar!", nil)
		return
	}

	if user.IsActive {
		utils.APIResponse(c, http.StatusCreated, true, "Registrasi Berhasil! Silakan Login.", user)
	} else {
		utils.APIResponse(c, http.StatusCreated, true, "Registrasi Berhasil! Tunggu approval admin dulu ya.", user)
	}
}

// Login cek kredensial + status approval, lalu kasih JWT
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Email atau Password salah", nil)
		return
	}

	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Email atau Password salah", nil)
		return
	}

	if !user.IsActive {
		utils.APIResponse(c, http.StatusForbidden, false, "Akun belum disetujui admin", nil)
		return
	}

	// Kalau frontend kirim token FCM, simpan buat push notif
	if input.FCMToken != "" {
		config.DB.Model(&user).Update("fcm_token", input.FCMToken)
	}

	token, err := utils.GenerateToken(user.ID, user.RoleID)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login Berhasil", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"full_name": user.FullName,
			"role_id":   user.RoleID,
			"email":     user.Email,
		},
	})
}

// GetUserProfile mengambil data user yang sedang login
func GetUserProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Data Profile Berhasil Diambil", gin.H{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
		"phone":     user.Phone,
		"role_id":   user.RoleID,
	})
}

// ChangePassword ganti password user login
func ChangePassword(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input models.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		return
	}

	if !utils.CheckPassword(input.OldPassword, user.PasswordHash) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Password lama salah", nil)
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	config.DB.Model(&user).Update("password_hash", hashed)
	utils.APIResponse(c, http.StatusOK, true, "Password Berhasil Diganti", nil)
}
