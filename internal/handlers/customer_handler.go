package handlers

import (
	"net/http"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetCustomers daftar semua customer (khusus staff)
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	config.DB.Order("name asc").Find(&customers)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Customer", customers)
}

// CreateCustomer staff input customer walk-in (tanpa akun login)
func CreateCustomer(c *gin.Context) {
	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Customer Salah", err.Error())
		return
	}

	customer := models.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan customer", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Customer Berhasil Ditambahkan", customer)
}

// UpdateCustomer edit data customer (khusus staff)
func UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := config.DB.First(&customer, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Customer tidak ditemukan", nil)
		return
	}

	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Customer Salah", err.Error())
		return
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	config.DB.Save(&customer)

	utils.APIResponse(c, http.StatusOK, true, "Customer Berhasil Diupdate", customer)
}

// DeleteCustomer hapus customer + order & appointment-nya (cascade)
func DeleteCustomer(c *gin.Context) {
	var customer models.Customer
	if err := config.DB.First(&customer, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Customer tidak ditemukan", nil)
		return
	}

	config.DB.Delete(&customer)
	utils.APIResponse(c, http.StatusOK, true, "Customer Berhasil Dihapus", nil)
}

// GetMyCustomerProfile profil customer milik user login. Dibuatkan otomatis
// kalau belum ada (satu user satu profil).
func GetMyCustomerProfile(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(uint64)

	actor := currentActor(c)

	customer, err := store.UpsertCustomerForUser(c.Request.Context(), userID, models.Customer{
		Name:  actor.Name,
		Email: actor.Email,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profil Customer", customer)
}

// UpdateMyCustomerProfile edit profil customer sendiri
func UpdateMyCustomerProfile(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(uint64)

	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Customer Salah", err.Error())
		return
	}

	actor := currentActor(c)
	customer, err := store.UpsertCustomerForUser(c.Request.Context(), userID, models.Customer{
		Name:  actor.Name,
		Email: actor.Email,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	config.DB.Save(customer)

	utils.APIResponse(c, http.StatusOK, true, "Profil Customer Berhasil Diupdate", customer)
}
