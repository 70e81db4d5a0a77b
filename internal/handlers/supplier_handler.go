package handlers

import (
	"net/http"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetSuppliers daftar semua supplier
func GetSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	config.DB.Order("name asc").Find(&suppliers)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Supplier", suppliers)
}

// CreateSupplier tambah supplier baru
func CreateSupplier(c *gin.Context) {
	var input models.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Supplier Salah", err.Error())
		return
	}

	supplier := models.Supplier{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
	}

	if err := config.DB.Create(&supplier).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan supplier", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Supplier Berhasil Ditambahkan", supplier)
}

// UpdateSupplier edit data supplier
func UpdateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := config.DB.First(&supplier, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Supplier tidak ditemukan", nil)
		return
	}

	var input models.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Supplier Salah", err.Error())
		return
	}

	supplier.Name = input.Name
	supplier.ContactPerson = input.ContactPerson
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	config.DB.Save(&supplier)

	utils.APIResponse(c, http.StatusOK, true, "Supplier Berhasil Diupdate", supplier)
}

// DeleteSupplier hapus supplier beserta request restock-nya (cascade)
func DeleteSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := config.DB.First(&supplier, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Supplier tidak ditemukan", nil)
		return
	}

	config.DB.Delete(&supplier)
	utils.APIResponse(c, http.StatusOK, true, "Supplier Berhasil Dihapus", nil)
}

// GetSupplierRequests daftar permintaan restock, terbaru duluan
func GetSupplierRequests(c *gin.Context) {
	var requests []models.SupplierRequest
	config.DB.Preload("Supplier").Preload("Medicine").Order("created_at desc").Find(&requests)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Request Restock", requests)
}

// CreateSupplierRequest ajukan permintaan restock ke supplier
func CreateSupplierRequest(c *gin.Context) {
	var input models.SupplierRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Request Salah", err.Error())
		return
	}

	// Pastikan supplier & obat-nya beneran ada dulu
	var supplier models.Supplier
	if err := config.DB.First(&supplier, input.SupplierID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Supplier tidak ditemukan", nil)
		return
	}
	var medicine models.Medicine
	if err := config.DB.First(&medicine, input.MedicineID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Obat tidak ditemukan", nil)
		return
	}

	request := models.SupplierRequest{
		SupplierID: input.SupplierID,
		MedicineID: input.MedicineID,
		Quantity:   input.Quantity,
		Status:     models.SupplierRequestPending,
	}

	if err := config.DB.Create(&request).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan request", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Request Restock Berhasil Dibuat", request)
}

// SetSupplierRequestStatus ubah status request. Transisi ke Completed
// menaikkan stok obat (sekali saja, dijaga service).
func SetSupplierRequestStatus(c *gin.Context) {
	var input models.SupplierRequestStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Status Salah", err.Error())
		return
	}

	actor := currentActor(c)
	request, err := supplierService.SetStatus(c.Request.Context(), actor, utils.StringToUint64(c.Param("id")), input.Status)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Status Request Diupdate", request)
}
