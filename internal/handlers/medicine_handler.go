package handlers

import (
	"net/http"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetMedicines daftar obat, bisa difilter nama lewat ?q=
// Status kadaluarsa dihitung per row, tidak disimpan di DB.
func GetMedicines(c *gin.Context) {
	var medicines []models.Medicine

	query := config.DB.Order("name asc")
	if q := c.Query("q"); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}
	query.Find(&medicines)

	for i := range medicines {
		medicines[i].Status = medicines[i].ExpiryStatus()
	}

	utils.APIResponse(c, http.StatusOK, true, "Daftar Obat", medicines)
}

// GetMedicineDetail satu obat + status kadaluarsanya
func GetMedicineDetail(c *gin.Context) {
	var medicine models.Medicine
	if err := config.DB.First(&medicine, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Obat tidak ditemukan", nil)
		return
	}
	medicine.Status = medicine.ExpiryStatus()
	utils.APIResponse(c, http.StatusOK, true, "Detail Obat", medicine)
}

// CreateMedicine tambah obat baru (khusus staff)
func CreateMedicine(c *gin.Context) {
	var input models.MedicineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Obat Salah", err.Error())
		return
	}

	medicine := models.Medicine{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		ExpiryDate:  input.ExpiryDate,
	}

	if err := config.DB.Create(&medicine).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan obat", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Obat Berhasil Ditambahkan", medicine)
}

// UpdateMedicine edit data obat (khusus staff).
// Catatan: quantity di sini untuk koreksi data master; mutasi stok dari
// transaksi tetap lewat service Inventory.
func UpdateMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := config.DB.First(&medicine, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Obat tidak ditemukan", nil)
		return
	}

	var input models.MedicineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Obat Salah", err.Error())
		return
	}

	medicine.Name = input.Name
	medicine.Description = input.Description
	medicine.Price = input.Price
	medicine.Quantity = input.Quantity
	medicine.ExpiryDate = input.ExpiryDate

	if err := config.DB.Save(&medicine).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengupdate obat", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Obat Berhasil Diupdate", medicine)
}

// AdjustMedicineStock koreksi stok manual (khusus staff), misal obat pecah
// atau hasil stock opname. Stok gak boleh jadi minus.
func AdjustMedicineStock(c *gin.Context) {
	var input models.AdjustStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Penyesuaian Salah", err.Error())
		return
	}

	id := utils.StringToUint64(c.Param("id"))
	if err := inventoryService.AdjustStock(c.Request.Context(), id, input.Delta); err != nil {
		serviceError(c, err)
		return
	}

	medicine, err := inventoryService.GetMedicine(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	medicine.Status = medicine.ExpiryStatus()

	utils.APIResponse(c, http.StatusOK, true, "Stok Berhasil Disesuaikan", medicine)
}

// DeleteMedicine hapus obat (khusus staff). Item order & resep yang
// refer ke obat ini ikut kehapus (cascade).
func DeleteMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := config.DB.First(&medicine, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Obat tidak ditemukan", nil)
		return
	}

	if err := config.DB.Delete(&medicine).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menghapus obat", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Obat Berhasil Dihapus", nil)
}
