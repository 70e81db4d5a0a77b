package handlers

import (
	"net/http"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePrescription dokter bikin resep untuk pasien (akun customer).
// Item minimal satu, obatnya harus terdaftar.
func CreatePrescription(c *gin.Context) {
	actor := currentActor(c)
	if actor.DoctorID == 0 {
		utils.APIResponse(c, http.StatusForbidden, false, "Hanya dokter yang boleh membuat resep", nil)
		return
	}

	var input models.CreatePrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Resep Salah", err.Error())
		return
	}

	var patient models.User
	if err := config.DB.Where("id = ? AND role_id = ?", input.PatientID, models.RoleCustomer).
		First(&patient).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Pasien tidak ditemukan", nil)
		return
	}

	prescription := models.Prescription{
		DoctorID:  actor.UserID,
		PatientID: input.PatientID,
		Status:    models.PrescriptionPending,
		Remarks:   input.Remarks,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&prescription).Error; err != nil {
			return err
		}
		for _, it := range input.Items {
			var med models.Medicine
			if err := tx.First(&med, it.MedicineID).Error; err != nil {
				return err
			}
			item := models.PrescriptionItem{
				PrescriptionID: prescription.ID,
				MedicineID:     it.MedicineID,
				Dosage:         it.Dosage,
				Frequency:      it.Frequency,
				Duration:       it.Duration,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Gagal menyimpan resep, cek lagi obatnya", err.Error())
		return
	}

	notifyUser(input.PatientID, "Resep Baru", "Dokter "+actor.Name+" membuatkan resep untukmu", map[string]string{
		"type": "prescription",
	})

	config.DB.Preload("Items.Medicine").First(&prescription, prescription.ID)
	utils.APIResponse(c, http.StatusCreated, true, "Resep Berhasil Dibuat", prescription)
}

// GetPrescriptions daftar resep sesuai role: staff semua, dokter yang dia
// buat, customer yang ditujukan ke dia
func GetPrescriptions(c *gin.Context) {
	actor := currentActor(c)

	query := config.DB.Preload("Doctor").Preload("Patient").Preload("Items.Medicine").
		Order("created_at desc")
	switch {
	case actor.Staff:
		// semua
	case actor.DoctorID != 0:
		query = query.Where("doctor_id = ?", actor.UserID)
	default:
		query = query.Where("patient_id = ?", actor.UserID)
	}

	var prescriptions []models.Prescription
	query.Find(&prescriptions)
	utils.APIResponse(c, http.StatusOK, true, "Daftar Resep", prescriptions)
}

func GetPrescriptionDetail(c *gin.Context) {
	var prescription models.Prescription
	if err := config.DB.Preload("Doctor").Preload("Patient").Preload("Items.Medicine").
		First(&prescription, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Resep tidak ditemukan", nil)
		return
	}

	actor := currentActor(c)
	if !actor.Staff && prescription.DoctorID != actor.UserID && prescription.PatientID != actor.UserID {
		utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail Resep", prescription)
}

// ApprovePrescription staff approve resep setelah cek ketersediaan stok
func ApprovePrescription(c *gin.Context) {
	prescription, err := fulfillmentService.Approve(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	notifyUser(prescription.PatientID, "Resep Disetujui", "Resepmu sudah disetujui, silakan ditebus", map[string]string{
		"type": "prescription",
	})

	utils.APIResponse(c, http.StatusOK, true, "Resep Disetujui", prescription)
}

func RejectPrescription(c *gin.Context) {
	prescription, err := fulfillmentService.Reject(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	notifyUser(prescription.PatientID, "Resep Ditolak", "Maaf, resepmu ditolak apotek", map[string]string{
		"type": "prescription",
	})

	utils.APIResponse(c, http.StatusOK, true, "Resep Ditolak", prescription)
}

// DispensePrescription tebus resep jadi order. Item yang stoknya kosong
// dilewati dan masuk daftar skipped_items di response.
func DispensePrescription(c *gin.Context) {
	result, err := fulfillmentService.Dispense(c.Request.Context(), currentActor(c), utils.StringToUint64(c.Param("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	message := "Resep Berhasil Ditebus"
	if len(result.Skipped) > 0 {
		message = "Resep Ditebus Sebagian, Ada Obat Yang Stoknya Kosong"
	}

	utils.APIResponse(c, http.StatusOK, true, message, result)
}
