package routes

import (
	"apotek-backend/internal/handlers"
	"apotek-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.RateLimitMiddleware())
	// Grouping API dengan versi (v1)
	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// Publik: katalog obat bisa diliat tanpa login, webhook Midtrans
		// datang dari server mereka (tanpa token kita)
		api.GET("/medicines", handlers.GetMedicines)
		api.GET("/medicines/:id", handlers.GetMedicineDetail)
		api.POST("/payment/notification", handlers.HandleMidtransNotification)

		// PROTECTED ROUTES (Harus Login / Punya Token)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetUserProfile)
			protected.PUT("/profile/password", handlers.ChangePassword)

			// Profil customer milik sendiri
			protected.GET("/me/customer", handlers.GetMyCustomerProfile)
			protected.PUT("/me/customer", handlers.UpdateMyCustomerProfile)

			// MODULE DOKTER (list buat semua, biar customer bisa pilih)
			protected.GET("/doctors", handlers.GetDoctors)
			protected.GET("/doctors/:id", handlers.GetDoctorDetail)
			protected.GET("/doctor/dashboard", handlers.GetDoctorDashboard)

			// MODULE JANJI TEMU
			protected.POST("/appointments", handlers.BookAppointment)
			protected.GET("/appointments", handlers.GetAppointments)
			protected.GET("/appointments/:id", handlers.GetAppointmentDetail)
			protected.POST("/appointments/:id/approve", handlers.ApproveAppointment)
			protected.POST("/appointments/:id/reject", handlers.RejectAppointment)
			protected.POST("/appointments/:id/complete", handlers.CompleteAppointment)

			// MODULE RESEP (create dicek di handler: cuma dokter)
			protected.POST("/prescriptions", handlers.CreatePrescription)
			protected.GET("/prescriptions", handlers.GetPrescriptions)
			protected.GET("/prescriptions/:id", handlers.GetPrescriptionDetail)

			// MODULE ORDER (akses per role dicek di service)
			protected.GET("/orders", handlers.GetOrders)
			protected.GET("/orders/:id", handlers.GetOrderDetail)
			protected.GET("/orders/:id/invoice", handlers.GetOrderInvoice)
			protected.PUT("/orders/:id/status", handlers.SetOrderStatus)
			protected.POST("/orders/:id/payment", handlers.CreateOrderPayment)
			protected.POST("/medicines/:id/buy", handlers.BuyMedicine)

			// Group khusus staff apotek
			staff := protected.Group("/")
			staff.Use(middleware.StaffOnly())
			{
				staff.POST("/medicines", handlers.CreateMedicine)
				staff.PUT("/medicines/:id", handlers.UpdateMedicine)
				staff.PATCH("/medicines/:id/stock", handlers.AdjustMedicineStock)
				staff.DELETE("/medicines/:id", handlers.DeleteMedicine)

				staff.GET("/customers", handlers.GetCustomers)
				staff.POST("/customers", handlers.CreateCustomer)
				staff.PUT("/customers/:id", handlers.UpdateCustomer)
				staff.DELETE("/customers/:id", handlers.DeleteCustomer)

				staff.POST("/doctors", handlers.CreateDoctor)
				staff.PUT("/doctors/:id", handlers.UpdateDoctor)
				staff.DELETE("/doctors/:id", handlers.DeleteDoctor)
				staff.POST("/doctor-schedules", handlers.CreateDoctorSchedule)
				staff.DELETE("/doctor-schedules/:id", handlers.DeleteDoctorSchedule)

				staff.POST("/orders", handlers.CreateOrder)
				staff.POST("/orders/:id/items", handlers.AddOrderItem)
				staff.DELETE("/orders/:id/items/:itemId", handlers.RemoveOrderItem)

				staff.POST("/prescriptions/:id/approve", handlers.ApprovePrescription)
				staff.POST("/prescriptions/:id/reject", handlers.RejectPrescription)
				staff.POST("/prescriptions/:id/dispense", handlers.DispensePrescription)

				staff.GET("/suppliers", handlers.GetSuppliers)
				staff.POST("/suppliers", handlers.CreateSupplier)
				staff.PUT("/suppliers/:id", handlers.UpdateSupplier)
				staff.DELETE("/suppliers/:id", handlers.DeleteSupplier)
				staff.GET("/supplier-requests", handlers.GetSupplierRequests)
				staff.POST("/supplier-requests", handlers.CreateSupplierRequest)
				staff.PUT("/supplier-requests/:id/status", handlers.SetSupplierRequestStatus)

				// Administrasi
				staff.GET("/admin/dashboard", handlers.GetDashboard)
				staff.GET("/admin/users/pending", handlers.GetPendingUsers)
				staff.POST("/admin/users/:id/approve", handlers.ApproveUser)
				staff.POST("/admin/users/:id/reject", handlers.RejectUser)
				staff.GET("/admin/staff", handlers.GetStaffList)
				staff.POST("/admin/staff", handlers.CreateStaff)
				staff.DELETE("/admin/staff/:id", handlers.DeleteStaff)
				staff.GET("/admin/reports/sales", handlers.GetSalesReport)
			}
		}
	}
}
