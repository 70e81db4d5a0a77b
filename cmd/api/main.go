package main

import (
	"log"
	"os"

	"apotek-backend/internal/config"
	"apotek-backend/internal/handlers"
	"apotek-backend/internal/routes"
	"apotek-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Connect DB (sekalian migrasi + seed admin)
	config.ConnectDB()

	// Init Firebase buat push notif
	utils.InitFCM()

	// Service layer butuh DB yang sudah konek
	handlers.InitServices()

	// 3. Init Router
	r := gin.Default()

	// 4. Pasang Middleware Global
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// 5. Setup Routes
	routes.SetupRoutes(r)

	// 6. Health check
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// 7. Run Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server berjalan di port " + port)
	r.Run(":" + port)
}
