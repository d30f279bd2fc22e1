package main

import (
	"backend_savanna/pkg/config"
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"log"
	"os"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDatabase()

	if err := database.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	seedAdmin()
	seedMenu()
}

func seedAdmin() {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@savanna.local")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err == nil {
		log.Printf("Admin %s already exists", email)
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user = models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: "Savanna",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
		IsActive:  true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("✅ Admin %s created successfully", email)
}

func seedMenu() {
	var count int64
	database.DB.Model(&models.Meal{}).Count(&count)
	if count > 0 {
		log.Printf("Menu already has %d meals, skipping seed", count)
		return
	}

	meals := []models.Meal{
		{Name: "Nyama Choma", Description: "Grilled goat served with kachumbari", Price: 12.50, Category: models.CategoryMains, IsAvailable: true},
		{Name: "Pilau", Description: "Spiced rice with beef", Price: 8.00, Category: models.CategoryMains, IsAvailable: true},
		{Name: "Samosa", Description: "Crisp pastry with minced beef", Price: 3.00, Category: models.CategoryStarters, IsAvailable: true},
		{Name: "Mandazi", Description: "Sweet fried dough", Price: 1.50, Category: models.CategoryDesserts, IsAvailable: true},
		{Name: "Chai ya Tangawizi", Description: "Ginger tea", Price: 2.00, Category: models.CategoryBeverages, IsAvailable: true},
	}

	if err := database.DB.Create(&meals).Error; err != nil {
		log.Fatal("Failed to seed menu:", err)
	}

	log.Printf("✅ Seeded %d meals", len(meals))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
