package database

import (
	"log"

	"garment-flow/models"
	"garment-flow/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedDemoPipeline(db)
}

// SeedAdminUser makes sure a login exists on a fresh install.
func SeedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seeding admin user failed: %v", err)
		return
	}

	users := repositories.NewUserRepository(db)
	if _, err := users.Create(repositories.InsertUser{
		Username: "admin",
		Password: string(hashed),
		Role:     "admin",
	}); err != nil {
		log.Printf("seeding admin user failed: %v", err)
	}
}

// SeedDemoPipeline loads the starter batches and one knitting job on an
// empty database.
func SeedDemoPipeline(db *gorm.DB) {
	yarn := repositories.NewYarnRepository(db)

	existing, err := yarn.GetAll()
	if err != nil || len(existing) > 0 {
		return
	}

	yarn1, err := yarn.Create(repositories.InsertYarnBatch{
		BatchCode: "YRN-001",
		Color:     "Blue",
		WeightKg:  500,
		Supplier:  "Textile Co",
	})
	if err != nil {
		log.Printf("seeding yarn batch failed: %v", err)
		return
	}

	if _, err := yarn.Create(repositories.InsertYarnBatch{
		BatchCode: "YRN-002",
		Color:     "Red",
		WeightKg:  300,
		Supplier:  "Yarn Masters",
	}); err != nil {
		log.Printf("seeding yarn batch failed: %v", err)
	}

	knitting := repositories.NewKnittingRepository(db)
	if _, err := knitting.Create(repositories.InsertKnittingJob{
		YarnBatchID:    yarn1.ID,
		FabricType:     "Jersey",
		WeightUsed:     100,
		FabricProduced: 95,
		Status:         "completed",
	}); err != nil {
		log.Printf("seeding knitting job failed: %v", err)
	}
}
