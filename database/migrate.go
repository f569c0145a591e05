package database

import (
	"garment-flow/models"

	"gorm.io/gorm"
)

// Migrate creates every table and FK edge of the production chain. The
// cascade constraints live here, at the engine level, so integrity holds
// even for writes that bypass the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.YarnBatch{},
		&models.KnittingJob{},
		&models.DyeingJob{},
		&models.CuttingJob{},
		&models.StitchingJob{},
		&models.PressingJob{},
		&models.PackingJob{},
		&models.Container{},
		&models.RawMaterialPurchase{},
		&models.FactoryCost{},
		&models.FileLog{},
	)
}
