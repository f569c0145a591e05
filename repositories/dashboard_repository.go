package repositories

import (
	"log"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db}
}

type DashboardStats struct {
	TotalYarnKg         float64 `json:"totalYarnKg"`
	TotalFabricKg       float64 `json:"totalFabricKg"`
	TotalDyedKg         float64 `json:"totalDyedKg"`
	TotalCutPieces      int     `json:"totalCutPieces"`
	TotalStitchedPieces int     `json:"totalStitchedPieces"`
	TotalPackedPieces   int     `json:"totalPackedPieces"`
	TotalBalesShipped   int     `json:"totalBalesShipped"`
}

// GetStats sums the quantity column of every stage table. Each sum is
// independent and COALESCEd to 0 over an empty table. The dashboard must
// stay up even when the store is degraded, so a failed aggregate is logged
// and zeroes are returned instead of an error. No other read path in the
// system is allowed to fail soft like this.
func (r *DashboardRepository) GetStats() DashboardStats {
	var stats DashboardStats

	queries := []struct {
		sql  string
		dest interface{}
	}{
		{"SELECT COALESCE(SUM(weight_kg), 0) FROM yarn_batches", &stats.TotalYarnKg},
		{"SELECT COALESCE(SUM(fabric_produced), 0) FROM knitting_jobs", &stats.TotalFabricKg},
		{"SELECT COALESCE(SUM(weight_kg_dyed), 0) FROM dyeing_jobs", &stats.TotalDyedKg},
		{"SELECT COALESCE(SUM(quantity_pieces), 0) FROM cutting_jobs", &stats.TotalCutPieces},
		{"SELECT COALESCE(SUM(quantity_stitched), 0) FROM stitching_jobs", &stats.TotalStitchedPieces},
		{"SELECT COALESCE(SUM(quantity_packed), 0) FROM packing_jobs", &stats.TotalPackedPieces},
		{"SELECT COALESCE(SUM(numberof_bales), 0) FROM containers", &stats.TotalBalesShipped},
	}

	for _, q := range queries {
		if err := r.db.Raw(q.sql).Scan(q.dest).Error; err != nil {
			log.Printf("dashboard stats query failed, returning zeroes: %v", err)
			return DashboardStats{}
		}
	}
	return stats
}
