package repositories

import (
	"testing"

	"garment-flow/apperr"
	"garment-flow/models"

	"gorm.io/gorm"
)

// seedFullChain creates one record in every stage table, yarn through
// container, and returns the root batch id.
func seedFullChain(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	yarn, err := NewYarnRepository(db).Create(InsertYarnBatch{
		BatchCode: "YRN-CHAIN", Color: "Blue", WeightKg: 500, Supplier: "Textile Co",
	})
	if err != nil {
		t.Fatalf("yarn: %v", err)
	}
	knitting, err := NewKnittingRepository(db).Create(InsertKnittingJob{
		YarnBatchID: yarn.ID, FabricType: "Jersey", WeightUsed: 100, FabricProduced: 95,
	})
	if err != nil {
		t.Fatalf("knitting: %v", err)
	}
	dyeing, err := NewDyeingRepository(db).Create(InsertDyeingJob{
		KnittingJobID: knitting.ID, WeightKgDyed: 90, RollsPerBatch: 4, DyeColor: "Navy",
	})
	if err != nil {
		t.Fatalf("dyeing: %v", err)
	}
	cutting, err := NewCuttingRepository(db).Create(InsertCuttingJob{
		DyeingJobID: dyeing.ID, StyleCode: "TS-01", Size: "M", QuantityPieces: 400, WasteKg: 2,
	})
	if err != nil {
		t.Fatalf("cutting: %v", err)
	}
	stitching, err := NewStitchingRepository(db).Create(InsertStitchingJob{
		CuttingJobID: cutting.ID, Size: "M", QuantityStitched: 390, RejectedCount: 10,
	})
	if err != nil {
		t.Fatalf("stitching: %v", err)
	}
	pressing, err := NewPressingRepository(db).Create(InsertPressingJob{
		StitchingJobID: stitching.ID, Size: "M", QuantityPressed: 390,
	})
	if err != nil {
		t.Fatalf("pressing: %v", err)
	}
	packing, err := NewPackingRepository(db).Create(InsertPackingJob{
		PressingJobID: pressing.ID, Size: "M", BoxCount: 10, QuantityPacked: 390,
	})
	if err != nil {
		t.Fatalf("packing: %v", err)
	}
	if _, err := NewContainerRepository(db).Create(InsertContainer{
		PackingJobID: packing.ID, NumberofBales: 5, QuantityPerBale: 78, ContainerType: "40ft",
	}); err != nil {
		t.Fatalf("container: %v", err)
	}

	return yarn.ID
}

func TestDanglingParentIsRejected(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewKnittingRepository(db).Create(InsertKnittingJob{
		YarnBatchID: 999, FabricType: "Jersey", WeightUsed: 100, FabricProduced: 95,
	})
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.Reference {
		t.Fatalf("expected reference error, got %v", err)
	}
	if appErr.Status() != 400 {
		t.Fatalf("expected 400 got %d", appErr.Status())
	}

	var count int64
	db.Model(&models.KnittingJob{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected job must not persist, found %d rows", count)
	}
}

func TestMissingParentIDIsValidation(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewDyeingRepository(db).Create(InsertDyeingJob{
		WeightKgDyed: 90, RollsPerBatch: 4,
	})
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.Validation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr.Message != "Knitting Job is required" {
		t.Fatalf("unexpected message: %s", appErr.Message)
	}
}

func TestFractionalCountIsRejected(t *testing.T) {
	db := setupTestDB(t)
	seedFullChain(t, db)

	var dyeing models.DyeingJob
	if err := db.First(&dyeing).Error; err != nil {
		t.Fatalf("dyeing lookup: %v", err)
	}

	_, err := NewCuttingRepository(db).Create(InsertCuttingJob{
		DyeingJobID: dyeing.ID, StyleCode: "TS-02", Size: "L", QuantityPieces: 2.5,
	})
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.Validation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr.Message != "Quantity Pieces must be a whole number" {
		t.Fatalf("unexpected message: %s", appErr.Message)
	}
}

func TestDeletingBatchCascadesDownTheChain(t *testing.T) {
	db := setupTestDB(t)
	yarnID := seedFullChain(t, db)

	if err := NewYarnRepository(db).Delete(int(yarnID)); err != nil {
		t.Fatalf("delete batch: %v", err)
	}

	tables := []interface{}{
		&models.YarnBatch{},
		&models.KnittingJob{},
		&models.DyeingJob{},
		&models.CuttingJob{},
		&models.StitchingJob{},
		&models.PressingJob{},
		&models.PackingJob{},
		&models.Container{},
	}
	for _, table := range tables {
		var count int64
		db.Model(table).Count(&count)
		if count != 0 {
			t.Errorf("%T: expected 0 rows after cascade, found %d", table, count)
		}
	}
}

func TestCascadeLeavesOtherBatchesAlone(t *testing.T) {
	db := setupTestDB(t)
	yarnID := seedFullChain(t, db)

	yarn := NewYarnRepository(db)
	other, err := yarn.Create(InsertYarnBatch{BatchCode: "YRN-OTHER", Color: "Red", WeightKg: 300})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := NewKnittingRepository(db).Create(InsertKnittingJob{
		YarnBatchID: other.ID, FabricType: "Rib", WeightUsed: 50, FabricProduced: 48,
	}); err != nil {
		t.Fatalf("knitting: %v", err)
	}

	if err := yarn.Delete(int(yarnID)); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var yarnCount, knitCount int64
	db.Model(&models.YarnBatch{}).Count(&yarnCount)
	db.Model(&models.KnittingJob{}).Count(&knitCount)
	if yarnCount != 1 || knitCount != 1 {
		t.Fatalf("unrelated chain affected: %d batches, %d knitting jobs", yarnCount, knitCount)
	}
}

func TestStageDefaults(t *testing.T) {
	db := setupTestDB(t)

	yarn, err := NewYarnRepository(db).Create(InsertYarnBatch{BatchCode: "Y1", Color: "Blue", WeightKg: 10})
	if err != nil {
		t.Fatalf("yarn: %v", err)
	}

	job, err := NewKnittingRepository(db).Create(InsertKnittingJob{
		YarnBatchID: yarn.ID, FabricType: "Jersey", WeightUsed: 5, FabricProduced: 4,
	})
	if err != nil {
		t.Fatalf("knitting: %v", err)
	}
	if job.Size != "Mixed" {
		t.Fatalf("expected default size Mixed, got %q", job.Size)
	}
	if job.Status != "completed" {
		t.Fatalf("expected default status completed, got %q", job.Status)
	}
	if job.CompletedAt.IsZero() {
		t.Fatal("expected CompletedAt to be stamped")
	}
}
