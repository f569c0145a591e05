package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"garment-flow/config"
	"garment-flow/database"
	"garment-flow/models"
	"garment-flow/repositories"

	"golang.org/x/exp/slices"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// The processor watches an intake folder for yarn receipt files exported
// by the supplier portal and turns each row into a yarn batch. Files are
// named YRN_<date>.csv and move to intake/processed once imported.

func main() {
	config.LoadConfig()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	fmt.Println("Yarn intake processor running...")

	processIntakeFiles(db)

	fmt.Println("All intake files processed")
}

func processIntakeFiles(db *gorm.DB) {
	pattern := filepath.Join(config.IntakeDir, "YRN_*.csv")
	files, err := filepath.Glob(pattern)
	if err != nil {
		log.Fatalf("Failed to read intake folder: %v", err)
	}

	// Oldest export first so batch ids follow receipt order.
	slices.Sort(files)

	for _, file := range files {
		processFile(db, file)
	}
}

func processFile(db *gorm.DB, filename string) {
	fileNameOnly := filepath.Base(filename)

	var existingFile models.FileLog
	if err := db.Where("filename = ?", fileNameOnly).First(&existingFile).Error; err == nil {
		log.Println("File already processed, skip:", fileNameOnly)
		return
	}

	info, err := os.Stat(filename)
	if err != nil {
		log.Println("Failed to stat file:", err)
		return
	}

	fmt.Println("Processing:", fileNameOnly)

	created, err := processYarnCSV(db, filename)
	if err != nil {
		log.Println("Failed to process file:", fileNameOnly, err)
		return
	}

	db.Create(&models.FileLog{Filename: fileNameOnly, DateModified: info.ModTime()})

	if err := moveToProcessed(filename); err != nil {
		log.Printf("Failed to move %s to processed folder: %v", fileNameOnly, err)
	}

	sendImportNotification(fileNameOnly, created)
}

// processYarnCSV expects columns: batchCode, color, weightKg, supplier,
// receivedAt (RFC 3339, optional). Returns how many batches were created.
func processYarnCSV(db *gorm.DB, filename string) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, err
	}

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	file.Close()
	if err != nil {
		return 0, err
	}

	repo := repositories.NewYarnRepository(db)
	created := 0

	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 4 {
			log.Printf("Row %d malformed, skip: %v", i, record)
			continue
		}

		weightKg, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			log.Printf("Row %d has a bad weight %q, skip", i, record[2])
			continue
		}

		input := repositories.InsertYarnBatch{
			BatchCode: strings.TrimSpace(record[0]),
			Color:     strings.TrimSpace(record[1]),
			WeightKg:  weightKg,
			Supplier:  strings.TrimSpace(record[3]),
		}
		if len(record) > 4 {
			if receivedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(record[4])); err == nil {
				input.ReceivedAt = &receivedAt
			}
		}

		batch, err := repo.Create(input)
		if err != nil {
			log.Printf("Row %d rejected: %v", i, err)
			continue
		}

		fmt.Println("Yarn batch created:", batch.BatchCode)
		created++
	}

	return created, nil
}

func moveToProcessed(filename string) error {
	processedFolder := filepath.Join(config.IntakeDir, "processed")
	if err := os.MkdirAll(processedFolder, os.ModePerm); err != nil {
		return err
	}

	processedFilePath := filepath.Join(processedFolder, filepath.Base(filename))

	if err := os.Rename(filename, processedFilePath); err != nil {
		// Rename fails across volumes, fall back to copy and delete.
		return copyAndDeleteFile(filename, processedFilePath)
	}
	return nil
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destinationFile.Close()

	if _, err := io.Copy(destinationFile, sourceFile); err != nil {
		return err
	}

	return os.Remove(src)
}

func sendImportNotification(filename string, created int) {
	if config.SMTPHost == "" || len(config.NotifyList) == 0 {
		return
	}

	subject := "Yarn intake imported: " + filename
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Yarn intake file imported</h3>
				<p>File: <strong>%s</strong></p>
				<p>Batches created: <strong>%d</strong></p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, filename, created)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.NotifyList...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPass)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send notification email:", err)
		return
	}

	fmt.Println("Notification sent to:", config.NotifyList)
}
