package seeds

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	schoolModel "tabunganku_backend/internals/features/school/model"
)

type schoolSeed struct {
	SchoolName    string  `json:"school_name"`
	SchoolAddress string  `json:"school_address"`
	SchoolPhone   *string `json:"school_phone"`
	SchoolEmail   *string `json:"school_email"`
}

func SeedSchoolsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var rows []schoolSeed
	if err := json.Unmarshal(file, &rows); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, r := range rows {
		var existing schoolModel.SchoolModel
		if err := db.Where("school_name = ?", r.SchoolName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Sekolah %s sudah ada, lewati...", r.SchoolName)
			continue
		}
		m := schoolModel.SchoolModel{
			SchoolName:    r.SchoolName,
			SchoolAddress: r.SchoolAddress,
			SchoolPhone:   r.SchoolPhone,
			SchoolEmail:   r.SchoolEmail,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("❌ Gagal insert sekolah %s: %v", r.SchoolName, err)
		}
		log.Printf("✅ Sekolah %s dibuat", r.SchoolName)
	}
}
