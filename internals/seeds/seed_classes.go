package seeds

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	classModel "tabunganku_backend/internals/features/classes/model"
	teacherModel "tabunganku_backend/internals/features/teacher/model"
)

type classSeed struct {
	ClassName            string  `json:"class_name"`
	HomeroomTeacherEmail *string `json:"homeroom_teacher_email"`
}

func SeedClassesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var rows []classSeed
	if err := json.Unmarshal(file, &rows); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, r := range rows {
		var existing classModel.ClassModel
		if err := db.Where("class_name = ?", r.ClassName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kelas %s sudah ada, lewati...", r.ClassName)
			continue
		}

		m := classModel.ClassModel{ClassName: r.ClassName}
		if r.HomeroomTeacherEmail != nil {
			var t teacherModel.TeacherModel
			if err := db.Where("teacher_email = ?", *r.HomeroomTeacherEmail).First(&t).Error; err != nil {
				log.Fatalf("❌ Wali kelas %s belum tersedia: %v", *r.HomeroomTeacherEmail, err)
			}
			m.ClassHomeroomTeacherID = &t.TeacherID
		}

		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("❌ Gagal insert kelas %s: %v", r.ClassName, err)
		}
		log.Printf("✅ Kelas %s dibuat", r.ClassName)
	}
}
