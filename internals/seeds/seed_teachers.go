package seeds

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	teacherModel "tabunganku_backend/internals/features/teacher/model"
)

type teacherSeed struct {
	TeacherName  string `json:"teacher_name"`
	TeacherEmail string `json:"teacher_email"`
	TeacherRole  string `json:"teacher_role"`
}

func SeedTeachersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var rows []teacherSeed
	if err := json.Unmarshal(file, &rows); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, r := range rows {
		role := teacherModel.TeacherRole(r.TeacherRole)
		if !role.Valid() {
			log.Fatalf("❌ Role guru tidak dikenal: %s", r.TeacherRole)
		}
		var existing teacherModel.TeacherModel
		if err := db.Where("teacher_email = ?", r.TeacherEmail).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Guru %s sudah ada, lewati...", r.TeacherEmail)
			continue
		}
		m := teacherModel.TeacherModel{
			TeacherName:  r.TeacherName,
			TeacherEmail: r.TeacherEmail,
			TeacherRole:  role,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("❌ Gagal insert guru %s: %v", r.TeacherEmail, err)
		}
		log.Printf("✅ Guru %s dibuat", r.TeacherName)
	}
}
