package seeds

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	classModel "tabunganku_backend/internals/features/classes/model"
	studentModel "tabunganku_backend/internals/features/student/model"
)

type studentSeed struct {
	StudentName   string `json:"student_name"`
	StudentGender string `json:"student_gender"`
	StudentNISN   string `json:"student_nisn"`
	StudentNIS    string `json:"student_nis"`
	ClassName     string `json:"class_name"`
	StudentStatus string `json:"student_status"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var rows []studentSeed
	if err := json.Unmarshal(file, &rows); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, r := range rows {
		var existing studentModel.StudentModel
		if err := db.Where("student_nisn = ?", r.StudentNISN).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Siswa NISN %s sudah ada, lewati...", r.StudentNISN)
			continue
		}

		var cls classModel.ClassModel
		if err := db.Where("class_name = ?", r.ClassName).First(&cls).Error; err != nil {
			log.Fatalf("❌ Kelas %s belum tersedia untuk siswa %s: %v", r.ClassName, r.StudentName, err)
		}

		status := studentModel.StudentStatus(r.StudentStatus)
		if r.StudentStatus == "" {
			status = studentModel.StudentStatusActive
		}
		if !status.Valid() {
			log.Fatalf("❌ Status siswa tidak dikenal: %s", r.StudentStatus)
		}

		m := studentModel.StudentModel{
			StudentName:    r.StudentName,
			StudentGender:  studentModel.StudentGender(r.StudentGender),
			StudentNISN:    r.StudentNISN,
			StudentNIS:     r.StudentNIS,
			StudentClassID: cls.ClassID,
			StudentStatus:  status,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("❌ Gagal insert siswa %s: %v", r.StudentName, err)
		}
		log.Printf("✅ Siswa %s dibuat", r.StudentName)
	}
}
