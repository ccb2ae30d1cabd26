package seeds

import (
	"log"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data contoh dari file JSON, urut mengikuti relasi:
// sekolah → guru → kelas → siswa. Seeder idempotent — data yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Mulai seeding...")

	SeedSchoolsFromJSON(db, "internals/seeds/data/data_schools.json")
	SeedTeachersFromJSON(db, "internals/seeds/data/data_teachers.json")
	SeedClassesFromJSON(db, "internals/seeds/data/data_classes.json")
	SeedStudentsFromJSON(db, "internals/seeds/data/data_students.json")

	log.Println("✅ Seeding selesai")
}
