package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tabunganku_backend/internals/configs"
	aspirationModel "tabunganku_backend/internals/features/aspiration/model"
	classModel "tabunganku_backend/internals/features/classes/model"
	schoolModel "tabunganku_backend/internals/features/school/model"
	studentModel "tabunganku_backend/internals/features/student/model"
	teacherModel "tabunganku_backend/internals/features/teacher/model"
	trxModel "tabunganku_backend/internals/features/transaction/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tabunganku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateAll menjalankan AutoMigrate per model supaya kegagalan satu tabel
// tidak memblokir tabel lain. Urutan mengikuti arah FK.
func MigrateAll() {
	if v := getenv("DB_AUTO_MIGRATE", "true"); v == "false" || v == "0" || v == "no" {
		log.Println("⏭️ DB_AUTO_MIGRATE=false, lewati migrasi")
		return
	}
	MigrateAllOn(DB)
}

func MigrateAllOn(db *gorm.DB) {
	steps := []struct {
		name  string
		model interface{}
	}{
		{"schools", &schoolModel.SchoolModel{}},
		{"teachers", &teacherModel.TeacherModel{}},
		{"classes", &classModel.ClassModel{}},
		{"students", &studentModel.StudentModel{}},
		{"transactions", &trxModel.TransactionModel{}},
		{"student_aspirations", &aspirationModel.StudentAspirationModel{}},
	}
	for _, s := range steps {
		if err := db.AutoMigrate(s.model); err != nil {
			log.Printf("migration warning (%s): %v", s.name, err)
		}
	}
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
