package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "tabunganku_backend/internals/databases"
	classModel "tabunganku_backend/internals/features/classes/model"
	studentModel "tabunganku_backend/internals/features/student/model"
	teacherModel "tabunganku_backend/internals/features/teacher/model"
	trxModel "tabunganku_backend/internals/features/transaction/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite in-memory: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("ambil sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	database.MigrateAllOn(db)
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed %T: %v", v, err)
	}
}

func seedTrx(t *testing.T, db *gorm.DB, studentID uint, typ trxModel.TransactionType, amount string) {
	t.Helper()
	mustCreate(t, db, &trxModel.TransactionModel{
		TransactionDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		TransactionType:      typ,
		TransactionAmount:    decimal.RequireFromString(amount),
		TransactionStudentID: studentID,
	})
}

type seeded struct {
	homeroomID uint
	class1A    uint
	class2B    uint
	classEmpty uint
	citra      uint // 1A aktif
	dedi       uint // 1A aktif
	eka        uint // 1A lulus
	fitri      uint // 2B aktif
}

// Skenario ranking:
//
//	Citra (1A): setoran 100+150+50 = 300, tarik 50 → saldo 250
//	Dedi  (1A): setoran 200, tanpa penarikan    → saldo 200
//	Eka   (1A): lulus, setoran 999 — harus diabaikan
//	Fitri (2B): tanpa transaksi                 → saldo 0
//	Kelas 3C: tanpa siswa sama sekali
func seedLeaderboardData(t *testing.T, db *gorm.DB) seeded {
	t.Helper()

	ani := &teacherModel.TeacherModel{TeacherName: "Ani", TeacherEmail: "ani@sekolah.sch.id", TeacherRole: teacherModel.TeacherRoleHomeroom}
	mustCreate(t, db, ani)

	c1 := &classModel.ClassModel{ClassName: "1A", ClassHomeroomTeacherID: &ani.TeacherID}
	c2 := &classModel.ClassModel{ClassName: "2B"}
	c3 := &classModel.ClassModel{ClassName: "3C"}
	mustCreate(t, db, c1)
	mustCreate(t, db, c2)
	mustCreate(t, db, c3)

	sc := &studentModel.StudentModel{StudentName: "Citra", StudentGender: studentModel.StudentGenderFemale, StudentNISN: "1001", StudentNIS: "01", StudentClassID: c1.ClassID, StudentStatus: studentModel.StudentStatusActive}
	sd := &studentModel.StudentModel{StudentName: "Dedi", StudentGender: studentModel.StudentGenderMale, StudentNISN: "1002", StudentNIS: "02", StudentClassID: c1.ClassID, StudentStatus: studentModel.StudentStatusActive}
	se := &studentModel.StudentModel{StudentName: "Eka", StudentGender: studentModel.StudentGenderFemale, StudentNISN: "1003", StudentNIS: "03", StudentClassID: c1.ClassID, StudentStatus: studentModel.StudentStatusGraduated}
	sf := &studentModel.StudentModel{StudentName: "Fitri", StudentGender: studentModel.StudentGenderFemale, StudentNISN: "1004", StudentNIS: "04", StudentClassID: c2.ClassID, StudentStatus: studentModel.StudentStatusActive}
	mustCreate(t, db, sc)
	mustCreate(t, db, sd)
	mustCreate(t, db, se)
	mustCreate(t, db, sf)

	seedTrx(t, db, sc.StudentID, trxModel.TransactionTypeDeposit, "100")
	seedTrx(t, db, sc.StudentID, trxModel.TransactionTypeDeposit, "150")
	seedTrx(t, db, sc.StudentID, trxModel.TransactionTypeDeposit, "50")
	seedTrx(t, db, sc.StudentID, trxModel.TransactionTypeWithdrawal, "50")
	seedTrx(t, db, sd.StudentID, trxModel.TransactionTypeDeposit, "200")
	seedTrx(t, db, se.StudentID, trxModel.TransactionTypeDeposit, "999")

	return seeded{
		homeroomID: ani.TeacherID,
		class1A:    c1.ClassID,
		class2B:    c2.ClassID,
		classEmpty: c3.ClassID,
		citra:      sc.StudentID,
		dedi:       sd.StudentID,
		eka:        se.StudentID,
		fitri:      sf.StudentID,
	}
}

func TestStudentLeaderboard_RankingAndActiveOnly(t *testing.T) {
	db := openTestDB(t)
	s := seedLeaderboardData(t, db)

	svc := NewLeaderboardService()
	rows, err := svc.StudentLeaderboard(db, StudentScope{}, 0)
	if err != nil {
		t.Fatalf("StudentLeaderboard: %v", err)
	}

	// 3 siswa aktif; Eka (lulus) tidak boleh muncul meski setorannya terbesar
	if len(rows) != 3 {
		t.Fatalf("dapat %d baris, mau 3", len(rows))
	}
	for _, r := range rows {
		if r.StudentID == s.eka {
			t.Fatalf("siswa lulus ikut terangking")
		}
	}

	if rows[0].StudentID != s.citra || rows[1].StudentID != s.dedi || rows[2].StudentID != s.fitri {
		t.Fatalf("urutan salah: %d, %d, %d", rows[0].StudentID, rows[1].StudentID, rows[2].StudentID)
	}

	top := rows[0]
	if !top.TotalDeposits.Equal(decimal.RequireFromString("300")) {
		t.Fatalf("total setoran teratas = %s, mau 300", top.TotalDeposits)
	}
	if !top.CurrentBalance.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("saldo teratas = %s, mau 250", top.CurrentBalance)
	}
	if top.TransactionCount != 4 {
		t.Fatalf("jumlah transaksi teratas = %d, mau 4", top.TransactionCount)
	}

	// siswa aktif tanpa transaksi tetap muncul dengan nilai 0
	bottom := rows[2]
	if !bottom.TotalDeposits.IsZero() || !bottom.CurrentBalance.IsZero() || bottom.TransactionCount != 0 {
		t.Fatalf("siswa tanpa transaksi: %s/%s/%d, mau 0/0/0",
			bottom.TotalDeposits, bottom.CurrentBalance, bottom.TransactionCount)
	}
}

func TestStudentLeaderboard_Limit(t *testing.T) {
	db := openTestDB(t)
	s := seedLeaderboardData(t, db)

	svc := NewLeaderboardService()
	rows, err := svc.StudentLeaderboard(db, StudentScope{}, 2)
	if err != nil {
		t.Fatalf("StudentLeaderboard: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("dapat %d baris, mau 2", len(rows))
	}
	if rows[0].StudentID != s.citra || rows[1].StudentID != s.dedi {
		t.Fatalf("limit memotong baris yang salah")
	}
}

func TestStudentLeaderboard_ScopeByClass(t *testing.T) {
	db := openTestDB(t)
	s := seedLeaderboardData(t, db)

	svc := NewLeaderboardService()
	rows, err := svc.StudentLeaderboard(db, StudentScope{ClassID: &s.class2B}, 0)
	if err != nil {
		t.Fatalf("StudentLeaderboard: %v", err)
	}
	if len(rows) != 1 || rows[0].StudentID != s.fitri {
		t.Fatalf("scope kelas 2B dapat %d baris", len(rows))
	}

	// id kelas yang tidak dikenal → list kosong, bukan error
	unknown := uint(9999)
	rows, err = svc.StudentLeaderboard(db, StudentScope{ClassID: &unknown}, 0)
	if err != nil {
		t.Fatalf("StudentLeaderboard (kelas asing): %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("kelas asing dapat %d baris, mau 0", len(rows))
	}
}

func TestStudentLeaderboard_ScopeByTeacher(t *testing.T) {
	db := openTestDB(t)
	s := seedLeaderboardData(t, db)

	svc := NewLeaderboardService()
	rows, err := svc.StudentLeaderboard(db, StudentScope{TeacherID: &s.homeroomID}, 0)
	if err != nil {
		t.Fatalf("StudentLeaderboard: %v", err)
	}
	// kelas binaan Ani = 1A → Citra dan Dedi (Eka lulus)
	if len(rows) != 2 {
		t.Fatalf("scope wali kelas dapat %d baris, mau 2", len(rows))
	}

	unknown := uint(9999)
	rows, err = svc.StudentLeaderboard(db, StudentScope{TeacherID: &unknown}, 0)
	if err != nil {
		t.Fatalf("StudentLeaderboard (guru asing): %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("guru asing dapat %d baris, mau 0", len(rows))
	}
}

func TestClassLeaderboard(t *testing.T) {
	db := openTestDB(t)
	s := seedLeaderboardData(t, db)

	svc := NewLeaderboardService()
	rows, err := svc.ClassLeaderboard(db, 0)
	if err != nil {
		t.Fatalf("ClassLeaderboard: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("dapat %d baris, mau 3", len(rows))
	}

	// 1A teratas: setoran 300+200 = 500, 2 siswa aktif, rata-rata saldo (250+200)/2
	top := rows[0]
	if top.ClassID != s.class1A {
		t.Fatalf("kelas teratas = %d, mau 1A", top.ClassID)
	}
	if !top.TotalDeposits.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("total setoran 1A = %s, mau 500", top.TotalDeposits)
	}
	if top.TotalStudents != 2 {
		t.Fatalf("siswa aktif 1A = %d, mau 2", top.TotalStudents)
	}
	if !top.AverageBalance.Equal(decimal.RequireFromString("225")) {
		t.Fatalf("rata-rata saldo 1A = %s, mau 225", top.AverageBalance)
	}

	// kelas tanpa siswa tetap muncul dengan nilai 0 semua
	found := false
	for i := range rows {
		if rows[i].ClassID == s.classEmpty {
			found = true
			if rows[i].TotalStudents != 0 || !rows[i].TotalDeposits.IsZero() || !rows[i].AverageBalance.IsZero() {
				t.Fatalf("kelas kosong tidak nol: %+v", rows[i])
			}
		}
	}
	if !found {
		t.Fatalf("kelas tanpa siswa hilang dari ranking")
	}
}
