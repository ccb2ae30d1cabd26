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
	// satu koneksi saja supaya :memory: tidak pecah jadi beberapa DB
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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedTrx(t *testing.T, db *gorm.DB, studentID uint, typ trxModel.TransactionType, amount string, on time.Time) {
	t.Helper()
	mustCreate(t, db, &trxModel.TransactionModel{
		TransactionDate:      on,
		TransactionType:      typ,
		TransactionAmount:    decimal.RequireFromString(amount),
		TransactionStudentID: studentID,
	})
}

// seedSchoolData membangun satu sekolah kecil:
//
//	guru Ani   → wali kelas 1A
//	guru Budi  → tanpa kelas binaan
//	kelas 1A: Citra (aktif), Dedi (aktif), Eka (lulus)
//	kelas 2B: Fitri (aktif)
func seedSchoolData(t *testing.T, db *gorm.DB) (homeroomID, otherTeacherID, class1A, class2B uint, citra, dedi, eka, fitri uint) {
	t.Helper()

	ani := &teacherModel.TeacherModel{TeacherName: "Ani", TeacherEmail: "ani@sekolah.sch.id", TeacherRole: teacherModel.TeacherRoleHomeroom}
	budi := &teacherModel.TeacherModel{TeacherName: "Budi", TeacherEmail: "budi@sekolah.sch.id", TeacherRole: teacherModel.TeacherRoleOther}
	mustCreate(t, db, ani)
	mustCreate(t, db, budi)

	c1 := &classModel.ClassModel{ClassName: "1A", ClassHomeroomTeacherID: &ani.TeacherID}
	c2 := &classModel.ClassModel{ClassName: "2B"}
	mustCreate(t, db, c1)
	mustCreate(t, db, c2)

	sc := &studentModel.StudentModel{StudentName: "Citra", StudentGender: studentModel.StudentGenderFemale, StudentNISN: "1001", StudentNIS: "01", StudentClassID: c1.ClassID, StudentStatus: studentModel.StudentStatusActive}
	sd := &studentModel.StudentModel{StudentName: "Dedi", StudentGender: studentModel.StudentGenderMale, StudentNISN: "1002", StudentNIS: "02", StudentClassID: c1.ClassID, StudentStatus: studentModel.StudentStatusActive}
	se := &studentModel.StudentModel{StudentName: "Eka", StudentGender: studentModel.StudentGenderFemale, StudentNISN: "1003", StudentNIS: "03", StudentClassID: c1.ClassID, StudentStatus: studentModel.StudentStatusGraduated}
	sf := &studentModel.StudentModel{StudentName: "Fitri", StudentGender: studentModel.StudentGenderFemale, StudentNISN: "1004", StudentNIS: "04", StudentClassID: c2.ClassID, StudentStatus: studentModel.StudentStatusActive}
	mustCreate(t, db, sc)
	mustCreate(t, db, sd)
	mustCreate(t, db, se)
	mustCreate(t, db, sf)

	return ani.TeacherID, budi.TeacherID, c1.ClassID, c2.ClassID, sc.StudentID, sd.StudentID, se.StudentID, sf.StudentID
}

func TestStudentBalance_NoTransactions(t *testing.T) {
	db := openTestDB(t)
	_, _, _, _, citra, _, _, _ := seedSchoolData(t, db)

	svc := NewTransactionReportService()
	got, err := svc.StudentBalance(db, citra)
	if err != nil {
		t.Fatalf("StudentBalance: %v", err)
	}
	if !got.Equal(decimal.Zero) {
		t.Fatalf("saldo siswa tanpa transaksi = %s, mau 0", got)
	}
}

func TestStudentBalance_NetsDepositsAndWithdrawals(t *testing.T) {
	db := openTestDB(t)
	_, _, _, _, citra, _, _, _ := seedSchoolData(t, db)

	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "100000", date(2025, 3, 1))
	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "50000", date(2025, 3, 5))
	seedTrx(t, db, citra, trxModel.TransactionTypeWithdrawal, "30000", date(2025, 3, 10))
	seedTrx(t, db, citra, trxModel.TransactionTypeWithdrawal, "20000", date(2025, 3, 12))

	svc := NewTransactionReportService()
	got, err := svc.StudentBalance(db, citra)
	if err != nil {
		t.Fatalf("StudentBalance: %v", err)
	}
	want := decimal.RequireFromString("100000")
	if !got.Equal(want) {
		t.Fatalf("saldo = %s, mau %s", got, want)
	}
}

func TestListTransactions_FilterTypeAndDateRange(t *testing.T) {
	db := openTestDB(t)
	_, _, _, _, citra, dedi, _, _ := seedSchoolData(t, db)

	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "10000", date(2025, 1, 1))
	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "20000", date(2025, 2, 1))
	seedTrx(t, db, citra, trxModel.TransactionTypeWithdrawal, "5000", date(2025, 2, 15))
	seedTrx(t, db, dedi, trxModel.TransactionTypeDeposit, "7000", date(2025, 2, 10))

	svc := NewTransactionReportService()
	typ := trxModel.TransactionTypeDeposit
	start := date(2025, 2, 1)
	end := date(2025, 2, 28)
	rows, err := svc.ListTransactions(db, TransactionFilter{
		StudentID: &citra,
		Type:      &typ,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("dapat %d baris, mau 1", len(rows))
	}
	if !rows[0].TransactionAmount.Equal(decimal.RequireFromString("20000")) {
		t.Fatalf("amount = %s, mau 20000", rows[0].TransactionAmount)
	}
}

func TestListTransactions_OrderedByDateThenID(t *testing.T) {
	db := openTestDB(t)
	_, _, _, _, citra, _, _, _ := seedSchoolData(t, db)

	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "2000", date(2025, 4, 2))
	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "1000", date(2025, 4, 1))
	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "3000", date(2025, 4, 1))

	svc := NewTransactionReportService()
	rows, err := svc.ListTransactions(db, TransactionFilter{StudentID: &citra})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("dapat %d baris, mau 3", len(rows))
	}
	wantOrder := []string{"1000", "3000", "2000"}
	for i, w := range wantOrder {
		if !rows[i].TransactionAmount.Equal(decimal.RequireFromString(w)) {
			t.Fatalf("urutan[%d] = %s, mau %s", i, rows[i].TransactionAmount, w)
		}
	}
}

func TestListTransactionsByTeacher(t *testing.T) {
	db := openTestDB(t)
	homeroom, other, _, _, citra, _, eka, fitri := seedSchoolData(t, db)

	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "10000", date(2025, 5, 1))
	seedTrx(t, db, eka, trxModel.TransactionTypeDeposit, "8000", date(2025, 5, 2))
	seedTrx(t, db, fitri, trxModel.TransactionTypeDeposit, "9000", date(2025, 5, 3))

	svc := NewTransactionReportService()

	rows, err := svc.ListTransactionsByTeacher(db, homeroom, TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactionsByTeacher: %v", err)
	}
	// 1A punya Citra dan Eka — transaksi Fitri (2B) tidak ikut
	if len(rows) != 2 {
		t.Fatalf("dapat %d baris, mau 2", len(rows))
	}

	// guru tanpa kelas binaan → kosong, bukan error
	rows, err = svc.ListTransactionsByTeacher(db, other, TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactionsByTeacher (tanpa kelas): %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("guru tanpa kelas binaan dapat %d baris, mau 0", len(rows))
	}
}

func TestTransactionReport_JoinsAndFormatsDate(t *testing.T) {
	db := openTestDB(t)
	_, _, class1A, _, citra, _, _, fitri := seedSchoolData(t, db)

	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "15000", date(2025, 6, 10))
	seedTrx(t, db, fitri, trxModel.TransactionTypeDeposit, "25000", date(2025, 6, 11))

	svc := NewTransactionReportService()
	rows, err := svc.TransactionReport(db, TransactionFilter{ClassID: &class1A})
	if err != nil {
		t.Fatalf("TransactionReport: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("dapat %d baris, mau 1", len(rows))
	}
	r := rows[0]
	if r.StudentName != "Citra" || r.ClassName != "1A" {
		t.Fatalf("join salah: student=%q class=%q", r.StudentName, r.ClassName)
	}
	if r.DateText != "2025-06-10" {
		t.Fatalf("date = %q, mau 2025-06-10", r.DateText)
	}
}

func TestSummary(t *testing.T) {
	db := openTestDB(t)
	_, _, _, _, citra, dedi, _, _ := seedSchoolData(t, db)

	seedTrx(t, db, citra, trxModel.TransactionTypeDeposit, "100000", date(2025, 7, 1))
	seedTrx(t, db, dedi, trxModel.TransactionTypeDeposit, "50000", date(2025, 7, 2))
	seedTrx(t, db, citra, trxModel.TransactionTypeWithdrawal, "30000", date(2025, 7, 3))

	svc := NewTransactionReportService()
	out, err := svc.Summary(db)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if out.TotalStudents != 4 || out.ActiveStudents != 3 {
		t.Fatalf("siswa = %d/%d aktif, mau 4/3", out.TotalStudents, out.ActiveStudents)
	}
	if out.TotalTransactions != 3 {
		t.Fatalf("transaksi = %d, mau 3", out.TotalTransactions)
	}
	if !out.TotalDeposits.Equal(decimal.RequireFromString("150000")) {
		t.Fatalf("total setoran = %s, mau 150000", out.TotalDeposits)
	}
	if !out.TotalWithdrawals.Equal(decimal.RequireFromString("30000")) {
		t.Fatalf("total penarikan = %s, mau 30000", out.TotalWithdrawals)
	}
	if !out.TotalBalance.Equal(decimal.RequireFromString("120000")) {
		t.Fatalf("saldo bersih = %s, mau 120000", out.TotalBalance)
	}
}
