package service

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	classModel "tabunganku_backend/internals/features/classes/model"
	trxDTO "tabunganku_backend/internals/features/transaction/dto"
	trxModel "tabunganku_backend/internals/features/transaction/model"
)

// TransactionFilter menyaring ledger. Semua field opsional dan digabung AND;
// rentang tanggal inklusif dua sisi.
type TransactionFilter struct {
	StudentID *uint
	ClassID   *uint
	Type      *trxModel.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionReportService menghitung saldo & laporan dari ledger transaksi.
// Murni baca: tidak pernah memutasi ledger. SQL dijaga portable
// (CASE WHEN + COALESCE) supaya jalan di Postgres maupun SQLite (test).
type TransactionReportService struct{}

func NewTransactionReportService() *TransactionReportService {
	return &TransactionReportService{}
}

// StudentBalance = Σ(setoran) − Σ(penarikan). Tanpa transaksi → 0.
// Keberadaan siswa divalidasi pemanggil (fail-fast 404 di controller).
func (s *TransactionReportService) StudentBalance(db *gorm.DB, studentID uint) (decimal.Decimal, error) {
	var row struct {
		Balance decimal.Decimal `gorm:"column:balance"`
	}
	err := db.Raw(`
		SELECT COALESCE(SUM(CASE WHEN transaction_type = 'deposit'
			THEN transaction_amount ELSE -transaction_amount END), 0) AS balance
		FROM transactions
		WHERE transaction_student_id = ?`, studentID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Balance, nil
}

func (s *TransactionReportService) applyFilter(db *gorm.DB, f TransactionFilter) *gorm.DB {
	q := db
	if f.StudentID != nil {
		q = q.Where("transactions.transaction_student_id = ?", *f.StudentID)
	}
	if f.ClassID != nil {
		q = q.Joins("JOIN students ON students.student_id = transactions.transaction_student_id").
			Where("students.student_class_id = ?", *f.ClassID)
	}
	if f.Type != nil {
		q = q.Where("transactions.transaction_type = ?", *f.Type)
	}
	if f.StartDate != nil {
		q = q.Where("transactions.transaction_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("transactions.transaction_date <= ?", *f.EndDate)
	}
	return q
}

// ListTransactions mengembalikan transaksi mentah sesuai filter.
func (s *TransactionReportService) ListTransactions(db *gorm.DB, f TransactionFilter) ([]trxModel.TransactionModel, error) {
	rows := make([]trxModel.TransactionModel, 0)
	err := s.applyFilter(db.Model(&trxModel.TransactionModel{}), f).
		Order("transactions.transaction_date ASC, transactions.transaction_id ASC").
		Find(&rows).Error
	return rows, err
}

// ListTransactionsByTeacher membatasi ke kelas yang wali kelasnya teacherID.
// Guru tanpa kelas binaan → hasil kosong, bukan error.
func (s *TransactionReportService) ListTransactionsByTeacher(db *gorm.DB, teacherID uint, f TransactionFilter) ([]trxModel.TransactionModel, error) {
	classIDs, err := s.HomeroomClassIDs(db, teacherID)
	if err != nil {
		return nil, err
	}
	if len(classIDs) == 0 {
		return []trxModel.TransactionModel{}, nil
	}
	rows := make([]trxModel.TransactionModel, 0)
	q := s.applyFilter(db.Model(&trxModel.TransactionModel{}), f)
	if f.ClassID == nil {
		q = q.Joins("JOIN students ON students.student_id = transactions.transaction_student_id")
	}
	err = q.Where("students.student_class_id IN ?", classIDs).
		Order("transactions.transaction_date ASC, transactions.transaction_id ASC").
		Find(&rows).Error
	return rows, err
}

// HomeroomClassIDs mengembalikan id kelas binaan seorang guru (bisa kosong).
func (s *TransactionReportService) HomeroomClassIDs(db *gorm.DB, teacherID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := db.Model(&classModel.ClassModel{}).
		Where("class_homeroom_teacher_id = ?", teacherID).
		Pluck("class_id", &ids).Error
	return ids, err
}

// TransactionReport join transaksi → siswa → kelas untuk laporan admin.
func (s *TransactionReportService) TransactionReport(db *gorm.DB, f TransactionFilter) ([]trxDTO.TransactionReportRow, error) {
	rows := make([]trxDTO.TransactionReportRow, 0)
	q := db.Table("transactions").
		Select(`transactions.transaction_id,
			transactions.transaction_date,
			transactions.transaction_type,
			transactions.transaction_amount,
			transactions.transaction_notes,
			students.student_name,
			classes.class_name`).
		Joins("JOIN students ON students.student_id = transactions.transaction_student_id").
		Joins("JOIN classes ON classes.class_id = students.student_class_id")

	if f.StudentID != nil {
		q = q.Where("transactions.transaction_student_id = ?", *f.StudentID)
	}
	if f.ClassID != nil {
		q = q.Where("students.student_class_id = ?", *f.ClassID)
	}
	if f.Type != nil {
		q = q.Where("transactions.transaction_type = ?", *f.Type)
	}
	if f.StartDate != nil {
		q = q.Where("transactions.transaction_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("transactions.transaction_date <= ?", *f.EndDate)
	}

	err := q.Order("transactions.transaction_date ASC, transactions.transaction_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return trxDTO.FormatDates(rows), nil
}

// Summary merekap satu sekolah: jumlah siswa, total setoran/penarikan, saldo bersih.
func (s *TransactionReportService) Summary(db *gorm.DB) (*trxDTO.SummaryResponse, error) {
	out := &trxDTO.SummaryResponse{
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TotalBalance:     decimal.Zero,
	}

	if err := db.Table("students").Count(&out.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := db.Table("students").Where("student_status = 'active'").Count(&out.ActiveStudents).Error; err != nil {
		return nil, err
	}

	var agg struct {
		TotalTransactions int64           `gorm:"column:total_transactions"`
		TotalDeposits     decimal.Decimal `gorm:"column:total_deposits"`
		TotalWithdrawals  decimal.Decimal `gorm:"column:total_withdrawals"`
	}
	err := db.Raw(`
		SELECT COUNT(transaction_id) AS total_transactions,
			COALESCE(SUM(CASE WHEN transaction_type = 'deposit' THEN transaction_amount ELSE 0 END), 0)    AS total_deposits,
			COALESCE(SUM(CASE WHEN transaction_type = 'withdrawal' THEN transaction_amount ELSE 0 END), 0) AS total_withdrawals
		FROM transactions`).Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	out.TotalTransactions = agg.TotalTransactions
	out.TotalDeposits = agg.TotalDeposits
	out.TotalWithdrawals = agg.TotalWithdrawals
	out.TotalBalance = agg.TotalDeposits.Sub(agg.TotalWithdrawals)
	return out, nil
}
