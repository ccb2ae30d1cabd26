package service

import (
	"gorm.io/gorm"

	lbDTO "tabunganku_backend/internals/features/leaderboard/dto"
)

// StudentScope membatasi leaderboard siswa per kelas atau per wali kelas.
// Id yang tidak dikenal menghasilkan list kosong, bukan error — beda dengan
// lookup by-id di CRUD/balance yang fail-fast 404. Ini kontrak, bukan kebetulan.
type StudentScope struct {
	ClassID   *uint
	TeacherID *uint
}

// LeaderboardService menghitung ranking tabungan. Selalu dihitung ulang dari
// ledger saat dipanggil (tanpa cache/materialisasi). SQL dijaga portable
// (CASE WHEN + COALESCE) supaya jalan di Postgres maupun SQLite (test).
type LeaderboardService struct{}

func NewLeaderboardService() *LeaderboardService {
	return &LeaderboardService{}
}

// StudentLeaderboard merangking siswa aktif berdasarkan total setoran (DESC).
// Tie-break stabil: student_id ASC. limit 0 = tanpa batas.
func (s *LeaderboardService) StudentLeaderboard(db *gorm.DB, scope StudentScope, limit int) ([]lbDTO.StudentLeaderboardRow, error) {
	query := `
		SELECT s.student_id,
			s.student_name,
			c.class_name,
			COALESCE(SUM(CASE WHEN t.transaction_type = 'deposit' THEN t.transaction_amount ELSE 0 END), 0)                        AS total_deposits,
			COUNT(t.transaction_id)                                                                                               AS transaction_count,
			COALESCE(SUM(CASE WHEN t.transaction_type = 'deposit' THEN t.transaction_amount ELSE -t.transaction_amount END), 0)   AS current_balance
		FROM students s
		JOIN classes c ON c.class_id = s.student_class_id
		LEFT JOIN transactions t ON t.transaction_student_id = s.student_id
		WHERE s.student_status = 'active'`
	args := make([]interface{}, 0, 3)

	if scope.ClassID != nil {
		query += ` AND s.student_class_id = ?`
		args = append(args, *scope.ClassID)
	}
	if scope.TeacherID != nil {
		query += ` AND s.student_class_id IN (SELECT class_id FROM classes WHERE class_homeroom_teacher_id = ?)`
		args = append(args, *scope.TeacherID)
	}

	query += `
		GROUP BY s.student_id, s.student_name, c.class_name
		ORDER BY total_deposits DESC, s.student_id ASC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows := make([]lbDTO.StudentLeaderboardRow, 0)
	err := db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

// ClassLeaderboard merangking kelas berdasarkan total setoran siswa aktifnya.
// average_balance = rata-rata saldo bersih per siswa aktif; siswa tanpa
// transaksi ikut masuk penyebut dengan saldo 0. Kelas tanpa siswa aktif tetap
// muncul dengan nilai 0 semua.
func (s *LeaderboardService) ClassLeaderboard(db *gorm.DB, limit int) ([]lbDTO.ClassLeaderboardRow, error) {
	query := `
		SELECT c.class_id,
			c.class_name,
			COALESCE(SUM(sb.total_deposit), 0) AS total_deposits,
			COUNT(sb.student_id)               AS total_students,
			COALESCE(AVG(sb.balance), 0)       AS average_balance
		FROM classes c
		LEFT JOIN (
			SELECT s.student_id,
				s.student_class_id,
				COALESCE(SUM(CASE WHEN t.transaction_type = 'deposit' THEN t.transaction_amount ELSE 0 END), 0)                      AS total_deposit,
				COALESCE(SUM(CASE WHEN t.transaction_type = 'deposit' THEN t.transaction_amount ELSE -t.transaction_amount END), 0)  AS balance
			FROM students s
			LEFT JOIN transactions t ON t.transaction_student_id = s.student_id
			WHERE s.student_status = 'active'
			GROUP BY s.student_id, s.student_class_id
		) sb ON sb.student_class_id = c.class_id
		GROUP BY c.class_id, c.class_name
		ORDER BY total_deposits DESC, c.class_id ASC`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows := make([]lbDTO.ClassLeaderboardRow, 0)
	err := db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}
